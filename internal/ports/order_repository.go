package ports

import (
	"context"

	"github.com/Gunvolt24/intershop/internal/domain"
)

// OrderRepository — хранилище заказов: две независимые коллекции
// (заголовки и строки), транзакционно между собой не связанные.
type OrderRepository interface {
	// SaveOrder — сохраняет заголовок и проставляет присвоенный ID.
	SaveOrder(ctx context.Context, order *domain.Order) error

	// FindByID — заголовок без строк; (nil, nil), если записи нет.
	FindByID(ctx context.Context, id int64) (*domain.Order, error)

	// FindByUserID — заголовки заказов пользователя, свежие первыми.
	FindByUserID(ctx context.Context, userID int64) ([]*domain.Order, error)

	// SaveOrderItem — сохраняет строку заказа и проставляет присвоенный ID.
	SaveOrderItem(ctx context.Context, item *domain.OrderItem) error

	// FindItemsByOrderID — строки заказа.
	FindItemsByOrderID(ctx context.Context, orderID int64) ([]domain.OrderItem, error)
}
