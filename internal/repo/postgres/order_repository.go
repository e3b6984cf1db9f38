package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Gunvolt24/intershop/internal/domain"
	"github.com/Gunvolt24/intershop/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Проверка, что OrderRepository удовлетворяет интерфейсу OrderRepository.
var _ ports.OrderRepository = (*OrderRepository)(nil)

// OrderRepository — реализация репозитория заказов на Postgres (pgxpool).
// Заголовки (orders) и строки (order_items) — независимые коллекции:
// общей транзакции между SaveOrder и SaveOrderItem нет.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository — конструктор OrderRepository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository { return &OrderRepository{pool: pool} }

// SaveOrder — сохраняет заголовок заказа и проставляет присвоенный ID.
func (r *OrderRepository) SaveOrder(ctx context.Context, order *domain.Order) error {
	if order == nil {
		return errors.New("order is nil")
	}
	if order.UserID == 0 {
		return errors.New("user_id is required")
	}

	err := r.pool.QueryRow(ctx, `
		INSERT INTO orders (user_id, status, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, order.UserID, order.Status, order.CreatedAt).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

// FindByID — заголовок без строк; (nil, nil), если записи нет.
func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, user_id, status, created_at
		FROM orders
		WHERE id = $1
	`, id)

	var order domain.Order
	err := row.Scan(&order.ID, &order.UserID, &order.Status, &order.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select order: %w", err)
	}
	return &order, nil
}

// FindByUserID — заголовки заказов пользователя, свежие первыми.
func (r *OrderRepository) FindByUserID(ctx context.Context, userID int64) ([]*domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, status, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("select orders by user: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.UserID, &order.Status, &order.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, &order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return orders, nil
}

// SaveOrderItem — сохраняет строку заказа и проставляет присвоенный ID.
func (r *OrderRepository) SaveOrderItem(ctx context.Context, item *domain.OrderItem) error {
	if item == nil {
		return errors.New("order item is nil")
	}
	if item.OrderID == 0 || item.ItemID == 0 {
		return errors.New("order_id and item_id are required")
	}
	if item.Quantity <= 0 {
		return errors.New("quantity must be positive")
	}

	err := r.pool.QueryRow(ctx, `
		INSERT INTO order_items (order_id, item_id, quantity, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, item.OrderID, item.ItemID, item.Quantity, item.Price).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// FindItemsByOrderID — строки заказа в порядке вставки.
func (r *OrderRepository) FindItemsByOrderID(ctx context.Context, orderID int64) ([]domain.OrderItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, order_id, item_id, quantity, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("select order items: %w", err)
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ItemID, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return items, nil
}
