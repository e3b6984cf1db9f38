package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Gunvolt24/intershop/internal/domain"
	"github.com/Gunvolt24/intershop/internal/ports"
	"github.com/Gunvolt24/intershop/pkg/metrics"
)

// OrderService — сборка заказа из снимка корзины и чтение истории заказов.
// Сборка нетранзакционна: заголовок и строки пишутся отдельными вставками,
// при падении процесса возможен заказ без части строк.
type OrderService struct {
	orders ports.OrderRepository
	items  ports.ItemReader
	log    ports.Logger
}

// NewOrderService — DI-конструктор.
func NewOrderService(orders ports.OrderRepository, items ports.ItemReader, log ports.Logger) *OrderService {
	return &OrderService{
		orders: orders,
		items:  items,
		log:    log,
	}
}

// CreateOrderFromCart — превращает снимок корзины (item id -> количество)
// в сохранённый заказ со строками и зафиксированными ценами.
// Порядок шагов:
//  1. заголовок со статусом PROCESSING пишется первым — появляется order id;
//  2. товары корзины пакетно разрешаются через каталог (лояльно);
//  3. строки пишутся конкурентно, цена каждой — цена товара на этот момент.
//
// Позиции, чьи товары исчезли из каталога, в заказ не попадают; их id
// возвращаются вторым значением, чтобы вызывающий мог показать их пользователю.
func (s *OrderService) CreateOrderFromCart(ctx context.Context, cart map[int64]int, userID int64) (*domain.Order, []int64, error) {
	if len(cart) == 0 {
		return nil, nil, domain.ErrEmptyCart
	}

	order := &domain.Order{
		UserID:    userID,
		Status:    domain.StatusProcessing,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.orders.SaveOrder(ctx, order); err != nil {
		return nil, nil, fmt.Errorf("save order: %w", err)
	}

	ids := make([]int64, 0, len(cart))
	for id := range cart {
		ids = append(ids, id)
	}

	items, err := s.items.GetItems(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve cart items: %w", err)
	}

	resolved := make(map[int64]domain.Item, len(items))
	for _, item := range items {
		resolved[item.ID] = item
	}

	var dropped []int64
	for _, id := range ids {
		if _, ok := resolved[id]; !ok {
			dropped = append(dropped, id)
		}
	}
	sort.Slice(dropped, func(i, j int) bool { return dropped[i] < dropped[j] })
	if len(dropped) > 0 {
		metrics.OrderItemsDropped.Add(float64(len(dropped)))
		s.log.Warnf(ctx, "order %d: %d cart items missing from catalog, dropped: %v", order.ID, len(dropped), dropped)
	}

	var (
		mu       sync.Mutex
		lines    = make([]domain.OrderItem, 0, len(resolved))
		firstErr error
		wg       sync.WaitGroup
	)

	for id, item := range resolved {
		wg.Add(1)
		go func(item domain.Item, quantity int) {
			defer wg.Done()

			line := domain.OrderItem{
				OrderID:  order.ID,
				ItemID:   item.ID,
				Quantity: quantity,
				Price:    item.Price,
			}
			err := s.orders.SaveOrderItem(ctx, &line)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			line.Item = &item
			lines = append(lines, line)
		}(item, cart[id])
	}
	wg.Wait()

	if firstErr != nil {
		return nil, nil, fmt.Errorf("save order items: %w", firstErr)
	}

	sort.Slice(lines, func(i, j int) bool { return lines[i].ItemID < lines[j].ItemID })
	order.Items = lines

	metrics.OrdersCreated.Inc()
	s.log.Infof(ctx, "order %d created: user=%d lines=%d total=%.2f", order.ID, userID, len(lines), order.TotalSum())
	return order, dropped, nil
}

// OrderByID — заказ со строками и подгруженными товарами каталога.
func (s *OrderService) OrderByID(ctx context.Context, id int64) (*domain.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	if order == nil {
		return nil, fmt.Errorf("%w: id=%d", domain.ErrOrderNotFound, id)
	}
	if err := s.attachLines(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// UserOrders — история заказов пользователя, свежие первыми, со строками.
func (s *OrderService) UserOrders(ctx context.Context, userID int64) ([]*domain.Order, error) {
	orders, err := s.orders.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user orders: %w", err)
	}
	for _, order := range orders {
		if err := s.attachLines(ctx, order); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

// attachLines — дочитывает строки заказа и навешивает на них товары каталога.
// Товары подгружаются лояльно: строка исчезнувшего товара остаётся со
// своими количеством и зафиксированной ценой, просто без карточки.
func (s *OrderService) attachLines(ctx context.Context, order *domain.Order) error {
	lines, err := s.orders.FindItemsByOrderID(ctx, order.ID)
	if err != nil {
		return fmt.Errorf("find order items: %w", err)
	}
	if len(lines) == 0 {
		order.Items = nil
		return nil
	}

	ids := make([]int64, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ItemID)
	}

	items, err := s.items.GetItems(ctx, ids)
	if err != nil {
		// карточки товаров — украшение выдачи, без них заказ всё равно валиден
		if !errors.Is(err, context.Canceled) {
			s.log.Warnf(ctx, "order %d: failed to load catalog items for lines: %v", order.ID, err)
		}
		order.Items = lines
		return nil
	}

	byID := make(map[int64]domain.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	for i := range lines {
		if item, ok := byID[lines[i].ItemID]; ok {
			item := item
			lines[i].Item = &item
		}
	}
	order.Items = lines
	return nil
}
