package usecase

import (
	"context"
	"sync"

	"github.com/Gunvolt24/intershop/internal/domain"
	"github.com/Gunvolt24/intershop/internal/ports"
)

// CartService — корзины в памяти процесса, по одной на сессию.
// Внешний RWMutex защищает только карту сессий; у каждой корзины свой
// мьютекс, так что операции разных сессий не мешают друг другу, а операции
// одной сессии линеаризуемы. Под замком никогда нет I/O.
type CartService struct {
	mu    sync.RWMutex
	carts map[string]*sessionCart

	items ports.ItemReader
}

// sessionCart — счётчики товаров одной сессии: item id -> количество.
type sessionCart struct {
	mu     sync.Mutex
	counts map[int64]int
}

// NewCartService — конструктор. ItemReader нужен только для Items/Total,
// мутации корзины к каталогу не обращаются.
func NewCartService(items ports.ItemReader) *CartService {
	return &CartService{
		carts: make(map[string]*sessionCart),
		items: items,
	}
}

// cart — корзина сессии; создаёт пустую при первом обращении.
func (s *CartService) cart(session string) *sessionCart {
	s.mu.RLock()
	c, ok := s.carts[session]
	s.mu.RUnlock()
	if ok {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// повторная проверка: другая горутина могла успеть создать
	if c, ok = s.carts[session]; ok {
		return c
	}
	c = &sessionCart{counts: make(map[int64]int)}
	s.carts[session] = c
	return c
}

// Get — снимок корзины сессии: копия карты item id -> количество.
// Для неизвестной сессии — пустая карта; снимок не отражает последующих мутаций.
func (s *CartService) Get(session string) map[int64]int {
	c := s.cart(session)
	c.mu.Lock()
	defer c.mu.Unlock()

	snapshot := make(map[int64]int, len(c.counts))
	for id, n := range c.counts {
		snapshot[id] = n
	}
	return snapshot
}

// Add — инкремент количества товара; первый Add создаёт позицию с 1.
// Наличие товара в каталоге здесь не проверяется.
func (s *CartService) Add(session string, itemID int64) {
	c := s.cart(session)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[itemID]++
}

// Remove — декремент количества; при достижении нуля позиция удаляется.
// Remove отсутствующей позиции — no-op, отрицательных количеств не бывает.
func (s *CartService) Remove(session string, itemID int64) {
	c := s.cart(session)
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.counts[itemID]
	if !ok {
		return
	}
	if n <= 1 {
		delete(c.counts, itemID)
		return
	}
	c.counts[itemID] = n - 1
}

// Delete — удаляет позицию целиком независимо от количества.
func (s *CartService) Delete(session string, itemID int64) {
	c := s.cart(session)
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.counts, itemID)
}

// Clear — опустошает корзину сессии. Вызывается после успешного
// оформления заказа; сама сборка заказа корзину не трогает.
func (s *CartService) Clear(session string) {
	c := s.cart(session)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts = make(map[int64]int)
}

// Items — корзина, развёрнутая в товары каталога с количествами.
// Работает по снимку: сначала Get без I/O, потом лояльная выборка товаров —
// позиции, чьи товары исчезли из каталога, в выдачу не попадают.
func (s *CartService) Items(ctx context.Context, session string) ([]domain.CartItem, error) {
	snapshot := s.Get(session)
	if len(snapshot) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(snapshot))
	for id := range snapshot {
		ids = append(ids, id)
	}

	items, err := s.items.GetItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CartItem, 0, len(items))
	for _, item := range items {
		result = append(result, domain.CartItem{
			Item:  item,
			Count: snapshot[item.ID],
		})
	}
	return result, nil
}

// Total — сумма корзины по текущим ценам каталога.
func (s *CartService) Total(ctx context.Context, session string) (float64, error) {
	items, err := s.Items(ctx, session)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, ci := range items {
		total += ci.Subtotal()
	}
	return total, nil
}
