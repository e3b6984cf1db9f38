package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Gunvolt24/intershop/internal/domain"
	"github.com/Gunvolt24/intershop/internal/ports"
	"github.com/Gunvolt24/intershop/pkg/metrics"
)

// Проверка, что ItemService закрывает порты чтения и инвалидации.
var (
	_ ports.ItemReader      = (*ItemService)(nil)
	_ ports.ItemInvalidator = (*ItemService)(nil)
)

// Семейства ключей кэша. Ими владеет только ItemService:
// никакой другой компонент эти ключи не пишет.
const (
	itemKeyPrefix   = "item:"
	searchKeyPrefix = "search:"
)

const defaultItemTTL = 5 * time.Minute

// ItemService — cache-aside чтение каталога поверх ItemRepository и CacheStore.
// Кэш best-effort: недоступность кэша никогда не блокирует чтение — промах
// уходит в хранилище, ошибки записи в кэш только логируются.
// Write-through инвалидации нет: внешний редактор каталога обязан сам
// дёргать InvalidateItem/InvalidateAll; окно устаревания ограничено TTL.
type ItemService struct {
	repo  ports.ItemRepository
	cache ports.CacheStore
	log   ports.Logger
	ttl   time.Duration
}

// NewItemService — DI-конструктор. ttl <= 0 откатывается к 5 минутам.
func NewItemService(repo ports.ItemRepository, cache ports.CacheStore, log ports.Logger, ttl time.Duration) *ItemService {
	if ttl <= 0 {
		ttl = defaultItemTTL
	}
	return &ItemService{
		repo:  repo,
		cache: cache,
		log:   log,
		ttl:   ttl,
	}
}

// itemKey — ключ одиночного товара: item:<id>.
func itemKey(id int64) string { return fmt.Sprintf("%s%d", itemKeyPrefix, id) }

// searchKey — ключ страницы поиска: search:<query>:<page>:<size>:<sort>.
// Пустой запрос и неуказанная сортировка приводятся к плейсхолдерам,
// чтобы эквивалентные запросы делили одну запись кэша.
func searchKey(query string, pageNumber, pageSize int, sort domain.SortOrder) string {
	q := query
	if q == "" {
		q = "NO"
	}
	s := string(sort)
	if s == "" {
		s = "DEFAULT"
	}
	return fmt.Sprintf("%s%s:%d:%d:%s", searchKeyPrefix, q, pageNumber, pageSize, s)
}

// GetItem — товар по id: сначала кэш, при промахе — хранилище с записью в кэш.
// Отсутствие товара в хранилище — ErrItemNotFound (негативный результат не кэшируется).
func (s *ItemService) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	key := itemKey(id)

	if raw, ok := s.cacheGet(ctx, key); ok {
		var item domain.Item
		if err := json.Unmarshal(raw, &item); err == nil {
			metrics.CacheOps.WithLabelValues("hit").Inc()
			return &item, nil
		}
		// битая запись — трактуем как промах
		s.log.Warnf(ctx, "broken cache entry key=%s, fallback to store", key)
	}
	metrics.CacheOps.WithLabelValues("miss").Inc()

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "repo.FindByID failed id=%d err=%v", id, err)
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: id=%d", domain.ErrItemNotFound, id)
	}

	s.cacheSet(ctx, key, item)
	return item, nil
}

// GetItems — лояльная пакетная выборка: по каждому id отдельная cache-aside
// ветка (fan-out), неразрешившиеся id пропускаются. Ошибка хранилища в любой
// ветке прерывает всю выборку; порядок результата не гарантируется.
func (s *ItemService) GetItems(ctx context.Context, ids []int64) ([]domain.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var (
		mu       sync.Mutex
		items    = make([]domain.Item, 0, len(ids))
		firstErr error
		wg       sync.WaitGroup
	)

	for _, id := range ids {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()

			item, err := s.GetItem(ctx, id)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				items = append(items, *item)
			case errors.Is(err, domain.ErrItemNotFound):
				// лояльная выборка: отсутствующие id просто пропускаем
			default:
				if firstErr == nil {
					firstErr = err
				}
			}
		}(id)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return items, nil
}

// Search — страница каталога: сначала кэш целой страницы, при промахе —
// запрос к хранилищу и запись собранной страницы в кэш.
func (s *ItemService) Search(ctx context.Context, query string, pageNumber, pageSize int, sort domain.SortOrder) (*domain.Page, error) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	key := searchKey(query, pageNumber, pageSize, sort)

	if raw, ok := s.cacheGet(ctx, key); ok {
		var page domain.Page
		if err := json.Unmarshal(raw, &page); err == nil {
			metrics.CacheOps.WithLabelValues("hit").Inc()
			s.log.Infof(ctx, "cache hit for search key=%s", key)
			return &page, nil
		}
		s.log.Warnf(ctx, "broken cache entry key=%s, fallback to store", key)
	}
	metrics.CacheOps.WithLabelValues("miss").Inc()
	s.log.Infof(ctx, "cache miss for search key=%s", key)

	page, err := s.performSearch(ctx, query, pageNumber, pageSize, sort)
	if err != nil {
		return nil, err
	}

	s.cacheSet(ctx, key, page)
	return page, nil
}

// performSearch — запрос к хранилищу одной из четырёх взаимоисключающих
// стратегий (приоритет: запрос > сортировка > порядок по id). Страница и
// суммарный счётчик считаются под одним и тем же фильтром и читаются
// параллельно.
func (s *ItemService) performSearch(ctx context.Context, query string, pageNumber, pageSize int, sort domain.SortOrder) (*domain.Page, error) {
	limit := pageSize
	offset := (pageNumber - 1) * pageSize

	var (
		items    []domain.Item
		total    int64
		itemsErr error
		totalErr error
		wg       sync.WaitGroup
	)

	wg.Add(2)
	if query != "" {
		go func() {
			defer wg.Done()
			items, itemsErr = s.repo.SearchByTitleOrDescription(ctx, query, limit, offset)
		}()
		go func() {
			defer wg.Done()
			total, totalErr = s.repo.CountByTitleOrDescription(ctx, query)
		}()
	} else {
		go func() {
			defer wg.Done()
			items, itemsErr = s.repo.ListOrderedBy(ctx, sort, limit, offset)
		}()
		go func() {
			defer wg.Done()
			total, totalErr = s.repo.CountAll(ctx)
		}()
	}
	wg.Wait()

	if itemsErr != nil {
		return nil, fmt.Errorf("search items: %w", itemsErr)
	}
	if totalErr != nil {
		return nil, fmt.Errorf("count items: %w", totalErr)
	}

	return &domain.Page{
		Items:         items,
		TotalElements: total,
		PageNumber:    pageNumber,
		PageSize:      pageSize,
	}, nil
}

// InvalidateItem — удаляет item:<id>; удаление отсутствующего ключа — не ошибка.
func (s *ItemService) InvalidateItem(ctx context.Context, id int64) error {
	s.log.Infof(ctx, "invalidate item cache id=%d", id)
	return s.cache.Delete(ctx, itemKey(id))
}

// InvalidateAllItems — удаляет все ключи item:*.
func (s *ItemService) InvalidateAllItems(ctx context.Context) error {
	s.log.Infof(ctx, "invalidate all item cache")
	return s.cache.DeleteByPrefix(ctx, itemKeyPrefix)
}

// InvalidateSearch — удаляет все ключи search:*.
func (s *ItemService) InvalidateSearch(ctx context.Context) error {
	s.log.Infof(ctx, "invalidate search cache")
	return s.cache.DeleteByPrefix(ctx, searchKeyPrefix)
}

// InvalidateAll — чистит оба семейства ключей конкурентно;
// завершается, когда закончились обе чистки.
func (s *ItemService) InvalidateAll(ctx context.Context) error {
	var (
		itemsErr  error
		searchErr error
		wg        sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		itemsErr = s.InvalidateAllItems(ctx)
	}()
	go func() {
		defer wg.Done()
		searchErr = s.InvalidateSearch(ctx)
	}()
	wg.Wait()

	return errors.Join(itemsErr, searchErr)
}

// WarmUpSearch — прогрев кэша первой страницей каталога при старте.
// Лучшая попытка: ошибка не мешает запуску (решение за вызывающим).
func (s *ItemService) WarmUpSearch(ctx context.Context, pageSize int) error {
	if pageSize <= 0 {
		s.log.Warnf(ctx, "search warm-up skipped: pageSize <= 0 (%d)", pageSize)
		return nil
	}

	start := time.Now()
	page, err := s.Search(ctx, "", 1, pageSize, domain.SortDefault)
	if err != nil {
		return err
	}
	s.log.Infof(ctx, "search cache warmed with %d items in %s", len(page.Items), time.Since(start))
	return nil
}

// cacheGet — чтение из кэша с подавлением ошибок: любая ошибка кэша — промах.
func (s *ItemService) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warnf(ctx, "cache.Get failed key=%s err=%v (treated as miss)", key, err)
		return nil, false
	}
	return raw, ok
}

// cacheSet — запись в кэш с подавлением ошибок: сбой записи только логируется.
func (s *ItemService) cacheSet(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.Warnf(ctx, "cache marshal failed key=%s err=%v", key, err)
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
		s.log.Warnf(ctx, "cache.Set failed key=%s err=%v", key, err)
	}
}
