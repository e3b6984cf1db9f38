package ports

import (
	"context"

	"github.com/Gunvolt24/intershop/internal/domain"
)

// ItemReader — cache-aside чтение каталога. Реализация — usecase.ItemService.
type ItemReader interface {
	// GetItem — товар по id; domain.ErrItemNotFound, если товара нет и в хранилище.
	GetItem(ctx context.Context, id int64) (*domain.Item, error)

	// GetItems — лояльная пакетная выборка: неразрешившиеся id пропускаются,
	// порядок результата не гарантируется.
	GetItems(ctx context.Context, ids []int64) ([]domain.Item, error)

	// Search — страница каталога по запросу/сортировке (pageNumber — 1-based).
	Search(ctx context.Context, query string, pageNumber, pageSize int, sort domain.SortOrder) (*domain.Page, error)
}

// ItemInvalidator — протокол инвалидации кэша каталога. Вызывается внешним
// редактором каталога (через consumer событий): сам кэш write-through не делает.
type ItemInvalidator interface {
	InvalidateItem(ctx context.Context, id int64) error
	InvalidateAllItems(ctx context.Context) error
	InvalidateSearch(ctx context.Context) error
	InvalidateAll(ctx context.Context) error
}
