package ports

import (
	"context"

	"github.com/Gunvolt24/intershop/internal/domain"
)

// ItemRepository — хранилище каталога (system of record).
// Отсутствие записи — это (nil, nil), а не ошибка: типизацию «не найдено»
// добавляет слой usecase.
type ItemRepository interface {
	// FindByID — точечное чтение товара; (nil, nil), если записи нет.
	FindByID(ctx context.Context, id int64) (*domain.Item, error)

	// FindByIDs — чтение набора товаров; отсутствующие id просто не попадают в результат.
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Item, error)

	// SearchByTitleOrDescription — подстрочный регистронезависимый поиск
	// по названию и описанию с пагинацией.
	SearchByTitleOrDescription(ctx context.Context, query string, limit, offset int) ([]domain.Item, error)

	// CountByTitleOrDescription — количество записей под тем же фильтром, что и поиск.
	CountByTitleOrDescription(ctx context.Context, query string) (int64, error)

	// ListOrderedBy — выдача каталога в заданном порядке (id/название/цена) с пагинацией.
	ListOrderedBy(ctx context.Context, sort domain.SortOrder, limit, offset int) ([]domain.Item, error)

	// CountAll — общее количество товаров каталога.
	CountAll(ctx context.Context) (int64, error)
}
