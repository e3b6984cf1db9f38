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

// Проверка, что ItemRepository удовлетворяет интерфейсу ItemRepository.
var _ ports.ItemRepository = (*ItemRepository)(nil)

// ItemRepository — реализация репозитория каталога на Postgres (pgxpool).
// Каталог из ядра только читается; запись выполняет внешний редактор.
type ItemRepository struct {
	pool *pgxpool.Pool
}

// NewItemRepository — конструктор ItemRepository.
func NewItemRepository(pool *pgxpool.Pool) *ItemRepository { return &ItemRepository{pool: pool} }

const itemColumns = `id, title, description, price, img_path, stock`

// FindByID — точечное чтение; (nil, nil), если записи нет.
func (r *ItemRepository) FindByID(ctx context.Context, id int64) (*domain.Item, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+itemColumns+`
		FROM items
		WHERE id = $1
	`, id)

	var item domain.Item
	err := row.Scan(&item.ID, &item.Title, &item.Description, &item.Price, &item.ImgPath, &item.Stock)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select item: %w", err)
	}
	return &item, nil
}

// FindByIDs — выборка набора товаров; отсутствующие id не попадают в результат.
func (r *ItemRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+itemColumns+`
		FROM items
		WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("select items by ids: %w", err)
	}
	return scanItems(rows)
}

// SearchByTitleOrDescription — подстрочный регистронезависимый поиск (ILIKE).
func (r *ItemRepository) SearchByTitleOrDescription(ctx context.Context, query string, limit, offset int) ([]domain.Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+itemColumns+`
		FROM items
		WHERE title ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
		ORDER BY id
		LIMIT $2 OFFSET $3
	`, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search items: %w", err)
	}
	return scanItems(rows)
}

// CountByTitleOrDescription — количество записей под тем же фильтром, что и поиск.
func (r *ItemRepository) CountByTitleOrDescription(ctx context.Context, query string) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*)
		FROM items
		WHERE title ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
	`, query).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count items by query: %w", err)
	}
	return total, nil
}

// ListOrderedBy — выдача каталога в заданном порядке с пагинацией.
// Поле сортировки подставляется из белого списка, не из пользовательского ввода.
func (r *ItemRepository) ListOrderedBy(ctx context.Context, sort domain.SortOrder, limit, offset int) ([]domain.Item, error) {
	orderBy := "id"
	switch sort {
	case domain.SortAlpha:
		orderBy = "title"
	case domain.SortPrice:
		orderBy = "price"
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+itemColumns+`
		FROM items
		ORDER BY `+orderBy+` ASC, id ASC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return scanItems(rows)
}

// CountAll — общее количество товаров.
func (r *ItemRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM items`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return total, nil
}

// scanItems — вычитывает все строки выборки в срез товаров.
func scanItems(rows pgx.Rows) ([]domain.Item, error) {
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var item domain.Item
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.Price, &item.ImgPath, &item.Stock); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return items, nil
}
