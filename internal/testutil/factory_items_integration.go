//go:build integration

package testutil

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/Gunvolt24/intershop/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор валидного товара (без ID — его выдаёт БД при вставке)
func MakeItem(opts ...func(*domain.Item)) domain.Item {
	s := UniqSuffix()
	i := domain.Item{
		Title:       "Widget-" + s,
		Description: "test widget " + s,
		Price:       99.90,
		ImgPath:     "/img/widget-" + s + ".png",
		Stock:       10,
	}
	for _, fn := range opts {
		fn(&i)
	}
	return i
}

func WithTitle(title string) func(*domain.Item) {
	return func(i *domain.Item) { i.Title = title }
}

func WithPrice(price float64) func(*domain.Item) {
	return func(i *domain.Item) { i.Price = price }
}

func WithDescription(desc string) func(*domain.Item) {
	return func(i *domain.Item) { i.Description = desc }
}

// SeedItem — вставляет товар напрямую в БД и возвращает его с присвоенным ID.
// Репозиторий каталога только читает, поэтому сидим мимо него.
func SeedItem(ctx context.Context, pool *pgxpool.Pool, item domain.Item) (domain.Item, error) {
	err := pool.QueryRow(ctx, `
		INSERT INTO items (title, description, price, img_path, stock)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, item.Title, item.Description, item.Price, item.ImgPath, item.Stock).Scan(&item.ID)
	if err != nil {
		return domain.Item{}, fmt.Errorf("seed item: %w", err)
	}
	return item, nil
}

// SeedItems — пакетная вставка n товаров фабрикой MakeItem.
func SeedItems(ctx context.Context, pool *pgxpool.Pool, n int, opts ...func(*domain.Item)) ([]domain.Item, error) {
	items := make([]domain.Item, 0, n)
	for i := 0; i < n; i++ {
		seeded, err := SeedItem(ctx, pool, MakeItem(opts...))
		if err != nil {
			return nil, err
		}
		items = append(items, seeded)
	}
	return items, nil
}
