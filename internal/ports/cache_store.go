package ports

import (
	"context"
	"time"
)

// CacheStore — key-value хранилище с TTL. Реализации: Redis и in-memory.
// Требования: потокобезопасность; запись с истёкшим TTL трактуется как
// отсутствующая, а не как устаревшее попадание.
type CacheStore interface {
	// Get — значение по ключу; (nil, false, nil) при промахе или истечении TTL.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set — сохранить значение с TTL (ttl <= 0 — без истечения).
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete — удалить ключ; удаление отсутствующего ключа — не ошибка.
	Delete(ctx context.Context, key string) error

	// DeleteByPrefix — удалить все ключи с данным префиксом; идемпотентно.
	DeleteByPrefix(ctx context.Context, prefix string) error

	// Exists — есть ли живой (неистёкший) ключ.
	Exists(ctx context.Context, key string) (bool, error)
}
