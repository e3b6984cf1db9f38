package redis

import (
	"context"
	"errors"
	"time"

	"github.com/Gunvolt24/intershop/internal/ports"
	"github.com/redis/go-redis/v9"
)

// Проверка, что Store удовлетворяет интерфейсу CacheStore.
var _ ports.CacheStore = (*Store)(nil)

// размер пачки ключей для SCAN при чистке по префиксу
const scanCount = 256

// Store — реализация CacheStore на Redis. TTL выставляется на запись,
// чистка по префиксу — курсорным SCAN + DEL (KEYS не используем).
type Store struct {
	client *redis.Client
}

// NewStore — конструктор с подключением по адресу.
func NewStore(addr, password string, db int) *Store {
	return &Store{client: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

// NewStoreFromClient — конструктор поверх готового клиента (тесты, пулы).
func NewStoreFromClient(client *redis.Client) *Store { return &Store{client: client} }

// Ping — fail-fast проверка соединения при старте.
func (s *Store) Ping(ctx context.Context) error { return s.client.Ping(ctx).Err() }

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl < 0 {
		ttl = 0 // redis: 0 = без истечения
	}
	return s.client.Set(ctx, key, value, ttl).Err()
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

func (s *Store) DeleteByPrefix(ctx context.Context, prefix string) error {
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, prefix+"*", scanCount).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}

func (s *Store) Exists(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Close — закрывает клиент. Вызывается при остановке приложения.
func (s *Store) Close() error { return s.client.Close() }
