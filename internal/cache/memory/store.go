package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/Gunvolt24/intershop/internal/ports"
	"github.com/Gunvolt24/intershop/pkg/metrics"
)

// Проверка, что Store удовлетворяет интерфейсу CacheStore.
var _ ports.CacheStore = (*Store)(nil)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Store — in-memory реализация CacheStore: карта под мьютексом, TTL на запись.
// Используется в тестах и как fallback, когда Redis выключен конфигурацией.
// Истёкшие записи трактуются как отсутствующие и удаляются при обращении.
type Store struct {
	mu   sync.Mutex
	data map[string]entry
}

func NewStore() *Store {
	return &Store{data: make(map[string]entry)}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	if isExpired(ent, now) {
		delete(s.data, key)
		metrics.CacheOps.WithLabelValues("expired").Inc()
		metrics.CacheSize.Set(float64(len(s.data)))
		return nil, false, nil
	}
	// копия, чтобы вызывающий не менял данные внутри кэша
	return append([]byte(nil), ent.value...), true, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = entry{
		value:     append([]byte(nil), value...),
		expiresAt: expiryFrom(time.Now(), ttl),
	}
	metrics.CacheSize.Set(float64(len(s.data)))
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	metrics.CacheSize.Set(float64(len(s.data)))
	return nil
}

func (s *Store) DeleteByPrefix(_ context.Context, prefix string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.data {
		if strings.HasPrefix(key, prefix) {
			delete(s.data, key)
		}
	}
	metrics.CacheSize.Set(float64(len(s.data)))
	return nil
}

func (s *Store) Exists(_ context.Context, key string) (bool, error) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.data[key]
	if !ok {
		return false, nil
	}
	if isExpired(ent, now) {
		delete(s.data, key)
		return false, nil
	}
	return true, nil
}

// Len — количество живых записей (для тестов и метрик).
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}

// isExpired — проверяет истечение TTL (нулевой expiresAt — без истечения).
func isExpired(ent entry, now time.Time) bool {
	return !ent.expiresAt.IsZero() && now.After(ent.expiresAt)
}

// expiryFrom — вычисляет момент истечения для текущего времени.
func expiryFrom(now time.Time, ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return now.Add(ttl)
}
