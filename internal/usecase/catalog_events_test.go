package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Gunvolt24/intershop/internal/ports/mocks"
	"github.com/Gunvolt24/intershop/internal/usecase"
	"github.com/golang/mock/gomock"
)

func newEventService(t *testing.T) (*usecase.ItemService, *mocks.MockCacheStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockCacheStore(ctrl)
	svc := usecase.NewItemService(mocks.NewMockItemRepository(ctrl), cache, noopLogger{}, time.Minute)
	return svc, cache
}

func TestApplyCatalogEvent_ItemUpdated(t *testing.T) {
	svc, cache := newEventService(t)

	cache.EXPECT().Delete(gomock.Any(), "item:5").Return(nil)
	cache.EXPECT().DeleteByPrefix(gomock.Any(), "search:").Return(nil)

	err := svc.ApplyCatalogEvent(context.Background(), []byte(`{"type":"item_updated","item_id":5}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApplyCatalogEvent_CatalogReloaded(t *testing.T) {
	svc, cache := newEventService(t)

	cache.EXPECT().DeleteByPrefix(gomock.Any(), "item:").Return(nil)
	cache.EXPECT().DeleteByPrefix(gomock.Any(), "search:").Return(nil)

	err := svc.ApplyCatalogEvent(context.Background(), []byte(`{"type":"catalog_reloaded"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApplyCatalogEvent_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"broken_json", `{`},
		{"unknown_type", `{"type":"warehouse_moved"}`},
		{"unknown_field", `{"type":"item_updated","item_id":5,"extra":1}`},
		{"missing_item_id", `{"type":"item_deleted"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newEventService(t)

			err := svc.ApplyCatalogEvent(context.Background(), []byte(tt.raw))
			if !errors.Is(err, usecase.ErrInvalidEvent) {
				t.Fatalf("want ErrInvalidEvent, got %v", err)
			}
		})
	}
}

func TestApplyCatalogEvent_CacheErrorIsNotInvalid(t *testing.T) {
	svc, cache := newEventService(t)

	cacheErr := errors.New("redis down")
	cache.EXPECT().Delete(gomock.Any(), "item:5").Return(cacheErr)

	err := svc.ApplyCatalogEvent(context.Background(), []byte(`{"type":"item_deleted","item_id":5}`))
	if !errors.Is(err, cacheErr) || errors.Is(err, usecase.ErrInvalidEvent) {
		t.Fatalf("cache error must propagate as retryable, got %v", err)
	}
}
