package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidEvent — событие каталога не распознано. Потребитель Kafka
// отличает его от ошибок кэша: кривое событие коммитится и пропускается,
// сбой кэша — повод для ретрая.
var ErrInvalidEvent = errors.New("invalid catalog event")

// Типы событий каталога, публикуемых внешним редактором.
const (
	eventItemUpdated   = "item_updated"
	eventItemDeleted   = "item_deleted"
	eventCatalogReload = "catalog_reloaded"
)

// catalogEvent — конверт события в топике каталога.
type catalogEvent struct {
	Type   string `json:"type"`
	ItemID int64  `json:"item_id,omitempty"`
}

// ApplyCatalogEvent — применяет событие каталога к кэшу.
// item_updated/item_deleted точечно сносят карточку товара и все страницы
// поиска (товар мог уйти из любой выдачи); catalog_reloaded сносит всё.
func (s *ItemService) ApplyCatalogEvent(ctx context.Context, raw []byte) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()

	var ev catalogEvent
	if err := dec.Decode(&ev); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}

	switch ev.Type {
	case eventItemUpdated, eventItemDeleted:
		if ev.ItemID <= 0 {
			return fmt.Errorf("%w: %s without item_id", ErrInvalidEvent, ev.Type)
		}
		if err := s.InvalidateItem(ctx, ev.ItemID); err != nil {
			return fmt.Errorf("invalidate item %d: %w", ev.ItemID, err)
		}
		if err := s.InvalidateSearch(ctx); err != nil {
			return fmt.Errorf("invalidate search: %w", err)
		}
		return nil
	case eventCatalogReload:
		return s.InvalidateAll(ctx)
	default:
		return fmt.Errorf("%w: unknown type %q", ErrInvalidEvent, ev.Type)
	}
}
