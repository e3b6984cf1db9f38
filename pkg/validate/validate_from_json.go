package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/intershop/internal/domain"
	"github.com/Gunvolt24/intershop/internal/ports"
)

// ValidateItemFromJSON — валидация товара из JSON.
// Строгое декодирование: неизвестные поля и хвостовые данные — ошибка.
func ValidateItemFromJSON(ctx context.Context, validator ports.ItemValidator, raw []byte) (*domain.Item, error) {
	var item domain.Item
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&item); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", ErrInvalidItem, err)
	}
	// гарантируем отсутствие данных после объекта
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: invalid json: trailing data", ErrInvalidItem)
	}
	if err := validator.Validate(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}
