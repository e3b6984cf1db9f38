package validate

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/Gunvolt24/intershop/internal/domain"
	"github.com/Gunvolt24/intershop/internal/ports"
)

// Проверка, что ItemValidator удовлетворяет интерфейсу ItemValidator.
var _ ports.ItemValidator = (*ItemValidator)(nil)

// ErrInvalidItem — базовая (sentinel error) ошибка валидации товара.
var ErrInvalidItem = errors.New("item validation failed")

// ItemValidator — валидация товара из внешнего фида каталога.
// Возвращает ErrInvalidItem (с обёрнутой причиной) при любой проблеме.
type ItemValidator struct{}

// NewItemValidator — конструктор ItemValidator.
func NewItemValidator() *ItemValidator { return &ItemValidator{} }

// Validate — проверяет корректность полей товара.
func (v *ItemValidator) Validate(_ context.Context, item *domain.Item) error {
	if item == nil {
		return fmt.Errorf("%w: товар не может быть nil", ErrInvalidItem)
	}
	if strings.TrimSpace(item.Title) == "" {
		return fmt.Errorf("%w: title обязателен", ErrInvalidItem)
	}
	if item.ID < 0 {
		return fmt.Errorf("%w: id не может быть отрицательным", ErrInvalidItem)
	}
	if math.IsNaN(item.Price) || math.IsInf(item.Price, 0) || item.Price < 0 {
		return fmt.Errorf("%w: price должен быть неотрицательным числом", ErrInvalidItem)
	}
	if item.Stock < 0 {
		return fmt.Errorf("%w: stock не может быть отрицательным", ErrInvalidItem)
	}
	if item.ImgPath != "" && strings.ContainsAny(item.ImgPath, " \t\n") {
		return fmt.Errorf("%w: img_path не должен содержать пробелы", ErrInvalidItem)
	}
	return nil
}
