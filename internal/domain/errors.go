package domain

import "errors"

// Sentinel-ошибки доменного слоя. «Не найдено» — отдельный исход,
// который вызывающая сторона отличает от ошибки хранилища через errors.Is.
var (
	ErrItemNotFound  = errors.New("item not found")
	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyCart     = errors.New("cart is empty")
)
