package ports

import (
	"context"

	"github.com/Gunvolt24/intershop/internal/domain"
)

// ItemValidator — валидация товара из внешнего фида/события каталога.
type ItemValidator interface {
	Validate(ctx context.Context, item *domain.Item) error
}
