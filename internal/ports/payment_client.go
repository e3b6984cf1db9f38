package ports

import "context"

// PaymentClient — внешний платёжный сервис. Ядро знает только булев исход:
// хватило средств или нет; детали проведения платежа — вне ядра.
type PaymentClient interface {
	Process(ctx context.Context, userID int64, amount float64) (bool, error)
}
