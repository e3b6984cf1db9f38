package domain

import "time"

// StatusProcessing — статус нового заказа. Другие переходы статуса
// ядром не выполняются.
const StatusProcessing = "PROCESSING"

// Order — заголовок заказа. Items заполняются при чтении/оформлении,
// итоговая сумма не хранится и считается по строкам.
type Order struct {
	ID        int64       `json:"id"`
	UserID    int64       `json:"user_id"`
	Status    string      `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	Items     []OrderItem `json:"items"`
}

// TotalSum — сумма заказа по строкам (цена зафиксирована на момент оформления).
func (o *Order) TotalSum() float64 {
	var sum float64
	for _, it := range o.Items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

// OrderItem — строка заказа. Price — копия цены товара на момент оформления:
// исторические заказы не меняются при изменении каталога.
type OrderItem struct {
	ID       int64   `json:"id"`
	OrderID  int64   `json:"order_id"`
	ItemID   int64   `json:"item_id"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`

	// Item — товар каталога, подгружается при чтении для витрины.
	Item *Item `json:"item,omitempty"`
}
