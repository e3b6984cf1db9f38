package domain

// Item — товар каталога. Ядро никогда не изменяет товар, только читает;
// редактирование каталога выполняет внешний сервис.
type Item struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImgPath     string  `json:"img_path"`
	Stock       int     `json:"stock"`
}

// CartItem — позиция корзины, разрешённая в товар каталога (для витрины).
type CartItem struct {
	Item  Item `json:"item"`
	Count int  `json:"count"`
}

// Subtotal — стоимость позиции.
func (c CartItem) Subtotal() float64 { return c.Item.Price * float64(c.Count) }
