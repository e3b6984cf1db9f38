package domain

// SortOrder — порядок выдачи каталога.
type SortOrder string

const (
	SortDefault SortOrder = ""      // по id (возрастание)
	SortAlpha   SortOrder = "ALPHA" // по названию
	SortPrice   SortOrder = "PRICE" // по цене
)

// ParseSort — приводит произвольную строку к каноничному порядку.
// Неизвестные значения трактуются как SortDefault, чтобы эквивалентные
// запросы попадали в одну запись кэша.
func ParseSort(s string) SortOrder {
	switch SortOrder(s) {
	case SortAlpha:
		return SortAlpha
	case SortPrice:
		return SortPrice
	default:
		return SortDefault
	}
}

// Page — страница результата поиска. Структура сериализуется в кэш как есть:
// items + total + номер/размер страницы достаточно, чтобы восстановить
// страницу без повторного запроса к хранилищу.
type Page struct {
	Items         []Item `json:"items"`
	TotalElements int64  `json:"total_elements"`
	PageNumber    int    `json:"page_number"` // 1-based
	PageSize      int    `json:"page_size"`
}

// TotalPages — количество страниц при текущем размере.
func (p *Page) TotalPages() int {
	if p.PageSize <= 0 {
		return 0
	}
	return int((p.TotalElements + int64(p.PageSize) - 1) / int64(p.PageSize))
}

// HasNext — есть ли страница после текущей.
func (p *Page) HasNext() bool { return p.PageNumber < p.TotalPages() }
