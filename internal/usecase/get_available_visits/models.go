package get_available_visits

import "time"

// Request модель запроса на получение свободных интервалов
type Request struct {
	StartDateTime time.Time // Начало интервала поиска (включительно)
	EndDateTime   time.Time // Конец интервала поиска (не включительно)
	VetIDs        []int64   // Фильтр по ветеринарам (пустой слайс - все)
}

// Response модель ответа со списком свободных интервалов
type Response struct {
	StartDateTime time.Time
	EndDateTime   time.Time
	Slots         []Slot
}

// Slot свободный интервал и ветеринары, доступные на весь интервал
// Слоты с одинаковыми границами у разных ветеринаров объединяются
type Slot struct {
	StartDateTime time.Time
	EndDateTime   time.Time
	VetIDs        []int64
}
