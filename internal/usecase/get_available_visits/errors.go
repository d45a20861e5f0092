package get_available_visits

import "errors"

var (
	// ErrVetNotFound возвращается, когда ветеринар из фильтра не найден
	ErrVetNotFound = errors.New("get_available_visits: vet not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_visits: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_visits: internal error")
)
