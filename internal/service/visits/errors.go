package visits

import "errors"

var (
	// ErrVisitNotFound возвращается, когда визит не найден
	ErrVisitNotFound = errors.New("visit not found")

	// ErrInvalidTransition возвращается при попытке финализировать визит
	// в терминальном статусе
	ErrInvalidTransition = errors.New("visit is already finalized")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
