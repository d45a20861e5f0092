package clinicservice

import "errors"

var (
	// ErrVetNotFound возвращается, когда ветеринар не найден
	ErrVetNotFound = errors.New("clinicservice client: vet not found")

	// ErrPetNotFound возвращается, когда питомец не найден
	ErrPetNotFound = errors.New("clinicservice client: pet not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("clinicservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("clinicservice client: invalid response")
)
