package create_visit

import "errors"

var (
	// ErrVetNotFound возвращается, когда ветеринар не найден
	ErrVetNotFound = errors.New("create_visit: vet not found")

	// ErrPetNotFound возвращается, когда питомец не найден
	ErrPetNotFound = errors.New("create_visit: pet not found")

	// ErrVetUnavailable возвращается, когда интервал конфликтует с расписанием
	// ветеринара - выходит за рабочие часы или пересекается с его визитом
	ErrVetUnavailable = errors.New("create_visit: vet is unavailable in the requested interval")

	// ErrNoRoomAvailable возвращается, когда все кабинеты заняты в интервале
	ErrNoRoomAvailable = errors.New("create_visit: no treatment room available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_visit: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_visit: internal error")
)
