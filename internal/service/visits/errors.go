package visits

import "errors"

var (
	// ErrVisitNotFound возвращается, когда визит не найден
	ErrVisitNotFound = errors.New("visit not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("visits service: internal error")
)
