package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrUnknownTimezone возвращается, когда таймзона сессии не распознана
	ErrUnknownTimezone = errors.New("get_available_slots: unknown timezone")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
