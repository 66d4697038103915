package slots

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot not found")

	// ErrInvalidInterval возвращается, когда конец слота не позже начала
	ErrInvalidInterval = errors.New("slot end must be after start")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrCannotBlock возвращается при попытке заблокировать занятый слот
	ErrCannotBlock = errors.New("only available or reserved slots can be blocked")

	// ErrCannotUnblock возвращается при попытке разблокировать слот,
	// который не заблокирован
	ErrCannotUnblock = errors.New("only blocked slots can be unblocked")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slots service: internal error")
)
