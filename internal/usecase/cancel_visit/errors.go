package cancel_visit

import "errors"

var (
	// ErrNoVisitIDs возвращается, когда пакет операции пуст
	ErrNoVisitIDs = errors.New("cancel_visit: at least one visit id is required")

	// ErrVisitNotFound возвращается, когда визит не найден
	ErrVisitNotFound = errors.New("cancel_visit: visit not found")

	// ErrAlreadyCancelled возвращается при повторной отмене
	// Повторная отмена - ошибка: иначе каждый вызов создавал бы
	// еще один свободный слот на том же интервале
	ErrAlreadyCancelled = errors.New("cancel_visit: visit is already cancelled")

	// ErrInvalidState возвращается при попытке отменить состоявшийся визит
	ErrInvalidState = errors.New("cancel_visit: visit cannot be cancelled from its current state")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("cancel_visit: internal error")
)
