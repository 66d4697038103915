package confirm_visit

import "errors"

var (
	// ErrNoVisitIDs возвращается, когда пакет операции пуст
	ErrNoVisitIDs = errors.New("confirm_visit: at least one visit id is required")

	// ErrVisitNotFound возвращается, когда визит не найден
	ErrVisitNotFound = errors.New("confirm_visit: visit not found")

	// ErrInvalidState возвращается при попытке подтвердить отмененный
	// или состоявшийся визит
	ErrInvalidState = errors.New("confirm_visit: visit cannot be confirmed from its current state")

	// ErrSlotConflict возвращается, когда конкурирующее подтверждение
	// успело перевести слот в другое состояние
	ErrSlotConflict = errors.New("confirm_visit: slot state changed concurrently")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_visit: internal error")
)
