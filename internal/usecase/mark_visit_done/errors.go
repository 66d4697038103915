package mark_visit_done

import "errors"

var (
	// ErrNoVisitIDs возвращается, когда пакет операции пуст
	ErrNoVisitIDs = errors.New("mark_visit_done: at least one visit id is required")

	// ErrVisitNotFound возвращается, когда визит не найден
	ErrVisitNotFound = errors.New("mark_visit_done: visit not found")

	// ErrInvalidState возвращается, когда визит не в состоянии confirmed
	// Отметить состоявшимся можно только подтвержденный визит
	ErrInvalidState = errors.New("mark_visit_done: only confirmed visits can be marked done")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("mark_visit_done: internal error")
)
