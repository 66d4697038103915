package confirm_visit

import (
	"context"

	"github.com/sgasoft/SGA-VisitService/internal/domain"
)

// VisitRepository интерфейс репозитория визитов
type VisitRepository interface {
	// GetByID получает визит; внутри транзакции блокирует строку
	GetByID(ctx context.Context, id int64) (*domain.Visit, error)
	UpdateStatus(ctx context.Context, id int64, state domain.VisitState) error
}

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// GetByID получает слот; внутри транзакции блокирует строку
	GetByID(ctx context.Context, id int64) (*domain.VisitSlot, error)
	Create(ctx context.Context, s *domain.VisitSlot) (*domain.VisitSlot, error)
	UpdateStateFrom(ctx context.Context, id int64, from []domain.SlotState, to domain.SlotState) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
