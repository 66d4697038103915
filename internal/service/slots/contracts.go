package slots

import (
	"context"

	"github.com/sgasoft/SGA-VisitService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Create(ctx context.Context, s *domain.VisitSlot) (*domain.VisitSlot, error)
	GetByID(ctx context.Context, id int64) (*domain.VisitSlot, error)
	ListByProperty(ctx context.Context, propertyID int64) ([]*domain.VisitSlot, error)
	ListByAgent(ctx context.Context, agentID int64) ([]*domain.VisitSlot, error)
	UpdateState(ctx context.Context, id int64, state domain.SlotState) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
