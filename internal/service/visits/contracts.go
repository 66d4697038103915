package visits

import (
	"context"

	"github.com/sgasoft/SGA-VisitService/internal/domain"
)

// VisitRepository интерфейс репозитория визитов
type VisitRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Visit, error)
	ListByProperty(ctx context.Context, propertyID int64) ([]*domain.Visit, error)
	ListByAgent(ctx context.Context, agentID int64, state *domain.VisitState) ([]*domain.Visit, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Visit, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
