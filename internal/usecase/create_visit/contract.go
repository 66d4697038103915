package create_visit

import (
	"context"
	"time"

	"github.com/sgasoft/SGA-VisitService/internal/domain"
	"github.com/sgasoft/SGA-VisitService/internal/integrations/contactservice"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// GetByID получает слот; внутри транзакции блокирует строку
	GetByID(ctx context.Context, id int64) (*domain.VisitSlot, error)
}

// VisitRepository интерфейс репозитория визитов
type VisitRepository interface {
	Create(ctx context.Context, v *domain.Visit) (*domain.Visit, error)
	ListOverlappingByAgent(ctx context.Context, agentID int64, startAt, endAt time.Time, states []domain.VisitState) ([]*domain.Visit, error)
}

// ContactServiceClient интерфейс клиента для ContactService
type ContactServiceClient interface {
	EnsureContact(ctx context.Context, req *contactservice.EnsureContactRequest) (*contactservice.Contact, error)
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
