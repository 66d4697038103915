package get_available_slots

import (
	"context"

	"github.com/sgasoft/SGA-VisitService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	// ListAvailableByProperty возвращает доступные слоты недвижимости,
	// отсортированные по времени начала
	ListAvailableByProperty(ctx context.Context, propertyID int64) ([]*domain.VisitSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
