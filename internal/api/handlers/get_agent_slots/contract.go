package get_agent_slots

import (
	"context"

	"github.com/sgasoft/SGA-VisitService/internal/service/slots/models"
)

type SlotService interface {
	ListByAgent(ctx context.Context, agentID int64) (*models.SlotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
