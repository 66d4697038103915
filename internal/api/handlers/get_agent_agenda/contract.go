package get_agent_agenda

import (
	"context"

	"github.com/sgasoft/SGA-VisitService/internal/service/visits/models"
)

type VisitService interface {
	GetAgentAgenda(ctx context.Context, req *models.GetAgentAgendaRequest) (*models.VisitListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
