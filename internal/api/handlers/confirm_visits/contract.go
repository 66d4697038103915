package confirm_visits

import (
	"context"

	confirmVisit "github.com/sgasoft/SGA-VisitService/internal/usecase/confirm_visit"
)

type ConfirmVisitUseCase interface {
	Execute(ctx context.Context, req *confirmVisit.Request) (*confirmVisit.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
