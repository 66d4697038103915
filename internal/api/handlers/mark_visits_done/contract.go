package mark_visits_done

import (
	"context"

	markVisitDone "github.com/sgasoft/SGA-VisitService/internal/usecase/mark_visit_done"
)

type MarkVisitDoneUseCase interface {
	Execute(ctx context.Context, req *markVisitDone.Request) (*markVisitDone.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
