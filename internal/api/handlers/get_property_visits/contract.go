package get_property_visits

import (
	"context"

	"github.com/sgasoft/SGA-VisitService/internal/service/visits/models"
)

type VisitService interface {
	GetPropertyVisits(ctx context.Context, propertyID int64) (*models.VisitListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
