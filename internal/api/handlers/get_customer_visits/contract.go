package get_customer_visits

import (
	"context"

	"github.com/sgasoft/SGA-VisitService/internal/service/visits/models"
)

type VisitService interface {
	GetCustomerVisits(ctx context.Context, customerID int64) (*models.VisitListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
