package request_visit

import (
	"time"

	createVisit "github.com/sgasoft/SGA-VisitService/internal/usecase/create_visit"
	"github.com/sgasoft/SGA-VisitService/pkg/types"
)

// CustomerInput контактные данные анонимного посетителя портала
type CustomerInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// RequestVisitRequest HTTP request model
type RequestVisitRequest struct {
	SlotID     int64          `json:"slotId"`
	AgentID    int64          `json:"agentId,omitempty"`
	CustomerID int64          `json:"customerId,omitempty"`
	Customer   *CustomerInput `json:"customer,omitempty"`
	Timezone   string         `json:"timezone,omitempty"`
	StartTime  string         `json:"startTime"`         // "10:00"
	EndTime    string         `json:"endTime,omitempty"` // пусто = предложить час
	Notes      *string        `json:"notes,omitempty"`
}

// VisitResponse HTTP response model
type VisitResponse struct {
	ID         int64 `json:"id"`
	PropertyID int64 `json:"propertyId"`
	AgentID    int64 `json:"agentId"`
	CustomerID int64 `json:"customerId"`
	SlotID     int64 `json:"slotId"`

	StartAt string `json:"startAt"` // RFC3339, UTC
	EndAt   string `json:"endAt"`   // RFC3339, UTC

	LocalDate      string `json:"localDate"` // YYYY-MM-DD
	LocalStartTime string `json:"localStartTime"`
	LocalEndTime   string `json:"localEndTime"`
	Timezone       string `json:"timezone"`

	State string  `json:"state"`
	Notes *string `json:"notes,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Времена не парсятся здесь: use case сам валидирует формат HH:MM и
// собирает все нарушения в один список
func (r *RequestVisitRequest) ToUseCaseRequest(propertyID int64) *createVisit.Request {
	req := &createVisit.Request{
		PropertyID: propertyID,
		SlotID:     r.SlotID,
		AgentID:    r.AgentID,
		CustomerID: r.CustomerID,
		Timezone:   r.Timezone,
		StartTime:  types.TimeString(r.StartTime),
		EndTime:    types.TimeString(r.EndTime),
		Notes:      r.Notes,
	}

	if r.Customer != nil {
		req.Customer = &createVisit.CustomerInput{
			Name:  r.Customer.Name,
			Email: r.Customer.Email,
			Phone: r.Customer.Phone,
		}
	}

	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createVisit.Response) *VisitResponse {
	return &VisitResponse{
		ID:             resp.ID,
		PropertyID:     resp.PropertyID,
		AgentID:        resp.AgentID,
		CustomerID:     resp.CustomerID,
		SlotID:         resp.SlotID,
		StartAt:        resp.StartAt.Format(time.RFC3339),
		EndAt:          resp.EndAt.Format(time.RFC3339),
		LocalDate:      resp.LocalDate,
		LocalStartTime: resp.LocalStartTime.String(),
		LocalEndTime:   resp.LocalEndTime.String(),
		Timezone:       resp.Timezone,
		State:          resp.State,
		Notes:          resp.Notes,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
