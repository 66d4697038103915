package models

import (
	"errors"
	"time"

	"github.com/sgasoft/SGA-VisitService/internal/domain"
)

var (
	// ErrInvalidState возвращается при некорректном состоянии визита
	ErrInvalidState = errors.New("invalid visit state")
)

// GetAgentAgendaRequest запрос расписания агента
type GetAgentAgendaRequest struct {
	AgentID int64   `json:"agentId"`
	State   *string `json:"state,omitempty"`
}

// VisitResponse визит в ответе сервиса
type VisitResponse struct {
	ID         int64     `json:"id"`
	PropertyID int64     `json:"propertyId"`
	AgentID    int64     `json:"agentId"`
	CustomerID int64     `json:"customerId"`
	SlotID     int64     `json:"slotId"`
	StartAt    time.Time `json:"startAt"`
	EndAt      time.Time `json:"endAt"`
	State      string    `json:"state"`
	Notes      *string   `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// VisitListResponse список визитов
type VisitListResponse struct {
	Visits []*VisitResponse `json:"visits"`
}

// FromDomainVisit конвертирует доменный визит в ответ сервиса
func FromDomainVisit(v *domain.Visit) *VisitResponse {
	return &VisitResponse{
		ID:         v.ID,
		PropertyID: v.PropertyID,
		AgentID:    v.AgentID,
		CustomerID: v.CustomerID,
		SlotID:     v.SlotID,
		StartAt:    v.StartAt,
		EndAt:      v.EndAt,
		State:      string(v.State),
		Notes:      v.Notes,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

// FromDomainVisitList конвертирует список доменных визитов
func FromDomainVisitList(visits []*domain.Visit) *VisitListResponse {
	result := make([]*VisitResponse, len(visits))
	for i, v := range visits {
		result[i] = FromDomainVisit(v)
	}
	return &VisitListResponse{Visits: result}
}

// ToDomainVisitState валидирует и конвертирует строку состояния
func ToDomainVisitState(s string) (domain.VisitState, error) {
	switch domain.VisitState(s) {
	case domain.VisitRequested, domain.VisitConfirmed, domain.VisitCancelled, domain.VisitDone:
		return domain.VisitState(s), nil
	default:
		return "", ErrInvalidState
	}
}
