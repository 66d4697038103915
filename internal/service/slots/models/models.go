package models

import (
	"time"

	"github.com/sgasoft/SGA-VisitService/internal/domain"
)

// CreateSlotRequest запрос на ручное создание слота доступности
// Времена передаются как UTC-инстансы (back-office формы уже приводят
// локальный ввод к UTC)
type CreateSlotRequest struct {
	AgentID    int64     `json:"agentId"`
	PropertyID int64     `json:"propertyId"`
	StartAt    time.Time `json:"startAt"`
	EndAt      time.Time `json:"endAt"`
}

// SlotResponse слот в ответе сервиса
type SlotResponse struct {
	ID         int64     `json:"id"`
	AgentID    int64     `json:"agentId"`
	PropertyID int64     `json:"propertyId"`
	StartAt    time.Time `json:"startAt"`
	EndAt      time.Time `json:"endAt"`
	State      string    `json:"state"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// SlotListResponse список слотов
type SlotListResponse struct {
	Slots []*SlotResponse `json:"slots"`
}

// FromDomainSlot конвертирует доменный слот в ответ сервиса
func FromDomainSlot(s *domain.VisitSlot) *SlotResponse {
	return &SlotResponse{
		ID:         s.ID,
		AgentID:    s.AgentID,
		PropertyID: s.PropertyID,
		StartAt:    s.StartAt,
		EndAt:      s.EndAt,
		State:      string(s.State),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// FromDomainSlotList конвертирует список доменных слотов
func FromDomainSlotList(slots []*domain.VisitSlot) *SlotListResponse {
	result := make([]*SlotResponse, len(slots))
	for i, s := range slots {
		result[i] = FromDomainSlot(s)
	}
	return &SlotListResponse{Slots: result}
}
