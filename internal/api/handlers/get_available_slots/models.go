package get_available_slots

import (
	"time"

	getAvailableSlots "github.com/sgasoft/SGA-VisitService/internal/usecase/get_available_slots"
)

// SlotResponse доступный слот в HTTP ответе
type SlotResponse struct {
	ID      int64  `json:"id"`
	AgentID int64  `json:"agentId"`
	StartAt string `json:"startAt"` // RFC3339, UTC
	EndAt   string `json:"endAt"`   // RFC3339, UTC

	LocalDate      string `json:"localDate"` // YYYY-MM-DD
	LocalStartTime string `json:"localStartTime"`
	LocalEndTime   string `json:"localEndTime"`

	Label string `json:"label"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	PropertyID int64          `json:"propertyId"`
	Timezone   string         `json:"timezone"`
	Slots      []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			ID:             slot.ID,
			AgentID:        slot.AgentID,
			StartAt:        slot.StartAt.Format(time.RFC3339),
			EndAt:          slot.EndAt.Format(time.RFC3339),
			LocalDate:      slot.LocalDate,
			LocalStartTime: slot.LocalStartTime.String(),
			LocalEndTime:   slot.LocalEndTime.String(),
			Label:          slot.Label,
		}
	}

	return &AvailableSlotsResponse{
		PropertyID: resp.PropertyID,
		Timezone:   resp.Timezone,
		Slots:      slots,
	}
}
