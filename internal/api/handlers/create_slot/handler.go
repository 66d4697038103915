package create_slot

import (
	"errors"
	"net/http"

	"github.com/sgasoft/SGA-VisitService/internal/api/handlers"
	"github.com/sgasoft/SGA-VisitService/internal/service/slots"
	"github.com/sgasoft/SGA-VisitService/internal/service/slots/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInterval    = "окончание слота должно быть позже начала"
	msgInvalidInput       = "некорректные данные слота"
)

type Handler struct {
	service SlotService
	logger  Logger
}

func NewHandler(service SlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	slot, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInterval):
			h.logger.Warn("POST /slots - Invalid interval: agent_id=%d, property_id=%d", req.AgentID, req.PropertyID)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("POST /slots - Invalid input: agent_id=%d, property_id=%d", req.AgentID, req.PropertyID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /slots - Failed to create slot: agent_id=%d, property_id=%d, error=%v",
				req.AgentID, req.PropertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots - Slot created successfully: slot_id=%d, agent_id=%d, property_id=%d",
		slot.ID, req.AgentID, req.PropertyID)
	handlers.RespondJSON(w, http.StatusCreated, slot)
}
