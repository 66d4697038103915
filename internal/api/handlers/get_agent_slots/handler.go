package get_agent_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sgasoft/SGA-VisitService/internal/api/handlers"
	"github.com/sgasoft/SGA-VisitService/internal/service/slots"
)

const msgInvalidAgentID = "некорректный ID агента"

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

// Handle GET /api/v1/agents/{agentId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	agentID, err := strconv.ParseInt(vars["agentId"], 10, 64)
	if err != nil || agentID <= 0 {
		h.logger.Warn("GET /agents/{id}/slots - Invalid agent ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAgentID)
		return
	}

	slotList, err := h.service.ListByAgent(r.Context(), agentID)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("GET /agents/{id}/slots - Invalid input: agent_id=%d", agentID)
			handlers.RespondBadRequest(w, msgInvalidAgentID)

		default:
			h.logger.Error("GET /agents/{id}/slots - Failed to list slots: agent_id=%d, error=%v", agentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /agents/{id}/slots - %d slot(s) listed: agent_id=%d", len(slotList.Slots), agentID)
	handlers.RespondJSON(w, http.StatusOK, slotList)
}
