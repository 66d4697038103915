package get_agent_agenda

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sgasoft/SGA-VisitService/internal/api/handlers"
	"github.com/sgasoft/SGA-VisitService/internal/service/visits"
	"github.com/sgasoft/SGA-VisitService/internal/service/visits/models"
)

const (
	msgInvalidAgentID = "некорректный ID агента"
	msgInvalidState   = "некорректное состояние визита"
)

type Handler struct {
	service VisitService
	logger  Logger
}

func NewHandler(service VisitService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/agents/{agentId}/visits
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	agentID, err := strconv.ParseInt(vars["agentId"], 10, 64)
	if err != nil || agentID <= 0 {
		h.logger.Warn("GET /agents/{id}/visits - Invalid agent ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAgentID)
		return
	}

	req := &models.GetAgentAgendaRequest{AgentID: agentID}
	if state := r.URL.Query().Get("state"); state != "" {
		req.State = &state
	}

	agenda, err := h.service.GetAgentAgenda(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, visits.ErrInvalidInput):
			h.logger.Warn("GET /agents/{id}/visits - Invalid input: agent_id=%d", agentID)
			handlers.RespondBadRequest(w, msgInvalidState)

		default:
			h.logger.Error("GET /agents/{id}/visits - Failed to get agenda: agent_id=%d, error=%v", agentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /agents/{id}/visits - %d visit(s) listed: agent_id=%d", len(agenda.Visits), agentID)
	handlers.RespondJSON(w, http.StatusOK, agenda)
}
