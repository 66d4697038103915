package get_visit

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sgasoft/SGA-VisitService/internal/api/handlers"
	"github.com/sgasoft/SGA-VisitService/internal/service/visits"
)

const (
	msgInvalidVisitID = "некорректный ID визита"
	msgNotFound       = "визит не найден"
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

// Handle GET /api/v1/visits/{visitId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	visitID, err := strconv.ParseInt(vars["visitId"], 10, 64)
	if err != nil || visitID <= 0 {
		h.logger.Warn("GET /visits/{id} - Invalid visit ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVisitID)
		return
	}

	visit, err := h.service.GetByID(r.Context(), visitID)
	if err != nil {
		switch {
		case errors.Is(err, visits.ErrVisitNotFound):
			h.logger.Warn("GET /visits/{id} - Visit not found: visit_id=%d", visitID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /visits/{id} - Failed to get visit: visit_id=%d, error=%v", visitID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /visits/{id} - Visit retrieved successfully: visit_id=%d", visitID)
	handlers.RespondJSON(w, http.StatusOK, visit)
}
