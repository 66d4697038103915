package get_property_visits

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sgasoft/SGA-VisitService/internal/api/handlers"
	"github.com/sgasoft/SGA-VisitService/internal/service/visits"
)

const msgInvalidPropertyID = "некорректный ID объекта недвижимости"

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

// Handle GET /api/v1/properties/{propertyId}/visits
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	propertyID, err := strconv.ParseInt(vars["propertyId"], 10, 64)
	if err != nil || propertyID <= 0 {
		h.logger.Warn("GET /properties/{id}/visits - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	visitList, err := h.service.GetPropertyVisits(r.Context(), propertyID)
	if err != nil {
		switch {
		case errors.Is(err, visits.ErrInvalidInput):
			h.logger.Warn("GET /properties/{id}/visits - Invalid input: property_id=%d", propertyID)
			handlers.RespondBadRequest(w, msgInvalidPropertyID)

		default:
			h.logger.Error("GET /properties/{id}/visits - Failed to list visits: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /properties/{id}/visits - %d visit(s) listed: property_id=%d",
		len(visitList.Visits), propertyID)
	handlers.RespondJSON(w, http.StatusOK, visitList)
}
