package get_property_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sgasoft/SGA-VisitService/internal/api/handlers"
	"github.com/sgasoft/SGA-VisitService/internal/service/slots"
)

const msgInvalidPropertyID = "некорректный ID объекта недвижимости"

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

// Handle GET /api/v1/properties/{propertyId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	propertyID, err := strconv.ParseInt(vars["propertyId"], 10, 64)
	if err != nil || propertyID <= 0 {
		h.logger.Warn("GET /properties/{id}/slots - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	slotList, err := h.service.ListByProperty(r.Context(), propertyID)
	if err != nil {
		switch {
		case errors.Is(err, slots.ErrInvalidInput):
			h.logger.Warn("GET /properties/{id}/slots - Invalid input: property_id=%d", propertyID)
			handlers.RespondBadRequest(w, msgInvalidPropertyID)

		default:
			h.logger.Error("GET /properties/{id}/slots - Failed to list slots: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /properties/{id}/slots - %d slot(s) listed: property_id=%d",
		len(slotList.Slots), propertyID)
	handlers.RespondJSON(w, http.StatusOK, slotList)
}
