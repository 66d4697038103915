package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sgasoft/SGA-VisitService/internal/api/handlers"
	getAvailableSlots "github.com/sgasoft/SGA-VisitService/internal/usecase/get_available_slots"
)

const (
	msgInvalidPropertyID = "некорректный ID объекта недвижимости"
	msgUnknownTimezone   = "неизвестная таймзона сессии"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/available-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	propertyID, err := strconv.ParseInt(vars["propertyId"], 10, 64)
	if err != nil || propertyID <= 0 {
		h.logger.Warn("GET /properties/{id}/available-slots - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	req := &getAvailableSlots.Request{
		PropertyID: propertyID,
		Timezone:   r.URL.Query().Get("timezone"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrUnknownTimezone):
			h.logger.Warn("GET /properties/{id}/available-slots - Unknown timezone: property_id=%d, tz=%s",
				propertyID, req.Timezone)
			handlers.RespondBadRequest(w, msgUnknownTimezone)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /properties/{id}/available-slots - Invalid input: property_id=%d", propertyID)
			handlers.RespondBadRequest(w, msgInvalidPropertyID)

		default:
			h.logger.Error("GET /properties/{id}/available-slots - Failed to list slots: property_id=%d, error=%v",
				propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /properties/{id}/available-slots - %d slot(s) listed: property_id=%d",
		len(result.Slots), propertyID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
