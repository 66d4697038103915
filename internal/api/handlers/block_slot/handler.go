package block_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sgasoft/SGA-VisitService/internal/api/handlers"
	"github.com/sgasoft/SGA-VisitService/internal/service/slots"
)

const (
	msgInvalidSlotID = "некорректный ID слота"
	msgNotFound      = "слот не найден"
	msgCannotBlock   = "заблокировать можно только свободный слот"
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

// Handle PATCH /api/v1/slots/{slotId}/block
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := strconv.ParseInt(vars["slotId"], 10, 64)
	if err != nil || slotID <= 0 {
		h.logger.Warn("PATCH /slots/{id}/block - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	if err := h.service.Block(r.Context(), slotID); err != nil {
		switch {
		case errors.Is(err, slots.ErrSlotNotFound):
			h.logger.Warn("PATCH /slots/{id}/block - Slot not found: slot_id=%d", slotID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, slots.ErrCannotBlock):
			h.logger.Warn("PATCH /slots/{id}/block - Slot cannot be blocked: slot_id=%d", slotID)
			handlers.RespondError(w, http.StatusConflict, msgCannotBlock)

		default:
			h.logger.Error("PATCH /slots/{id}/block - Failed to block slot: slot_id=%d, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /slots/{id}/block - Slot blocked successfully: slot_id=%d", slotID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
