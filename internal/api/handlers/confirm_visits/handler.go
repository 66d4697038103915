package confirm_visits

import (
	"errors"
	"net/http"

	"github.com/sgasoft/SGA-VisitService/internal/api/handlers"
	confirmVisit "github.com/sgasoft/SGA-VisitService/internal/usecase/confirm_visit"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNoVisitIDs         = "не указаны ID визитов"
)

type Handler struct {
	useCase ConfirmVisitUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmVisitUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/visits/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConfirmVisitsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /visits/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmVisit.Request{VisitIDs: req.VisitIDs})
	if err != nil {
		switch {
		case errors.Is(err, confirmVisit.ErrNoVisitIDs):
			h.logger.Warn("POST /visits/confirm - Empty visit id list")
			handlers.RespondBadRequest(w, msgNoVisitIDs)

		default:
			h.logger.Error("POST /visits/confirm - Failed to confirm visits: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Частичные сбои не прячутся за общим статусом: клиент получает
	// результат по каждому визиту
	status := http.StatusOK
	if result.HasFailures() {
		status = http.StatusMultiStatus
		h.logger.Warn("POST /visits/confirm - Batch finished with failures: total=%d", len(result.Results))
	} else {
		h.logger.Info("POST /visits/confirm - Batch confirmed: total=%d", len(result.Results))
	}

	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
