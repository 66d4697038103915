package cancel_visits

import (
	"errors"
	"net/http"

	"github.com/sgasoft/SGA-VisitService/internal/api/handlers"
	cancelVisit "github.com/sgasoft/SGA-VisitService/internal/usecase/cancel_visit"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNoVisitIDs         = "не указаны ID визитов"
)

type Handler struct {
	useCase CancelVisitUseCase
	logger  Logger
}

func NewHandler(useCase CancelVisitUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/visits/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CancelVisitsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /visits/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelVisit.Request{VisitIDs: req.VisitIDs})
	if err != nil {
		switch {
		case errors.Is(err, cancelVisit.ErrNoVisitIDs):
			h.logger.Warn("POST /visits/cancel - Empty visit id list")
			handlers.RespondBadRequest(w, msgNoVisitIDs)

		default:
			h.logger.Error("POST /visits/cancel - Failed to cancel visits: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if result.HasFailures() {
		status = http.StatusMultiStatus
		h.logger.Warn("POST /visits/cancel - Batch finished with failures: total=%d", len(result.Results))
	} else {
		h.logger.Info("POST /visits/cancel - Batch cancelled: total=%d", len(result.Results))
	}

	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
