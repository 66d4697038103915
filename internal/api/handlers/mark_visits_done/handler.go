package mark_visits_done

import (
	"errors"
	"net/http"

	"github.com/sgasoft/SGA-VisitService/internal/api/handlers"
	markVisitDone "github.com/sgasoft/SGA-VisitService/internal/usecase/mark_visit_done"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNoVisitIDs         = "не указаны ID визитов"
)

type Handler struct {
	useCase MarkVisitDoneUseCase
	logger  Logger
}

func NewHandler(useCase MarkVisitDoneUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/visits/done
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req MarkVisitsDoneRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /visits/done - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &markVisitDone.Request{VisitIDs: req.VisitIDs})
	if err != nil {
		switch {
		case errors.Is(err, markVisitDone.ErrNoVisitIDs):
			h.logger.Warn("POST /visits/done - Empty visit id list")
			handlers.RespondBadRequest(w, msgNoVisitIDs)

		default:
			h.logger.Error("POST /visits/done - Failed to mark visits done: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if result.HasFailures() {
		status = http.StatusMultiStatus
		h.logger.Warn("POST /visits/done - Batch finished with failures: total=%d", len(result.Results))
	} else {
		h.logger.Info("POST /visits/done - Batch marked done: total=%d", len(result.Results))
	}

	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
