package cancel_visits

import (
	"errors"

	cancelVisit "github.com/sgasoft/SGA-VisitService/internal/usecase/cancel_visit"
)

const (
	msgVisitNotFound    = "визит не найден"
	msgAlreadyCancelled = "визит уже отменен"
	msgInvalidState     = "визит нельзя отменить из текущего состояния"
	msgInternalError    = "внутренняя ошибка"
)

// CancelVisitsRequest HTTP request model
type CancelVisitsRequest struct {
	VisitIDs []int64 `json:"visitIds"`
}

// VisitResult результат обработки одного визита
type VisitResult struct {
	VisitID        int64  `json:"visitId"`
	Cancelled      bool   `json:"cancelled"`
	ReleasedSlotID int64  `json:"releasedSlotId,omitempty"`
	Error          string `json:"error,omitempty"`
}

// CancelVisitsResponse HTTP response model
type CancelVisitsResponse struct {
	Results []VisitResult `json:"results"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelVisit.Response) *CancelVisitsResponse {
	results := make([]VisitResult, len(resp.Results))
	for i, result := range resp.Results {
		results[i] = VisitResult{
			VisitID:        result.VisitID,
			Cancelled:      result.Cancelled,
			ReleasedSlotID: result.ReleasedSlotID,
			Error:          translateError(result.Err),
		}
	}
	return &CancelVisitsResponse{Results: results}
}

// translateError переводит ошибку обработки визита в сообщение
func translateError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, cancelVisit.ErrVisitNotFound):
		return msgVisitNotFound
	case errors.Is(err, cancelVisit.ErrAlreadyCancelled):
		return msgAlreadyCancelled
	case errors.Is(err, cancelVisit.ErrInvalidState):
		return msgInvalidState
	default:
		return msgInternalError
	}
}
