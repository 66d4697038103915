package confirm_visits

import (
	"errors"

	confirmVisit "github.com/sgasoft/SGA-VisitService/internal/usecase/confirm_visit"
)

const (
	msgVisitNotFound = "визит не найден"
	msgInvalidState  = "визит нельзя подтвердить из текущего состояния"
	msgSlotConflict  = "слот занят конкурирующим подтверждением"
	msgInternalError = "внутренняя ошибка"
)

// ConfirmVisitsRequest HTTP request model
type ConfirmVisitsRequest struct {
	VisitIDs []int64 `json:"visitIds"`
}

// VisitResult результат обработки одного визита
type VisitResult struct {
	VisitID int64  `json:"visitId"`
	Outcome string `json:"outcome"`
	Error   string `json:"error,omitempty"`
}

// ConfirmVisitsResponse HTTP response model
type ConfirmVisitsResponse struct {
	Results []VisitResult `json:"results"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmVisit.Response) *ConfirmVisitsResponse {
	results := make([]VisitResult, len(resp.Results))
	for i, result := range resp.Results {
		results[i] = VisitResult{
			VisitID: result.VisitID,
			Outcome: string(result.Outcome),
			Error:   translateError(result.Err),
		}
	}
	return &ConfirmVisitsResponse{Results: results}
}

// translateError переводит ошибку обработки визита в сообщение
func translateError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, confirmVisit.ErrVisitNotFound):
		return msgVisitNotFound
	case errors.Is(err, confirmVisit.ErrInvalidState):
		return msgInvalidState
	case errors.Is(err, confirmVisit.ErrSlotConflict):
		return msgSlotConflict
	default:
		return msgInternalError
	}
}
