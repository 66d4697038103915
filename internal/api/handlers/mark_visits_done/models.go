package mark_visits_done

import (
	"errors"

	markVisitDone "github.com/sgasoft/SGA-VisitService/internal/usecase/mark_visit_done"
)

const (
	msgVisitNotFound = "визит не найден"
	msgInvalidState  = "состоявшимся можно отметить только подтвержденный визит"
	msgInternalError = "внутренняя ошибка"
)

// MarkVisitsDoneRequest HTTP request model
type MarkVisitsDoneRequest struct {
	VisitIDs []int64 `json:"visitIds"`
}

// VisitResult результат обработки одного визита
type VisitResult struct {
	VisitID int64  `json:"visitId"`
	Done    bool   `json:"done"`
	Error   string `json:"error,omitempty"`
}

// MarkVisitsDoneResponse HTTP response model
type MarkVisitsDoneResponse struct {
	Results []VisitResult `json:"results"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *markVisitDone.Response) *MarkVisitsDoneResponse {
	results := make([]VisitResult, len(resp.Results))
	for i, result := range resp.Results {
		results[i] = VisitResult{
			VisitID: result.VisitID,
			Done:    result.Done,
			Error:   translateError(result.Err),
		}
	}
	return &MarkVisitsDoneResponse{Results: results}
}

// translateError переводит ошибку обработки визита в сообщение
func translateError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, markVisitDone.ErrVisitNotFound):
		return msgVisitNotFound
	case errors.Is(err, markVisitDone.ErrInvalidState):
		return msgInvalidState
	default:
		return msgInternalError
	}
}
