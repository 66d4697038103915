package confirm_visit

// Request пакетная операция подтверждения визитов
// Каждый визит обрабатывается независимо: ошибка одного не прерывает
// обработку остальных
type Request struct {
	VisitIDs []int64
}

// Outcome результат обработки одного визита
type Outcome string

const (
	// OutcomeConfirmed визит подтвержден, слот разбит
	OutcomeConfirmed Outcome = "confirmed"

	// OutcomeAlreadyConfirmed визит уже был подтвержден; повторное
	// подтверждение - no-op (слот не разбивается второй раз)
	OutcomeAlreadyConfirmed Outcome = "already_confirmed"

	// OutcomeFailed визит не удалось подтвердить, подробности в Err
	OutcomeFailed Outcome = "failed"
)

// Result результат обработки одного визита из пакета
type Result struct {
	VisitID int64
	Outcome Outcome
	Err     error // заполнен при OutcomeFailed
}

// Response результаты пакетной операции в порядке входных ID
type Response struct {
	Results []Result
}

// HasFailures возвращает true, если хотя бы один визит не обработан
func (r *Response) HasFailures() bool {
	for _, result := range r.Results {
		if result.Outcome == OutcomeFailed {
			return true
		}
	}
	return false
}
