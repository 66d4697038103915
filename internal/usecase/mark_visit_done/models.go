package mark_visit_done

// Request пакетная операция отметки визитов состоявшимися
type Request struct {
	VisitIDs []int64
}

// Result результат обработки одного визита из пакета
type Result struct {
	VisitID int64
	Done    bool
	Err     error // заполнен, если визит не удалось отметить
}

// Response результаты пакетной операции в порядке входных ID
type Response struct {
	Results []Result
}

// HasFailures возвращает true, если хотя бы один визит не обработан
func (r *Response) HasFailures() bool {
	for _, result := range r.Results {
		if result.Err != nil {
			return true
		}
	}
	return false
}
