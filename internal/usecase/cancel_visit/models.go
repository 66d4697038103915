package cancel_visit

// Request пакетная операция отмены визитов
type Request struct {
	VisitIDs []int64
}

// Result результат обработки одного визита из пакета
type Result struct {
	VisitID        int64
	Cancelled      bool
	ReleasedSlotID int64 // ID созданного свободного слота (0 при ошибке)
	Err            error // заполнен, если визит не удалось отменить
}

// Response результаты пакетной операции в порядке входных ID
type Response struct {
	Results []Result
}

// HasFailures возвращает true, если хотя бы один визит не отменен
func (r *Response) HasFailures() bool {
	for _, result := range r.Results {
		if result.Err != nil {
			return true
		}
	}
	return false
}
