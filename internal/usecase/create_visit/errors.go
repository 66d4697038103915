package create_visit

import (
	"errors"
	"strings"
)

var (
	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_visit: internal error")
)

// ViolationCode код нарушения предусловия заявки на визит
// Коды стабильны: handler переводит их в человекочитаемые сообщения
type ViolationCode string

const (
	CodeSlotRequired      ViolationCode = "slot_required"
	CodeSlotNotFound      ViolationCode = "slot_not_found"
	CodeSlotWrongProperty ViolationCode = "slot_wrong_property"
	CodeSlotWrongAgent    ViolationCode = "slot_wrong_agent"
	CodeSlotNotBookable   ViolationCode = "slot_not_bookable"
	CodeTimeRequired      ViolationCode = "time_required"
	CodeInvalidTimeFormat ViolationCode = "invalid_time_format"
	CodeUnknownTimezone   ViolationCode = "unknown_timezone"
	CodeEndBeforeStart    ViolationCode = "end_before_start"
	CodeOutsideSlot       ViolationCode = "outside_slot"
	CodeAgentBusy         ViolationCode = "agent_busy"
	CodeNameRequired      ViolationCode = "name_required"
	CodeEmailRequired     ViolationCode = "email_required"
	CodeNotesTooLong      ViolationCode = "notes_too_long"
)

// formatCodes нарушения-ошибки формата: указывают на баг клиентского
// ввода, а не на конфликт расписания, и логируются отдельно
var formatCodes = map[ViolationCode]bool{
	CodeInvalidTimeFormat: true,
	CodeUnknownTimezone:   true,
}

// Violation одно нарушение предусловия
type Violation struct {
	Code   ViolationCode
	Detail string
}

// ValidationErrors список нарушений предусловий заявки
// Все нарушения собираются и возвращаются разом, чтобы портал показал
// их пользователю одним списком; запись в БД при этом не происходит
type ValidationErrors []Violation

// Error реализует интерфейс error
func (v ValidationErrors) Error() string {
	parts := make([]string, len(v))
	for i, violation := range v {
		parts[i] = string(violation.Code)
	}
	return "create_visit: validation failed: " + strings.Join(parts, ", ")
}

// HasFormatErrors возвращает true, если среди нарушений есть ошибки
// формата входных данных (время, таймзона)
func (v ValidationErrors) HasFormatErrors() bool {
	for _, violation := range v {
		if formatCodes[violation.Code] {
			return true
		}
	}
	return false
}

// add добавляет нарушение в список
func (v *ValidationErrors) add(code ViolationCode, detail string) {
	*v = append(*v, Violation{Code: code, Detail: detail})
}
