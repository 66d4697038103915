package create_visit

import (
	"fmt"
	"strings"

	"github.com/sgasoft/SGA-VisitService/internal/domain"
)

// validateRequest проверяет форму заявки до обращения к БД
// Все нарушения собираются в один список
func validateRequest(req *Request) ValidationErrors {
	var violations ValidationErrors

	if req.SlotID <= 0 {
		violations.add(CodeSlotRequired, "slot id is required")
	}

	if req.StartTime.IsZero() {
		violations.add(CodeTimeRequired, "start time is required")
	} else if err := req.StartTime.Validate(); err != nil {
		violations.add(CodeInvalidTimeFormat, fmt.Sprintf("start time: %v", err))
	}

	// Конец необязателен (будет предложен автоматически), но если
	// указан - формат проверяется
	if !req.EndTime.IsZero() {
		if err := req.EndTime.Validate(); err != nil {
			violations.add(CodeInvalidTimeFormat, fmt.Sprintf("end time: %v", err))
		}
	}

	if req.CustomerID <= 0 {
		violations = append(violations, validateCustomerInput(req.Customer)...)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		violations.add(CodeNotesTooLong, fmt.Sprintf("notes must be at most %d characters", domain.MaxNotesLength))
	}

	return violations
}

// validateCustomerInput проверяет контактные данные анонимной заявки
func validateCustomerInput(customer *CustomerInput) ValidationErrors {
	var violations ValidationErrors

	if customer == nil {
		violations.add(CodeNameRequired, "customer name is required")
		violations.add(CodeEmailRequired, "customer email is required")
		return violations
	}

	if strings.TrimSpace(customer.Name) == "" {
		violations.add(CodeNameRequired, "customer name is required")
	}
	if strings.TrimSpace(customer.Email) == "" {
		violations.add(CodeEmailRequired, "customer email is required")
	}

	return violations
}

// validateSlot проверяет, что слот принадлежит нужной паре
// недвижимость/агент и все еще доступен для записи
func validateSlot(slot *domain.VisitSlot, req *Request) ValidationErrors {
	var violations ValidationErrors

	if slot.PropertyID != req.PropertyID {
		violations.add(CodeSlotWrongProperty,
			fmt.Sprintf("slot %d does not belong to property %d", slot.ID, req.PropertyID))
	}

	if req.AgentID > 0 && slot.AgentID != req.AgentID {
		violations.add(CodeSlotWrongAgent,
			fmt.Sprintf("slot %d does not belong to agent %d", slot.ID, req.AgentID))
	}

	if !slot.IsBookable() {
		violations.add(CodeSlotNotBookable,
			fmt.Sprintf("slot %d is in state %s", slot.ID, slot.State))
	}

	return violations
}
