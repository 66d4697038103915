package request_visit

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sgasoft/SGA-VisitService/internal/api/handlers"
	createVisit "github.com/sgasoft/SGA-VisitService/internal/usecase/create_visit"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPropertyID  = "некорректный ID объекта недвижимости"
	msgValidationFailed   = "заявка на визит не прошла проверку"
)

// violationMessages человекочитаемые сообщения для кодов нарушений
var violationMessages = map[createVisit.ViolationCode]string{
	createVisit.CodeSlotRequired:      "не выбран слот для визита",
	createVisit.CodeSlotNotFound:      "слот не найден",
	createVisit.CodeSlotWrongProperty: "слот относится к другому объекту недвижимости",
	createVisit.CodeSlotWrongAgent:    "слот принадлежит другому агенту",
	createVisit.CodeSlotNotBookable:   "слот недоступен для записи",
	createVisit.CodeTimeRequired:      "не указано время начала визита",
	createVisit.CodeInvalidTimeFormat: "некорректный формат времени, ожидается HH:MM",
	createVisit.CodeUnknownTimezone:   "неизвестная таймзона сессии",
	createVisit.CodeEndBeforeStart:    "окончание визита должно быть позже начала",
	createVisit.CodeOutsideSlot:       "время визита выходит за пределы выбранного слота",
	createVisit.CodeAgentBusy:         "агент занят в выбранное время",
	createVisit.CodeNameRequired:      "не указано имя посетителя",
	createVisit.CodeEmailRequired:     "не указан email посетителя",
	createVisit.CodeNotesTooLong:      "комментарий слишком длинный",
}

type Handler struct {
	useCase CreateVisitUseCase
	logger  Logger
}

func NewHandler(useCase CreateVisitUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/properties/{propertyId}/visit-requests
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	propertyID, err := strconv.ParseInt(vars["propertyId"], 10, 64)
	if err != nil || propertyID <= 0 {
		h.logger.Warn("POST /properties/{id}/visit-requests - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	var req RequestVisitRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /properties/{id}/visit-requests - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(propertyID))
	if err != nil {
		// Нарушения предусловий возвращаются пользователю одним списком,
		// внутренние ошибки наружу не просачиваются
		var violations createVisit.ValidationErrors
		if errors.As(err, &violations) {
			h.logger.Warn("POST /properties/{id}/visit-requests - Validation failed: property_id=%d, slot_id=%d, violations=%v",
				propertyID, req.SlotID, violations.Error())
			handlers.RespondValidationErrors(w, msgValidationFailed, translateViolations(violations))
			return
		}

		h.logger.Error("POST /properties/{id}/visit-requests - Failed to create visit: property_id=%d, slot_id=%d, error=%v",
			propertyID, req.SlotID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /properties/{id}/visit-requests - Visit requested: visit_id=%d, property_id=%d, slot_id=%d",
		result.ID, propertyID, req.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// translateViolations переводит коды нарушений в сообщения для портала
func translateViolations(violations createVisit.ValidationErrors) []string {
	messages := make([]string, 0, len(violations))
	for _, violation := range violations {
		msg, ok := violationMessages[violation.Code]
		if !ok {
			msg = string(violation.Code)
		}
		messages = append(messages, msg)
	}
	return messages
}
