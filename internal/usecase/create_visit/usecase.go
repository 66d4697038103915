package create_visit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sgasoft/SGA-VisitService/internal/domain"
	slotRepo "github.com/sgasoft/SGA-VisitService/internal/infra/storage/slot"
	"github.com/sgasoft/SGA-VisitService/internal/integrations/contactservice"
	"github.com/sgasoft/SGA-VisitService/pkg/types"
)

// UseCase приём заявок на визит (портал и back-office)
type UseCase struct {
	slotRepo        SlotRepository
	visitRepo       VisitRepository
	contactClient   ContactServiceClient
	txManager       TransactionManager
	defaultTimezone string
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	visitRepo VisitRepository,
	contactClient ContactServiceClient,
	txManager TransactionManager,
	defaultTimezone string,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:        slotRepo,
		visitRepo:       visitRepo,
		contactClient:   contactClient,
		txManager:       txManager,
		defaultTimezone: defaultTimezone,
		logger:          logger,
	}
}

// Execute выполняет заявку на визит
//
// Все нарушения предусловий собираются в ValidationErrors и возвращаются
// одним списком без записи в БД. Проверка пересечений расписания агента
// и вставка визита выполняются в одной сериализуемой транзакции, чтобы
// две конкурирующие заявки не могли обе пройти проверку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateVisit: property=%d, slot=%d, customer=%d, start=%s, end=%s, tz=%q",
		req.PropertyID, req.SlotID, req.CustomerID, req.StartTime, req.EndTime, req.Timezone)

	// 1. Статическая валидация формы заявки
	violations := validateRequest(req)

	// 2. Таймзона сессии; неизвестная таймзона - ошибка формата
	loc, err := resolveLocation(req.Timezone, uc.defaultTimezone)
	if err != nil {
		violations.add(CodeUnknownTimezone, fmt.Sprintf("timezone %q: %v", req.Timezone, err))
	}

	if len(violations) > 0 {
		uc.logViolations(violations)
		return nil, violations
	}

	var result *domain.Visit

	// 3. Проверки против БД и вставка - в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Слот с блокировкой строки
		slot, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				violations.add(CodeSlotNotFound, fmt.Sprintf("slot %d not found", req.SlotID))
				return violations
			}
			uc.logger.Error("CreateVisit: failed to get slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// 3.2. Принадлежность и состояние слота
		violations = append(violations, validateSlot(slot, req)...)
		if len(violations) > 0 {
			return violations
		}

		// 3.3. Локальные HH:MM -> UTC-границы визита
		startAt, endAt, err := visitWindow(slot, req.StartTime, req.EndTime, loc)
		if err != nil {
			violations.add(CodeInvalidTimeFormat, err.Error())
			return violations
		}

		// 3.4. Порядок и вложенность в границы слота
		if !endAt.After(startAt) {
			violations.add(CodeEndBeforeStart, "end time must be after start time")
		}
		if !slot.Contains(startAt, endAt) {
			violations.add(CodeOutsideSlot,
				fmt.Sprintf("visit must lie within the slot bounds (%s - %s)",
					slot.StartAt.In(loc).Format("15:04"), slot.EndAt.In(loc).Format("15:04")))
		}
		if len(violations) > 0 {
			return violations
		}

		// 3.5. Пересечения с другими визитами агента
		// Блокируют только заявленные, подтвержденные и состоявшиеся визиты
		overlapping, err := uc.visitRepo.ListOverlappingByAgent(
			txCtx, slot.AgentID, startAt, endAt, domain.BlockingVisitStates)
		if err != nil {
			uc.logger.Error("CreateVisit: failed to check agent schedule: %v", err)
			return fmt.Errorf("%w: failed to check agent schedule: %v", ErrInternal, err)
		}
		if len(overlapping) > 0 {
			violations.add(CodeAgentBusy,
				fmt.Sprintf("agent %d already has %d visit(s) in this window", slot.AgentID, len(overlapping)))
			return violations
		}

		// 3.6. Определяем клиента: существующий контакт или анонимная заявка.
		// Контакт создается только после всех проверок, чтобы отклоненная
		// заявка не оставляла следов во внешнем сервисе. EnsureContact
		// идемпотентен (find-or-create по email), поэтому повтор транзакции
		// после конфликта сериализации безопасен
		customerID := req.CustomerID
		if customerID <= 0 {
			contact, err := uc.contactClient.EnsureContact(txCtx, &contactservice.EnsureContactRequest{
				Name:  req.Customer.Name,
				Email: req.Customer.Email,
				Phone: req.Customer.Phone,
			})
			if err != nil {
				uc.logger.Error("CreateVisit: failed to ensure contact: %v", err)
				return fmt.Errorf("%w: failed to ensure contact: %v", ErrInternal, err)
			}
			customerID = contact.ID
		}

		// 3.7. Создаем визит в состоянии requested
		// Агент и недвижимость копируются со слота, а не выводятся через
		// связь: правки слота не должны менять историю визита
		visit := &domain.Visit{
			PropertyID: slot.PropertyID,
			AgentID:    slot.AgentID,
			CustomerID: customerID,
			SlotID:     slot.ID,
			StartAt:    startAt,
			EndAt:      endAt,
			State:      domain.VisitRequested,
			Notes:      req.Notes,
		}

		created, err := uc.visitRepo.Create(txCtx, visit)
		if err != nil {
			uc.logger.Error("CreateVisit: failed to create visit: %v", err)
			return fmt.Errorf("%w: failed to create visit: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		var vErrs ValidationErrors
		if errors.As(err, &vErrs) {
			uc.logViolations(vErrs)
			return nil, vErrs
		}
		return nil, err
	}

	uc.logger.Info("CreateVisit: successfully created visit id=%d for agent=%d", result.ID, result.AgentID)

	return uc.toResponse(result, loc, req.Timezone), nil
}

// logViolations логирует нарушения; ошибки формата помечаются отдельно,
// так как указывают на клиентский баг, а не на конфликт расписания
func (uc *UseCase) logViolations(violations ValidationErrors) {
	if violations.HasFormatErrors() {
		uc.logger.Warn("CreateVisit: input format error: %v", violations)
		return
	}
	uc.logger.Warn("CreateVisit: validation failed: %v", violations)
}

func (uc *UseCase) toResponse(v *domain.Visit, loc *time.Location, timezone string) *Response {
	if timezone == "" {
		timezone = uc.defaultTimezone
	}
	if timezone == "" {
		timezone = "UTC"
	}
	return &Response{
		ID:             v.ID,
		PropertyID:     v.PropertyID,
		AgentID:        v.AgentID,
		CustomerID:     v.CustomerID,
		SlotID:         v.SlotID,
		StartAt:        v.StartAt,
		EndAt:          v.EndAt,
		LocalDate:      v.StartAt.In(loc).Format(domain.DateFormat),
		LocalStartTime: types.NewTimeStringInLocation(v.StartAt, loc),
		LocalEndTime:   types.NewTimeStringInLocation(v.EndAt, loc),
		Timezone:       timezone,
		State:          string(v.State),
		Notes:          v.Notes,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}
