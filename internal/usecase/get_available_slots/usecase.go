package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/sgasoft/SGA-VisitService/internal/domain"
	"github.com/sgasoft/SGA-VisitService/pkg/types"
)

// UseCase получение доступных слотов недвижимости для записи на визит
type UseCase struct {
	slotRepo        SlotRepository
	defaultTimezone string
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, defaultTimezone string, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:        slotRepo,
		defaultTimezone: defaultTimezone,
		logger:          logger,
	}
}

// Execute возвращает доступные слоты недвижимости по возрастанию
// времени начала. Операция без побочных эффектов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.PropertyID <= 0 {
		return nil, fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = uc.defaultTimezone
	}
	if timezone == "" {
		timezone = "UTC"
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: unknown timezone %q: %v", timezone, err)
		return nil, fmt.Errorf("%w: %q", ErrUnknownTimezone, timezone)
	}

	slots, err := uc.slotRepo.ListAvailableByProperty(ctx, req.PropertyID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list slots for property=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	result := make([]Slot, len(slots))
	for i, s := range slots {
		result[i] = toSlot(s, loc)
	}

	uc.logger.Info("GetAvailableSlots: %d slot(s) for property=%d", len(result), req.PropertyID)

	return &Response{
		PropertyID: req.PropertyID,
		Timezone:   timezone,
		Slots:      result,
	}, nil
}

func toSlot(s *domain.VisitSlot, loc *time.Location) Slot {
	startLocal := s.StartAt.In(loc)
	endLocal := s.EndAt.In(loc)

	return Slot{
		ID:             s.ID,
		AgentID:        s.AgentID,
		StartAt:        s.StartAt,
		EndAt:          s.EndAt,
		LocalDate:      startLocal.Format(domain.DateFormat),
		LocalStartTime: types.NewTimeStringInLocation(s.StartAt, loc),
		LocalEndTime:   types.NewTimeStringInLocation(s.EndAt, loc),
		Label:          slotLabel(s, startLocal, endLocal),
	}
}

// slotLabel строит описание слота для списка на портале в локальном
// времени сессии
func slotLabel(s *domain.VisitSlot, startLocal, endLocal time.Time) string {
	return fmt.Sprintf("Агент %d - %s %s → %s",
		s.AgentID,
		startLocal.Format("02/01/2006"),
		startLocal.Format(domain.TimeFormat),
		endLocal.Format(domain.TimeFormat),
	)
}
