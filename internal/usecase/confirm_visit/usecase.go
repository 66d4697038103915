package confirm_visit

import (
	"context"
	"errors"
	"fmt"

	"github.com/sgasoft/SGA-VisitService/internal/domain"
	slotRepo "github.com/sgasoft/SGA-VisitService/internal/infra/storage/slot"
	visitRepo "github.com/sgasoft/SGA-VisitService/internal/infra/storage/visit"
)

// UseCase подтверждение визитов с разбиением слота
type UseCase struct {
	visitRepo VisitRepository
	slotRepo  SlotRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	visitRepo VisitRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		visitRepo: visitRepo,
		slotRepo:  slotRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute подтверждает пакет визитов
// Каждый визит обрабатывается в собственной сериализуемой транзакции;
// ошибка одного визита попадает в его Result и не прерывает остальные
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if len(req.VisitIDs) == 0 {
		return nil, ErrNoVisitIDs
	}

	uc.logger.Info("ConfirmVisit: confirming %d visit(s)", len(req.VisitIDs))

	results := make([]Result, 0, len(req.VisitIDs))
	for _, visitID := range req.VisitIDs {
		outcome, err := uc.confirmOne(ctx, visitID)
		if err != nil {
			uc.logger.Warn("ConfirmVisit: visit id=%d failed: %v", visitID, err)
			results = append(results, Result{VisitID: visitID, Outcome: OutcomeFailed, Err: err})
			continue
		}
		results = append(results, Result{VisitID: visitID, Outcome: outcome})
	}

	return &Response{Results: results}, nil
}

// confirmOne подтверждает один визит в сериализуемой транзакции
//
// Разбиение слота атомарно с переходом его состояния: конкурирующее
// подтверждение того же слота увидит либо целый слот, либо полностью
// разбитый, но не промежуточное состояние
func (uc *UseCase) confirmOne(ctx context.Context, visitID int64) (Outcome, error) {
	var outcome Outcome

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		visit, err := uc.visitRepo.GetByID(txCtx, visitID)
		if err != nil {
			if errors.Is(err, visitRepo.ErrVisitNotFound) {
				return ErrVisitNotFound
			}
			return fmt.Errorf("%w: failed to get visit: %v", ErrInternal, err)
		}

		// Повторное подтверждение - no-op: слот уже разбит
		if visit.State == domain.VisitConfirmed {
			outcome = OutcomeAlreadyConfirmed
			return nil
		}

		if !visit.CanBeConfirmed() {
			return fmt.Errorf("%w: state=%s", ErrInvalidState, visit.State)
		}

		slot, err := uc.slotRepo.GetByID(txCtx, visit.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return fmt.Errorf("%w: slot id=%d is missing", ErrInternal, visit.SlotID)
			}
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// Слот разбивается только из доступного/зарезервированного
		// состояния; заблокированный или уже занятый слот не трогаем
		if slot.IsBookable() {
			if err := uc.splitSlot(txCtx, slot, visit); err != nil {
				return err
			}
		}

		if err := uc.visitRepo.UpdateStatus(txCtx, visit.ID, domain.VisitConfirmed); err != nil {
			return fmt.Errorf("%w: failed to update visit status: %v", ErrInternal, err)
		}

		outcome = OutcomeConfirmed
		return nil
	})

	if err != nil {
		return OutcomeFailed, err
	}

	if outcome == OutcomeConfirmed {
		uc.logger.Info("ConfirmVisit: visit id=%d confirmed", visitID)
	}
	return outcome, nil
}

// splitSlot отрезает от слота свободные остатки вокруг визита и
// переводит исходный слот в booked с нетронутыми границами - он
// остается историческим свидетельством забронированного интервала
func (uc *UseCase) splitSlot(ctx context.Context, slot *domain.VisitSlot, visit *domain.Visit) error {
	before, after := slot.SplitAround(visit.StartAt, visit.EndAt)

	if before != nil {
		if _, err := uc.slotRepo.Create(ctx, before); err != nil {
			return fmt.Errorf("%w: failed to create leading leftover slot: %v", ErrInternal, err)
		}
	}
	if after != nil {
		if _, err := uc.slotRepo.Create(ctx, after); err != nil {
			return fmt.Errorf("%w: failed to create trailing leftover slot: %v", ErrInternal, err)
		}
	}

	err := uc.slotRepo.UpdateStateFrom(ctx, slot.ID, domain.BookableSlotStates, domain.SlotBooked)
	if err != nil {
		if errors.Is(err, slotRepo.ErrStateConflict) {
			return ErrSlotConflict
		}
		return fmt.Errorf("%w: failed to mark slot booked: %v", ErrInternal, err)
	}

	return nil
}
