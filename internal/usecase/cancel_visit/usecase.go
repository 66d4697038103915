package cancel_visit

import (
	"context"
	"errors"
	"fmt"

	"github.com/sgasoft/SGA-VisitService/internal/domain"
	visitRepo "github.com/sgasoft/SGA-VisitService/internal/infra/storage/visit"
)

// UseCase отмена визитов с возвратом времени в доступность
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

// Execute отменяет пакет визитов
// Каждый визит обрабатывается в собственной транзакции; ошибка одного
// визита попадает в его Result и не прерывает остальные
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if len(req.VisitIDs) == 0 {
		return nil, ErrNoVisitIDs
	}

	uc.logger.Info("CancelVisit: cancelling %d visit(s)", len(req.VisitIDs))

	results := make([]Result, 0, len(req.VisitIDs))
	for _, visitID := range req.VisitIDs {
		releasedSlotID, err := uc.cancelOne(ctx, visitID)
		if err != nil {
			uc.logger.Warn("CancelVisit: visit id=%d failed: %v", visitID, err)
			results = append(results, Result{VisitID: visitID, Err: err})
			continue
		}
		results = append(results, Result{
			VisitID:        visitID,
			Cancelled:      true,
			ReleasedSlotID: releasedSlotID,
		})
	}

	return &Response{Results: results}, nil
}

// cancelOne отменяет один визит и создает свободный слот ровно на его
// интервале. Слияние с соседними слотами не выполняется - фрагментация
// допустима, соседние остатки от разбиения остаются как есть
func (uc *UseCase) cancelOne(ctx context.Context, visitID int64) (int64, error) {
	var releasedSlotID int64

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		visit, err := uc.visitRepo.GetByID(txCtx, visitID)
		if err != nil {
			if errors.Is(err, visitRepo.ErrVisitNotFound) {
				return ErrVisitNotFound
			}
			return fmt.Errorf("%w: failed to get visit: %v", ErrInternal, err)
		}

		if visit.State == domain.VisitCancelled {
			return ErrAlreadyCancelled
		}
		if !visit.CanBeCancelled() {
			return fmt.Errorf("%w: state=%s", ErrInvalidState, visit.State)
		}

		released, err := uc.slotRepo.Create(txCtx, visit.ReleasedSlot())
		if err != nil {
			return fmt.Errorf("%w: failed to create released slot: %v", ErrInternal, err)
		}
		releasedSlotID = released.ID

		if err := uc.visitRepo.UpdateStatus(txCtx, visit.ID, domain.VisitCancelled); err != nil {
			return fmt.Errorf("%w: failed to update visit status: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return 0, err
	}

	uc.logger.Info("CancelVisit: visit id=%d cancelled, released slot id=%d", visitID, releasedSlotID)
	return releasedSlotID, nil
}
