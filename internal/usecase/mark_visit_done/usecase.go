package mark_visit_done

import (
	"context"
	"errors"
	"fmt"

	"github.com/sgasoft/SGA-VisitService/internal/domain"
	visitRepo "github.com/sgasoft/SGA-VisitService/internal/infra/storage/visit"
)

// UseCase отметка подтвержденных визитов состоявшимися
// Слот при этом не меняется: он остался booked после подтверждения и
// служит историческим свидетельством
type UseCase struct {
	visitRepo VisitRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(visitRepo VisitRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		visitRepo: visitRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute отмечает пакет визитов состоявшимися
// Каждый визит проверяется и обновляется независимо от остальных
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if len(req.VisitIDs) == 0 {
		return nil, ErrNoVisitIDs
	}

	uc.logger.Info("MarkVisitDone: marking %d visit(s) done", len(req.VisitIDs))

	results := make([]Result, 0, len(req.VisitIDs))
	for _, visitID := range req.VisitIDs {
		if err := uc.markOne(ctx, visitID); err != nil {
			uc.logger.Warn("MarkVisitDone: visit id=%d failed: %v", visitID, err)
			results = append(results, Result{VisitID: visitID, Err: err})
			continue
		}
		results = append(results, Result{VisitID: visitID, Done: true})
	}

	return &Response{Results: results}, nil
}

func (uc *UseCase) markOne(ctx context.Context, visitID int64) error {
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		visit, err := uc.visitRepo.GetByID(txCtx, visitID)
		if err != nil {
			if errors.Is(err, visitRepo.ErrVisitNotFound) {
				return ErrVisitNotFound
			}
			return fmt.Errorf("%w: failed to get visit: %v", ErrInternal, err)
		}

		if !visit.CanBeMarkedDone() {
			return fmt.Errorf("%w: state=%s", ErrInvalidState, visit.State)
		}

		if err := uc.visitRepo.UpdateStatus(txCtx, visit.ID, domain.VisitDone); err != nil {
			return fmt.Errorf("%w: failed to update visit status: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	uc.logger.Info("MarkVisitDone: visit id=%d marked done", visitID)
	return nil
}
