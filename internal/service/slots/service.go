package slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/sgasoft/SGA-VisitService/internal/domain"
	slotRepo "github.com/sgasoft/SGA-VisitService/internal/infra/storage/slot"
	"github.com/sgasoft/SGA-VisitService/internal/service/slots/models"
)

// Service сервис администрирования слотов доступности
// Создание и блокировка слотов - ручные операции агента/администратора;
// автоматическое создание слотов при разбиении выполняет usecase
// подтверждения визита
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Create создает слот доступности вручную
func (s *Service) Create(ctx context.Context, req *models.CreateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("CreateSlot: agent=%d, property=%d, start=%s, end=%s",
		req.AgentID, req.PropertyID, req.StartAt, req.EndAt)

	if req.AgentID <= 0 {
		return nil, fmt.Errorf("%w: agentID must be positive", ErrInvalidInput)
	}
	if req.PropertyID <= 0 {
		return nil, fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}
	if req.StartAt.IsZero() || req.EndAt.IsZero() {
		return nil, fmt.Errorf("%w: startAt and endAt are required", ErrInvalidInput)
	}

	slot := &domain.VisitSlot{
		AgentID:    req.AgentID,
		PropertyID: req.PropertyID,
		StartAt:    req.StartAt.UTC(),
		EndAt:      req.EndAt.UTC(),
		State:      domain.SlotAvailable,
	}

	if err := slot.Validate(); err != nil {
		s.logger.Warn("CreateSlot: invalid interval for agent=%d: %v", req.AgentID, err)
		return nil, ErrInvalidInterval
	}

	created, err := s.slotRepo.Create(ctx, slot)
	if err != nil {
		s.logger.Error("CreateSlot: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateSlot: successfully created slot id=%d", created.ID)
	return models.FromDomainSlot(created), nil
}

// GetByID получает слот по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SlotResponse, error) {
	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("GetByID: slot id=%d not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("GetByID: repository error for slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSlot(slot), nil
}

// ListByProperty получает все слоты недвижимости
func (s *Service) ListByProperty(ctx context.Context, propertyID int64) (*models.SlotListResponse, error) {
	if propertyID <= 0 {
		return nil, fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	slots, err := s.slotRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		s.logger.Error("ListByProperty: repository error for property=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: ListByProperty - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlotList(slots), nil
}

// ListByAgent получает все слоты агента
func (s *Service) ListByAgent(ctx context.Context, agentID int64) (*models.SlotListResponse, error) {
	if agentID <= 0 {
		return nil, fmt.Errorf("%w: agentID must be positive", ErrInvalidInput)
	}

	slots, err := s.slotRepo.ListByAgent(ctx, agentID)
	if err != nil {
		s.logger.Error("ListByAgent: repository error for agent=%d: %v", agentID, err)
		return nil, fmt.Errorf("%w: ListByAgent - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSlotList(slots), nil
}

// Block блокирует слот (агент недоступен, слот скрывается с портала)
// Заблокировать можно только слот, против которого еще нет брони
func (s *Service) Block(ctx context.Context, id int64) error {
	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Block: slot id=%d not found", id)
			return ErrSlotNotFound
		}
		s.logger.Error("Block: repository error for slot id=%d: %v", id, err)
		return fmt.Errorf("%w: Block - repository error: %v", ErrInternal, err)
	}

	if !slot.IsBookable() {
		s.logger.Warn("Block: slot id=%d is in state %s", id, slot.State)
		return ErrCannotBlock
	}

	if err := s.slotRepo.UpdateState(ctx, id, domain.SlotBlocked); err != nil {
		s.logger.Error("Block: repository error for slot id=%d: %v", id, err)
		return fmt.Errorf("%w: Block - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Block: slot id=%d blocked", id)
	return nil
}

// Unblock возвращает заблокированный слот в доступность
func (s *Service) Unblock(ctx context.Context, id int64) error {
	slot, err := s.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Unblock: slot id=%d not found", id)
			return ErrSlotNotFound
		}
		s.logger.Error("Unblock: repository error for slot id=%d: %v", id, err)
		return fmt.Errorf("%w: Unblock - repository error: %v", ErrInternal, err)
	}

	if slot.State != domain.SlotBlocked {
		s.logger.Warn("Unblock: slot id=%d is in state %s", id, slot.State)
		return ErrCannotUnblock
	}

	if err := s.slotRepo.UpdateState(ctx, id, domain.SlotAvailable); err != nil {
		s.logger.Error("Unblock: repository error for slot id=%d: %v", id, err)
		return fmt.Errorf("%w: Unblock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Unblock: slot id=%d available again", id)
	return nil
}
