package visits

import (
	"context"
	"errors"
	"fmt"

	"github.com/sgasoft/SGA-VisitService/internal/domain"
	visitRepo "github.com/sgasoft/SGA-VisitService/internal/infra/storage/visit"
	"github.com/sgasoft/SGA-VisitService/internal/service/visits/models"
)

// Service сервис чтения визитов для back-office
// Мутации состояния живут в usecase-слое (create_visit, confirm_visit,
// cancel_visit, mark_visit_done)
type Service struct {
	visitRepo VisitRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса визитов
func NewService(visitRepo VisitRepository, logger Logger) *Service {
	return &Service{
		visitRepo: visitRepo,
		logger:    logger,
	}
}

// GetByID получает визит по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.VisitResponse, error) {
	s.logger.Info("GetByID: fetching visit id=%d", id)

	visit, err := s.visitRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, visitRepo.ErrVisitNotFound) {
			s.logger.Warn("GetByID: visit id=%d not found", id)
			return nil, ErrVisitNotFound
		}
		s.logger.Error("GetByID: repository error for visit id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVisit(visit), nil
}

// GetAgentAgenda получает визиты агента, опционально по состоянию
func (s *Service) GetAgentAgenda(ctx context.Context, req *models.GetAgentAgendaRequest) (*models.VisitListResponse, error) {
	s.logger.Info("GetAgentAgenda: fetching visits for agent=%d, state=%v", req.AgentID, req.State)

	if req.AgentID <= 0 {
		return nil, fmt.Errorf("%w: agentID must be positive", ErrInvalidInput)
	}

	var domainState *domain.VisitState
	if req.State != nil {
		state, err := models.ToDomainVisitState(*req.State)
		if err != nil {
			s.logger.Warn("GetAgentAgenda: invalid state=%s for agent=%d", *req.State, req.AgentID)
			return nil, fmt.Errorf("%w: invalid state", ErrInvalidInput)
		}
		domainState = &state
	}

	visits, err := s.visitRepo.ListByAgent(ctx, req.AgentID, domainState)
	if err != nil {
		s.logger.Error("GetAgentAgenda: repository error for agent=%d: %v", req.AgentID, err)
		return nil, fmt.Errorf("%w: GetAgentAgenda - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAgentAgenda: fetched %d visit(s) for agent=%d", len(visits), req.AgentID)
	return models.FromDomainVisitList(visits), nil
}

// GetPropertyVisits получает историю визитов недвижимости
func (s *Service) GetPropertyVisits(ctx context.Context, propertyID int64) (*models.VisitListResponse, error) {
	if propertyID <= 0 {
		return nil, fmt.Errorf("%w: propertyID must be positive", ErrInvalidInput)
	}

	visits, err := s.visitRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		s.logger.Error("GetPropertyVisits: repository error for property=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: GetPropertyVisits - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVisitList(visits), nil
}

// GetCustomerVisits получает историю визитов клиента
func (s *Service) GetCustomerVisits(ctx context.Context, customerID int64) (*models.VisitListResponse, error) {
	if customerID <= 0 {
		return nil, fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	visits, err := s.visitRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		s.logger.Error("GetCustomerVisits: repository error for customer=%d: %v", customerID, err)
		return nil, fmt.Errorf("%w: GetCustomerVisits - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainVisitList(visits), nil
}
