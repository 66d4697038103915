package slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgasoft/SGA-VisitService/internal/domain"
	slotRepo "github.com/sgasoft/SGA-VisitService/internal/infra/storage/slot"
	"github.com/sgasoft/SGA-VisitService/internal/service/slots/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSlotRepo struct {
	nextID int64
	slots  map[int64]*domain.VisitSlot
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{slots: map[int64]*domain.VisitSlot{}}
}

func (r *fakeSlotRepo) Create(_ context.Context, s *domain.VisitSlot) (*domain.VisitSlot, error) {
	r.nextID++
	created := *s
	created.ID = r.nextID
	r.slots[created.ID] = &created
	return &created, nil
}

func (r *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.VisitSlot, error) {
	s, ok := r.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSlotRepo) ListByProperty(_ context.Context, propertyID int64) ([]*domain.VisitSlot, error) {
	var result []*domain.VisitSlot
	for _, s := range r.slots {
		if s.PropertyID == propertyID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (r *fakeSlotRepo) ListByAgent(_ context.Context, agentID int64) ([]*domain.VisitSlot, error) {
	var result []*domain.VisitSlot
	for _, s := range r.slots {
		if s.AgentID == agentID {
			result = append(result, s)
		}
	}
	return result, nil
}

func (r *fakeSlotRepo) UpdateState(_ context.Context, id int64, state domain.SlotState) error {
	s, ok := r.slots[id]
	if !ok {
		return slotRepo.ErrSlotNotFound
	}
	s.State = state
	return nil
}

func validCreateRequest() *models.CreateSlotRequest {
	return &models.CreateSlotRequest{
		AgentID:    7,
		PropertyID: 3,
		StartAt:    time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC),
		EndAt:      time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestSlotsService_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := newFakeSlotRepo()
		svc := NewService(repo, nopLogger{})

		slot, err := svc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)
		assert.Equal(t, string(domain.SlotAvailable), slot.State)
		assert.NotZero(t, slot.ID)
	})

	t.Run("End Not After Start", func(t *testing.T) {
		svc := NewService(newFakeSlotRepo(), nopLogger{})

		req := validCreateRequest()
		req.EndAt = req.StartAt

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("Missing Fields", func(t *testing.T) {
		svc := NewService(newFakeSlotRepo(), nopLogger{})

		req := validCreateRequest()
		req.AgentID = 0

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestSlotsService_Block(t *testing.T) {
	t.Run("Available Slot", func(t *testing.T) {
		repo := newFakeSlotRepo()
		svc := NewService(repo, nopLogger{})

		slot, err := svc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)

		require.NoError(t, svc.Block(context.Background(), slot.ID))
		assert.Equal(t, domain.SlotBlocked, repo.slots[slot.ID].State)
	})

	t.Run("Booked Slot Cannot Be Blocked", func(t *testing.T) {
		repo := newFakeSlotRepo()
		svc := NewService(repo, nopLogger{})

		slot, err := svc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)
		repo.slots[slot.ID].State = domain.SlotBooked

		assert.ErrorIs(t, svc.Block(context.Background(), slot.ID), ErrCannotBlock)
	})

	t.Run("Not Found", func(t *testing.T) {
		svc := NewService(newFakeSlotRepo(), nopLogger{})
		assert.ErrorIs(t, svc.Block(context.Background(), 999), ErrSlotNotFound)
	})
}

func TestSlotsService_Unblock(t *testing.T) {
	t.Run("Blocked Slot", func(t *testing.T) {
		repo := newFakeSlotRepo()
		svc := NewService(repo, nopLogger{})

		slot, err := svc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)
		require.NoError(t, svc.Block(context.Background(), slot.ID))

		require.NoError(t, svc.Unblock(context.Background(), slot.ID))
		assert.Equal(t, domain.SlotAvailable, repo.slots[slot.ID].State)
	})

	t.Run("Available Slot Cannot Be Unblocked", func(t *testing.T) {
		repo := newFakeSlotRepo()
		svc := NewService(repo, nopLogger{})

		slot, err := svc.Create(context.Background(), validCreateRequest())
		require.NoError(t, err)

		assert.ErrorIs(t, svc.Unblock(context.Background(), slot.ID), ErrCannotUnblock)
	})
}
