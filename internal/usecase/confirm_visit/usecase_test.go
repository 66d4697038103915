package confirm_visit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgasoft/SGA-VisitService/internal/domain"
	slotRepo "github.com/sgasoft/SGA-VisitService/internal/infra/storage/slot"
	visitRepo "github.com/sgasoft/SGA-VisitService/internal/infra/storage/visit"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeVisitRepo struct {
	visits map[int64]*domain.Visit
}

func (r *fakeVisitRepo) GetByID(_ context.Context, id int64) (*domain.Visit, error) {
	v, ok := r.visits[id]
	if !ok {
		return nil, visitRepo.ErrVisitNotFound
	}
	copied := *v
	return &copied, nil
}

func (r *fakeVisitRepo) UpdateStatus(_ context.Context, id int64, state domain.VisitState) error {
	v, ok := r.visits[id]
	if !ok {
		return visitRepo.ErrVisitNotFound
	}
	v.State = state
	return nil
}

type fakeSlotRepo struct {
	nextID  int64
	slots   map[int64]*domain.VisitSlot
	created []*domain.VisitSlot
}

func (r *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.VisitSlot, error) {
	s, ok := r.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSlotRepo) Create(_ context.Context, s *domain.VisitSlot) (*domain.VisitSlot, error) {
	r.nextID++
	created := *s
	created.ID = r.nextID
	r.slots[created.ID] = &created
	r.created = append(r.created, &created)
	return &created, nil
}

func (r *fakeSlotRepo) UpdateStateFrom(_ context.Context, id int64, from []domain.SlotState, to domain.SlotState) error {
	s, ok := r.slots[id]
	if !ok {
		return slotRepo.ErrSlotNotFound
	}
	for _, f := range from {
		if s.State == f {
			s.State = to
			return nil
		}
	}
	return slotRepo.ErrStateConflict
}

type fixture struct {
	uc     *UseCase
	visits *fakeVisitRepo
	slots  *fakeSlotRepo
}

func newFixture() *fixture {
	visits := &fakeVisitRepo{visits: map[int64]*domain.Visit{}}
	slots := &fakeSlotRepo{nextID: 1000, slots: map[int64]*domain.VisitSlot{}}
	return &fixture{
		uc:     NewUseCase(visits, slots, fakeTxManager{}, nopLogger{}),
		visits: visits,
		slots:  slots,
	}
}

// Слот 10:00-12:00 UTC с визитом startMin..endMin минут от начала слота
func (f *fixture) addSlotWithVisit(slotState domain.SlotState, visitState domain.VisitState, startMin, endMin int) *domain.Visit {
	base := time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)
	slot := &domain.VisitSlot{
		ID:         42,
		AgentID:    7,
		PropertyID: 3,
		StartAt:    base,
		EndAt:      base.Add(2 * time.Hour),
		State:      slotState,
	}
	f.slots.slots[slot.ID] = slot

	visit := &domain.Visit{
		ID:         101,
		PropertyID: 3,
		AgentID:    7,
		CustomerID: 12,
		SlotID:     slot.ID,
		StartAt:    base.Add(time.Duration(startMin) * time.Minute),
		EndAt:      base.Add(time.Duration(endMin) * time.Minute),
		State:      visitState,
	}
	f.visits.visits[visit.ID] = visit
	return visit
}

func TestConfirmVisit_EmptyBatch(t *testing.T) {
	f := newFixture()
	_, err := f.uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrNoVisitIDs)
}

func TestConfirmVisit_SplitsSlotAroundVisit(t *testing.T) {
	f := newFixture()
	visit := f.addSlotWithVisit(domain.SlotAvailable, domain.VisitRequested, 30, 60)

	resp, err := f.uc.Execute(context.Background(), &Request{VisitIDs: []int64{101}})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, OutcomeConfirmed, resp.Results[0].Outcome)
	assert.False(t, resp.HasFailures())

	// Визит подтвержден
	assert.Equal(t, domain.VisitConfirmed, f.visits.visits[101].State)

	// Исходный слот стал booked с нетронутыми границами
	original := f.slots.slots[42]
	assert.Equal(t, domain.SlotBooked, original.State)
	assert.Equal(t, time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC), original.StartAt)
	assert.Equal(t, time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC), original.EndAt)

	// Два свободных остатка: до и после визита
	require.Len(t, f.slots.created, 2)
	before, after := f.slots.created[0], f.slots.created[1]

	assert.Equal(t, original.StartAt, before.StartAt)
	assert.Equal(t, visit.StartAt, before.EndAt)
	assert.Equal(t, domain.SlotAvailable, before.State)

	assert.Equal(t, visit.EndAt, after.StartAt)
	assert.Equal(t, original.EndAt, after.EndAt)
	assert.Equal(t, domain.SlotAvailable, after.State)
}

func TestConfirmVisit_VisitAtSlotStart(t *testing.T) {
	f := newFixture()
	f.addSlotWithVisit(domain.SlotAvailable, domain.VisitRequested, 0, 30)

	resp, err := f.uc.Execute(context.Background(), &Request{VisitIDs: []int64{101}})
	require.NoError(t, err)
	assert.Equal(t, OutcomeConfirmed, resp.Results[0].Outcome)

	// Остаток только после визита
	require.Len(t, f.slots.created, 1)
	assert.Equal(t, time.Date(2026, 10, 15, 10, 30, 0, 0, time.UTC), f.slots.created[0].StartAt)
	assert.Equal(t, time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC), f.slots.created[0].EndAt)
}

func TestConfirmVisit_VisitCoversWholeSlot(t *testing.T) {
	f := newFixture()
	f.addSlotWithVisit(domain.SlotAvailable, domain.VisitRequested, 0, 120)

	resp, err := f.uc.Execute(context.Background(), &Request{VisitIDs: []int64{101}})
	require.NoError(t, err)
	assert.Equal(t, OutcomeConfirmed, resp.Results[0].Outcome)

	// Остатков нет, слот просто занят
	assert.Empty(t, f.slots.created)
	assert.Equal(t, domain.SlotBooked, f.slots.slots[42].State)
}

func TestConfirmVisit_AlreadyConfirmedIsNoOp(t *testing.T) {
	f := newFixture()
	f.addSlotWithVisit(domain.SlotAvailable, domain.VisitRequested, 30, 60)

	_, err := f.uc.Execute(context.Background(), &Request{VisitIDs: []int64{101}})
	require.NoError(t, err)
	require.Len(t, f.slots.created, 2)

	// Повторное подтверждение не разбивает слот второй раз
	resp, err := f.uc.Execute(context.Background(), &Request{VisitIDs: []int64{101}})
	require.NoError(t, err)
	assert.Equal(t, OutcomeAlreadyConfirmed, resp.Results[0].Outcome)
	assert.False(t, resp.HasFailures())
	assert.Len(t, f.slots.created, 2)
}

func TestConfirmVisit_BlockedSlotIsNotSplit(t *testing.T) {
	f := newFixture()
	f.addSlotWithVisit(domain.SlotBlocked, domain.VisitRequested, 30, 60)

	resp, err := f.uc.Execute(context.Background(), &Request{VisitIDs: []int64{101}})
	require.NoError(t, err)
	assert.Equal(t, OutcomeConfirmed, resp.Results[0].Outcome)

	// Заблокированный слот остается как есть, визит все равно подтвержден
	assert.Empty(t, f.slots.created)
	assert.Equal(t, domain.SlotBlocked, f.slots.slots[42].State)
	assert.Equal(t, domain.VisitConfirmed, f.visits.visits[101].State)
}

func TestConfirmVisit_InvalidStates(t *testing.T) {
	for _, state := range []domain.VisitState{domain.VisitCancelled, domain.VisitDone} {
		t.Run(string(state), func(t *testing.T) {
			f := newFixture()
			f.addSlotWithVisit(domain.SlotAvailable, state, 30, 60)

			resp, err := f.uc.Execute(context.Background(), &Request{VisitIDs: []int64{101}})
			require.NoError(t, err)
			assert.Equal(t, OutcomeFailed, resp.Results[0].Outcome)
			assert.ErrorIs(t, resp.Results[0].Err, ErrInvalidState)
		})
	}
}

func TestConfirmVisit_BatchContinuesAfterFailure(t *testing.T) {
	f := newFixture()
	f.addSlotWithVisit(domain.SlotAvailable, domain.VisitRequested, 30, 60)

	resp, err := f.uc.Execute(context.Background(), &Request{VisitIDs: []int64{999, 101}})
	require.NoError(t, err)
	require.Len(t, resp.Results, 2)

	assert.Equal(t, OutcomeFailed, resp.Results[0].Outcome)
	assert.ErrorIs(t, resp.Results[0].Err, ErrVisitNotFound)

	assert.Equal(t, OutcomeConfirmed, resp.Results[1].Outcome)
	assert.True(t, resp.HasFailures())
}
