package mark_visit_done

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgasoft/SGA-VisitService/internal/domain"
	visitRepo "github.com/sgasoft/SGA-VisitService/internal/infra/storage/visit"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
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

func newFixture() (*UseCase, *fakeVisitRepo) {
	visits := &fakeVisitRepo{visits: map[int64]*domain.Visit{}}
	return NewUseCase(visits, fakeTxManager{}, nopLogger{}), visits
}

func addVisit(r *fakeVisitRepo, id int64, state domain.VisitState) {
	start := time.Date(2026, 10, 15, 10, 30, 0, 0, time.UTC)
	r.visits[id] = &domain.Visit{
		ID:      id,
		AgentID: 7,
		StartAt: start,
		EndAt:   start.Add(time.Hour),
		State:   state,
	}
}

func TestMarkVisitDone_EmptyBatch(t *testing.T) {
	uc, _ := newFixture()
	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrNoVisitIDs)
}

func TestMarkVisitDone_ConfirmedVisit(t *testing.T) {
	uc, visits := newFixture()
	addVisit(visits, 101, domain.VisitConfirmed)

	resp, err := uc.Execute(context.Background(), &Request{VisitIDs: []int64{101}})
	require.NoError(t, err)
	assert.True(t, resp.Results[0].Done)
	assert.False(t, resp.HasFailures())
	assert.Equal(t, domain.VisitDone, visits.visits[101].State)
}

func TestMarkVisitDone_OnlyConfirmedAllowed(t *testing.T) {
	for _, state := range []domain.VisitState{domain.VisitRequested, domain.VisitCancelled, domain.VisitDone} {
		t.Run(string(state), func(t *testing.T) {
			uc, visits := newFixture()
			addVisit(visits, 101, state)

			resp, err := uc.Execute(context.Background(), &Request{VisitIDs: []int64{101}})
			require.NoError(t, err)
			assert.False(t, resp.Results[0].Done)
			assert.ErrorIs(t, resp.Results[0].Err, ErrInvalidState)
			assert.Equal(t, state, visits.visits[101].State)
		})
	}
}

func TestMarkVisitDone_BatchContinuesAfterFailure(t *testing.T) {
	uc, visits := newFixture()
	addVisit(visits, 101, domain.VisitConfirmed)

	resp, err := uc.Execute(context.Background(), &Request{VisitIDs: []int64{999, 101}})
	require.NoError(t, err)
	require.Len(t, resp.Results, 2)

	assert.ErrorIs(t, resp.Results[0].Err, ErrVisitNotFound)
	assert.True(t, resp.Results[1].Done)
	assert.True(t, resp.HasFailures())
}
