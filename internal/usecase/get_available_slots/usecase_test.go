package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgasoft/SGA-VisitService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSlotRepo struct {
	slots []*domain.VisitSlot
}

func (r *fakeSlotRepo) ListAvailableByProperty(_ context.Context, propertyID int64) ([]*domain.VisitSlot, error) {
	var result []*domain.VisitSlot
	for _, s := range r.slots {
		if s.PropertyID == propertyID && s.State == domain.SlotAvailable {
			result = append(result, s)
		}
	}
	return result, nil
}

func newSlot(id int64, startHourUTC int) *domain.VisitSlot {
	return &domain.VisitSlot{
		ID:         id,
		AgentID:    7,
		PropertyID: 3,
		StartAt:    time.Date(2026, 10, 15, startHourUTC, 0, 0, 0, time.UTC),
		EndAt:      time.Date(2026, 10, 15, startHourUTC+2, 0, 0, 0, time.UTC),
		State:      domain.SlotAvailable,
	}
}

func TestGetAvailableSlots_InvalidProperty(t *testing.T) {
	uc := NewUseCase(&fakeSlotRepo{}, "UTC", nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{PropertyID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetAvailableSlots_UnknownTimezone(t *testing.T) {
	uc := NewUseCase(&fakeSlotRepo{}, "UTC", nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{PropertyID: 3, Timezone: "Mars/Olympus"})
	assert.ErrorIs(t, err, ErrUnknownTimezone)
}

func TestGetAvailableSlots_LocalizedView(t *testing.T) {
	repo := &fakeSlotRepo{slots: []*domain.VisitSlot{newSlot(42, 8)}}
	uc := NewUseCase(repo, "UTC", nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{PropertyID: 3, Timezone: "Europe/Madrid"})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)

	slot := resp.Slots[0]
	assert.Equal(t, int64(42), slot.ID)

	// UTC-границы не трогаются
	assert.Equal(t, time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC), slot.StartAt)

	// Локальное представление в таймзоне сессии (CEST, UTC+2)
	assert.Equal(t, "2026-10-15", slot.LocalDate)
	assert.Equal(t, "10:00", slot.LocalStartTime.String())
	assert.Equal(t, "12:00", slot.LocalEndTime.String())
	assert.Equal(t, "Агент 7 - 15/10/2026 10:00 → 12:00", slot.Label)

	assert.Equal(t, "Europe/Madrid", resp.Timezone)
}

func TestGetAvailableSlots_DefaultTimezoneFallback(t *testing.T) {
	repo := &fakeSlotRepo{slots: []*domain.VisitSlot{newSlot(42, 8)}}
	uc := NewUseCase(repo, "Europe/Madrid", nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{PropertyID: 3})
	require.NoError(t, err)
	assert.Equal(t, "Europe/Madrid", resp.Timezone)
	assert.Equal(t, "10:00", resp.Slots[0].LocalStartTime.String())
}

func TestGetAvailableSlots_OnlyAvailableReturned(t *testing.T) {
	booked := newSlot(43, 12)
	booked.State = domain.SlotBooked
	repo := &fakeSlotRepo{slots: []*domain.VisitSlot{newSlot(42, 8), booked}}
	uc := NewUseCase(repo, "UTC", nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{PropertyID: 3})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, int64(42), resp.Slots[0].ID)
}
