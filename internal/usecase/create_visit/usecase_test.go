package create_visit

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgasoft/SGA-VisitService/internal/domain"
	slotRepo "github.com/sgasoft/SGA-VisitService/internal/infra/storage/slot"
	"github.com/sgasoft/SGA-VisitService/internal/integrations/contactservice"
	"github.com/sgasoft/SGA-VisitService/pkg/ptr"
	"github.com/sgasoft/SGA-VisitService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeSlotRepo struct {
	slots map[int64]*domain.VisitSlot
}

func (r *fakeSlotRepo) GetByID(_ context.Context, id int64) (*domain.VisitSlot, error) {
	slot, ok := r.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	copied := *slot
	return &copied, nil
}

type fakeVisitRepo struct {
	nextID int64
	visits []*domain.Visit
}

func (r *fakeVisitRepo) Create(_ context.Context, v *domain.Visit) (*domain.Visit, error) {
	r.nextID++
	created := *v
	created.ID = r.nextID
	created.CreatedAt = time.Now().UTC()
	created.UpdatedAt = created.CreatedAt
	r.visits = append(r.visits, &created)
	return &created, nil
}

func (r *fakeVisitRepo) ListOverlappingByAgent(
	_ context.Context, agentID int64, startAt, endAt time.Time, states []domain.VisitState,
) ([]*domain.Visit, error) {
	blocking := make(map[domain.VisitState]bool, len(states))
	for _, s := range states {
		blocking[s] = true
	}

	var result []*domain.Visit
	for _, v := range r.visits {
		if v.AgentID == agentID && blocking[v.State] && domain.Overlaps(v.StartAt, v.EndAt, startAt, endAt) {
			result = append(result, v)
		}
	}
	return result, nil
}

type fakeContactClient struct {
	contactID int64
	lastReq   *contactservice.EnsureContactRequest
	err       error
}

func (c *fakeContactClient) EnsureContact(_ context.Context, req *contactservice.EnsureContactRequest) (*contactservice.Contact, error) {
	c.lastReq = req
	if c.err != nil {
		return nil, c.err
	}
	return &contactservice.Contact{ID: c.contactID, Name: req.Name, Email: req.Email}, nil
}

type fixture struct {
	uc       *UseCase
	slots    *fakeSlotRepo
	visits   *fakeVisitRepo
	contacts *fakeContactClient
}

func newFixture(defaultTimezone string) *fixture {
	slots := &fakeSlotRepo{slots: map[int64]*domain.VisitSlot{}}
	visits := &fakeVisitRepo{}
	contacts := &fakeContactClient{contactID: 500}
	uc := NewUseCase(slots, visits, contacts, fakeTxManager{}, defaultTimezone, nopLogger{})
	return &fixture{uc: uc, slots: slots, visits: visits, contacts: contacts}
}

// Слот 15 октября 08:00-10:00 UTC, то есть 10:00-12:00 по Мадриду (CEST)
func (f *fixture) addSlot(id int64, state domain.SlotState) *domain.VisitSlot {
	slot := &domain.VisitSlot{
		ID:         id,
		AgentID:    7,
		PropertyID: 3,
		StartAt:    time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC),
		EndAt:      time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC),
		State:      state,
	}
	f.slots.slots[id] = slot
	return slot
}

func validRequest() *Request {
	return &Request{
		PropertyID: 3,
		SlotID:     42,
		CustomerID: 12,
		Timezone:   "Europe/Madrid",
		StartTime:  "10:30",
		EndTime:    "11:30",
	}
}

func violationCodes(t *testing.T, err error) []ViolationCode {
	t.Helper()
	var violations ValidationErrors
	require.ErrorAs(t, err, &violations)
	codes := make([]ViolationCode, len(violations))
	for i, v := range violations {
		codes[i] = v.Code
	}
	return codes
}

func TestCreateVisit_Success(t *testing.T) {
	f := newFixture("UTC")
	f.addSlot(42, domain.SlotAvailable)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// 10:30-11:30 по Мадриду = 08:30-09:30 UTC
	assert.Equal(t, time.Date(2026, 10, 15, 8, 30, 0, 0, time.UTC), resp.StartAt)
	assert.Equal(t, time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC), resp.EndAt)
	assert.Equal(t, "2026-10-15", resp.LocalDate)
	assert.Equal(t, "10:30", resp.LocalStartTime.String())
	assert.Equal(t, "11:30", resp.LocalEndTime.String())
	assert.Equal(t, "Europe/Madrid", resp.Timezone)
	assert.Equal(t, string(domain.VisitRequested), resp.State)

	// Агент и недвижимость скопированы со слота
	assert.Equal(t, int64(7), resp.AgentID)
	assert.Equal(t, int64(3), resp.PropertyID)
	assert.Equal(t, int64(12), resp.CustomerID)
	assert.Equal(t, int64(42), resp.SlotID)

	require.Len(t, f.visits.visits, 1)
	assert.Equal(t, domain.VisitRequested, f.visits.visits[0].State)
}

func TestCreateVisit_DefaultEndProposal(t *testing.T) {
	t.Run("One Hour After Start", func(t *testing.T) {
		f := newFixture("UTC")
		f.addSlot(42, domain.SlotAvailable)

		req := validRequest()
		req.Timezone = "UTC"
		req.StartTime = "08:00"
		req.EndTime = ""

		resp, err := f.uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC), resp.EndAt)
	})

	t.Run("Clamped To Slot End", func(t *testing.T) {
		f := newFixture("UTC")
		f.addSlot(42, domain.SlotAvailable)

		req := validRequest()
		req.Timezone = "UTC"
		req.StartTime = "09:30"
		req.EndTime = ""

		resp, err := f.uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC), resp.EndAt)
	})
}

func TestCreateVisit_AnonymousCustomer(t *testing.T) {
	f := newFixture("UTC")
	f.addSlot(42, domain.SlotAvailable)

	req := validRequest()
	req.CustomerID = 0
	req.Customer = &CustomerInput{Name: "Ana García", Email: "ana@example.com", Phone: "+34600000000"}

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(500), resp.CustomerID)
	require.NotNil(t, f.contacts.lastReq)
	assert.Equal(t, "ana@example.com", f.contacts.lastReq.Email)
}

func TestCreateVisit_ContactServiceFailure(t *testing.T) {
	f := newFixture("UTC")
	f.addSlot(42, domain.SlotAvailable)
	f.contacts.err = errors.New("connection refused")

	req := validRequest()
	req.CustomerID = 0
	req.Customer = &CustomerInput{Name: "Ana", Email: "ana@example.com"}

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, f.visits.visits)
}

func TestCreateVisit_CollectsAllViolations(t *testing.T) {
	f := newFixture("UTC")

	req := &Request{
		PropertyID: 3,
		SlotID:     0,
		CustomerID: 0,
		Customer:   nil,
		StartTime:  "",
		Notes:      ptr.Ptr(string(make([]byte, domain.MaxNotesLength+1))),
	}

	_, err := f.uc.Execute(context.Background(), req)
	codes := violationCodes(t, err)

	assert.Contains(t, codes, CodeSlotRequired)
	assert.Contains(t, codes, CodeTimeRequired)
	assert.Contains(t, codes, CodeNameRequired)
	assert.Contains(t, codes, CodeEmailRequired)
	assert.Contains(t, codes, CodeNotesTooLong)
	assert.Empty(t, f.visits.visits)
}

func TestCreateVisit_FormatViolations(t *testing.T) {
	f := newFixture("UTC")

	req := validRequest()
	req.StartTime = "25:99"
	req.Timezone = "Mars/Olympus"

	_, err := f.uc.Execute(context.Background(), req)
	codes := violationCodes(t, err)

	assert.Contains(t, codes, CodeInvalidTimeFormat)
	assert.Contains(t, codes, CodeUnknownTimezone)

	var violations ValidationErrors
	require.ErrorAs(t, err, &violations)
	assert.True(t, violations.HasFormatErrors())
}

func TestCreateVisit_SlotViolations(t *testing.T) {
	t.Run("Slot Not Found", func(t *testing.T) {
		f := newFixture("UTC")
		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.Contains(t, violationCodes(t, err), CodeSlotNotFound)
	})

	t.Run("Wrong Property", func(t *testing.T) {
		f := newFixture("UTC")
		f.addSlot(42, domain.SlotAvailable)

		req := validRequest()
		req.PropertyID = 99

		_, err := f.uc.Execute(context.Background(), req)
		assert.Contains(t, violationCodes(t, err), CodeSlotWrongProperty)
	})

	t.Run("Wrong Agent", func(t *testing.T) {
		f := newFixture("UTC")
		f.addSlot(42, domain.SlotAvailable)

		req := validRequest()
		req.AgentID = 99

		_, err := f.uc.Execute(context.Background(), req)
		assert.Contains(t, violationCodes(t, err), CodeSlotWrongAgent)
	})

	t.Run("Not Bookable", func(t *testing.T) {
		f := newFixture("UTC")
		f.addSlot(42, domain.SlotBooked)

		_, err := f.uc.Execute(context.Background(), validRequest())
		assert.Contains(t, violationCodes(t, err), CodeSlotNotBookable)
	})
}

func TestCreateVisit_WindowViolations(t *testing.T) {
	t.Run("End Before Start", func(t *testing.T) {
		f := newFixture("UTC")
		f.addSlot(42, domain.SlotAvailable)

		req := validRequest()
		req.Timezone = "UTC"
		req.StartTime = "09:00"
		req.EndTime = "08:30"

		_, err := f.uc.Execute(context.Background(), req)
		assert.Contains(t, violationCodes(t, err), CodeEndBeforeStart)
	})

	t.Run("Outside Slot", func(t *testing.T) {
		f := newFixture("UTC")
		f.addSlot(42, domain.SlotAvailable)

		req := validRequest()
		req.Timezone = "UTC"
		req.StartTime = "09:30"
		req.EndTime = "10:30"

		_, err := f.uc.Execute(context.Background(), req)
		assert.Contains(t, violationCodes(t, err), CodeOutsideSlot)
	})
}

func TestCreateVisit_AgentBusy(t *testing.T) {
	f := newFixture("UTC")
	f.addSlot(42, domain.SlotAvailable)

	req := validRequest()
	req.Timezone = "UTC"
	req.StartTime = "08:30"
	req.EndTime = "09:30"

	// Первая заявка проходит, вторая на то же окно упирается в занятость
	_, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), req)
	assert.Contains(t, violationCodes(t, err), CodeAgentBusy)
	assert.Len(t, f.visits.visits, 1)
}

func TestCreateVisit_TouchingVisitsDoNotConflict(t *testing.T) {
	f := newFixture("UTC")
	f.addSlot(42, domain.SlotAvailable)

	first := validRequest()
	first.Timezone = "UTC"
	first.StartTime = "08:00"
	first.EndTime = "09:00"

	second := validRequest()
	second.Timezone = "UTC"
	second.StartTime = "09:00"
	second.EndTime = "10:00"

	_, err := f.uc.Execute(context.Background(), first)
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), second)
	require.NoError(t, err)
	assert.Len(t, f.visits.visits, 2)
}

// Случайные окна внутри слота: заявка проходит, когда не пересекается ни с
// одним принятым визитом, и отклоняется по занятости агента в противном
// случае. Соседние окна встык пересечением не считаются
func TestCreateVisit_RandomizedNoDoubleBooking(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	f := newFixture("UTC")
	f.addSlot(42, domain.SlotAvailable)
	slotStart := time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)

	type window struct {
		start, end time.Time
	}

	// Окно с шагом 5 минут, длиной 5-60 минут, целиком внутри слота
	randomWindow := func() window {
		const slotMinutes = 120
		length := (1 + rng.Intn(12)) * 5
		offset := rng.Intn((slotMinutes-length)/5+1) * 5
		start := slotStart.Add(time.Duration(offset) * time.Minute)
		return window{start: start, end: start.Add(time.Duration(length) * time.Minute)}
	}

	var accepted []window
	for i := 0; i < 300; i++ {
		w := randomWindow()

		conflicts := false
		for _, a := range accepted {
			if domain.Overlaps(a.start, a.end, w.start, w.end) {
				conflicts = true
				break
			}
		}

		req := validRequest()
		req.Timezone = "UTC"
		req.StartTime = types.NewTimeString(w.start)
		req.EndTime = types.NewTimeString(w.end)

		_, err := f.uc.Execute(context.Background(), req)
		if conflicts {
			require.Errorf(t, err, "iteration %d: window %s-%s overlaps an accepted visit",
				i, req.StartTime, req.EndTime)
			assert.Contains(t, violationCodes(t, err), CodeAgentBusy)
		} else {
			require.NoErrorf(t, err, "iteration %d: window %s-%s is free",
				i, req.StartTime, req.EndTime)
			accepted = append(accepted, w)
		}
	}

	require.NotEmpty(t, accepted)
	assert.Len(t, f.visits.visits, len(accepted))
}

func TestCreateVisit_RejectedRequestDoesNotCreateContact(t *testing.T) {
	t.Run("Slot Not Bookable", func(t *testing.T) {
		f := newFixture("UTC")
		f.addSlot(42, domain.SlotBooked)

		req := validRequest()
		req.CustomerID = 0
		req.Customer = &CustomerInput{Name: "Ana", Email: "ana@example.com"}

		_, err := f.uc.Execute(context.Background(), req)
		assert.Contains(t, violationCodes(t, err), CodeSlotNotBookable)
		assert.Nil(t, f.contacts.lastReq)
	})

	t.Run("Agent Busy", func(t *testing.T) {
		f := newFixture("UTC")
		f.addSlot(42, domain.SlotAvailable)

		first := validRequest()
		first.Timezone = "UTC"
		first.StartTime = "08:30"
		first.EndTime = "09:30"
		_, err := f.uc.Execute(context.Background(), first)
		require.NoError(t, err)

		second := validRequest()
		second.Timezone = "UTC"
		second.StartTime = "08:30"
		second.EndTime = "09:30"
		second.CustomerID = 0
		second.Customer = &CustomerInput{Name: "Ana", Email: "ana@example.com"}

		_, err = f.uc.Execute(context.Background(), second)
		assert.Contains(t, violationCodes(t, err), CodeAgentBusy)
		assert.Nil(t, f.contacts.lastReq)
	})
}

func TestCreateVisit_CancelledVisitDoesNotBlock(t *testing.T) {
	f := newFixture("UTC")
	f.addSlot(42, domain.SlotAvailable)

	f.visits.visits = append(f.visits.visits, &domain.Visit{
		ID:      900,
		AgentID: 7,
		StartAt: time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC),
		State:   domain.VisitCancelled,
	})

	req := validRequest()
	req.Timezone = "UTC"
	req.StartTime = "08:30"
	req.EndTime = "09:30"

	_, err := f.uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}
