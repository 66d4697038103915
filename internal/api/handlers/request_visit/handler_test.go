package request_visit

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createVisit "github.com/sgasoft/SGA-VisitService/internal/usecase/create_visit"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	gotReq *createVisit.Request
	resp   *createVisit.Response
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createVisit.Request) (*createVisit.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func doRequest(t *testing.T, uc *fakeUseCase, propertyID string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/properties/"+propertyID+"/visit-requests", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"propertyId": propertyID})

	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, req)
	return rec
}

func TestRequestVisitHandler_Created(t *testing.T) {
	start := time.Date(2026, 10, 15, 8, 30, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &createVisit.Response{
		ID:             101,
		PropertyID:     3,
		AgentID:        7,
		CustomerID:     12,
		SlotID:         42,
		StartAt:        start,
		EndAt:          start.Add(time.Hour),
		LocalDate:      "2026-10-15",
		LocalStartTime: "10:30",
		LocalEndTime:   "11:30",
		Timezone:       "Europe/Madrid",
		State:          "requested",
	}}

	rec := doRequest(t, uc, "3", map[string]interface{}{
		"slotId":    42,
		"startTime": "10:30",
		"endTime":   "11:30",
		"timezone":  "Europe/Madrid",
		"customer":  map[string]string{"name": "Ana", "email": "ana@example.com"},
	})

	assert.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(3), uc.gotReq.PropertyID)
	assert.Equal(t, int64(42), uc.gotReq.SlotID)
	require.NotNil(t, uc.gotReq.Customer)
	assert.Equal(t, "ana@example.com", uc.gotReq.Customer.Email)

	var resp VisitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "10:30", resp.LocalStartTime)
	assert.Equal(t, "requested", resp.State)
}

func TestRequestVisitHandler_ValidationErrorsAsList(t *testing.T) {
	uc := &fakeUseCase{err: createVisit.ValidationErrors{
		{Code: createVisit.CodeTimeRequired, Detail: "start time is required"},
		{Code: createVisit.CodeAgentBusy, Detail: "agent 7 is busy"},
	}}

	rec := doRequest(t, uc, "3", map[string]interface{}{"slotId": 42})

	// Нарушения валидации - это 400 со списком, никогда не 5xx
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error      string   `json:"error"`
		Violations []string `json:"violations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{
		"не указано время начала визита",
		"агент занят в выбранное время",
	}, resp.Violations)
}

func TestRequestVisitHandler_InvalidPropertyID(t *testing.T) {
	rec := doRequest(t, &fakeUseCase{}, "abc", map[string]interface{}{"slotId": 42})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestVisitHandler_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: createVisit.ErrInternal}
	rec := doRequest(t, uc, "3", map[string]interface{}{"slotId": 42})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRequestVisitHandler_MalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/properties/3/visit-requests", bytes.NewReader([]byte("{not json")))
	req = mux.SetURLVars(req, map[string]string{"propertyId": "3"})

	rec := httptest.NewRecorder()
	NewHandler(&fakeUseCase{}, nopLogger{}).Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
