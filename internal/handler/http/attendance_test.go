package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffloop/hr-portal-go/internal/domain/attendance"
	"github.com/staffloop/hr-portal-go/internal/handler/http/response"
)

type fakeAttendanceService struct {
	markResult attendance.AttendanceResponse
	markErr    error
	listResult []attendance.AttendanceResponse
	listErr    error

	lastFilter attendance.ListFilter
}

func (s *fakeAttendanceService) Mark(_ context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return s.markResult, s.markErr
}

func (s *fakeAttendanceService) Checkout(_ context.Context, id string, req attendance.CheckoutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if s.markErr != nil {
		return attendance.AttendanceResponse{}, s.markErr
	}
	result := s.markResult
	result.ID = id
	result.CheckOut = &req.CheckOut
	return result, nil
}

func (s *fakeAttendanceService) List(_ context.Context, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	s.lastFilter = filter
	return s.listResult, s.listErr
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var envelope response.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	return envelope
}

func TestAttendanceMark_Created(t *testing.T) {
	checkOut := "17:30"
	hours := 8.5
	svc := &fakeAttendanceService{markResult: attendance.AttendanceResponse{
		ID:           "att-1",
		EmployeeID:   "EMP001",
		EmployeeName: "Jane Dev",
		Date:         "2024-03-01",
		CheckIn:      "09:00",
		CheckOut:     &checkOut,
		Status:       "present",
		WorkingHours: &hours,
	}}
	handler := NewAttendanceHandler(svc)

	body := `{"employee_id":"EMP001","date":"2024-03-01","check_in":"09:00","check_out":"17:30","status":"present"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Mark(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Attendance marked successfully", envelope.Message)
}

func TestAttendanceMark_DuplicateConflict(t *testing.T) {
	svc := &fakeAttendanceService{markErr: attendance.ErrAlreadyMarked}
	handler := NewAttendanceHandler(svc)

	body := `{"employee_id":"EMP001","date":"2024-03-01","check_in":"09:00","status":"present"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Mark(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "CONFLICT", envelope.Error.Code)
}

func TestAttendanceMark_ValidationDetails(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	body := `{"employee_id":"","date":"03/01/2024","check_in":"9am","status":"working"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Mark(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	envelope := decodeEnvelope(t, rec)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
	assert.Contains(t, envelope.Error.Details, "employee_id")
	assert.Contains(t, envelope.Error.Details, "date")
	assert.Contains(t, envelope.Error.Details, "check_in")
	assert.Contains(t, envelope.Error.Details, "status")
}

func TestAttendanceMark_MalformedBody(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/attendance", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.Mark(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func withIDParam(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestAttendanceCheckout_RecordsHours(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{markResult: attendance.AttendanceResponse{
		EmployeeID: "EMP001",
		Date:       "2024-03-01",
		CheckIn:    "09:00",
		Status:     "present",
	}})

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/attendance/"+id+"?check_out=17:30", nil)
	rec := httptest.NewRecorder()

	handler.Checkout(rec, withIDParam(req, id))

	assert.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Check-out recorded successfully", envelope.Message)
}

func TestAttendanceCheckout_MalformedIDReadsAsMissing(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	req := httptest.NewRequest(http.MethodPut, "/api/v1/attendance/not-a-uuid?check_out=17:30", nil)
	rec := httptest.NewRecorder()

	handler.Checkout(rec, withIDParam(req, "not-a-uuid"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAttendanceCheckout_MissingTimeRejected(t *testing.T) {
	handler := NewAttendanceHandler(&fakeAttendanceService{})

	id := uuid.NewString()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/attendance/"+id, nil)
	rec := httptest.NewRecorder()

	handler.Checkout(rec, withIDParam(req, id))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestAttendanceList_PassesQueryFilter(t *testing.T) {
	svc := &fakeAttendanceService{listResult: []attendance.AttendanceResponse{}}
	handler := NewAttendanceHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/attendance?employee_id=EMP001&date=2024-03-01", nil)
	rec := httptest.NewRecorder()

	handler.List(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "EMP001", svc.lastFilter.EmployeeID)
	assert.Equal(t, "2024-03-01", svc.lastFilter.Date)
}
