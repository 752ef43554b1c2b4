package create_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tsolgiun/office-plus-booking/internal/api/handlers"
	"github.com/Tsolgiun/office-plus-booking/internal/auth"
	"github.com/Tsolgiun/office-plus-booking/internal/domain"
	createAppointment "github.com/Tsolgiun/office-plus-booking/internal/usecase/create_appointment"
)

type fakeUseCase struct {
	resp *createAppointment.Response
	err  error
	got  *createAppointment.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testCaller = auth.Identity{UserID: uuid.New(), Role: domain.RoleTenant}

func validBody() string {
	return `{
		"buildingId": "77777777-7777-7777-7777-777777777777",
		"room": "4F-A",
		"startTime": "2026-03-16T10:00:00Z",
		"endTime": "2026-03-16T11:00:00Z",
		"purpose": "office viewing",
		"attendees": 2,
		"contactInfo": "alex@example.com"
	}`
}

func doRequest(uc *fakeUseCase, body string, authenticated bool) *httptest.ResponseRecorder {
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	if authenticated {
		req = req.WithContext(auth.WithIdentity(req.Context(), testCaller))
	}
	rec := httptest.NewRecorder()

	h.Handle(rec, req)
	return rec
}

func decodeErrorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp handlers.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error.Code
}

func TestHandle_Created(t *testing.T) {
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &createAppointment.Response{
		ID:          uuid.New(),
		BuildingID:  uuid.MustParse("77777777-7777-7777-7777-777777777777"),
		Room:        "4F-A",
		RequesterID: testCaller.UserID,
		StartTime:   time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC),
		EndTime:     time.Date(2026, 3, 16, 11, 0, 0, 0, time.UTC),
		Purpose:     "office viewing",
		Attendees:   2,
		ContactInfo: "alex@example.com",
		Status:      "pending",
		CreatedAt:   now,
		UpdatedAt:   now,
	}}

	rec := doRequest(uc, validBody(), true)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp AppointmentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, testCaller.UserID.String(), resp.RequesterID)

	// requester comes from the token, not the body
	require.NotNil(t, uc.got)
	assert.Equal(t, testCaller.UserID, uc.got.RequesterID)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		useCaseErr error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "slot conflict",
			useCaseErr: createAppointment.ErrSlotNotAvailable,
			wantStatus: http.StatusConflict,
			wantCode:   handlers.CodeSlotConflict,
		},
		{
			name:       "building not found",
			useCaseErr: createAppointment.ErrBuildingNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   handlers.CodeNotFound,
		},
		{
			name:       "past date",
			useCaseErr: createAppointment.ErrInvalidDate,
			wantStatus: http.StatusBadRequest,
			wantCode:   handlers.CodeValidation,
		},
		{
			name:       "invalid input",
			useCaseErr: createAppointment.ErrInvalidInput,
			wantStatus: http.StatusBadRequest,
			wantCode:   handlers.CodeValidation,
		},
		{
			name:       "store unavailable",
			useCaseErr: createAppointment.ErrStoreUnavailable,
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   handlers.CodeStoreUnavailable,
		},
		{
			name:       "unexpected error",
			useCaseErr: createAppointment.ErrInternal,
			wantStatus: http.StatusInternalServerError,
			wantCode:   handlers.CodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(&fakeUseCase{err: tt.useCaseErr}, validBody(), true)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeErrorCode(t, rec))
		})
	}
}

func TestHandle_Unauthenticated(t *testing.T) {
	rec := doRequest(&fakeUseCase{}, validBody(), false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_MalformedBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "unknown field", body: `{"buildingId": "x", "surprise": 1}`},
		{name: "bad building id", body: `{"buildingId": "nope", "startTime": "2026-03-16T10:00:00Z", "endTime": "2026-03-16T11:00:00Z", "purpose": "p", "contactInfo": "c"}`},
		{name: "bad timestamp", body: `{"buildingId": "77777777-7777-7777-7777-777777777777", "startTime": "tomorrow", "endTime": "2026-03-16T11:00:00Z", "purpose": "p", "contactInfo": "c"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(&fakeUseCase{}, tt.body, true)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, handlers.CodeValidation, decodeErrorCode(t, rec))
		})
	}
}
