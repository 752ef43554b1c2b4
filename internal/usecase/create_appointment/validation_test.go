package create_appointment

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validRequest() *Request {
	start := time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)
	return &Request{
		RequesterID: uuid.New(),
		BuildingID:  uuid.New(),
		Room:        "4F-A",
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Purpose:     "office viewing",
		Attendees:   2,
		ContactInfo: "alex@example.com",
	}
}

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *Request) {}},
		{name: "building-level room", mutate: func(r *Request) { r.Room = "" }},
		{name: "missing requester", mutate: func(r *Request) { r.RequesterID = uuid.Nil }, wantErr: true},
		{name: "missing building", mutate: func(r *Request) { r.BuildingID = uuid.Nil }, wantErr: true},
		{name: "zero start", mutate: func(r *Request) { r.StartTime = time.Time{} }, wantErr: true},
		{name: "end before start", mutate: func(r *Request) { r.EndTime = r.StartTime.Add(-time.Hour) }, wantErr: true},
		{name: "end equals start", mutate: func(r *Request) { r.EndTime = r.StartTime }, wantErr: true},
		{name: "zero attendees", mutate: func(r *Request) { r.Attendees = 0 }, wantErr: true},
		{name: "too many attendees", mutate: func(r *Request) { r.Attendees = 501 }, wantErr: true},
		{name: "blank purpose", mutate: func(r *Request) { r.Purpose = "   " }, wantErr: true},
		{name: "purpose too long", mutate: func(r *Request) { r.Purpose = strings.Repeat("x", 1001) }, wantErr: true},
		{name: "blank contact", mutate: func(r *Request) { r.ContactInfo = "" }, wantErr: true},
		{name: "room too long", mutate: func(r *Request) { r.Room = strings.Repeat("r", 101) }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			err := validateRequest(req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateNotInPast(t *testing.T) {
	now := time.Date(2026, 3, 16, 15, 0, 0, 0, time.UTC)

	// Earlier today is still accepted; the comparison is by calendar day
	assert.NoError(t, validateNotInPast(now.Add(-2*time.Hour), now))
	assert.NoError(t, validateNotInPast(now.Add(24*time.Hour), now))
	assert.ErrorIs(t, validateNotInPast(now.Add(-24*time.Hour), now), ErrInvalidDate)
}
