package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tsolgiun/office-plus-booking/internal/domain"
	buildingRepo "github.com/Tsolgiun/office-plus-booking/internal/infra/storage/building"
	"github.com/Tsolgiun/office-plus-booking/pkg/ptr"
)

// Fakes

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
	lastFilter   domain.BuildingAppointmentsFilter
}

func (f *fakeAppointmentRepo) GetByBuildingWithFilter(_ context.Context, filter domain.BuildingAppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	return f.appointments, nil
}

type fakeBuildingRepo struct {
	buildings map[uuid.UUID]*domain.Building
	err       error
}

func (f *fakeBuildingRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Building, error) {
	if f.err != nil {
		return nil, f.err
	}
	if b, ok := f.buildings[id]; ok {
		return b, nil
	}
	return nil, buildingRepo.ErrBuildingNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Helpers

var (
	testDay        = time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	testBuildingID = uuid.MustParse("77777777-7777-7777-7777-777777777777")
	defaultHours   = domain.OperatingHours{OpenHour: domain.DefaultOpenHour, CloseHour: domain.DefaultCloseHour}
)

func at(h int) time.Time { return testDay.Add(time.Duration(h) * time.Hour) }

func appointment(status domain.AppointmentStatus, startHour, endHour int) *domain.Appointment {
	return &domain.Appointment{
		ID:          uuid.New(),
		BuildingID:  testBuildingID,
		RequesterID: uuid.New(),
		StartTime:   at(startHour),
		EndTime:     at(endHour),
		Status:      status,
	}
}

func newTestUseCase(appointments ...*domain.Appointment) (*UseCase, *fakeAppointmentRepo) {
	apptRepo := &fakeAppointmentRepo{appointments: appointments}
	bldgRepo := &fakeBuildingRepo{buildings: map[uuid.UUID]*domain.Building{
		testBuildingID: {ID: testBuildingID, OwnerID: uuid.New(), Name: "Harbor Tower"},
	}}
	return NewUseCase(apptRepo, bldgRepo, defaultHours, nopLogger{}), apptRepo
}

func slotValues(slots []domain.Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.Value
	}
	return out
}

// Tests

func TestExecute_EmptyDayReturnsAllOperatingHours(t *testing.T) {
	uc, _ := newTestUseCase()

	resp, err := uc.Execute(context.Background(), &Request{BuildingID: testBuildingID, Date: testDay})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 15)
	assert.Equal(t, "7-8", resp.Slots[0].Value)
	assert.Equal(t, "21-22", resp.Slots[14].Value)
	assert.Equal(t, "7:00 - 8:00", resp.Slots[0].Label)
}

func TestExecute_PendingAndConfirmedBlock(t *testing.T) {
	uc, _ := newTestUseCase(
		appointment(domain.StatusPending, 9, 10),
		appointment(domain.StatusConfirmed, 14, 16),
	)

	resp, err := uc.Execute(context.Background(), &Request{BuildingID: testBuildingID, Date: testDay})

	require.NoError(t, err)
	values := slotValues(resp.Slots)
	assert.Len(t, resp.Slots, 12)
	assert.NotContains(t, values, "9-10")
	assert.NotContains(t, values, "14-15")
	assert.NotContains(t, values, "15-16")
	assert.Contains(t, values, "8-9")
	assert.Contains(t, values, "16-17")
}

func TestExecute_InactiveStatusesDoNotBlock(t *testing.T) {
	uc, _ := newTestUseCase(
		appointment(domain.StatusCancelled, 9, 10),
		appointment(domain.StatusRejected, 11, 12),
		appointment(domain.StatusCompleted, 13, 14),
	)

	resp, err := uc.Execute(context.Background(), &Request{BuildingID: testBuildingID, Date: testDay})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 15)
}

func TestExecute_BoundaryTouchingDoesNotBlock(t *testing.T) {
	// 12:00-13:00 is taken; 11-12 and 13-14 only touch it
	uc, _ := newTestUseCase(appointment(domain.StatusConfirmed, 12, 13))

	resp, err := uc.Execute(context.Background(), &Request{BuildingID: testBuildingID, Date: testDay})

	require.NoError(t, err)
	values := slotValues(resp.Slots)
	assert.NotContains(t, values, "12-13")
	assert.Contains(t, values, "11-12")
	assert.Contains(t, values, "13-14")
}

func TestExecute_MultiHourAppointmentBlocksEveryTouchedSlot(t *testing.T) {
	// 9:30-11:30 cuts across three hourly slots
	appt := appointment(domain.StatusConfirmed, 9, 11)
	appt.StartTime = at(9).Add(30 * time.Minute)
	appt.EndTime = at(11).Add(30 * time.Minute)
	uc, _ := newTestUseCase(appt)

	resp, err := uc.Execute(context.Background(), &Request{BuildingID: testBuildingID, Date: testDay})

	require.NoError(t, err)
	values := slotValues(resp.Slots)
	assert.NotContains(t, values, "9-10")
	assert.NotContains(t, values, "10-11")
	assert.NotContains(t, values, "11-12")
	assert.Contains(t, values, "8-9")
	assert.Contains(t, values, "12-13")
}

func TestExecute_Deterministic(t *testing.T) {
	uc, _ := newTestUseCase(
		appointment(domain.StatusPending, 8, 9),
		appointment(domain.StatusConfirmed, 17, 19),
	)
	req := &Request{BuildingID: testBuildingID, Date: testDay}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}

func TestExecute_ConfirmedViewingHidesItsSlot(t *testing.T) {
	// One confirmed viewing 10:00-11:00 leaves 14 of the 15 slots
	uc, _ := newTestUseCase(appointment(domain.StatusConfirmed, 10, 11))

	resp, err := uc.Execute(context.Background(), &Request{BuildingID: testBuildingID, Date: testDay})

	require.NoError(t, err)
	assert.Len(t, resp.Slots, 14)
	assert.NotContains(t, slotValues(resp.Slots), "10-11")
}

func TestExecute_RoomFilterPassedToStore(t *testing.T) {
	uc, apptRepo := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{BuildingID: testBuildingID, Room: ptr.Ptr("4F-A"), Date: testDay})

	require.NoError(t, err)
	require.NotNil(t, apptRepo.lastFilter.Room)
	assert.Equal(t, "4F-A", *apptRepo.lastFilter.Room)
	require.NotNil(t, apptRepo.lastFilter.From)
	require.NotNil(t, apptRepo.lastFilter.To)
	assert.Equal(t, at(0), *apptRepo.lastFilter.From)
	assert.Equal(t, at(24), *apptRepo.lastFilter.To)
	assert.False(t, apptRepo.lastFilter.IncludeInactive)
}

func TestExecute_BuildingNotFound(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{BuildingID: uuid.New(), Date: testDay})

	assert.ErrorIs(t, err, ErrBuildingNotFound)
}

func TestExecute_StoreFailureFailsClosed(t *testing.T) {
	apptRepo := &fakeAppointmentRepo{err: errors.New("connection refused")}
	bldgRepo := &fakeBuildingRepo{buildings: map[uuid.UUID]*domain.Building{
		testBuildingID: {ID: testBuildingID},
	}}
	uc := NewUseCase(apptRepo, bldgRepo, defaultHours, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BuildingID: testBuildingID, Date: testDay})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestExecute_InvalidRequest(t *testing.T) {
	uc, _ := newTestUseCase()

	_, err := uc.Execute(context.Background(), &Request{Date: testDay})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BuildingID: testBuildingID})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
