package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tsolgiun/office-plus-booking/internal/auth"
	"github.com/Tsolgiun/office-plus-booking/internal/domain"
	appointmentRepo "github.com/Tsolgiun/office-plus-booking/internal/infra/storage/appointment"
	buildingRepo "github.com/Tsolgiun/office-plus-booking/internal/infra/storage/building"
	"github.com/Tsolgiun/office-plus-booking/internal/service/appointments/models"
	"github.com/Tsolgiun/office-plus-booking/pkg/ptr"
)

// Fakes

type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]*domain.Appointment
	lastFilter   domain.BuildingAppointmentsFilter
}

func newFakeAppointmentRepo(appts ...*domain.Appointment) *fakeAppointmentRepo {
	m := make(map[uuid.UUID]*domain.Appointment, len(appts))
	for _, a := range appts {
		m[a.ID] = a
	}
	return &fakeAppointmentRepo{appointments: m}
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Appointment, error) {
	if a, ok := f.appointments[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

func (f *fakeAppointmentRepo) GetByRequesterID(_ context.Context, requesterID uuid.UUID, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, a := range f.appointments {
		if a.RequesterID != requesterID {
			continue
		}
		if status != nil && a.Status != *status {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) GetByBuildingWithFilter(_ context.Context, filter domain.BuildingAppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	var out []*domain.Appointment
	for _, a := range f.appointments {
		if a.BuildingID == filter.BuildingID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(_ context.Context, id uuid.UUID, status domain.AppointmentStatus) error {
	a, ok := f.appointments[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	a.Status = status
	return nil
}

func (f *fakeAppointmentRepo) Cancel(_ context.Context, id uuid.UUID, reason string) error {
	a, ok := f.appointments[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	a.Status = domain.StatusCancelled
	if reason != "" {
		a.CancellationReason = &reason
	}
	now := time.Now()
	a.CancelledAt = &now
	return nil
}

type fakeBuildingRepo struct {
	buildings map[uuid.UUID]*domain.Building
}

func (f *fakeBuildingRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Building, error) {
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
	ownerID     = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	tenantID    = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	strangerID  = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	buildingID  = uuid.MustParse("77777777-7777-7777-7777-777777777777")
	otherBldgID = uuid.MustParse("88888888-8888-8888-8888-888888888888")
)

var (
	asOwner    = auth.Identity{UserID: ownerID, Role: domain.RoleOwner}
	asTenant   = auth.Identity{UserID: tenantID, Role: domain.RoleTenant}
	asStranger = auth.Identity{UserID: strangerID, Role: domain.RoleTenant}
)

func testAppointment(status domain.AppointmentStatus) *domain.Appointment {
	start := time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC)
	return &domain.Appointment{
		ID:          uuid.New(),
		BuildingID:  buildingID,
		RequesterID: tenantID,
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Purpose:     "office viewing",
		Attendees:   2,
		ContactInfo: "alex@example.com",
		Status:      status,
	}
}

func newTestService(appts ...*domain.Appointment) (*Service, *fakeAppointmentRepo) {
	apptRepo := newFakeAppointmentRepo(appts...)
	bldgRepo := &fakeBuildingRepo{buildings: map[uuid.UUID]*domain.Building{
		buildingID:  {ID: buildingID, OwnerID: ownerID, Name: "Harbor Tower"},
		otherBldgID: {ID: otherBldgID, OwnerID: strangerID, Name: "Dockside Annex"},
	}}
	return NewService(apptRepo, bldgRepo, nopLogger{}), apptRepo
}

func transition(t *testing.T, svc *Service, id uuid.UUID, target string, caller auth.Identity) (*models.AppointmentResponse, error) {
	t.Helper()
	return svc.TransitionStatus(context.Background(), id, &models.UpdateStatusRequest{Status: target}, caller)
}

// Lifecycle tests

func TestTransitionStatus_OwnerConfirmsPending(t *testing.T) {
	appt := testAppointment(domain.StatusPending)
	svc, repo := newTestService(appt)

	resp, err := transition(t, svc, appt.ID, "confirmed", asOwner)

	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, domain.StatusConfirmed, repo.appointments[appt.ID].Status)
}

func TestTransitionStatus_OwnerRejectsPending(t *testing.T) {
	appt := testAppointment(domain.StatusPending)
	svc, _ := newTestService(appt)

	resp, err := transition(t, svc, appt.ID, "rejected", asOwner)

	require.NoError(t, err)
	assert.Equal(t, "rejected", resp.Status)
}

func TestTransitionStatus_OwnerCompletesConfirmed(t *testing.T) {
	appt := testAppointment(domain.StatusConfirmed)
	svc, _ := newTestService(appt)

	resp, err := transition(t, svc, appt.ID, "completed", asOwner)

	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
}

func TestTransitionStatus_TenantCannotConfirmOwnAppointment(t *testing.T) {
	appt := testAppointment(domain.StatusPending)
	svc, repo := newTestService(appt)

	_, err := transition(t, svc, appt.ID, "confirmed", asTenant)

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, domain.StatusPending, repo.appointments[appt.ID].Status)
}

func TestTransitionStatus_UnrelatedOwnerDenied(t *testing.T) {
	appt := testAppointment(domain.StatusPending)
	appt.BuildingID = otherBldgID
	svc, _ := newTestService(appt)

	_, err := transition(t, svc, appt.ID, "confirmed", asOwner)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestTransitionStatus_PendingCannotComplete(t *testing.T) {
	appt := testAppointment(domain.StatusPending)
	svc, _ := newTestService(appt)

	_, err := transition(t, svc, appt.ID, "completed", asOwner)

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransitionStatus_TerminalStatesAbsorb(t *testing.T) {
	targets := []string{"pending", "confirmed", "cancelled", "completed", "rejected"}

	for _, from := range []domain.AppointmentStatus{
		domain.StatusCancelled, domain.StatusCompleted, domain.StatusRejected,
	} {
		for _, target := range targets {
			appt := testAppointment(from)
			svc, repo := newTestService(appt)

			_, err := transition(t, svc, appt.ID, target, asOwner)

			assert.ErrorIs(t, err, ErrInvalidTransition,
				"%s -> %s must be refused", from, target)
			assert.Equal(t, from, repo.appointments[appt.ID].Status,
				"status must be unchanged after refused %s -> %s", from, target)
		}
	}
}

func TestTransitionStatus_EdgeCheckedBeforeCapability(t *testing.T) {
	// An illegal edge reads as invalid_transition even for a caller who
	// could not have driven it anyway
	appt := testAppointment(domain.StatusCompleted)
	svc, _ := newTestService(appt)

	_, err := transition(t, svc, appt.ID, "confirmed", asStranger)

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransitionStatus_UnknownStatus(t *testing.T) {
	appt := testAppointment(domain.StatusPending)
	svc, _ := newTestService(appt)

	_, err := transition(t, svc, appt.ID, "archived", asOwner)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestTransitionStatus_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := transition(t, svc, uuid.New(), "confirmed", asOwner)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

// Cancellation tests

func TestCancel_RequesterWithdraws(t *testing.T) {
	appt := testAppointment(domain.StatusPending)
	svc, repo := newTestService(appt)

	resp, err := svc.Cancel(context.Background(), appt.ID,
		&models.CancelAppointmentRequest{CancellationReason: "plans changed"}, asTenant)

	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	require.NotNil(t, resp.CancellationReason)
	assert.Equal(t, "plans changed", *resp.CancellationReason)
	assert.Equal(t, domain.StatusCancelled, repo.appointments[appt.ID].Status)
}

func TestCancel_OwnerCallsOffConfirmed(t *testing.T) {
	appt := testAppointment(domain.StatusConfirmed)
	svc, _ := newTestService(appt)

	resp, err := svc.Cancel(context.Background(), appt.ID, &models.CancelAppointmentRequest{}, asOwner)

	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
}

func TestCancel_StrangerDenied(t *testing.T) {
	appt := testAppointment(domain.StatusPending)
	svc, _ := newTestService(appt)

	_, err := svc.Cancel(context.Background(), appt.ID, &models.CancelAppointmentRequest{}, asStranger)

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_TerminalStatusRefused(t *testing.T) {
	appt := testAppointment(domain.StatusCompleted)
	svc, _ := newTestService(appt)

	_, err := svc.Cancel(context.Background(), appt.ID, &models.CancelAppointmentRequest{}, asTenant)

	assert.ErrorIs(t, err, ErrInvalidTransition)
}

// Read tests

func TestGetByID_VisibleToRequesterAndOwner(t *testing.T) {
	appt := testAppointment(domain.StatusPending)
	svc, _ := newTestService(appt)

	_, err := svc.GetByID(context.Background(), appt.ID, asTenant)
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), appt.ID, asOwner)
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), appt.ID, asStranger)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetUserAppointments_SelfOnly(t *testing.T) {
	appt := testAppointment(domain.StatusPending)
	svc, _ := newTestService(appt)

	resp, err := svc.GetUserAppointments(context.Background(),
		&models.GetUserAppointmentsRequest{UserID: tenantID}, asTenant)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	resp, err = svc.GetUserAppointments(context.Background(),
		&models.GetUserAppointmentsRequest{UserID: tenantID, Status: ptr.Ptr("confirmed")}, asTenant)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)

	_, err = svc.GetUserAppointments(context.Background(),
		&models.GetUserAppointmentsRequest{UserID: tenantID}, asStranger)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetBuildingAppointments_OwnerOnly(t *testing.T) {
	appt := testAppointment(domain.StatusPending)
	svc, _ := newTestService(appt)

	resp, err := svc.GetBuildingAppointments(context.Background(),
		&models.GetBuildingAppointmentsRequest{BuildingID: buildingID}, asOwner)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	_, err = svc.GetBuildingAppointments(context.Background(),
		&models.GetBuildingAppointmentsRequest{BuildingID: buildingID}, asTenant)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetBuildingAppointments_DayFilterExpandsToWindow(t *testing.T) {
	appt := testAppointment(domain.StatusPending)
	svc, repo := newTestService(appt)

	day := time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)
	_, err := svc.GetBuildingAppointments(context.Background(),
		&models.GetBuildingAppointmentsRequest{BuildingID: buildingID, Date: &day}, asOwner)

	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.From)
	require.NotNil(t, repo.lastFilter.To)
	assert.Equal(t, day, *repo.lastFilter.From)
	assert.Equal(t, day.AddDate(0, 0, 1), *repo.lastFilter.To)
}
