package appointments

import (
	"context"

	"github.com/google/uuid"

	"github.com/Tsolgiun/office-plus-booking/internal/domain"
)

// AppointmentRepository is the appointment store interface the service
// consumes.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	GetByRequesterID(ctx context.Context, requesterID uuid.UUID, status *domain.AppointmentStatus) ([]*domain.Appointment, error)
	GetByBuildingWithFilter(ctx context.Context, filter domain.BuildingAppointmentsFilter) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error
	Cancel(ctx context.Context, id uuid.UUID, reason string) error
}

// BuildingRepository resolves building ownership for authorization.
type BuildingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Building, error)
}

// Logger is the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
