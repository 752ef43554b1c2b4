package create_appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Tsolgiun/office-plus-booking/internal/domain"
)

// AppointmentRepository is the slice of the appointment store this
// usecase needs.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByBuildingWithFilter(ctx context.Context, filter domain.BuildingAppointmentsFilter) ([]*domain.Appointment, error)
}

// BuildingRepository checks that the requested building exists.
type BuildingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Building, error)
}

// TransactionManager runs the conflict re-check and insert as one
// serializable unit.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface used by the usecase.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
