package get_available_slots

import (
	"context"

	"github.com/google/uuid"

	"github.com/Tsolgiun/office-plus-booking/internal/domain"
)

// AppointmentRepository is the slice of the appointment store this
// usecase needs.
type AppointmentRepository interface {
	GetByBuildingWithFilter(ctx context.Context, filter domain.BuildingAppointmentsFilter) ([]*domain.Appointment, error)
}

// BuildingRepository checks that the requested building exists.
type BuildingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Building, error)
}

// Logger is the logging interface used by the usecase.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
