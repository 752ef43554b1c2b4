package get_appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/Tsolgiun/office-plus-booking/internal/auth"
	"github.com/Tsolgiun/office-plus-booking/internal/service/appointments/models"
)

type AppointmentService interface {
	GetByID(ctx context.Context, id uuid.UUID, caller auth.Identity) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
