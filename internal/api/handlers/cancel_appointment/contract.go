package cancel_appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/Tsolgiun/office-plus-booking/internal/auth"
	"github.com/Tsolgiun/office-plus-booking/internal/service/appointments/models"
)

type AppointmentService interface {
	Cancel(ctx context.Context, id uuid.UUID, req *models.CancelAppointmentRequest, caller auth.Identity) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
