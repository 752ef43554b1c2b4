package update_appointment_status

import (
	"context"

	"github.com/google/uuid"

	"github.com/Tsolgiun/office-plus-booking/internal/auth"
	"github.com/Tsolgiun/office-plus-booking/internal/service/appointments/models"
)

type AppointmentService interface {
	TransitionStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest, caller auth.Identity) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
