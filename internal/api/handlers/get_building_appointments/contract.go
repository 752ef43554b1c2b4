package get_building_appointments

import (
	"context"

	"github.com/Tsolgiun/office-plus-booking/internal/auth"
	"github.com/Tsolgiun/office-plus-booking/internal/service/appointments/models"
)

type AppointmentService interface {
	GetBuildingAppointments(ctx context.Context, req *models.GetBuildingAppointmentsRequest, caller auth.Identity) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
