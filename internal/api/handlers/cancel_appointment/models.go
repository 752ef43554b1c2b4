package cancel_appointment

import "github.com/Tsolgiun/office-plus-booking/internal/service/appointments/models"

// CancelAppointmentRequest HTTP request model
type CancelAppointmentRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// ToServiceRequest converts to the service model.
func (r *CancelAppointmentRequest) ToServiceRequest() *models.CancelAppointmentRequest {
	return &models.CancelAppointmentRequest{CancellationReason: r.CancellationReason}
}
