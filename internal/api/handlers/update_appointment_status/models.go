package update_appointment_status

import "github.com/Tsolgiun/office-plus-booking/internal/service/appointments/models"

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ToServiceRequest converts to the service model.
func (r *UpdateStatusRequest) ToServiceRequest() *models.UpdateStatusRequest {
	return &models.UpdateStatusRequest{Status: r.Status}
}
