package get_appointment

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/Tsolgiun/office-plus-booking/internal/api/handlers"
	"github.com/Tsolgiun/office-plus-booking/internal/auth"
	"github.com/Tsolgiun/office-plus-booking/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "invalid appointment ID"
	msgNotFound             = "appointment not found"
	msgForbidden            = "access denied"
	msgStoreUnavailable     = "appointment store is temporarily unavailable, please retry"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.FromContext(r.Context())
	if err != nil {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["appointmentId"])
	if err != nil {
		h.logger.Warn("GET /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	result, err := h.service.GetByID(r.Context(), appointmentID, caller)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{id} - Not found: appointment=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /appointments/{id} - Access denied: appointment=%s, user=%s",
				appointmentID, caller.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrStoreUnavailable):
			h.logger.Error("GET /appointments/{id} - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /appointments/{id} - Failed: appointment=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromServiceAppointment(result))
}
