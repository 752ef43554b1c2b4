package cancel_appointment

import (
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/Tsolgiun/office-plus-booking/internal/api/handlers"
	"github.com/Tsolgiun/office-plus-booking/internal/auth"
	"github.com/Tsolgiun/office-plus-booking/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "invalid appointment ID"
	msgInvalidRequestBody   = "invalid request body"
	msgNotFound             = "appointment not found"
	msgForbidden            = "caller may not cancel this appointment"
	msgNotCancellable       = "appointment can no longer be cancelled"
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

// Handle PATCH /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.FromContext(r.Context())
	if err != nil {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["appointmentId"])
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	// The reason is optional; an empty body is a cancellation without one
	var req CancelAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Cancel(r.Context(), appointmentID, req.ToServiceRequest(), caller)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Not found: appointment=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrInvalidTransition):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Not cancellable: appointment=%s", appointmentID)
			handlers.RespondConflict(w, handlers.CodeInvalidTransition, msgNotCancellable)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Access denied: appointment=%s, user=%s",
				appointmentID, caller.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, appointments.ErrStoreUnavailable):
			h.logger.Error("PATCH /appointments/{id}/cancel - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("PATCH /appointments/{id}/cancel - Failed: appointment=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/cancel - Appointment %s cancelled by user=%s", appointmentID, caller.UserID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromServiceAppointment(result))
}
