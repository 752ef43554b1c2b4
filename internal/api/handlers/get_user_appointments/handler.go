package get_user_appointments

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/Tsolgiun/office-plus-booking/internal/api/handlers"
	"github.com/Tsolgiun/office-plus-booking/internal/auth"
	"github.com/Tsolgiun/office-plus-booking/internal/service/appointments"
	"github.com/Tsolgiun/office-plus-booking/internal/service/appointments/models"
)

const (
	msgInvalidUserID    = "invalid user ID"
	msgForbidden        = "appointment history is visible to its owner only"
	msgStoreUnavailable = "appointment store is temporarily unavailable, please retry"
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

// Handle GET /api/v1/users/{userId}/appointments?status=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.FromContext(r.Context())
	if err != nil {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	userID, err := uuid.Parse(mux.Vars(r)["userId"])
	if err != nil {
		h.logger.Warn("GET /users/{id}/appointments - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	req := &models.GetUserAppointmentsRequest{UserID: userID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetUserAppointments(r.Context(), req, caller)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /users/{id}/appointments - Access denied: user=%s, caller=%s", userID, caller.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /users/{id}/appointments - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, appointments.ErrStoreUnavailable):
			h.logger.Error("GET /users/{id}/appointments - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /users/{id}/appointments - Failed: user=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/appointments - Returned %d appointments for user=%s", result.Total, userID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromServiceAppointmentList(result))
}
