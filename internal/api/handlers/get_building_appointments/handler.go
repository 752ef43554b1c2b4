package get_building_appointments

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Tsolgiun/office-plus-booking/internal/api/handlers"
	"github.com/Tsolgiun/office-plus-booking/internal/auth"
	"github.com/Tsolgiun/office-plus-booking/internal/service/appointments"
)

const (
	msgBuildingNotFound = "building not found"
	msgForbidden        = "building appointments are visible to the building owner only"
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

// Handle GET /api/v1/buildings/{buildingId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.FromContext(r.Context())
	if err != nil {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	req, err := parseRequest(mux.Vars(r)["buildingId"], r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /buildings/{id}/appointments - Invalid request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.service.GetBuildingAppointments(r.Context(), req, caller)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrBuildingNotFound):
			h.logger.Warn("GET /buildings/{id}/appointments - Not found: building=%s", req.BuildingID)
			handlers.RespondNotFound(w, msgBuildingNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /buildings/{id}/appointments - Access denied: building=%s, user=%s",
				req.BuildingID, caller.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /buildings/{id}/appointments - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, appointments.ErrStoreUnavailable):
			h.logger.Error("GET /buildings/{id}/appointments - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /buildings/{id}/appointments - Failed: building=%s, error=%v", req.BuildingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /buildings/{id}/appointments - Returned %d appointments for building=%s",
		result.Total, req.BuildingID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromServiceAppointmentList(result))
}
