package create_appointment

import (
	"errors"
	"net/http"

	"github.com/Tsolgiun/office-plus-booking/internal/api/handlers"
	"github.com/Tsolgiun/office-plus-booking/internal/auth"
	createAppointment "github.com/Tsolgiun/office-plus-booking/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgBuildingNotFound   = "building not found"
	msgSlotNotAvailable   = "the requested time slot is no longer available"
	msgInvalidDate        = "appointment date is in the past"
	msgStoreUnavailable   = "appointment store is temporarily unavailable, please retry"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller, err := auth.FromContext(r.Context())
	if err != nil {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(caller)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: requester=%s, building=%s",
				caller.UserID, req.BuildingID)
			handlers.RespondConflict(w, handlers.CodeSlotConflict, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrBuildingNotFound):
			h.logger.Warn("POST /appointments - Building not found: building=%s", req.BuildingID)
			handlers.RespondNotFound(w, msgBuildingNotFound)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Date in the past: requester=%s", caller.UserID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, createAppointment.ErrStoreUnavailable):
			h.logger.Error("POST /appointments - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: requester=%s, error=%v",
				caller.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: id=%s, requester=%s, building=%s",
		result.ID, caller.UserID, req.BuildingID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
