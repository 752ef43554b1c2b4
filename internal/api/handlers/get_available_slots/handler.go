package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/Tsolgiun/office-plus-booking/internal/api/handlers"
	getAvailableSlots "github.com/Tsolgiun/office-plus-booking/internal/usecase/get_available_slots"
)

const (
	msgInvalidBuildingID = "invalid building ID"
	msgInvalidDate       = "invalid or missing date, expected YYYY-MM-DD"
	msgBuildingNotFound  = "building not found"
	msgStoreUnavailable  = "availability is temporarily unknown, please retry"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/buildings/{buildingId}/available-slots?date=YYYY-MM-DD&room=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	buildingID, err := uuid.Parse(vars["buildingId"])
	if err != nil {
		h.logger.Warn("GET /buildings/{id}/available-slots - Invalid building ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBuildingID)
		return
	}

	query := r.URL.Query()

	// An absent room parameter means the building-wide view; an empty
	// one targets the building-level room.
	var room *string
	if query.Has("room") {
		value := query.Get("room")
		room = &value
	}

	useCaseReq, err := ToUseCaseRequest(buildingID, room, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /buildings/{id}/available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrBuildingNotFound):
			h.logger.Warn("GET /buildings/{id}/available-slots - Building not found: building=%s", buildingID)
			handlers.RespondNotFound(w, msgBuildingNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /buildings/{id}/available-slots - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, getAvailableSlots.ErrStoreUnavailable):
			h.logger.Error("GET /buildings/{id}/available-slots - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgStoreUnavailable)

		default:
			h.logger.Error("GET /buildings/{id}/available-slots - Failed: building=%s, error=%v", buildingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /buildings/{id}/available-slots - %d slots for building=%s", len(result.Slots), buildingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
