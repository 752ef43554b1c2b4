package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tsolgiun/office-plus-booking/internal/domain"
	buildingRepo "github.com/Tsolgiun/office-plus-booking/internal/infra/storage/building"
)

// UseCase computes the bookable hourly slots for one building and day.
//
// The result is exactly the complement of the blocked hours within
// operating hours, deterministic for a fixed snapshot of appointments.
// It carries no promise the slot is still free at booking time; that is
// what the commit-time re-check in create_appointment is for.
type UseCase struct {
	appointmentRepo AppointmentRepository
	buildingRepo    BuildingRepository
	hours           domain.OperatingHours
	logger          Logger
}

// NewUseCase creates the availability usecase.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	buildingRepo BuildingRepository,
	hours domain.OperatingHours,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		buildingRepo:    buildingRepo,
		hours:           hours,
		logger:          logger,
	}
}

// Execute runs the availability query.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: building=%s, room=%v, date=%s",
		req.BuildingID, roomForLog(req.Room), req.Date.Format(domain.DateFormat))

	// 1. Validate the request
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. The building must exist
	if _, err := uc.buildingRepo.GetByID(ctx, req.BuildingID); err != nil {
		if errors.Is(err, buildingRepo.ErrBuildingNotFound) {
			uc.logger.Warn("GetAvailableSlots: building id=%s not found", req.BuildingID)
			return nil, ErrBuildingNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get building id=%s: %v", req.BuildingID, err)
		return nil, fmt.Errorf("%w: failed to get building: %v", ErrStoreUnavailable, err)
	}

	// 3. Fetch the active appointments intersecting the day.
	// A nil Room means the building-wide view: every active appointment
	// of the building blocks; with a room set only that room's do.
	dayStart, dayEnd := dayBounds(req.Date)
	filter := domain.BuildingAppointmentsFilter{
		BuildingID:      req.BuildingID,
		Room:            req.Room,
		From:            &dayStart,
		To:              &dayEnd,
		IncludeInactive: false,
	}

	appointments, err := uc.appointmentRepo.GetByBuildingWithFilter(ctx, filter)
	if err != nil {
		// Fail closed: a store failure must never read as a free day
		uc.logger.Error("GetAvailableSlots: failed to get appointments for building=%s: %v", req.BuildingID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrStoreUnavailable, err)
	}

	// 4. Generate the candidates and drop the blocked hours
	candidates := generateDaySlots(uc.hours)
	slots := filterFreeSlots(candidates, req.Date, appointments)

	uc.logger.Info("GetAvailableSlots: %d/%d slots free for building=%s, date=%s",
		len(slots), len(candidates), req.BuildingID, req.Date.Format(domain.DateFormat))

	return &Response{
		BuildingID: req.BuildingID,
		Room:       req.Room,
		Date:       req.Date,
		Slots:      slots,
	}, nil
}

func roomForLog(room *string) string {
	if room == nil {
		return "<all>"
	}
	if *room == "" {
		return "<building-level>"
	}
	return *room
}
