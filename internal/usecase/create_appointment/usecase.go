package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tsolgiun/office-plus-booking/internal/domain"
	appointmentRepo "github.com/Tsolgiun/office-plus-booking/internal/infra/storage/appointment"
	buildingRepo "github.com/Tsolgiun/office-plus-booking/internal/infra/storage/building"
)

// UseCase validates and persists a new viewing appointment.
//
// The overlap check and the insert run inside one serializable
// transaction, with the candidate rows locked FOR UPDATE: two concurrent
// submissions for intersecting intervals on the same (building, room)
// cannot both commit. The exclusion constraint in the schema backs this
// up at the storage level.
type UseCase struct {
	appointmentRepo AppointmentRepository
	buildingRepo    BuildingRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase creates the booking usecase.
func NewUseCase(
	appointmentRepo AppointmentRepository,
	buildingRepo BuildingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		buildingRepo:    buildingRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider overrides the clock. Tests pin it to a fixed instant.
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute runs the booking submission.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: requester=%s, building=%s, room=%q, interval=[%s, %s)",
		req.RequesterID, req.BuildingID, req.Room,
		req.StartTime.Format("2006-01-02 15:04"), req.EndTime.Format("2006-01-02 15:04"))

	// 1. Validate the submission fields
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Reject appointments in the past
	if err := validateNotInPast(req.StartTime, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	// 3. The building must exist
	if _, err := uc.buildingRepo.GetByID(ctx, req.BuildingID); err != nil {
		if errors.Is(err, buildingRepo.ErrBuildingNotFound) {
			uc.logger.Warn("CreateAppointment: building id=%s not found", req.BuildingID)
			return nil, ErrBuildingNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get building id=%s: %v", req.BuildingID, err)
		return nil, fmt.Errorf("%w: failed to get building: %v", ErrStoreUnavailable, err)
	}

	var result *domain.Appointment

	// 4. Conflict re-check + insert as one atomic unit
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Lock and fetch the active appointments for the conflict
		// domain (building, room) that intersect the requested interval
		filter := domain.BuildingAppointmentsFilter{
			BuildingID:      req.BuildingID,
			Room:            &req.Room,
			From:            &req.StartTime,
			To:              &req.EndTime,
			IncludeInactive: false,
		}

		existing, err := uc.appointmentRepo.GetByBuildingWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrStoreUnavailable, err)
		}

		// 4.2. Authoritative conflict check at commit time
		if hasOverlap(req.StartTime, req.EndTime, existing) {
			uc.logger.Warn("CreateAppointment: interval taken for building=%s, room=%q", req.BuildingID, req.Room)
			return ErrSlotNotAvailable
		}

		// 4.3. Insert with the initial status
		appt := &domain.Appointment{
			BuildingID:  req.BuildingID,
			Room:        req.Room,
			RequesterID: req.RequesterID,
			StartTime:   req.StartTime,
			EndTime:     req.EndTime,
			Purpose:     req.Purpose,
			Attendees:   req.Attendees,
			ContactInfo: req.ContactInfo,
			Status:      domain.StatusPending,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrOverlap) {
				// The exclusion constraint beat us to it
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrStoreUnavailable, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%s with status=%s", result.ID, result.Status)

	return &Response{
		ID:          result.ID,
		BuildingID:  result.BuildingID,
		Room:        result.Room,
		RequesterID: result.RequesterID,
		StartTime:   result.StartTime,
		EndTime:     result.EndTime,
		Purpose:     result.Purpose,
		Attendees:   result.Attendees,
		ContactInfo: result.ContactInfo,
		Status:      string(result.Status),
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
