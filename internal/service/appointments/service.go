package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Tsolgiun/office-plus-booking/internal/auth"
	"github.com/Tsolgiun/office-plus-booking/internal/domain"
	appointmentRepo "github.com/Tsolgiun/office-plus-booking/internal/infra/storage/appointment"
	buildingRepo "github.com/Tsolgiun/office-plus-booking/internal/infra/storage/building"
	"github.com/Tsolgiun/office-plus-booking/internal/service/appointments/models"
)

// Service carries the appointment operations that do not need the
// booking transaction: reads, cancellation and the status lifecycle.
type Service struct {
	appointmentRepo AppointmentRepository
	buildingRepo    BuildingRepository
	logger          Logger
}

// NewService creates the appointments service.
func NewService(
	appointmentRepo AppointmentRepository,
	buildingRepo BuildingRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		buildingRepo:    buildingRepo,
		logger:          logger,
	}
}

// GetByID fetches one appointment. Visible to its requester and to the
// owner of the booked building.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, caller auth.Identity) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%s for user=%s", id, caller.UserID)

	appt, err := s.getAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	isRequester, isOwner, err := s.callerRelation(ctx, appt, caller)
	if err != nil {
		return nil, err
	}
	if !isRequester && !isOwner {
		s.logger.Warn("GetByID: access denied for user=%s to appointment id=%s", caller.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainAppointment(appt), nil
}

// GetUserAppointments returns the caller's own appointment history,
// optionally filtered by status.
func (s *Service) GetUserAppointments(ctx context.Context, req *models.GetUserAppointmentsRequest, caller auth.Identity) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetUserAppointments: fetching appointments for user=%s, status=%v", req.UserID, req.Status)

	// History is private to its requester
	if req.UserID != caller.UserID {
		s.logger.Warn("GetUserAppointments: access denied for user=%s to history of user=%s", caller.UserID, req.UserID)
		return nil, ErrAccessDenied
	}

	var status *domain.AppointmentStatus
	if req.Status != nil {
		converted, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserAppointments: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		status = &converted
	}

	list, err := s.appointmentRepo.GetByRequesterID(ctx, req.UserID, status)
	if err != nil {
		s.logger.Error("GetUserAppointments: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserAppointments - repository error: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("GetUserAppointments: fetched %d appointments for user=%s", len(list), req.UserID)
	return models.FromDomainAppointmentList(list), nil
}

// GetBuildingAppointments returns a building's appointments for its
// owner, with optional day/room/status filters.
func (s *Service) GetBuildingAppointments(ctx context.Context, req *models.GetBuildingAppointmentsRequest, caller auth.Identity) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetBuildingAppointments: fetching appointments for building=%s, user=%s", req.BuildingID, caller.UserID)

	if err := s.checkBuildingOwner(ctx, req.BuildingID, caller); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetBuildingAppointments: invalid filter for building=%s: %v", req.BuildingID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	list, err := s.appointmentRepo.GetByBuildingWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetBuildingAppointments: repository error for building=%s: %v", req.BuildingID, err)
		return nil, fmt.Errorf("%w: GetBuildingAppointments - repository error: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("GetBuildingAppointments: fetched %d appointments for building=%s", len(list), req.BuildingID)
	return models.FromDomainAppointmentList(list), nil
}

// TransitionStatus drives an appointment along the lifecycle graph.
// The edge must exist (pending -> confirmed|rejected|cancelled,
// confirmed -> completed|cancelled) and the caller must hold the
// capability for it; terminal statuses have no outgoing edges. On
// success only the persisted status changes, nothing cascades.
func (s *Service) TransitionStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest, caller auth.Identity) (*models.AppointmentResponse, error) {
	s.logger.Info("TransitionStatus: appointment id=%s to status=%s by user=%s", id, req.Status, caller.UserID)

	target, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("TransitionStatus: invalid status=%s for appointment id=%s", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	appt, err := s.getAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeTransition(ctx, appt, target, caller); err != nil {
		return nil, err
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, target); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("TransitionStatus: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: TransitionStatus - repository error: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("TransitionStatus: appointment id=%s moved %s -> %s", id, appt.Status, target)

	appt.Status = target
	return models.FromDomainAppointment(appt), nil
}

// Cancel is the cancellation edge of the lifecycle with a recorded
// reason. The requester may withdraw a pending or confirmed appointment;
// the building owner may call one off.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID, req *models.CancelAppointmentRequest, caller auth.Identity) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%s by user=%s", id, caller.UserID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
	}

	appt, err := s.getAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.authorizeTransition(ctx, appt, domain.StatusCancelled, caller); err != nil {
		return nil, err
	}

	if err := s.appointmentRepo.Cancel(ctx, id, req.CancellationReason); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrStoreUnavailable, err)
	}

	s.logger.Info("Cancel: appointment id=%s cancelled", id)

	appt.Status = domain.StatusCancelled
	if req.CancellationReason != "" {
		appt.CancellationReason = &req.CancellationReason
	}
	return models.FromDomainAppointment(appt), nil
}

// Helpers

func (s *Service) getAppointment(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("appointment id=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("repository error for appointment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrStoreUnavailable, err)
	}
	return appt, nil
}

// authorizeTransition rejects the transition if the edge is illegal for
// the current status, then if the caller lacks the capability for it.
func (s *Service) authorizeTransition(ctx context.Context, appt *domain.Appointment, target domain.AppointmentStatus, caller auth.Identity) error {
	if !domain.CanTransition(appt.Status, target) {
		s.logger.Warn("transition %s -> %s not permitted for appointment id=%s", appt.Status, target, appt.ID)
		return ErrInvalidTransition
	}

	isRequester, isOwner, err := s.callerRelation(ctx, appt, caller)
	if err != nil {
		return err
	}

	if !domain.TransitionAllowed(caller.Role, isRequester, isOwner, target) {
		s.logger.Warn("user=%s (role=%s) may not set appointment id=%s to %s", caller.UserID, caller.Role, appt.ID, target)
		return ErrAccessDenied
	}

	return nil
}

// checkBuildingOwner verifies that the caller is an owner and owns the
// building. The building-wide appointment list is for its owner only.
func (s *Service) checkBuildingOwner(ctx context.Context, buildingID uuid.UUID, caller auth.Identity) error {
	if !caller.IsOwnerRole() {
		s.logger.Warn("user=%s (role=%s) may not list appointments of building id=%s", caller.UserID, caller.Role, buildingID)
		return ErrAccessDenied
	}

	building, err := s.buildingRepo.GetByID(ctx, buildingID)
	if err != nil {
		if errors.Is(err, buildingRepo.ErrBuildingNotFound) {
			s.logger.Warn("building id=%s not found", buildingID)
			return ErrBuildingNotFound
		}
		s.logger.Error("failed to get building id=%s: %v", buildingID, err)
		return fmt.Errorf("%w: failed to get building: %v", ErrStoreUnavailable, err)
	}

	if !building.IsOwnedBy(caller.UserID) {
		s.logger.Warn("user=%s does not own building id=%s", caller.UserID, buildingID)
		return ErrAccessDenied
	}

	return nil
}

// callerRelation resolves how the caller relates to the appointment:
// whether they created it, and whether they own the booked building.
// Ownership is only looked up for owner-role callers.
func (s *Service) callerRelation(ctx context.Context, appt *domain.Appointment, caller auth.Identity) (isRequester, isOwner bool, err error) {
	isRequester = appt.RequesterID == caller.UserID

	if !caller.IsOwnerRole() {
		return isRequester, false, nil
	}

	building, err := s.buildingRepo.GetByID(ctx, appt.BuildingID)
	if err != nil {
		if errors.Is(err, buildingRepo.ErrBuildingNotFound) {
			s.logger.Warn("building id=%s not found for appointment id=%s", appt.BuildingID, appt.ID)
			return isRequester, false, ErrBuildingNotFound
		}
		s.logger.Error("failed to get building id=%s: %v", appt.BuildingID, err)
		return isRequester, false, fmt.Errorf("%w: failed to get building: %v", ErrStoreUnavailable, err)
	}

	return isRequester, building.IsOwnedBy(caller.UserID), nil
}
