package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/Tsolgiun/office-plus-booking/internal/domain"
	"github.com/Tsolgiun/office-plus-booking/pkg/dbmetrics"
	"github.com/Tsolgiun/office-plus-booking/pkg/psqlbuilder"
)

// pgExclusionViolation is the SQLSTATE raised by the
// appointments_no_overlap exclusion constraint.
const pgExclusionViolation = "23P01"

var appointmentColumns = []string{
	"id",
	"building_id",
	"room",
	"requester_id",
	"start_time",
	"end_time",
	"purpose",
	"attendees",
	"contact_info",
	"status",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository persists appointments.
type Repository struct {
	db DBExecutor
}

// NewRepository creates an appointment repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new appointment and returns it with the generated id
// and timestamps filled in. If the context carries an open transaction
// the insert runs on it, which is how the booking usecase makes the
// overlap re-check and the insert one atomic step.
//
// The appointments_no_overlap exclusion constraint is the authoritative
// guard against double booking: even a writer that skips the usecase
// cannot commit two active appointments with intersecting intervals for
// the same (building, room). A violation surfaces as ErrOverlap.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if appt.ID == uuid.Nil {
		appt.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"id",
			"building_id",
			"room",
			"requester_id",
			"start_time",
			"end_time",
			"purpose",
			"attendees",
			"contact_info",
			"status",
		).
		Values(
			appt.ID,
			appt.BuildingID,
			appt.Room,
			appt.RequesterID,
			appt.StartTime,
			appt.EndTime,
			appt.Purpose,
			appt.Attendees,
			appt.ContactInfo,
			appt.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)

	if err != nil {
		if isExclusionViolation(err) {
			return nil, ErrOverlap
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID fetches an appointment by id.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetByRequesterID fetches a user's appointment history, optionally
// filtered by status, earliest start first.
func (r *Repository) GetByRequesterID(ctx context.Context, requesterID uuid.UUID, status *domain.AppointmentStatus) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"requester_id": requesterID}).
		OrderBy("start_time ASC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRequesterID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRequesterID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// GetByBuildingWithFilter fetches a building's appointments with
// flexible filtering:
//   - Room: nil means all rooms (the building-wide view)
//   - From/To: appointments whose [start_time, end_time) intersects
//     [From, To); half-open overlap, so an appointment ending exactly
//     at From does not match
//   - Status: exact status; otherwise inactive statuses are excluded
//     unless IncludeInactive is set
//
// Inside a transaction with a bounded window the matched rows are locked
// with FOR UPDATE, which is what the booking usecase relies on for its
// commit-time conflict re-check.
func (r *Repository) GetByBuildingWithFilter(ctx context.Context, filter domain.BuildingAppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"building_id": filter.BuildingID})

	if filter.Room != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room": *filter.Room})
	}

	// Half-open interval intersection with [From, To)
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_time": *filter.To})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"end_time": *filter.From})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	selectBuilder = selectBuilder.OrderBy("start_time ASC")

	// Lock the candidate rows when re-checking availability inside the
	// booking transaction
	if dbmetrics.IsInTransaction(ctx) && filter.From != nil && filter.To != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBuildingWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBuildingWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// UpdateStatus sets the appointment's status.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Cancel marks the appointment cancelled with a reason.
func (r *Repository) Cancel(ctx context.Context, id uuid.UUID, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanning.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.BuildingID,
		&appt.Room,
		&appt.RequesterID,
		&appt.StartTime,
		&appt.EndTime,
		&appt.Purpose,
		&appt.Attendees,
		&appt.ContactInfo,
		&appt.Status,
		&appt.CancellationReason,
		&appt.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

func isExclusionViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgExclusionViolation
	}
	return false
}
