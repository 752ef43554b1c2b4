package building

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/Tsolgiun/office-plus-booking/internal/domain"
	"github.com/Tsolgiun/office-plus-booking/pkg/dbmetrics"
	"github.com/Tsolgiun/office-plus-booking/pkg/psqlbuilder"
)

// Repository reads buildings. The booking service only ever needs
// existence and ownership; the listing catalogue is written elsewhere.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository creates a building repository.
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID fetches a building by id.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Building, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"owner_id",
		"name",
		"address",
		"created_at",
		"updated_at",
	).
		From("buildings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Building
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.OwnerID,
		&b.Name,
		&b.Address,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBuildingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan building: %v", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}
