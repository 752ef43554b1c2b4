package domain

import (
	"time"

	"github.com/google/uuid"
)

// Building represents a listed building. Only the fields the booking
// flow needs live here; the listing catalogue is managed elsewhere.
type Building struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
	Name    string
	Address string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy reports whether userID owns the building.
func (b *Building) IsOwnedBy(userID uuid.UUID) bool {
	return b.OwnerID == userID
}
