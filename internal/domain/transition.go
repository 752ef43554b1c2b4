package domain

// Role is the caller's role as issued by the identity provider.
type Role string

const (
	RoleTenant Role = "tenant"
	RoleOwner  Role = "owner"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleTenant || r == RoleOwner
}

// CanTransition reports whether the lifecycle graph permits from -> to,
// regardless of who asks. Terminal statuses have no outgoing edges and
// nothing ever re-enters pending.
func CanTransition(from, to AppointmentStatus) bool {
	switch from {
	case StatusPending:
		return to == StatusConfirmed || to == StatusRejected || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCompleted || to == StatusCancelled
	default:
		return false
	}
}

// TransitionAllowed is the capability check for a status transition: it
// decides whether a caller with the given role (and relationship to the
// appointment) may drive it to target. isOwner means the caller owns the
// booked building; isRequester means the caller created the appointment.
// It assumes the edge itself is legal; combine with CanTransition.
func TransitionAllowed(role Role, isRequester, isOwner bool, target AppointmentStatus) bool {
	switch target {
	case StatusConfirmed, StatusRejected, StatusCompleted:
		// owner-side decisions on the building's appointments
		return role == RoleOwner && isOwner
	case StatusCancelled:
		// the requester may withdraw, the building owner may call off
		return isRequester || (role == RoleOwner && isOwner)
	default:
		return false
	}
}
