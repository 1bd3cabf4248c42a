package user

import (
	"github.com/google/uuid"
)

// User is read-only to the allocation engine: it looks up commute distance
// and notification recipients, nothing else. Fields are exported because the
// entity carries no invariants beyond construction.
type User struct {
	ID        uuid.UUID
	Email     Email
	FirstName string
	LastName  string
	Role      Role
	// CommuteDistanceKm is nil when the user has not recorded a commute.
	// Unknown distance is treated as "far away" for sorting priority.
	CommuteDistanceKm *float64
	IsTeamLeader      bool
	IsDeleted         bool
}

func NewUser(email Email, firstName, lastName string, role Role, commuteDistanceKm *float64) (*User, error) {
	if commuteDistanceKm != nil && *commuteDistanceKm < 0 {
		return nil, ErrInvalidDistance
	}
	return &User{
		ID:                uuid.New(),
		Email:             email,
		FirstName:         firstName,
		LastName:          lastName,
		Role:              role,
		CommuteDistanceKm: commuteDistanceKm,
		IsTeamLeader:      role == RoleTeamLeader || role == RoleAdmin,
	}, nil
}

func (u *User) DisplayName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// LivesNearby reports whether the user's commute is at or below the
// configured threshold. Unknown distance counts as far away.
func (u *User) LivesNearby(nearbyDistanceKm float64) bool {
	return u.CommuteDistanceKm != nil && *u.CommuteDistanceKm <= nearbyDistanceKm
}
