package response

import (
	"parking-allocator/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	Role              string    `json:"role"`
	CommuteDistanceKm *float64  `json:"commute_distance_km,omitempty"`
	IsTeamLeader      bool      `json:"is_team_leader"`
}

func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:                u.ID,
		Email:             u.Email.Value(),
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		Role:              u.Role.String(),
		CommuteDistanceKm: u.CommuteDistanceKm,
		IsTeamLeader:      u.IsTeamLeader,
	}
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}
