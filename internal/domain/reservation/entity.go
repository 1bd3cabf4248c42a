package reservation

import (
	"parking-allocator/internal/pkg/workcal"

	"github.com/google/uuid"
)

// Reservation is a team-leader-assigned guaranteed space for a user and
// date. A reserved request skips fairness competition entirely and sorts
// ahead of every unreserved request.
type Reservation struct {
	UserID uuid.UUID
	Date   workcal.Date
}

func New(userID uuid.UUID, date workcal.Date) Reservation {
	return Reservation{UserID: userID, Date: date}
}

// Index builds a lookup over (user, date) pairs.
func Index(reservations []Reservation) map[Reservation]struct{} {
	idx := make(map[Reservation]struct{}, len(reservations))
	for _, r := range reservations {
		idx[r] = struct{}{}
	}
	return idx
}
