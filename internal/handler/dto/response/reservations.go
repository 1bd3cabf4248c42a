package response

import (
	"parking-allocator/internal/domain/reservation"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	UserID uuid.UUID `json:"user_id"`
	Date   string    `json:"date"`
}

func NewReservationResponses(reservations []reservation.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(reservations))
	for _, res := range reservations {
		out = append(out, ReservationResponse{
			UserID: res.UserID,
			Date:   res.Date.String(),
		})
	}
	return out
}
