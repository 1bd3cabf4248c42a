package request

import (
	"parking-allocator/internal/domain/reservation"
	"parking-allocator/internal/pkg/workcal"

	"github.com/google/uuid"
)

type ReservationEntry struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
	Date   string    `json:"date" binding:"required"`
}

type ReplaceReservationsRequest struct {
	First        string             `json:"first" binding:"required"`
	Last         string             `json:"last" binding:"required"`
	Reservations []ReservationEntry `json:"reservations"`
}

func (r *ReplaceReservationsRequest) ToDomain() (workcal.Date, workcal.Date, []reservation.Reservation, error) {
	first, err := workcal.ParseDate(r.First)
	if err != nil {
		return workcal.Date{}, workcal.Date{}, nil, err
	}
	last, err := workcal.ParseDate(r.Last)
	if err != nil {
		return workcal.Date{}, workcal.Date{}, nil, err
	}

	reservations := make([]reservation.Reservation, 0, len(r.Reservations))
	for _, entry := range r.Reservations {
		d, err := workcal.ParseDate(entry.Date)
		if err != nil {
			return workcal.Date{}, workcal.Date{}, nil, err
		}
		reservations = append(reservations, reservation.New(entry.UserID, d))
	}
	return first, last, reservations, nil
}
