package repository

import (
	"context"
	"time"

	"parking-allocator/internal/domain/reservation"
	"parking-allocator/internal/infra"
	"parking-allocator/internal/pkg/workcal"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

func (r *ReservationRepository) FindInRange(ctx context.Context, first, last workcal.Date) ([]reservation.Reservation, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT user_id, reservation_date
		   FROM reservations
		  WHERE reservation_date BETWEEN $1 AND $2
		  ORDER BY reservation_date, user_id`,
		first.In(time.UTC), last.In(time.UTC))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations in range", err)
	}
	defer rows.Close()

	var out []reservation.Reservation
	for rows.Next() {
		var (
			userID uuid.UUID
			date   time.Time
		)
		if err := rows.Scan(&userID, &date); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		out = append(out, reservation.New(userID, workcal.DateOf(date)))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}
	return out, nil
}

func (r *ReservationRepository) Replace(ctx context.Context, first, last workcal.Date, reservations []reservation.Reservation) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`DELETE FROM reservations WHERE reservation_date BETWEEN $1 AND $2`,
		first.In(time.UTC), last.In(time.UTC)); err != nil {
		return infra.WrapRepoErr("failed to clear reservations in range", err)
	}

	for _, res := range reservations {
		if _, err := tx.Exec(ctx,
			`INSERT INTO reservations (user_id, reservation_date) VALUES ($1, $2)`,
			res.UserID, res.Date.In(time.UTC)); err != nil {
			return infra.WrapRepoErr("failed to insert reservation", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit reservation replace", err)
	}
	return nil
}
