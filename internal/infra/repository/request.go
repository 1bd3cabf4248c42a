package repository

import (
	"context"
	"time"

	"parking-allocator/internal/domain/request"
	"parking-allocator/internal/infra"
	"parking-allocator/internal/pkg/workcal"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RequestRepository struct {
	pool *pgxpool.Pool
}

func NewRequestRepository(pool *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{pool: pool}
}

func (r *RequestRepository) FindInRange(ctx context.Context, first, last workcal.Date) ([]request.Request, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT user_id, request_date, status
		   FROM requests
		  WHERE request_date BETWEEN $1 AND $2
		  ORDER BY request_date, user_id`,
		first.In(time.UTC), last.In(time.UTC))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find requests in range", err)
	}
	defer rows.Close()

	return scanRequests(rows)
}

func (r *RequestRepository) FindByUserInRange(ctx context.Context, userID uuid.UUID, first, last workcal.Date) ([]request.Request, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT user_id, request_date, status
		   FROM requests
		  WHERE user_id = $1 AND request_date BETWEEN $2 AND $3
		  ORDER BY request_date`,
		userID, first.In(time.UTC), last.In(time.UTC))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find requests by user", err)
	}
	defer rows.Close()

	return scanRequests(rows)
}

func (r *RequestRepository) Upsert(ctx context.Context, requests []request.Request) error {
	if len(requests) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, req := range requests {
		batch.Queue(
			`INSERT INTO requests (user_id, request_date, status)
			 VALUES ($1, $2, $3)
			 ON CONFLICT (user_id, request_date)
			 DO UPDATE SET status = EXCLUDED.status, updated_at = NOW()`,
			req.UserID, req.Date.In(time.UTC), string(req.Status))
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range requests {
		if _, err := results.Exec(); err != nil {
			return infra.WrapRepoErr("failed to upsert requests", err)
		}
	}
	return nil
}

func scanRequests(rows pgx.Rows) ([]request.Request, error) {
	var out []request.Request
	for rows.Next() {
		var (
			userID    uuid.UUID
			date      time.Time
			rawStatus string
		)
		if err := rows.Scan(&userID, &date, &rawStatus); err != nil {
			return nil, infra.WrapRepoErr("failed to scan request row", err)
		}
		status, err := request.ParseStatus(rawStatus)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid request status in storage", err)
		}
		out = append(out, request.Request{
			UserID: userID,
			Date:   workcal.DateOf(date),
			Status: status,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read request rows", err)
	}
	return out, nil
}
