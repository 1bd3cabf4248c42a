package repository

import (
	"context"
	"time"

	"parking-allocator/internal/domain/schedule"
	"parking-allocator/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ScheduleRepository struct {
	pool *pgxpool.Pool
}

func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{pool: pool}
}

func (r *ScheduleRepository) FindAll(ctx context.Context) ([]schedule.Schedule, error) {
	rows, err := r.pool.Query(ctx, `SELECT task, next_run FROM schedules ORDER BY task`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find schedules", err)
	}
	defer rows.Close()

	var out []schedule.Schedule
	for rows.Next() {
		var (
			rawTask string
			nextRun time.Time
		)
		if err := rows.Scan(&rawTask, &nextRun); err != nil {
			return nil, infra.WrapRepoErr("failed to scan schedule row", err)
		}
		task, err := schedule.ParseTaskType(rawTask)
		if err != nil {
			// Leftover rows from removed tasks are skipped, not fatal.
			continue
		}
		out = append(out, schedule.Schedule{Task: task, NextRun: nextRun})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read schedule rows", err)
	}
	return out, nil
}

func (r *ScheduleRepository) Update(ctx context.Context, s schedule.Schedule) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO schedules (task, next_run)
		 VALUES ($1, $2)
		 ON CONFLICT (task)
		 DO UPDATE SET next_run = EXCLUDED.next_run, updated_at = NOW()`,
		string(s.Task), s.NextRun)
	if err != nil {
		return infra.WrapRepoErr("failed to save schedule", err)
	}
	return nil
}
