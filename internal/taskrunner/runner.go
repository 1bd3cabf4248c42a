package taskrunner

import (
	"context"
	"log/slog"
	"time"

	"parking-allocator/internal/domain/schedule"
	"parking-allocator/internal/pkg/clock"
	"parking-allocator/internal/pkg/errs"
	"parking-allocator/internal/usecase"
)

// Task is a recurring job owned by the runner. NextRunAfter lets each task
// define its own cadence; the runner never hard-codes one.
type Task interface {
	Type() schedule.TaskType
	Run(ctx context.Context) error
	NextRunAfter(now time.Time) time.Time
}

// Runner polls the schedule store and executes whatever is due. A failed
// run leaves its schedule untouched so the next poll retries it; only a
// successful run advances NextRun.
type Runner struct {
	scheduleRepo usecase.ScheduleRepository
	tasks        []Task
	clock        clock.Clock
	pollInterval time.Duration
	logger       *slog.Logger
}

func NewRunner(
	scheduleRepo usecase.ScheduleRepository,
	tasks []Task,
	clock clock.Clock,
	pollInterval time.Duration,
	logger *slog.Logger,
) *Runner {
	return &Runner{
		scheduleRepo: scheduleRepo,
		tasks:        tasks,
		clock:        clock,
		pollInterval: pollInterval,
		logger:       logger,
	}
}

// Start blocks until ctx is cancelled.
func (r *Runner) Start(ctx context.Context) {
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	r.logger.Info("task runner started", "pollInterval", r.pollInterval.String(), "tasks", len(r.tasks))
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("task runner stopped")
			return
		case <-ticker.C:
			if err := r.RunPending(ctx); err != nil {
				r.logger.Error("task poll failed", "error", err)
			}
		}
	}
}

// RunPending executes every task whose schedule is due. Tasks without a
// stored schedule are bootstrapped to their next natural run time without
// executing, so a fresh deployment does not fire everything at once.
func (r *Runner) RunPending(ctx context.Context) error {
	schedules, err := r.scheduleRepo.FindAll(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to load schedules")
	}
	byTask := make(map[schedule.TaskType]schedule.Schedule, len(schedules))
	for _, s := range schedules {
		byTask[s.Task] = s
	}

	now := r.clock.Now()
	for _, task := range r.tasks {
		sched, known := byTask[task.Type()]
		if !known {
			sched = schedule.Schedule{Task: task.Type(), NextRun: task.NextRunAfter(now)}
			if err := r.scheduleRepo.Update(ctx, sched); err != nil {
				r.logger.Error("failed to bootstrap schedule", "task", string(task.Type()), "error", err)
			}
			continue
		}
		if !sched.IsDue(now, 0) {
			continue
		}

		started := r.clock.Now()
		if err := task.Run(ctx); err != nil {
			// Schedule not advanced: retried on the next poll.
			r.logger.Error("task run failed",
				"task", string(task.Type()), "error", err)
			continue
		}

		sched.NextRun = task.NextRunAfter(r.clock.Now())
		if err := r.scheduleRepo.Update(ctx, sched); err != nil {
			r.logger.Error("failed to advance schedule", "task", string(task.Type()), "error", err)
			continue
		}
		r.logger.Debug("task run complete",
			"task", string(task.Type()),
			"duration", r.clock.Now().Sub(started).String(),
			"nextRun", sched.NextRun.Format(time.RFC3339))
	}
	return nil
}
