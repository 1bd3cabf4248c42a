package components

import (
	"context"
	"log/slog"
	"time"

	"parking-allocator/internal/pkg/clock"
	"parking-allocator/internal/pkg/config"
	"parking-allocator/internal/taskrunner"
	"parking-allocator/internal/usecase"

	"go.uber.org/fx"
)

const schedulePollInterval = time.Minute

var TaskModule = fx.Module("tasks",
	fx.Provide(
		NewAllocationRunTask,
		usecase.NewDailyNotificationTask,
		usecase.NewWeeklyNotificationTask,
		usecase.NewRequestReminderTask,
		usecase.NewSoftInterruptUpdateTask,
		NewTaskRunner,
	),
	fx.Invoke(startTaskRunner),
)

func NewAllocationRunTask(
	lock usecase.RunLock,
	updater usecase.RequestUpdater,
	notifier usecase.AllocationNotifier,
	cfg config.Config,
	logger *slog.Logger,
) *usecase.AllocationRunTask {
	return usecase.NewAllocationRunTask(lock, updater, notifier, cfg.Allocation.RunInterval, logger)
}

func NewTaskRunner(
	scheduleRepo usecase.ScheduleRepository,
	allocationRun *usecase.AllocationRunTask,
	dailyNotification *usecase.DailyNotificationTask,
	weeklyNotification *usecase.WeeklyNotificationTask,
	requestReminder *usecase.RequestReminderTask,
	softInterruptUpdate *usecase.SoftInterruptUpdateTask,
	clock clock.Clock,
	logger *slog.Logger,
) *taskrunner.Runner {
	tasks := []taskrunner.Task{
		allocationRun,
		dailyNotification,
		weeklyNotification,
		requestReminder,
		softInterruptUpdate,
	}
	return taskrunner.NewRunner(scheduleRepo, tasks, clock, schedulePollInterval, logger)
}

func startTaskRunner(lc fx.Lifecycle, runner *taskrunner.Runner) {
	ctx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go runner.Start(ctx)
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			return nil
		},
	})
}
