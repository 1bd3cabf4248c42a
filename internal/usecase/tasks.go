package usecase

import (
	"context"
	"log/slog"
	"time"

	"parking-allocator/internal/domain/request"
	"parking-allocator/internal/domain/schedule"
	"parking-allocator/internal/infra/mail"
	"parking-allocator/internal/pkg/clock"
	"parking-allocator/internal/pkg/errs"
	"parking-allocator/internal/pkg/workcal"

	"github.com/google/uuid"
)

// Recurring tasks driven by the schedule store. Each task knows its own
// cadence; the runner advances a schedule only after a successful run.

const (
	reminderRunHour = 7
	// reminderLookbackDays: only users active this recently get reminded.
	reminderLookbackDays = 30
)

// AllocationRunTask executes the rolling recomputation under the run lock
// and then notifies affected users. A concurrent run attempt surfaces as an
// error instead of silently interleaving.
type AllocationRunTask struct {
	lock     RunLock
	updater  RequestUpdater
	notifier AllocationNotifier
	interval time.Duration
	logger   *slog.Logger
}

func NewAllocationRunTask(
	lock RunLock,
	updater RequestUpdater,
	notifier AllocationNotifier,
	interval time.Duration,
	logger *slog.Logger,
) *AllocationRunTask {
	return &AllocationRunTask{
		lock:     lock,
		updater:  updater,
		notifier: notifier,
		interval: interval,
		logger:   logger,
	}
}

func (t *AllocationRunTask) Type() schedule.TaskType {
	return schedule.TaskAllocationRun
}

func (t *AllocationRunTask) Run(ctx context.Context) error {
	if err := t.lock.Acquire(ctx); err != nil {
		return errs.Wrap(err, "allocation run rejected")
	}
	defer func() {
		if err := t.lock.Release(ctx); err != nil {
			t.logger.Warn("failed to release allocation run lock", "error", err)
		}
	}()

	updated, err := t.updater.Update(ctx)
	if err != nil {
		return err
	}

	// The allocation is durably saved at this point; notification problems
	// are logged but never fail the run.
	if err := t.notifier.Notify(ctx, updated); err != nil {
		t.logger.Error("allocation notification failed", "error", err)
	}
	return nil
}

func (t *AllocationRunTask) NextRunAfter(now time.Time) time.Time {
	return now.Add(t.interval)
}

// DailyNotificationTask emails every user with a live request their status
// for the next working date, at the daily cutoff.
type DailyNotificationTask struct {
	requestRepo RequestRepository
	userRepo    UserRepository
	sender      EmailSender
	calendar    *workcal.Calendar
	clock       clock.Clock
	logger      *slog.Logger
}

func NewDailyNotificationTask(
	requestRepo RequestRepository,
	userRepo UserRepository,
	sender EmailSender,
	calendar *workcal.Calendar,
	clock clock.Clock,
	logger *slog.Logger,
) *DailyNotificationTask {
	return &DailyNotificationTask{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		sender:      sender,
		calendar:    calendar,
		clock:       clock,
		logger:      logger,
	}
}

func (t *DailyNotificationTask) Type() schedule.TaskType {
	return schedule.TaskDailyNotification
}

func (t *DailyNotificationTask) Run(ctx context.Context) error {
	date := t.calendar.NextWorkingDate(t.clock.Now())
	requests, err := t.requestRepo.FindInRange(ctx, date, date)
	if err != nil {
		return errs.Wrap(err, "failed to load requests for daily notification")
	}
	users, err := t.userRepo.FindAll(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to load users for daily notification")
	}

	byUser := make(map[uuid.UUID]request.Request, len(requests))
	for _, r := range requests {
		byUser[r.UserID] = r
	}

	sent := 0
	for _, u := range users {
		r, ok := byUser[u.ID]
		if !ok || r.Status == request.StatusCancelled || r.Status == request.StatusPending {
			continue
		}
		email := mail.NewDailySummaryEmail(u.Email.Value(), date, r.Status == request.StatusAllocated)
		if err := t.sender.Send(ctx, email); err != nil {
			t.logger.Error("failed to send daily summary", "userId", u.ID.String(), "error", err)
			continue
		}
		sent++
	}
	t.logger.Info("daily notification complete", "date", date.String(), "emails", sent)
	return nil
}

func (t *DailyNotificationTask) NextRunAfter(now time.Time) time.Time {
	return t.calendar.NextDailyRunTime(now, t.calendar.DailyCutoffHour())
}

// WeeklyNotificationTask reports next week's long-lead-time outcomes, every
// Thursday at the daily cutoff.
type WeeklyNotificationTask struct {
	requestRepo RequestRepository
	userRepo    UserRepository
	sender      EmailSender
	calendar    *workcal.Calendar
	clock       clock.Clock
	logger      *slog.Logger
}

func NewWeeklyNotificationTask(
	requestRepo RequestRepository,
	userRepo UserRepository,
	sender EmailSender,
	calendar *workcal.Calendar,
	clock clock.Clock,
	logger *slog.Logger,
) *WeeklyNotificationTask {
	return &WeeklyNotificationTask{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		sender:      sender,
		calendar:    calendar,
		clock:       clock,
		logger:      logger,
	}
}

func (t *WeeklyNotificationTask) Type() schedule.TaskType {
	return schedule.TaskWeeklyNotification
}

func (t *WeeklyNotificationTask) Run(ctx context.Context) error {
	dates := t.calendar.WeeklyNotificationDates(t.clock.Now())
	if len(dates) == 0 {
		return nil
	}
	requests, err := t.requestRepo.FindInRange(ctx, dates[0], dates[len(dates)-1])
	if err != nil {
		return errs.Wrap(err, "failed to load requests for weekly notification")
	}
	users, err := t.userRepo.FindAll(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to load users for weekly notification")
	}

	allocatedByUser := make(map[uuid.UUID][]workcal.Date)
	interruptedByUser := make(map[uuid.UUID][]workcal.Date)
	for _, r := range requests {
		switch {
		case r.Status == request.StatusAllocated:
			allocatedByUser[r.UserID] = append(allocatedByUser[r.UserID], r.Date)
		case r.Status.IsInterrupted():
			interruptedByUser[r.UserID] = append(interruptedByUser[r.UserID], r.Date)
		}
	}

	sent := 0
	for _, u := range users {
		allocated := allocatedByUser[u.ID]
		interrupted := interruptedByUser[u.ID]
		if len(allocated) == 0 && len(interrupted) == 0 {
			continue
		}
		email := mail.NewWeeklySummaryEmail(u.Email.Value(), allocated, interrupted)
		if err := t.sender.Send(ctx, email); err != nil {
			t.logger.Error("failed to send weekly summary", "userId", u.ID.String(), "error", err)
			continue
		}
		sent++
	}
	t.logger.Info("weekly notification complete", "emails", sent)
	return nil
}

func (t *WeeklyNotificationTask) NextRunAfter(now time.Time) time.Time {
	return t.calendar.NextWeeklyRunTime(now, time.Thursday, t.calendar.DailyCutoffHour())
}

// RequestReminderTask nudges recently active users who have nothing
// requested in the upcoming window, daily before working hours.
type RequestReminderTask struct {
	requestRepo RequestRepository
	userRepo    UserRepository
	sender      EmailSender
	calendar    *workcal.Calendar
	clock       clock.Clock
	logger      *slog.Logger
}

func NewRequestReminderTask(
	requestRepo RequestRepository,
	userRepo UserRepository,
	sender EmailSender,
	calendar *workcal.Calendar,
	clock clock.Clock,
	logger *slog.Logger,
) *RequestReminderTask {
	return &RequestReminderTask{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		sender:      sender,
		calendar:    calendar,
		clock:       clock,
		logger:      logger,
	}
}

func (t *RequestReminderTask) Type() schedule.TaskType {
	return schedule.TaskRequestReminder
}

func (t *RequestReminderTask) Run(ctx context.Context) error {
	now := t.clock.Now()
	today := workcal.DateOf(now.In(t.calendar.Location()))

	long := t.calendar.LongLeadTimeAllocationDates(now)
	if len(long) == 0 {
		return nil
	}
	windowEnd := long[len(long)-1]

	requests, err := t.requestRepo.FindInRange(ctx, today.AddDays(-reminderLookbackDays), windowEnd)
	if err != nil {
		return errs.Wrap(err, "failed to load requests for reminders")
	}
	users, err := t.userRepo.FindAll(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to load users for reminders")
	}

	recentlyActive := make(map[uuid.UUID]struct{})
	hasUpcoming := make(map[uuid.UUID]struct{})
	for _, r := range requests {
		if r.Status == request.StatusCancelled {
			continue
		}
		if r.Date.Before(today) {
			recentlyActive[r.UserID] = struct{}{}
		} else {
			hasUpcoming[r.UserID] = struct{}{}
		}
	}

	sent := 0
	for _, u := range users {
		if _, active := recentlyActive[u.ID]; !active {
			continue
		}
		if _, upcoming := hasUpcoming[u.ID]; upcoming {
			continue
		}
		if err := t.sender.Send(ctx, mail.NewRequestReminderEmail(u.Email.Value())); err != nil {
			t.logger.Error("failed to send reminder", "userId", u.ID.String(), "error", err)
			continue
		}
		sent++
	}
	t.logger.Info("request reminders complete", "emails", sent)
	return nil
}

func (t *RequestReminderTask) NextRunAfter(now time.Time) time.Time {
	return t.calendar.NextDailyRunTime(now, reminderRunHour)
}

// SoftInterruptUpdateTask marks the next working date's interrupted
// requests as soft-interrupted once the daily cutoff has passed, opening
// the stay-interrupted decision to their owners.
type SoftInterruptUpdateTask struct {
	requestRepo RequestRepository
	calendar    *workcal.Calendar
	clock       clock.Clock
	logger      *slog.Logger
}

func NewSoftInterruptUpdateTask(
	requestRepo RequestRepository,
	calendar *workcal.Calendar,
	clock clock.Clock,
	logger *slog.Logger,
) *SoftInterruptUpdateTask {
	return &SoftInterruptUpdateTask{
		requestRepo: requestRepo,
		calendar:    calendar,
		clock:       clock,
		logger:      logger,
	}
}

func (t *SoftInterruptUpdateTask) Type() schedule.TaskType {
	return schedule.TaskSoftInterruptUpdate
}

func (t *SoftInterruptUpdateTask) Run(ctx context.Context) error {
	date := t.calendar.NextWorkingDate(t.clock.Now())
	requests, err := t.requestRepo.FindInRange(ctx, date, date)
	if err != nil {
		return errs.Wrap(err, "failed to load requests for soft-interrupt update")
	}

	var updated []request.Request
	for _, r := range requests {
		if r.Status == request.StatusInterrupted {
			updated = append(updated, r.WithStatus(request.StatusSoftInterrupted))
		}
	}
	if len(updated) == 0 {
		return nil
	}
	if err := t.requestRepo.Upsert(ctx, updated); err != nil {
		return errs.Wrap(err, "failed to save soft-interrupted requests")
	}
	t.logger.Info("soft-interrupt update complete", "date", date.String(), "requests", len(updated))
	return nil
}

func (t *SoftInterruptUpdateTask) NextRunAfter(now time.Time) time.Time {
	return t.calendar.NextDailyRunTime(now, t.calendar.DailyCutoffHour())
}
