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

// scheduleDueHorizon: an allocation covered by a scheduled email going out
// this soon is not worth a separate message.
const scheduleDueHorizon = 2 * time.Minute

// AllocationNotifier emails users about spaces they were just granted.
// It runs only after the allocation result has been durably saved, and its
// failures never invalidate that result.
type AllocationNotifier interface {
	Notify(ctx context.Context, updatedRequests []request.Request) error
}

type allocationNotifierImpl struct {
	userRepo     UserRepository
	scheduleRepo ScheduleRepository
	sender       EmailSender
	calendar     *workcal.Calendar
	clock        clock.Clock
	logger       *slog.Logger
}

func NewAllocationNotifier(
	userRepo UserRepository,
	scheduleRepo ScheduleRepository,
	sender EmailSender,
	calendar *workcal.Calendar,
	clock clock.Clock,
	logger *slog.Logger,
) AllocationNotifier {
	return &allocationNotifierImpl{
		userRepo:     userRepo,
		scheduleRepo: scheduleRepo,
		sender:       sender,
		calendar:     calendar,
		clock:        clock,
		logger:       logger,
	}
}

func (n *allocationNotifierImpl) Notify(ctx context.Context, updatedRequests []request.Request) error {
	if len(updatedRequests) == 0 {
		return nil
	}

	users, err := n.userRepo.FindAll(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to load users for notification")
	}
	schedules, err := n.scheduleRepo.FindAll(ctx)
	if err != nil {
		return errs.Wrap(err, "failed to load schedules for notification")
	}

	excluded := n.imminentlyCoveredDates(schedules)

	datesByUser := make(map[uuid.UUID][]workcal.Date)
	for _, r := range updatedRequests {
		if r.Status != request.StatusAllocated {
			continue
		}
		if _, skip := excluded[r.Date]; skip {
			continue
		}
		datesByUser[r.UserID] = append(datesByUser[r.UserID], r.Date)
	}

	sent := 0
	for _, u := range users {
		dates := datesByUser[u.ID]
		if len(dates) == 0 {
			continue
		}
		var email mail.Email
		if len(dates) == 1 {
			email = mail.NewSingleAllocationEmail(u.Email.Value(), dates[0])
		} else {
			email = mail.NewMultiAllocationEmail(u.Email.Value(), dates)
		}
		if err := n.sender.Send(ctx, email); err != nil {
			n.logger.Error("failed to send allocation email",
				"userId", u.ID.String(), "error", err)
			continue
		}
		sent++
	}

	n.logger.Info("allocation notifications sent",
		"emails", sent, "excludedDates", len(excluded))
	return nil
}

// imminentlyCoveredDates returns dates a scheduled notification is about to
// report on anyway: the next working date when the daily email is due, all
// of next week's dates when the weekly email is due.
func (n *allocationNotifierImpl) imminentlyCoveredDates(schedules []schedule.Schedule) map[workcal.Date]struct{} {
	now := n.clock.Now()
	excluded := make(map[workcal.Date]struct{})
	for _, s := range schedules {
		if !s.IsDue(now, scheduleDueHorizon) {
			continue
		}
		switch s.Task {
		case schedule.TaskDailyNotification:
			excluded[n.calendar.NextWorkingDate(now)] = struct{}{}
		case schedule.TaskWeeklyNotification:
			for _, d := range n.calendar.WeeklyNotificationDates(now) {
				excluded[d] = struct{}{}
			}
		}
	}
	return excluded
}
