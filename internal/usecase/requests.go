package usecase

import (
	"context"
	"errors"
	"log/slog"

	"parking-allocator/internal/domain/request"
	"parking-allocator/internal/domain/reservation"
	"parking-allocator/internal/pkg/clock"
	"parking-allocator/internal/pkg/errs"
	"parking-allocator/internal/pkg/workcal"

	"github.com/google/uuid"
)

var (
	ErrRequestNotFound   = errors.New("request not found")
	ErrDateOutsideWindow = errors.New("date is outside the requestable window")
	ErrNotAWorkingDay    = errors.New("date is not a working day")
	ErrNotInterrupted    = errors.New("request is not awaiting a stay-interrupted decision")
)

// DateSummary is one row of a user's upcoming window.
type DateSummary struct {
	Date           workcal.Date
	Status         request.Status
	HasRequest     bool
	HasReservation bool
}

type RequestsUseCase interface {
	GetOwn(ctx context.Context, userID uuid.UUID, first, last workcal.Date) ([]request.Request, error)
	// Submit creates pending requests for the given dates. Dates that
	// already carry a live request are left untouched; cancelled ones are
	// re-opened.
	Submit(ctx context.Context, userID uuid.UUID, dates []workcal.Date) ([]request.Request, error)
	Cancel(ctx context.Context, userID uuid.UUID, date workcal.Date) error
	// StayInterrupted resolves a soft interruption: accepting opts the user
	// out of allocation for the date, rejecting puts them back in the queue.
	StayInterrupted(ctx context.Context, userID uuid.UUID, date workcal.Date, accept bool) (request.Request, error)
	Summary(ctx context.Context, userID uuid.UUID) ([]DateSummary, error)
}

type requestsUseCaseImpl struct {
	requestRepo     RequestRepository
	reservationRepo ReservationRepository
	calendar        *workcal.Calendar
	clock           clock.Clock
	logger          *slog.Logger
}

func NewRequestsUseCase(
	requestRepo RequestRepository,
	reservationRepo ReservationRepository,
	calendar *workcal.Calendar,
	clock clock.Clock,
	logger *slog.Logger,
) RequestsUseCase {
	return &requestsUseCaseImpl{
		requestRepo:     requestRepo,
		reservationRepo: reservationRepo,
		calendar:        calendar,
		clock:           clock,
		logger:          logger,
	}
}

func (r *requestsUseCaseImpl) GetOwn(ctx context.Context, userID uuid.UUID, first, last workcal.Date) ([]request.Request, error) {
	requests, err := r.requestRepo.FindByUserInRange(ctx, userID, first, last)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load user requests")
	}
	return requests, nil
}

// requestableWindow is the span users may submit requests for: from today
// through the end of the long lead-time window.
func (r *requestsUseCaseImpl) requestableWindow() (workcal.Date, workcal.Date) {
	now := r.clock.Now()
	first := workcal.DateOf(now.In(r.calendar.Location()))
	long := r.calendar.LongLeadTimeAllocationDates(now)
	if len(long) == 0 {
		short := r.calendar.ShortLeadTimeAllocationDates(now)
		return first, short[len(short)-1]
	}
	return first, long[len(long)-1]
}

func (r *requestsUseCaseImpl) Submit(ctx context.Context, userID uuid.UUID, dates []workcal.Date) ([]request.Request, error) {
	first, last := r.requestableWindow()
	for _, d := range dates {
		if d.Before(first) || d.After(last) {
			return nil, ErrDateOutsideWindow
		}
		if !r.calendar.IsWorkingDay(d) {
			return nil, ErrNotAWorkingDay
		}
	}

	existing, err := r.requestRepo.FindByUserInRange(ctx, userID, first, last)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load existing requests")
	}
	byDate := make(map[workcal.Date]request.Request, len(existing))
	for _, e := range existing {
		byDate[e.Date] = e
	}

	var created []request.Request
	for _, d := range dates {
		if e, ok := byDate[d]; ok && e.Status != request.StatusCancelled {
			continue
		}
		created = append(created, request.New(userID, d, request.StatusPending))
	}
	if len(created) == 0 {
		return nil, nil
	}

	if err := r.requestRepo.Upsert(ctx, created); err != nil {
		return nil, errs.Wrap(err, "failed to save requests")
	}
	r.logger.Info("requests submitted", "userId", userID.String(), "count", len(created))
	return created, nil
}

func (r *requestsUseCaseImpl) Cancel(ctx context.Context, userID uuid.UUID, date workcal.Date) error {
	existing, err := r.requestRepo.FindByUserInRange(ctx, userID, date, date)
	if err != nil {
		return errs.Wrap(err, "failed to load request")
	}
	if len(existing) == 0 || existing[0].Status == request.StatusCancelled {
		return ErrRequestNotFound
	}

	cancelled := existing[0].WithStatus(request.StatusCancelled)
	if err := r.requestRepo.Upsert(ctx, []request.Request{cancelled}); err != nil {
		return errs.Wrap(err, "failed to cancel request")
	}
	r.logger.Info("request cancelled",
		"userId", userID.String(), "date", date.String(),
		"wasAllocated", existing[0].Status == request.StatusAllocated)
	return nil
}

func (r *requestsUseCaseImpl) StayInterrupted(ctx context.Context, userID uuid.UUID, date workcal.Date, accept bool) (request.Request, error) {
	existing, err := r.requestRepo.FindByUserInRange(ctx, userID, date, date)
	if err != nil {
		return request.Request{}, errs.Wrap(err, "failed to load request")
	}
	if len(existing) == 0 {
		return request.Request{}, ErrRequestNotFound
	}

	current := existing[0]
	if current.Status != request.StatusSoftInterrupted && current.Status != request.StatusHardInterrupted {
		return request.Request{}, ErrNotInterrupted
	}

	next := request.StatusInterrupted
	if accept {
		next = request.StatusHardInterrupted
	}
	updated := current.WithStatus(next)
	if err := r.requestRepo.Upsert(ctx, []request.Request{updated}); err != nil {
		return request.Request{}, errs.Wrap(err, "failed to update request")
	}
	return updated, nil
}

func (r *requestsUseCaseImpl) Summary(ctx context.Context, userID uuid.UUID) ([]DateSummary, error) {
	now := r.clock.Now()
	short := r.calendar.ShortLeadTimeAllocationDates(now)
	long := r.calendar.LongLeadTimeAllocationDates(now)
	dates := append(append([]workcal.Date{}, short...), long...)
	if len(dates) == 0 {
		return nil, nil
	}
	first, last := dates[0], dates[len(dates)-1]

	requests, err := r.requestRepo.FindByUserInRange(ctx, userID, first, last)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load user requests")
	}
	reservations, err := r.reservationRepo.FindInRange(ctx, first, last)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load reservations")
	}

	byDate := make(map[workcal.Date]request.Request, len(requests))
	for _, req := range requests {
		byDate[req.Date] = req
	}
	reserved := reservation.Index(reservations)

	summaries := make([]DateSummary, 0, len(dates))
	for _, d := range dates {
		s := DateSummary{Date: d}
		if req, ok := byDate[d]; ok && req.Status != request.StatusCancelled {
			s.HasRequest = true
			s.Status = req.Status
		}
		if _, ok := reserved[reservation.New(userID, d)]; ok {
			s.HasReservation = true
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}
