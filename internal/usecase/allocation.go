package usecase

import (
	"context"
	"errors"
	"log/slog"

	"parking-allocator/internal/domain/allocation"
	"parking-allocator/internal/domain/request"
	"parking-allocator/internal/pkg/clock"
	"parking-allocator/internal/pkg/errs"
	"parking-allocator/internal/pkg/workcal"
)

var (
	ErrConfigurationUnavailable = errors.New("allocation configuration unavailable")
	ErrAllocationLoadFailed     = errors.New("allocation data load failed")
	ErrAllocationSaveFailed     = errors.New("allocation save failed")
)

// ratioLookbackDays is how far before the first allocation date requests are
// loaded, so fairness ratios see enough history.
const ratioLookbackDays = 60

// RequestUpdater runs the rolling recomputation over the short and long
// lead-time windows and persists the requests it changed.
type RequestUpdater interface {
	Update(ctx context.Context) ([]request.Request, error)
}

type requestUpdaterImpl struct {
	requestRepo     RequestRepository
	reservationRepo ReservationRepository
	userRepo        UserRepository
	configRepo      ConfigurationRepository
	creator         *allocation.Creator
	calendar        *workcal.Calendar
	clock           clock.Clock
	logger          *slog.Logger
}

func NewRequestUpdater(
	requestRepo RequestRepository,
	reservationRepo ReservationRepository,
	userRepo UserRepository,
	configRepo ConfigurationRepository,
	creator *allocation.Creator,
	calendar *workcal.Calendar,
	clock clock.Clock,
	logger *slog.Logger,
) RequestUpdater {
	return &requestUpdaterImpl{
		requestRepo:     requestRepo,
		reservationRepo: reservationRepo,
		userRepo:        userRepo,
		configRepo:      configRepo,
		creator:         creator,
		calendar:        calendar,
		clock:           clock,
		logger:          logger,
	}
}

// Update processes every allocation date in order. Dates are strictly
// sequential: a space granted on day N changes both the already-allocated
// count for N and the fairness ratios feeding N+1, so each pass works on the
// cache as updated by the passes before it.
func (u *requestUpdaterImpl) Update(ctx context.Context) ([]request.Request, error) {
	now := u.clock.Now()
	shortDates := u.calendar.ShortLeadTimeAllocationDates(now)
	longDates := u.calendar.LongLeadTimeAllocationDates(now)

	allDates := make([]workcal.Date, 0, len(shortDates)+len(longDates))
	allDates = append(allDates, shortDates...)
	allDates = append(allDates, longDates...)
	if len(allDates) == 0 {
		return nil, nil
	}
	first := allDates[0].AddDays(-ratioLookbackDays)
	last := allDates[len(allDates)-1]

	cfg, err := u.configRepo.Get(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrConfigurationUnavailable)
	}

	requests, err := u.requestRepo.FindInRange(ctx, first, last)
	if err != nil {
		return nil, errs.Mark(err, ErrAllocationLoadFailed)
	}
	reservations, err := u.reservationRepo.FindInRange(ctx, first, last)
	if err != nil {
		return nil, errs.Mark(err, ErrAllocationLoadFailed)
	}
	users, err := u.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrAllocationLoadFailed)
	}

	cache := newRequestSet(requests)
	changed := newRequestSet(nil)

	// Anything still pending inside the windows has now been seen by an
	// allocation pass: it is interrupted until a space frees up.
	inWindow := make(map[workcal.Date]struct{}, len(allDates))
	for _, d := range allDates {
		inWindow[d] = struct{}{}
	}
	for _, r := range cache.snapshot() {
		if r.Status != request.StatusPending {
			continue
		}
		if _, ok := inWindow[r.Date]; !ok {
			continue
		}
		interrupted := r.WithStatus(request.StatusInterrupted)
		cache.put(interrupted)
		changed.put(interrupted)
	}

	runPass := func(dates []workcal.Date, leadTime allocation.LeadTime) {
		for _, date := range dates {
			newlyAllocated := u.creator.Create(date, cache.snapshot(), reservations, users, cfg, leadTime)
			for _, r := range newlyAllocated {
				cache.put(r)
				changed.put(r)
			}
		}
	}
	runPass(shortDates, allocation.ShortLeadTime)
	runPass(longDates, allocation.LongLeadTime)

	updated := changed.snapshot()
	if len(updated) > 0 {
		if err := u.requestRepo.Upsert(ctx, updated); err != nil {
			return nil, errs.Mark(err, ErrAllocationSaveFailed)
		}
	}

	u.logger.Info("allocation run complete",
		"shortDates", len(shortDates),
		"longDates", len(longDates),
		"changedRequests", len(updated))

	return updated, nil
}
