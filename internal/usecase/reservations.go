package usecase

import (
	"context"
	"errors"
	"log/slog"

	"parking-allocator/internal/domain/reservation"
	"parking-allocator/internal/pkg/errs"
	"parking-allocator/internal/pkg/workcal"
)

var (
	ErrReservationOutsideRange = errors.New("reservation date is outside the submitted range")
	ErrTooManyReservations     = errors.New("reservations for a date exceed total spaces")
)

type ReservationsUseCase interface {
	GetRange(ctx context.Context, first, last workcal.Date) ([]reservation.Reservation, error)
	// Replace swaps every reservation in [first, last] for the given set.
	Replace(ctx context.Context, first, last workcal.Date, reservations []reservation.Reservation) error
}

type reservationsUseCaseImpl struct {
	reservationRepo ReservationRepository
	configRepo      ConfigurationRepository
	logger          *slog.Logger
}

func NewReservationsUseCase(
	reservationRepo ReservationRepository,
	configRepo ConfigurationRepository,
	logger *slog.Logger,
) ReservationsUseCase {
	return &reservationsUseCaseImpl{
		reservationRepo: reservationRepo,
		configRepo:      configRepo,
		logger:          logger,
	}
}

func (r *reservationsUseCaseImpl) GetRange(ctx context.Context, first, last workcal.Date) ([]reservation.Reservation, error) {
	reservations, err := r.reservationRepo.FindInRange(ctx, first, last)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load reservations")
	}
	return reservations, nil
}

func (r *reservationsUseCaseImpl) Replace(ctx context.Context, first, last workcal.Date, reservations []reservation.Reservation) error {
	cfg, err := r.configRepo.Get(ctx)
	if err != nil {
		return errs.Mark(err, ErrConfigurationUnavailable)
	}

	perDate := make(map[workcal.Date]int)
	for _, res := range reservations {
		if res.Date.Before(first) || res.Date.After(last) {
			return ErrReservationOutsideRange
		}
		perDate[res.Date]++
		if perDate[res.Date] > cfg.TotalSpaces {
			return ErrTooManyReservations
		}
	}

	if err := r.reservationRepo.Replace(ctx, first, last, reservations); err != nil {
		return errs.Wrap(err, "failed to replace reservations")
	}
	r.logger.Info("reservations replaced",
		"first", first.String(), "last", last.String(), "count", len(reservations))
	return nil
}
