//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"parking-allocator/internal/domain/reservation"
	"parking-allocator/internal/pkg/errs"
	"parking-allocator/internal/pkg/workcal"
	"parking-allocator/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReservationsUseCase(t *testing.T, reservationRepo *fakeReservationRepo, configRepo *fakeConfigRepo) usecase.ReservationsUseCase {
	t.Helper()
	if configRepo == nil {
		configRepo = &fakeConfigRepo{cfg: cfg(t, 2, 0)}
	}
	return usecase.NewReservationsUseCase(reservationRepo, configRepo, testLogger())
}

func TestReplaceReservations(t *testing.T) {
	a := far(t)
	b := far(t)
	c := far(t)
	monday := workcal.MustParseDate("2025-09-08")
	friday := workcal.MustParseDate("2025-09-12")

	t.Run("success: swaps the range", func(t *testing.T) {
		repo := &fakeReservationRepo{reservations: []reservation.Reservation{
			reservation.New(a.ID, monday),
		}}
		uc := newReservationsUseCase(t, repo, nil)

		next := []reservation.Reservation{reservation.New(b.ID, friday)}
		require.NoError(t, uc.Replace(context.Background(), monday, friday, next))

		got, err := uc.GetRange(context.Background(), monday, friday)
		require.NoError(t, err)
		assert.Equal(t, next, got)
	})

	t.Run("date outside the submitted range", func(t *testing.T) {
		uc := newReservationsUseCase(t, &fakeReservationRepo{}, nil)

		err := uc.Replace(context.Background(), monday, friday, []reservation.Reservation{
			reservation.New(a.ID, workcal.MustParseDate("2025-09-15")),
		})
		assert.ErrorIs(t, err, usecase.ErrReservationOutsideRange)
	})

	t.Run("more reservations than spaces for one date", func(t *testing.T) {
		uc := newReservationsUseCase(t, &fakeReservationRepo{}, nil)

		err := uc.Replace(context.Background(), monday, friday, []reservation.Reservation{
			reservation.New(a.ID, monday),
			reservation.New(b.ID, monday),
			reservation.New(c.ID, monday),
		})
		assert.ErrorIs(t, err, usecase.ErrTooManyReservations)
	})

	t.Run("configuration unavailable", func(t *testing.T) {
		configRepo := &fakeConfigRepo{getErr: errNotFound}
		uc := newReservationsUseCase(t, &fakeReservationRepo{}, configRepo)

		err := uc.Replace(context.Background(), monday, friday, nil)
		assert.True(t, errs.Is(err, usecase.ErrConfigurationUnavailable))
	})
}
