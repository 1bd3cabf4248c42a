//go:build unit

package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"parking-allocator/internal/domain/allocation"
	"parking-allocator/internal/domain/request"
	"parking-allocator/internal/domain/reservation"
	"parking-allocator/internal/domain/user"
	"parking-allocator/internal/pkg/clock"
	"parking-allocator/internal/pkg/errs"
	"parking-allocator/internal/pkg/rng"
	"parking-allocator/internal/pkg/workcal"
	"parking-allocator/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWindowStart = workcal.MustParseDate("2021-09-06")

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func londonCalendar(t *testing.T) *workcal.Calendar {
	t.Helper()
	loc, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)
	return workcal.NewCalendar(loc, workcal.DefaultBankHolidays(), 2, 2, 11)
}

// mondayMorning is before the cutoff, so the short window is Mon+Tue.
func mondayMorning(t *testing.T) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Europe/London")
	require.NoError(t, err)
	return workcal.MustParseDate("2025-09-01").At(9, 0, loc)
}

func makeUser(t *testing.T, distanceKm *float64) user.User {
	t.Helper()
	u, err := user.NewUser(mustEmail(t), "Test", "User", user.RoleEmployee, distanceKm)
	require.NoError(t, err)
	return *u
}

func mustEmail(t *testing.T) user.Email {
	t.Helper()
	email, err := user.NewEmail(uuid.NewString() + "@example.com")
	require.NoError(t, err)
	return email
}

func far(t *testing.T) user.User {
	t.Helper()
	v := 50.0
	return makeUser(t, &v)
}

type updaterFixture struct {
	requestRepo     *fakeRequestRepo
	reservationRepo *fakeReservationRepo
	userRepo        *fakeUserRepo
	configRepo      *fakeConfigRepo
	clock           *clock.FixedClock
	updater         usecase.RequestUpdater
}

func newUpdaterFixture(t *testing.T, cfg allocation.Config, users []user.User, requests ...request.Request) *updaterFixture {
	t.Helper()
	f := &updaterFixture{
		requestRepo:     newFakeRequestRepo(requests...),
		reservationRepo: &fakeReservationRepo{},
		userRepo:        &fakeUserRepo{users: users},
		configRepo:      &fakeConfigRepo{cfg: cfg},
		clock:           clock.NewFixedClock(mondayMorning(t)),
	}
	logger := testLogger()
	creator := allocation.NewCreator(allocation.NewSorter(rng.NewSeeded(7), testWindowStart), logger)
	f.updater = usecase.NewRequestUpdater(
		f.requestRepo, f.reservationRepo, f.userRepo, f.configRepo,
		creator, londonCalendar(t), f.clock, logger,
	)
	return f
}

func cfg(t *testing.T, total, shortLead int) allocation.Config {
	t.Helper()
	c, err := allocation.NewConfig(total, shortLead, 10)
	require.NoError(t, err)
	return c
}

func TestRequestUpdaterPendingCascade(t *testing.T) {
	u := far(t)
	inWindow := workcal.MustParseDate("2025-09-02")
	outOfWindow := workcal.MustParseDate("2025-10-15")

	f := newUpdaterFixture(t, cfg(t, 0, 0), []user.User{u},
		request.New(u.ID, inWindow, request.StatusPending),
		request.New(u.ID, outOfWindow, request.StatusPending),
	)

	updated, err := f.updater.Update(context.Background())
	require.NoError(t, err)

	// Zero capacity: the in-window request is seen and interrupted but not
	// allocated.
	require.Len(t, updated, 1)
	assert.Equal(t, request.StatusInterrupted, updated[0].Status)
	assert.Equal(t, inWindow, updated[0].Date)

	stored, ok := f.requestRepo.get(u.ID, outOfWindow)
	require.True(t, ok)
	assert.Equal(t, request.StatusPending, stored.Status)
}

func TestRequestUpdaterAllocatesAndPersistsOnlyChanges(t *testing.T) {
	winner := far(t)
	holder := far(t)
	date := workcal.MustParseDate("2025-09-01")

	f := newUpdaterFixture(t, cfg(t, 2, 0), []user.User{winner, holder},
		request.New(winner.ID, date, request.StatusInterrupted),
		request.New(holder.ID, date, request.StatusAllocated),
	)

	updated, err := f.updater.Update(context.Background())
	require.NoError(t, err)

	// Only the newly allocated request is reported and written back.
	require.Len(t, updated, 1)
	assert.Equal(t, winner.ID, updated[0].UserID)
	assert.Equal(t, request.StatusAllocated, updated[0].Status)

	require.Len(t, f.requestRepo.upserted, 1)
	assert.Len(t, f.requestRepo.upserted[0], 1)
}

func TestRequestUpdaterSequentialFeedForward(t *testing.T) {
	// One space, two users, two consecutive short-window dates. Whoever wins
	// day one carries a 1/1 ratio into day two and must lose it.
	alice := far(t)
	bob := far(t)
	day1 := workcal.MustParseDate("2025-09-01")
	day2 := workcal.MustParseDate("2025-09-02")

	f := newUpdaterFixture(t, cfg(t, 1, 0), []user.User{alice, bob},
		request.New(alice.ID, day1, request.StatusInterrupted),
		request.New(bob.ID, day1, request.StatusInterrupted),
		request.New(alice.ID, day2, request.StatusInterrupted),
		request.New(bob.ID, day2, request.StatusInterrupted),
	)

	_, err := f.updater.Update(context.Background())
	require.NoError(t, err)

	var aliceAllocated, bobAllocated int
	for _, d := range []workcal.Date{day1, day2} {
		if r, ok := f.requestRepo.get(alice.ID, d); ok && r.Status == request.StatusAllocated {
			aliceAllocated++
		}
		if r, ok := f.requestRepo.get(bob.ID, d); ok && r.Status == request.StatusAllocated {
			bobAllocated++
		}
	}
	assert.Equal(t, 1, aliceAllocated)
	assert.Equal(t, 1, bobAllocated)
}

func TestRequestUpdaterReservationWinsTheSpace(t *testing.T) {
	holder := far(t)
	rival := far(t)
	date := workcal.MustParseDate("2025-09-01")

	f := newUpdaterFixture(t, cfg(t, 1, 0), []user.User{holder, rival},
		request.New(holder.ID, date, request.StatusInterrupted),
		request.New(rival.ID, date, request.StatusInterrupted),
	)
	f.reservationRepo.reservations = []reservation.Reservation{reservation.New(holder.ID, date)}

	_, err := f.updater.Update(context.Background())
	require.NoError(t, err)

	got, ok := f.requestRepo.get(holder.ID, date)
	require.True(t, ok)
	assert.Equal(t, request.StatusAllocated, got.Status)

	got, ok = f.requestRepo.get(rival.ID, date)
	require.True(t, ok)
	assert.Equal(t, request.StatusInterrupted, got.Status)
}

func TestRequestUpdaterLongWindowWithholdsShortLeadSpaces(t *testing.T) {
	a := far(t)
	b := far(t)
	longDate := workcal.MustParseDate("2025-09-10")

	f := newUpdaterFixture(t, cfg(t, 2, 1), []user.User{a, b},
		request.New(a.ID, longDate, request.StatusInterrupted),
		request.New(b.ID, longDate, request.StatusInterrupted),
	)

	_, err := f.updater.Update(context.Background())
	require.NoError(t, err)

	allocated := 0
	for _, u := range []user.User{a, b} {
		if r, ok := f.requestRepo.get(u.ID, longDate); ok && r.Status == request.StatusAllocated {
			allocated++
		}
	}
	assert.Equal(t, 1, allocated, "long pass must hold one space back")
}

func TestRequestUpdaterFailures(t *testing.T) {
	u := far(t)
	date := workcal.MustParseDate("2025-09-01")
	base := []request.Request{request.New(u.ID, date, request.StatusInterrupted)}

	t.Run("missing configuration aborts the run", func(t *testing.T) {
		f := newUpdaterFixture(t, cfg(t, 2, 0), []user.User{u}, base...)
		f.configRepo.getErr = errNotFound

		_, err := f.updater.Update(context.Background())
		assert.True(t, errs.Is(err, usecase.ErrConfigurationUnavailable))
		assert.Empty(t, f.requestRepo.upserted)
	})

	t.Run("load failure aborts the run", func(t *testing.T) {
		f := newUpdaterFixture(t, cfg(t, 2, 0), []user.User{u}, base...)
		f.requestRepo.findErr = errNotFound

		_, err := f.updater.Update(context.Background())
		assert.True(t, errs.Is(err, usecase.ErrAllocationLoadFailed))
	})

	t.Run("save failure surfaces", func(t *testing.T) {
		f := newUpdaterFixture(t, cfg(t, 2, 0), []user.User{u}, base...)
		f.requestRepo.upsertErr = errNotFound

		_, err := f.updater.Update(context.Background())
		assert.True(t, errs.Is(err, usecase.ErrAllocationSaveFailed))
	})
}

func TestRequestUpdaterNoChangesNoWrite(t *testing.T) {
	u := far(t)
	date := workcal.MustParseDate("2025-09-01")

	f := newUpdaterFixture(t, cfg(t, 2, 0), []user.User{u},
		request.New(u.ID, date, request.StatusAllocated),
	)

	updated, err := f.updater.Update(context.Background())
	require.NoError(t, err)
	assert.Empty(t, updated)
	assert.Empty(t, f.requestRepo.upserted)
}
