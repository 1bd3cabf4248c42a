//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"parking-allocator/internal/domain/request"
	"parking-allocator/internal/domain/user"
	"parking-allocator/internal/infra/runlock"
	"parking-allocator/internal/pkg/clock"
	"parking-allocator/internal/pkg/workcal"
	"parking-allocator/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUpdater struct {
	updated []request.Request
	err     error
	calls   int
}

func (s *stubUpdater) Update(context.Context) ([]request.Request, error) {
	s.calls++
	return s.updated, s.err
}

type stubNotifier struct {
	received []request.Request
	err      error
	calls    int
}

func (s *stubNotifier) Notify(_ context.Context, updated []request.Request) error {
	s.calls++
	s.received = updated
	return s.err
}

func TestAllocationRunTask(t *testing.T) {
	u := far(t)
	updated := []request.Request{
		request.New(u.ID, workcal.MustParseDate("2025-09-03"), request.StatusAllocated),
	}

	t.Run("runs under the lock and notifies", func(t *testing.T) {
		lock := &fakeRunLock{}
		updater := &stubUpdater{updated: updated}
		notifier := &stubNotifier{}
		task := usecase.NewAllocationRunTask(lock, updater, notifier, 5*time.Minute, testLogger())

		require.NoError(t, task.Run(context.Background()))
		assert.Equal(t, 1, lock.acquired)
		assert.Equal(t, 1, lock.released)
		assert.Equal(t, 1, updater.calls)
		assert.Equal(t, updated, notifier.received)
	})

	t.Run("concurrent run is rejected without touching the allocation", func(t *testing.T) {
		lock := &fakeRunLock{acquireErr: runlock.ErrAlreadyRunning}
		updater := &stubUpdater{}
		notifier := &stubNotifier{}
		task := usecase.NewAllocationRunTask(lock, updater, notifier, 5*time.Minute, testLogger())

		assert.Error(t, task.Run(context.Background()))
		assert.Zero(t, updater.calls)
		assert.Zero(t, notifier.calls)
	})

	t.Run("update failure releases the lock", func(t *testing.T) {
		lock := &fakeRunLock{}
		updater := &stubUpdater{err: errNotFound}
		task := usecase.NewAllocationRunTask(lock, updater, &stubNotifier{}, 5*time.Minute, testLogger())

		assert.Error(t, task.Run(context.Background()))
		assert.Equal(t, 1, lock.released)
	})

	t.Run("notification failure does not fail the run", func(t *testing.T) {
		lock := &fakeRunLock{}
		notifier := &stubNotifier{err: errNotFound}
		task := usecase.NewAllocationRunTask(lock, &stubUpdater{updated: updated}, notifier, 5*time.Minute, testLogger())

		assert.NoError(t, task.Run(context.Background()))
		assert.Equal(t, 1, lock.released)
	})

	t.Run("next run is one interval away", func(t *testing.T) {
		task := usecase.NewAllocationRunTask(&fakeRunLock{}, &stubUpdater{}, &stubNotifier{}, 5*time.Minute, testLogger())
		now := mondayMorning(t)
		assert.Equal(t, now.Add(5*time.Minute), task.NextRunAfter(now))
	})
}

func TestDailyNotificationTask(t *testing.T) {
	allocated := far(t)
	interrupted := far(t)
	pending := far(t)
	silent := far(t)
	tuesday := workcal.MustParseDate("2025-09-02")

	requestRepo := newFakeRequestRepo(
		request.New(allocated.ID, tuesday, request.StatusAllocated),
		request.New(interrupted.ID, tuesday, request.StatusInterrupted),
		request.New(pending.ID, tuesday, request.StatusPending),
	)
	sender := &fakeEmailSender{}
	task := usecase.NewDailyNotificationTask(
		requestRepo,
		&fakeUserRepo{users: []user.User{allocated, interrupted, pending, silent}},
		sender,
		londonCalendar(t),
		clock.NewFixedClock(mondayMorning(t)),
		testLogger(),
	)

	require.NoError(t, task.Run(context.Background()))
	require.Len(t, sender.sent, 2, "pending requests and absent users get no status email")

	subjects := make(map[string]string)
	for _, e := range sender.sent {
		subjects[e.To] = e.Subject
	}
	assert.Contains(t, subjects[allocated.Email.Value()], "allocated")
	assert.Contains(t, subjects[interrupted.Email.Value()], "interrupted")
}

func TestWeeklyNotificationTask(t *testing.T) {
	mixed := far(t)
	quiet := far(t)
	monday := workcal.MustParseDate("2025-09-08")
	tuesday := workcal.MustParseDate("2025-09-09")

	requestRepo := newFakeRequestRepo(
		request.New(mixed.ID, monday, request.StatusAllocated),
		request.New(mixed.ID, tuesday, request.StatusSoftInterrupted),
	)
	sender := &fakeEmailSender{}
	task := usecase.NewWeeklyNotificationTask(
		requestRepo,
		&fakeUserRepo{users: []user.User{mixed, quiet}},
		sender,
		londonCalendar(t),
		clock.NewFixedClock(mondayMorning(t)),
		testLogger(),
	)

	require.NoError(t, task.Run(context.Background()))
	require.Len(t, sender.sent, 1)
	email := sender.sent[0]
	assert.Equal(t, mixed.Email.Value(), email.To)
	assert.Contains(t, email.PlainTextBody, "Monday 8 September 2025")
	assert.Contains(t, email.PlainTextBody, "Tuesday 9 September 2025")
}

func TestRequestReminderTask(t *testing.T) {
	lapsed := far(t)
	covered := far(t)
	inactive := far(t)
	lastWeek := workcal.MustParseDate("2025-08-27")
	nextWeek := workcal.MustParseDate("2025-09-09")

	requestRepo := newFakeRequestRepo(
		request.New(lapsed.ID, lastWeek, request.StatusAllocated),
		request.New(covered.ID, lastWeek, request.StatusAllocated),
		request.New(covered.ID, nextWeek, request.StatusPending),
	)
	sender := &fakeEmailSender{}
	task := usecase.NewRequestReminderTask(
		requestRepo,
		&fakeUserRepo{users: []user.User{lapsed, covered, inactive}},
		sender,
		londonCalendar(t),
		clock.NewFixedClock(mondayMorning(t)),
		testLogger(),
	)

	require.NoError(t, task.Run(context.Background()))
	require.Len(t, sender.sent, 1, "only recently active users without upcoming requests are reminded")
	assert.Equal(t, lapsed.Email.Value(), sender.sent[0].To)
	assert.Equal(t, "No upcoming parking requests", sender.sent[0].Subject)
}

func TestSoftInterruptUpdateTask(t *testing.T) {
	a := far(t)
	b := far(t)
	tuesday := workcal.MustParseDate("2025-09-02")
	wednesday := workcal.MustParseDate("2025-09-03")

	requestRepo := newFakeRequestRepo(
		request.New(a.ID, tuesday, request.StatusInterrupted),
		request.New(b.ID, tuesday, request.StatusAllocated),
		request.New(a.ID, wednesday, request.StatusInterrupted),
	)
	task := usecase.NewSoftInterruptUpdateTask(
		requestRepo, londonCalendar(t), clock.NewFixedClock(mondayMorning(t)), testLogger(),
	)

	require.NoError(t, task.Run(context.Background()))

	got, ok := requestRepo.get(a.ID, tuesday)
	require.True(t, ok)
	assert.Equal(t, request.StatusSoftInterrupted, got.Status)

	unchanged, ok := requestRepo.get(b.ID, tuesday)
	require.True(t, ok)
	assert.Equal(t, request.StatusAllocated, unchanged.Status)

	later, ok := requestRepo.get(a.ID, wednesday)
	require.True(t, ok)
	assert.Equal(t, request.StatusInterrupted, later.Status, "only the next working date is softened")
}

func TestSoftInterruptUpdateTaskNoCandidatesNoWrite(t *testing.T) {
	requestRepo := newFakeRequestRepo()
	task := usecase.NewSoftInterruptUpdateTask(
		requestRepo, londonCalendar(t), clock.NewFixedClock(mondayMorning(t)), testLogger(),
	)

	require.NoError(t, task.Run(context.Background()))
	assert.Empty(t, requestRepo.upserted)
}
