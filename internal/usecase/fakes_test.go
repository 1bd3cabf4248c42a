//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"sort"

	"parking-allocator/internal/domain/allocation"
	"parking-allocator/internal/domain/request"
	"parking-allocator/internal/domain/reservation"
	"parking-allocator/internal/domain/schedule"
	"parking-allocator/internal/domain/user"
	"parking-allocator/internal/infra/mail"
	"parking-allocator/internal/pkg/workcal"

	"github.com/google/uuid"
)

// In-memory fakes for the usecase ports. Error fields let tests force any
// port call to fail.

var errNotFound = errors.New("not found")

type fakeRequestRepo struct {
	store     map[request.Key]request.Request
	findErr   error
	upsertErr error
	upserted  [][]request.Request
}

func newFakeRequestRepo(requests ...request.Request) *fakeRequestRepo {
	r := &fakeRequestRepo{store: make(map[request.Key]request.Request)}
	for _, req := range requests {
		r.store[req.Key()] = req
	}
	return r
}

func (r *fakeRequestRepo) FindInRange(_ context.Context, first, last workcal.Date) ([]request.Request, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var out []request.Request
	for _, req := range r.store {
		if !req.Date.Before(first) && !req.Date.After(last) {
			out = append(out, req)
		}
	}
	sortRequests(out)
	return out, nil
}

func (r *fakeRequestRepo) FindByUserInRange(_ context.Context, userID uuid.UUID, first, last workcal.Date) ([]request.Request, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var out []request.Request
	for _, req := range r.store {
		if req.UserID == userID && !req.Date.Before(first) && !req.Date.After(last) {
			out = append(out, req)
		}
	}
	sortRequests(out)
	return out, nil
}

func (r *fakeRequestRepo) Upsert(_ context.Context, requests []request.Request) error {
	if r.upsertErr != nil {
		return r.upsertErr
	}
	r.upserted = append(r.upserted, requests)
	for _, req := range requests {
		r.store[req.Key()] = req
	}
	return nil
}

func (r *fakeRequestRepo) get(userID uuid.UUID, date workcal.Date) (request.Request, bool) {
	req, ok := r.store[request.Key{UserID: userID, Date: date}]
	return req, ok
}

func sortRequests(requests []request.Request) {
	sort.Slice(requests, func(i, j int) bool {
		if c := requests[i].Date.Compare(requests[j].Date); c != 0 {
			return c < 0
		}
		return requests[i].UserID.String() < requests[j].UserID.String()
	})
}

type fakeReservationRepo struct {
	reservations []reservation.Reservation
	findErr      error
	replaceErr   error
}

func (r *fakeReservationRepo) FindInRange(_ context.Context, first, last workcal.Date) ([]reservation.Reservation, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var out []reservation.Reservation
	for _, res := range r.reservations {
		if !res.Date.Before(first) && !res.Date.After(last) {
			out = append(out, res)
		}
	}
	return out, nil
}

func (r *fakeReservationRepo) Replace(_ context.Context, first, last workcal.Date, reservations []reservation.Reservation) error {
	if r.replaceErr != nil {
		return r.replaceErr
	}
	var kept []reservation.Reservation
	for _, res := range r.reservations {
		if res.Date.Before(first) || res.Date.After(last) {
			kept = append(kept, res)
		}
	}
	r.reservations = append(kept, reservations...)
	return nil
}

type fakeUserRepo struct {
	users   []user.User
	hashes  map[string]string
	findErr error
}

func (r *fakeUserRepo) FindAll(_ context.Context) ([]user.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var out []user.User
	for _, u := range r.users {
		if !u.IsDeleted {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) FindTeamLeaders(_ context.Context) ([]user.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	var out []user.User
	for _, u := range r.users {
		if !u.IsDeleted && u.IsTeamLeader {
			out = append(out, u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.ID == id {
			found := u
			return &found, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email user.Email) (*user.User, string, error) {
	if r.findErr != nil {
		return nil, "", r.findErr
	}
	for _, u := range r.users {
		if u.Email == email {
			found := u
			return &found, r.hashes[email.Value()], nil
		}
	}
	return nil, "", errNotFound
}

type fakeConfigRepo struct {
	cfg    allocation.Config
	getErr error
	putErr error
}

func (r *fakeConfigRepo) Get(_ context.Context) (allocation.Config, error) {
	if r.getErr != nil {
		return allocation.Config{}, r.getErr
	}
	return r.cfg, nil
}

func (r *fakeConfigRepo) Put(_ context.Context, cfg allocation.Config) error {
	if r.putErr != nil {
		return r.putErr
	}
	r.cfg = cfg
	return nil
}

type fakeScheduleRepo struct {
	schedules []schedule.Schedule
	findErr   error
	updateErr error
	updated   []schedule.Schedule
}

func (r *fakeScheduleRepo) FindAll(_ context.Context) ([]schedule.Schedule, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]schedule.Schedule, len(r.schedules))
	copy(out, r.schedules)
	return out, nil
}

func (r *fakeScheduleRepo) Update(_ context.Context, s schedule.Schedule) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updated = append(r.updated, s)
	for i := range r.schedules {
		if r.schedules[i].Task == s.Task {
			r.schedules[i] = s
			return nil
		}
	}
	r.schedules = append(r.schedules, s)
	return nil
}

type fakeEmailSender struct {
	sent    []mail.Email
	sendErr error
}

func (s *fakeEmailSender) Send(_ context.Context, email mail.Email) error {
	if s.sendErr != nil {
		return s.sendErr
	}
	s.sent = append(s.sent, email)
	return nil
}

type fakeRunLock struct {
	acquireErr error
	acquired   int
	released   int
}

func (l *fakeRunLock) Acquire(_ context.Context) error {
	if l.acquireErr != nil {
		return l.acquireErr
	}
	l.acquired++
	return nil
}

func (l *fakeRunLock) Release(_ context.Context) error {
	l.released++
	return nil
}
