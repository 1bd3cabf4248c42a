package usecase

import (
	"context"

	"parking-allocator/internal/domain/allocation"
	"parking-allocator/internal/domain/request"
	"parking-allocator/internal/domain/reservation"
	"parking-allocator/internal/domain/schedule"
	"parking-allocator/internal/domain/user"
	"parking-allocator/internal/infra/mail"
	"parking-allocator/internal/pkg/workcal"

	"github.com/google/uuid"
)

// Collaborator ports. Persistence is an upsert-by-key model: saving a
// request replaces whatever is stored for the same (user, date) and leaves
// every other key untouched.

type RequestRepository interface {
	FindInRange(ctx context.Context, first, last workcal.Date) ([]request.Request, error)
	FindByUserInRange(ctx context.Context, userID uuid.UUID, first, last workcal.Date) ([]request.Request, error)
	Upsert(ctx context.Context, requests []request.Request) error
}

type ReservationRepository interface {
	FindInRange(ctx context.Context, first, last workcal.Date) ([]reservation.Reservation, error)
	// Replace swaps the stored reservations inside [first, last] for the
	// given set in one transaction.
	Replace(ctx context.Context, first, last workcal.Date, reservations []reservation.Reservation) error
}

type UserRepository interface {
	FindAll(ctx context.Context) ([]user.User, error)
	FindTeamLeaders(ctx context.Context) ([]user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	// FindByEmail also returns the stored password hash for login.
	FindByEmail(ctx context.Context, email user.Email) (*user.User, string, error)
}

type ConfigurationRepository interface {
	Get(ctx context.Context) (allocation.Config, error)
	Put(ctx context.Context, cfg allocation.Config) error
}

type ScheduleRepository interface {
	FindAll(ctx context.Context) ([]schedule.Schedule, error)
	Update(ctx context.Context, s schedule.Schedule) error
}

type EmailSender interface {
	Send(ctx context.Context, email mail.Email) error
}

// RunLock guards the rolling recomputation: at most one Update run may be in
// flight across all processes.
type RunLock interface {
	Acquire(ctx context.Context) error
	Release(ctx context.Context) error
}
