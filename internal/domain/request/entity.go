package request

import (
	"errors"

	"parking-allocator/internal/pkg/workcal"

	"github.com/google/uuid"
)

var ErrUnknownStatus = errors.New("unknown request status")

// Status is the lifecycle state of one user's request for one date.
type Status string

const (
	// StatusPending is freshly submitted, untouched by any allocation pass.
	StatusPending Status = "pending"
	// StatusInterrupted was processed but not allocated; still competing.
	StatusInterrupted Status = "interrupted"
	// StatusSoftInterrupted is interrupted past the daily cutoff; still
	// competing, and the user may escalate it to hard.
	StatusSoftInterrupted Status = "soft_interrupted"
	// StatusHardInterrupted is a user's explicit opt-out for the date; it no
	// longer competes for a space.
	StatusHardInterrupted Status = "hard_interrupted"
	// StatusAllocated holds a space for the date.
	StatusAllocated Status = "allocated"
	// StatusCancelled is withdrawn; invisible to allocation and fairness.
	StatusCancelled Status = "cancelled"
)

// ParseStatus rejects anything outside the closed enum. An unknown status in
// stored data is a programming error and must surface, not be skipped.
func ParseStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusPending, StatusInterrupted, StatusSoftInterrupted,
		StatusHardInterrupted, StatusAllocated, StatusCancelled:
		return Status(value), nil
	default:
		return "", ErrUnknownStatus
	}
}

func (s Status) String() string {
	return string(s)
}

// IsAllocatable reports whether the status competes for a space.
func (s Status) IsAllocatable() bool {
	return s == StatusInterrupted || s == StatusSoftInterrupted
}

// IsRequested reports whether the status counts toward the fairness-ratio
// denominator: everything except cancelled.
func (s Status) IsRequested() bool {
	return s != StatusCancelled
}

// IsInterrupted groups the three interrupted flavours for summaries.
func (s Status) IsInterrupted() bool {
	return s == StatusInterrupted || s == StatusSoftInterrupted || s == StatusHardInterrupted
}

// Key identifies a request: at most one request per user per date exists in
// any consistent view.
type Key struct {
	UserID uuid.UUID
	Date   workcal.Date
}

// Request is one user's parking status for one calendar date. It is a value:
// status transitions produce a replacement persisted as overwrite-by-key.
type Request struct {
	UserID uuid.UUID
	Date   workcal.Date
	Status Status
}

func New(userID uuid.UUID, date workcal.Date, status Status) Request {
	return Request{UserID: userID, Date: date, Status: status}
}

func (r Request) Key() Key {
	return Key{UserID: r.UserID, Date: r.Date}
}

func (r Request) WithStatus(status Status) Request {
	return Request{UserID: r.UserID, Date: r.Date, Status: status}
}
