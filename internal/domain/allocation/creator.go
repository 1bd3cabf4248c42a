package allocation

import (
	"log/slog"

	"parking-allocator/internal/domain/request"
	"parking-allocator/internal/domain/reservation"
	"parking-allocator/internal/domain/user"
	"parking-allocator/internal/pkg/workcal"
)

// Creator decides how many of the sorted candidates for a date are promoted
// to allocated. It never persists anything; the caller owns the result.
type Creator struct {
	sorter *Sorter
	logger *slog.Logger
}

func NewCreator(sorter *Sorter, logger *slog.Logger) *Creator {
	return &Creator{sorter: sorter, logger: logger}
}

// Create returns the newly allocated requests for date, capacity permitting.
// The long-lead-time pass withholds cfg.ShortLeadTimeSpaces for later
// short-lead-time use.
func (c *Creator) Create(
	date workcal.Date,
	requests []request.Request,
	reservations []reservation.Reservation,
	users []user.User,
	cfg Config,
	leadTime LeadTime,
) []request.Request {
	spacesToReserve := 0
	if leadTime == LongLeadTime {
		spacesToReserve = cfg.ShortLeadTimeSpaces
	}
	allocatableSpaces := cfg.TotalSpaces - spacesToReserve

	alreadyAllocated := 0
	for _, r := range requests {
		if r.Date == date && r.Status == request.StatusAllocated {
			alreadyAllocated++
		}
	}

	freeSpaces := allocatableSpaces - alreadyAllocated
	if freeSpaces < 0 {
		// Over-allocation should not happen by construction; flag it and
		// leave the existing allocations untouched.
		c.logger.Warn("over-allocation detected",
			"date", date.String(),
			"leadTime", leadTime.String(),
			"allocatableSpaces", allocatableSpaces,
			"alreadyAllocated", alreadyAllocated)
		return nil
	}
	if freeSpaces == 0 {
		return nil
	}

	sorted := c.sorter.Sort(date, requests, reservations, users, cfg.NearbyDistanceKm)

	count := freeSpaces
	if len(sorted) < count {
		count = len(sorted)
	}

	allocated := make([]request.Request, 0, count)
	for _, r := range sorted[:count] {
		allocated = append(allocated, r.WithStatus(request.StatusAllocated))
	}

	c.logger.Debug("allocation pass complete",
		"date", date.String(),
		"leadTime", leadTime.String(),
		"candidates", len(sorted),
		"allocated", len(allocated),
		"freeSpaces", freeSpaces)

	return allocated
}
