package allocation

import (
	"math"
	"sort"

	"parking-allocator/internal/domain/request"
	"parking-allocator/internal/domain/reservation"
	"parking-allocator/internal/domain/user"
	"parking-allocator/internal/pkg/rng"
	"parking-allocator/internal/pkg/workcal"

	"github.com/google/uuid"
)

// Sorter produces the priority order in which competing requests are offered
// spaces. Priority tiers, highest first:
//
//  1. the user holds a reservation for the date
//  2. the user lives far away (unknown commute counts as far)
//  3. lower historical allocation ratio
//
// Ties keep their input order, so callers must present requests in a
// deterministic order.
type Sorter struct {
	random           rng.Source
	ratioWindowStart workcal.Date
}

func NewSorter(random rng.Source, ratioWindowStart workcal.Date) *Sorter {
	return &Sorter{random: random, ratioWindowStart: ratioWindowStart}
}

type candidate struct {
	req            request.Request
	hasReservation bool
	farAway        bool
	ratio          Ratio
}

// Sort filters requests down to the allocatable candidates for date and
// orders them by allocation priority. The requests slice may span any date
// range; history before date feeds the fairness ratio.
func (s *Sorter) Sort(
	date workcal.Date,
	requests []request.Request,
	reservations []reservation.Reservation,
	users []user.User,
	nearbyDistanceKm float64,
) []request.Request {
	reserved := reservation.Index(reservations)
	usersByID := make(map[uuid.UUID]user.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	var candidates []candidate
	for _, r := range requests {
		if r.Date != date || !r.Status.IsAllocatable() {
			continue
		}
		_, hasReservation := reserved[reservation.New(r.UserID, date)]

		u, found := usersByID[r.UserID]
		farAway := !found || !u.LivesNearby(nearbyDistanceKm)

		candidates = append(candidates, candidate{
			req:            r,
			hasReservation: hasReservation,
			farAway:        farAway,
			ratio:          s.existingAllocationRatio(r.UserID, date, requests, reserved),
		})
	}

	s.fillUnknownRatios(candidates)

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.hasReservation != b.hasReservation {
			return a.hasReservation
		}
		if a.farAway != b.farAway {
			return a.farAway
		}
		return a.ratio.Value() < b.ratio.Value()
	})

	sorted := make([]request.Request, len(candidates))
	for i, c := range candidates {
		sorted[i] = c.req
	}
	return sorted
}

// existingAllocationRatio looks at the user's other requests strictly before
// date and on/after the ratio window start. Dates where the user held a
// reservation are excluded: those were satisfied outside the competition the
// ratio measures.
func (s *Sorter) existingAllocationRatio(
	userID uuid.UUID,
	date workcal.Date,
	requests []request.Request,
	reserved map[reservation.Reservation]struct{},
) Ratio {
	allocated := 0
	requested := 0
	for _, r := range requests {
		if r.UserID != userID || !r.Date.Before(date) || r.Date.Before(s.ratioWindowStart) {
			continue
		}
		if _, held := reserved[reservation.New(userID, r.Date)]; held {
			continue
		}
		if !r.Status.IsRequested() {
			continue
		}
		requested++
		if r.Status == request.StatusAllocated {
			allocated++
		}
	}
	if requested == 0 {
		return UnknownRatio()
	}
	return KnownRatio(float64(allocated) / float64(requested))
}

// fillUnknownRatios gives no-history candidates a ratio drawn strictly
// between the round's known extremes (0 and 1 when no ratio is known), at
// whole-percent granularity, so they interleave with the field instead of
// piling up at either end.
func (s *Sorter) fillUnknownRatios(candidates []candidate) {
	minPct, maxPct := 0, 100
	haveKnown := false
	for _, c := range candidates {
		if !c.ratio.Known() {
			continue
		}
		pct := int(math.Round(c.ratio.Value() * 100))
		if !haveKnown {
			minPct, maxPct = pct, pct
			haveKnown = true
			continue
		}
		if pct < minPct {
			minPct = pct
		}
		if pct > maxPct {
			maxPct = pct
		}
	}

	for i := range candidates {
		if candidates[i].ratio.Known() {
			continue
		}
		candidates[i].ratio = KnownRatio(float64(s.drawPercent(minPct, maxPct)) / 100)
	}
}

func (s *Sorter) drawPercent(minPct, maxPct int) int {
	// No open interval exists at whole-percent granularity; collapse to the
	// single shared value.
	if maxPct-minPct < 2 {
		return minPct
	}
	return s.random.IntBetween(minPct+1, maxPct-1)
}
