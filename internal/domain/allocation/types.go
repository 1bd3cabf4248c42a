package allocation

import "errors"

var (
	ErrInvalidSpaceCount = errors.New("space counts cannot be negative")
	ErrReservedExceeds   = errors.New("short-lead-time spaces cannot exceed total spaces")
)

// Config is the site-wide capacity policy, loaded from the configuration
// store at the start of every run.
type Config struct {
	// TotalSpaces is the number of physical spaces.
	TotalSpaces int
	// ShortLeadTimeSpaces is withheld from long-lead-time allocation and
	// released only to the short-lead-time pass.
	ShortLeadTimeSpaces int
	// NearbyDistanceKm is the commute distance at or below which a user is
	// "nearby" and deprioritised.
	NearbyDistanceKm float64
}

func NewConfig(totalSpaces, shortLeadTimeSpaces int, nearbyDistanceKm float64) (Config, error) {
	if totalSpaces < 0 || shortLeadTimeSpaces < 0 {
		return Config{}, ErrInvalidSpaceCount
	}
	if shortLeadTimeSpaces > totalSpaces {
		return Config{}, ErrReservedExceeds
	}
	return Config{
		TotalSpaces:         totalSpaces,
		ShortLeadTimeSpaces: shortLeadTimeSpaces,
		NearbyDistanceKm:    nearbyDistanceKm,
	}, nil
}

// LeadTime distinguishes the two allocation passes. The short pass may fill
// every space; the long pass must leave ShortLeadTimeSpaces free.
type LeadTime int

const (
	ShortLeadTime LeadTime = iota
	LongLeadTime
)

func (lt LeadTime) String() string {
	if lt == ShortLeadTime {
		return "short"
	}
	return "long"
}
