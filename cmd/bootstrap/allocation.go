package bootstrap

import (
	"time"

	"parking-allocator/internal/domain/allocation"
	"parking-allocator/internal/pkg/config"
	"parking-allocator/internal/pkg/rng"
	"parking-allocator/internal/pkg/workcal"

	"go.uber.org/fx"
)

var AllocationModule = fx.Module("allocation",
	fx.Provide(
		NewCalendar,
		NewSorter,
		allocation.NewCreator,
	),
)

func NewCalendar(cfg config.Config) (*workcal.Calendar, error) {
	loc, err := time.LoadLocation(cfg.Allocation.TimeZone)
	if err != nil {
		return nil, err
	}
	return workcal.NewCalendar(
		loc,
		workcal.DefaultBankHolidays(),
		cfg.Allocation.ShortLeadDays,
		cfg.Allocation.LongLeadWeeks,
		cfg.Allocation.DailyCutoffHour,
	), nil
}

func NewSorter(cfg config.Config) (*allocation.Sorter, error) {
	windowStart, err := workcal.ParseDate(cfg.Allocation.RatioWindowStart)
	if err != nil {
		return nil, err
	}
	return allocation.NewSorter(rng.New(), windowStart), nil
}
