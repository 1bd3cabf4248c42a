package workcal

import "time"

// England & Wales bank holidays, including substitute days. Extend this
// table as later years are published.
var defaultBankHolidays = []Date{
	{2025, time.January, 1},
	{2025, time.April, 18},
	{2025, time.April, 21},
	{2025, time.May, 5},
	{2025, time.May, 26},
	{2025, time.August, 25},
	{2025, time.December, 25},
	{2025, time.December, 26},
	{2026, time.January, 1},
	{2026, time.April, 3},
	{2026, time.April, 6},
	{2026, time.May, 4},
	{2026, time.May, 25},
	{2026, time.August, 31},
	{2026, time.December, 25},
	{2026, time.December, 28},
	{2027, time.January, 1},
	{2027, time.March, 26},
	{2027, time.March, 29},
	{2027, time.May, 3},
	{2027, time.May, 31},
	{2027, time.August, 30},
	{2027, time.December, 27},
	{2027, time.December, 28},
}

func DefaultBankHolidays() []Date {
	out := make([]Date, len(defaultBankHolidays))
	copy(out, defaultBankHolidays)
	return out
}
