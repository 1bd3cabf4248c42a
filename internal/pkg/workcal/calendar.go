package workcal

import "time"

// Calendar computes the working-day windows the allocation passes operate on.
// All computations happen in the business timezone; weekends and bank
// holidays are never allocation dates.
type Calendar struct {
	loc             *time.Location
	holidays        map[Date]struct{}
	shortLeadDays   int
	longLeadWeeks   int
	dailyCutoffHour int
}

func NewCalendar(loc *time.Location, holidays []Date, shortLeadDays, longLeadWeeks, dailyCutoffHour int) *Calendar {
	hs := make(map[Date]struct{}, len(holidays))
	for _, h := range holidays {
		hs[h] = struct{}{}
	}
	return &Calendar{
		loc:             loc,
		holidays:        hs,
		shortLeadDays:   shortLeadDays,
		longLeadWeeks:   longLeadWeeks,
		dailyCutoffHour: dailyCutoffHour,
	}
}

func (c *Calendar) Location() *time.Location {
	return c.loc
}

func (c *Calendar) DailyCutoffHour() int {
	return c.dailyCutoffHour
}

func (c *Calendar) IsWorkingDay(d Date) bool {
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	_, holiday := c.holidays[d]
	return !holiday
}

// NextWorkingDate returns the first working day strictly after now's date.
func (c *Calendar) NextWorkingDate(now time.Time) Date {
	d := DateOf(now.In(c.loc)).AddDays(1)
	for !c.IsWorkingDay(d) {
		d = d.AddDays(1)
	}
	return d
}

// ShortLeadTimeAllocationDates returns the next shortLeadDays working days.
// Today is included until the daily cutoff; after the cutoff today's
// allocation is settled and the window starts on the next working day.
func (c *Calendar) ShortLeadTimeAllocationDates(now time.Time) []Date {
	local := now.In(c.loc)
	start := DateOf(local)
	if local.Hour() >= c.dailyCutoffHour {
		start = start.AddDays(1)
	}
	for !c.IsWorkingDay(start) {
		start = start.AddDays(1)
	}

	dates := make([]Date, 0, c.shortLeadDays)
	for d := start; len(dates) < c.shortLeadDays; d = d.AddDays(1) {
		if c.IsWorkingDay(d) {
			dates = append(dates, d)
		}
	}
	return dates
}

// LongLeadTimeAllocationDates returns the working days after the short
// lead-time window, through the last Sunday of the week longLeadWeeks ahead.
func (c *Calendar) LongLeadTimeAllocationDates(now time.Time) []Date {
	short := c.ShortLeadTimeAllocationDates(now)
	if len(short) == 0 {
		return nil
	}
	shortEnd := short[len(short)-1]

	today := DateOf(now.In(c.loc))
	lastDay := endOfWeek(today).AddDays(7 * c.longLeadWeeks)

	var dates []Date
	for d := shortEnd.AddDays(1); !d.After(lastDay); d = d.AddDays(1) {
		if c.IsWorkingDay(d) {
			dates = append(dates, d)
		}
	}
	return dates
}

// WeeklyNotificationDates returns the working days of the week after now's.
func (c *Calendar) WeeklyNotificationDates(now time.Time) []Date {
	today := DateOf(now.In(c.loc))
	monday := endOfWeek(today).AddDays(1)

	var dates []Date
	for d := monday; len(dates) < 5 && !d.After(monday.AddDays(6)); d = d.AddDays(1) {
		if c.IsWorkingDay(d) {
			dates = append(dates, d)
		}
	}
	return dates
}

// NextDailyRunTime returns the next instant, strictly after now, at the
// given local hour of a working day.
func (c *Calendar) NextDailyRunTime(now time.Time, hour int) time.Time {
	d := DateOf(now.In(c.loc))
	for {
		if c.IsWorkingDay(d) {
			if at := d.At(hour, 0, c.loc); at.After(now) {
				return at
			}
		}
		d = d.AddDays(1)
	}
}

// NextWeeklyRunTime returns the next instant, strictly after now, at the
// given local hour of the given weekday.
func (c *Calendar) NextWeeklyRunTime(now time.Time, weekday time.Weekday, hour int) time.Time {
	d := DateOf(now.In(c.loc))
	for {
		if d.Weekday() == weekday {
			if at := d.At(hour, 0, c.loc); at.After(now) {
				return at
			}
		}
		d = d.AddDays(1)
	}
}

// endOfWeek returns the Sunday of d's Monday-based week.
func endOfWeek(d Date) Date {
	wd := int(d.Weekday())
	if wd == 0 {
		return d
	}
	return d.AddDays(7 - wd)
}
