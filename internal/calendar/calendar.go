package calendar

import (
	"time"
)

// DaysPerWeek is the number of day slots in every computed week.
const DaysPerWeek = 7

// Week is a 7-day span aligned to the configured first day of week. A week
// always covers exactly 7 consecutive dates, but at month boundaries some of
// those dates belong to an adjacent month: DaysActive[i] is true iff the i-th
// day of the span (counted from the week start) falls inside the owning
// month.
type Week struct {
	StartDate  time.Time
	EndDate    time.Time
	DaysActive [DaysPerWeek]bool
}

// Month is the ordered sequence of weeks covering exactly the days of one
// calendar month. Boundary weeks are owned by each month they touch, so the
// date spans of two adjacent months' edge weeks may overlap; the DaysActive
// masks keep each day attributed to exactly one month.
type Month struct {
	Weeks []Week
}

// Calendar is the full 12-month partition of one year.
type Calendar struct {
	Months []Month
}

// WeekSpan addresses a contiguous run of weeks inside the flattened week
// list: Start is the index of the month's first week, Count the number of
// weeks in that month.
type WeekSpan struct {
	Start int
	Count int
}

// Calculate partitions the given year into months and weeks aligned to
// firstDay. For each month, the 1st is offset (weekday(1st) - firstDay) mod 7
// days into its first week, days are bucketed into weeks of 7 from there, and
// edge weeks overhang into the neighboring months with the overhang marked
// inactive.
func Calculate(firstDay time.Weekday, year int) Calendar {
	months := make([]Month, 0, 12)

	for m := time.January; m <= time.December; m++ {
		first := time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
		dayCount := daysIn(year, m)
		offset := (int(first.Weekday()) - int(firstDay) + DaysPerWeek) % DaysPerWeek

		weekCount := (dayCount + offset + DaysPerWeek - 1) / DaysPerWeek
		weeks := make([]Week, weekCount)
		for n := range weeks {
			// Day offset of the week start relative to the 1st; negative for
			// a first week that begins in the previous month.
			startDay := n*DaysPerWeek - offset

			var active [DaysPerWeek]bool
			for d := 0; d < DaysPerWeek; d++ {
				active[d] = startDay+d >= 0 && startDay+d < dayCount
			}

			weeks[n] = Week{
				StartDate:  first.AddDate(0, 0, startDay),
				EndDate:    first.AddDate(0, 0, startDay+DaysPerWeek-1),
				DaysActive: active,
			}
		}

		months = append(months, Month{Weeks: weeks})
	}

	return Calendar{Months: months}
}

// Weeks flattens all months' weeks in month order then intra-month order.
// This is the canonical row order used for sheet layout.
func (c Calendar) Weeks() []Week {
	var weeks []Week
	for _, m := range c.Months {
		weeks = append(weeks, m.Weeks...)
	}
	return weeks
}

// WeekNumberRanges returns, per month, the span that month occupies inside
// the flattened week list. The spans partition [0, len(Weeks())) contiguously
// in month order.
func (c Calendar) WeekNumberRanges() []WeekSpan {
	spans := make([]WeekSpan, 0, len(c.Months))
	start := 0
	for _, m := range c.Months {
		spans = append(spans, WeekSpan{Start: start, Count: len(m.Weeks)})
		start += len(m.Weeks)
	}
	return spans
}

// FirstDayOfWeek derives the effective week-start day from the computed data
// rather than from configuration: it is the weekday on which the first week
// with an active leading day begins. Header labels are generated from this so
// they always agree with the actual layout.
func (c Calendar) FirstDayOfWeek() time.Weekday {
	for _, w := range c.Weeks() {
		if w.DaysActive[0] {
			return w.StartDate.Weekday()
		}
	}
	// Unreachable for any computed calendar: every month has at least one
	// week that starts inside it.
	return time.Sunday
}

func daysIn(year int, m time.Month) int {
	// Day 0 of the next month normalizes to the last day of m.
	return time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
