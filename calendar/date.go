/*
Package calendar provides the core date-classification engine.

PURPOSE:
  This package contains the pure logic that classifies any calendar date
  against the company leave-suitability periods and public holidays. It has
  no I/O, no clock dependency, and no mutable state: the same inputs always
  produce the same classification.

KEY CONCEPTS IN THIS FILE (date.go):
  - Date: A proleptic-Gregorian (year, month, day) triple. The canonical
    identity key is the YYYY-MM-DD string form; all comparison and
    arithmetic happen on the parsed value, never on strings.
  - MonthDay: A year-agnostic (month, day) pair used by period rules.

DESIGN PRINCIPLES:
  1. Value semantics: Date is a small immutable value type
  2. Boundary validation: ParseDate/NewDate reject impossible dates so the
     classifier never sees one
  3. No time-of-day: midnight UTC internally, invisible to callers

SEE ALSO:
  - types.go: Status, PeriodRule, Holiday, HolidayTable
  - classifier.go: Classification policy
*/
package calendar

import (
	"time"
)

// =============================================================================
// DATE - Day-granularity calendar date
// =============================================================================

// Date is a single proleptic-Gregorian calendar day.
// The zero value is not a valid date; construct via NewDate or ParseDate.
type Date struct {
	t time.Time
}

// KeyLayout is the canonical string form used as identity and wire format.
const KeyLayout = "2006-01-02"

// NewDate builds a Date, validating that the (year, month, day) triple
// names a real calendar day (Feb 29 only in leap years, Apr 31 never).
func NewDate(year int, month time.Month, day int) (Date, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return Date{}, &InvalidDateError{Year: year, Month: month, Day: day}
	}
	return Date{t: t}, nil
}

// MustDate is NewDate for compile-time-known dates; panics on invalid input.
func MustDate(year int, month time.Month, day int) Date {
	d, err := NewDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// ParseDate parses the canonical YYYY-MM-DD key form.
func ParseDate(key string) (Date, error) {
	t, err := time.Parse(KeyLayout, key)
	if err != nil {
		return Date{}, &InvalidDateError{Key: key, Cause: err}
	}
	return Date{t: t}, nil
}

// Comparison
func (d Date) Before(other Date) bool        { return d.t.Before(other.t) }
func (d Date) After(other Date) bool         { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool         { return d.t.Equal(other.t) }
func (d Date) BeforeOrEqual(other Date) bool { return !d.After(other) }
func (d Date) AfterOrEqual(other Date) bool  { return !d.Before(other) }

// Arithmetic
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// DaysBetween returns the signed number of calendar days from 'from' to 'to'.
func DaysBetween(from, to Date) int { return int(to.t.Sub(from.t).Hours() / 24) }

// Properties
func (d Date) Year() int             { return d.t.Year() }
func (d Date) Month() time.Month     { return d.t.Month() }
func (d Date) Day() int              { return d.t.Day() }
func (d Date) Weekday() time.Weekday { return d.t.Weekday() }
func (d Date) IsZero() bool          { return d.t.IsZero() }

func (d Date) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// MonthDay strips the year for comparison against year-agnostic rules.
func (d Date) MonthDay() MonthDay { return MonthDay{Month: d.Month(), Day: d.Day()} }

// Key returns the canonical YYYY-MM-DD identity string.
func (d Date) Key() string { return d.t.Format(KeyLayout) }

// Format exposes time layout formatting for presentation strings
// (e.g. "2 Jan 2006", "Monday, 2 January 2006").
func (d Date) Format(layout string) string { return d.t.Format(layout) }

func (d Date) String() string { return d.Key() }

// Time returns the underlying midnight-UTC instant, for interop with
// libraries that want a time.Time (ICS encoding).
func (d Date) Time() time.Time { return d.t }

// SortDates sorts a slice of dates chronologically, in place.
func SortDates(dates []Date) {
	for i := 1; i < len(dates); i++ {
		for j := i; j > 0 && dates[j].Before(dates[j-1]); j-- {
			dates[j], dates[j-1] = dates[j-1], dates[j]
		}
	}
}

// =============================================================================
// MONTH-DAY - Year-agnostic calendar position
// =============================================================================

// MonthDay is a (month, day) pair ordered lexicographically: month first,
// then day. Period rules are defined on MonthDay boundaries and apply
// identically every year.
type MonthDay struct {
	Month time.Month
	Day   int
}

// Compare returns -1, 0, or +1 ordering md against other.
func (md MonthDay) Compare(other MonthDay) int {
	switch {
	case md.Month < other.Month:
		return -1
	case md.Month > other.Month:
		return 1
	case md.Day < other.Day:
		return -1
	case md.Day > other.Day:
		return 1
	default:
		return 0
	}
}

func (md MonthDay) BeforeOrEqual(other MonthDay) bool { return md.Compare(other) <= 0 }
func (md MonthDay) AfterOrEqual(other MonthDay) bool  { return md.Compare(other) >= 0 }

// Valid reports whether the pair can name a real day in at least one year.
// Feb 29 is valid here: it resolves to a concrete date only in leap years,
// but a rule boundary may legitimately sit on it.
func (md MonthDay) Valid() bool {
	if md.Month < time.January || md.Month > time.December {
		return false
	}
	return md.Day >= 1 && md.Day <= maxDayOfMonth(md.Month)
}

func maxDayOfMonth(m time.Month) int {
	switch m {
	case time.February:
		return 29
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}
