/*
types.go - Configuration table types for the classification engine

PURPOSE:
  Defines the immutable configuration the classifier is built from:
  the ordered period-rule table and the year-keyed holiday table.
  Both are injected at construction time, never compiled-in globals,
  so tests can supply synthetic tables.

KEY CONCEPTS:
  - Status: closed enumeration of leave-suitability statuses
  - PeriodRule: year-agnostic recurring date range with a status
  - Holiday / HolidayTable: year-scoped public holiday lookup

SEE ALSO:
  - classifier.go: how these tables are consulted
  - factory/tables.go: JSON representation and defaults
*/
package calendar

// =============================================================================
// STATUS - Closed leave-suitability enumeration
// =============================================================================

// Status tags a period with its leave suitability. The set is closed;
// anything else is rejected at table-load time so downstream handling
// (styling, warnings) can switch exhaustively.
type Status string

const (
	StatusLeaveOK    Status = "leave-ok"
	StatusBusy       Status = "busy"
	StatusLongLeave  Status = "long-leave"
	StatusGrandFinal Status = "grand-final"
)

// Known reports whether s is one of the closed status values.
func (s Status) Known() bool {
	switch s {
	case StatusLeaveOK, StatusBusy, StatusLongLeave, StatusGrandFinal:
		return true
	}
	return false
}

// =============================================================================
// PERIOD RULE - Year-agnostic recurring calendar range
// =============================================================================

// PeriodRule covers [Start, End] inclusive within any calendar year.
// Rules never wrap across the Dec->Jan boundary: Start must not order
// after End. Table order is significant - when rules overlap, the first
// match in table order wins.
type PeriodRule struct {
	Start  MonthDay
	End    MonthDay
	Status Status
	Label  string
	Note   string // optional; falls back to Label in tooltips
}

// Contains reports whether the rule covers the given calendar position.
func (r PeriodRule) Contains(md MonthDay) bool {
	return md.AfterOrEqual(r.Start) && md.BeforeOrEqual(r.End)
}

// Tooltip returns the hover text for days in this rule (note over label).
func (r PeriodRule) Tooltip() string {
	if r.Note != "" {
		return r.Note
	}
	return r.Label
}

// Validate checks the rule's internal invariants.
func (r PeriodRule) Validate() error {
	if !r.Start.Valid() || !r.End.Valid() {
		return &InvalidRuleError{Rule: r, Reason: "boundary is not a calendar position"}
	}
	if r.Start.Compare(r.End) > 0 {
		return &InvalidRuleError{Rule: r, Reason: "start orders after end (rules must not wrap the year boundary)"}
	}
	if !r.Status.Known() {
		return &InvalidRuleError{Rule: r, Reason: "unknown status " + string(r.Status)}
	}
	return nil
}

// =============================================================================
// HOLIDAYS - Year-scoped public holiday table
// =============================================================================

// Holiday is a single public holiday. A date matches at most one holiday.
type Holiday struct {
	Date Date
	Name string
}

// HolidayTable answers year-scoped holiday lookups. Lookups are exact by
// canonical date key; a year absent from the table simply has no holidays.
type HolidayTable struct {
	byKey  map[string]Holiday
	byYear map[int][]Holiday
}

// NewHolidayTable indexes the supplied year -> holidays mapping.
// The input is copied; the table is immutable afterwards.
func NewHolidayTable(years map[int][]Holiday) *HolidayTable {
	t := &HolidayTable{
		byKey:  make(map[string]Holiday),
		byYear: make(map[int][]Holiday, len(years)),
	}
	for year, hs := range years {
		list := make([]Holiday, len(hs))
		copy(list, hs)
		t.byYear[year] = list
		for _, h := range hs {
			t.byKey[h.Date.Key()] = h
		}
	}
	return t
}

// Lookup returns the holiday on the given date, or nil.
// Only years present in the table can match (no cross-year inference).
func (t *HolidayTable) Lookup(d Date) *Holiday {
	if t == nil {
		return nil
	}
	if h, ok := t.byKey[d.Key()]; ok {
		return &h
	}
	return nil
}

// Year returns all holidays recorded for a year, in table order.
func (t *HolidayTable) Year(year int) []Holiday {
	if t == nil {
		return nil
	}
	return t.byYear[year]
}
