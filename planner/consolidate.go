/*
consolidate.go - Range consolidation over a selection

PURPOSE:
  Turns the set of selected days into the derived data the request panel
  and the email draft are built from: maximal contiguous date ranges, the
  business-day count, and deduplicated period warnings.

ALGORITHM:
  Sort the selection chronologically (true date arithmetic, not string
  order), then walk the sequence: a gap of exactly one calendar day
  extends the current range, any other gap closes it and starts a new
  one. Ranges are therefore maximal, non-overlapping, and adjacency-free,
  and their union is exactly the selection.

  Business days are recounted here rather than trusted from the toggle
  path: the consolidator must stay correct even for a selection built
  without the weekend guard.

WARNINGS:
  One warning per status in {grand-final, busy} matched by any selected
  day via the classifier (first-matching-rule semantics included), carrying
  the note of the first day that triggered it. Grand-final always orders
  before busy, however many days matched or in whatever order.
*/
package planner

import (
	"fmt"

	"github.com/leader/leave-planner/calendar"
)

// =============================================================================
// DERIVED TYPES
// =============================================================================

// DateRange is a maximal run of consecutive selected days, inclusive both
// ends. Ranges are derived on every consolidation, never stored.
type DateRange struct {
	Start calendar.Date
	End   calendar.Date
	// Tag is the display precedence of the range: grand-final when any day
	// inside it is grand-final, else busy when any day is busy, else "".
	Tag calendar.Status
}

// Days returns the inclusive length of the range in calendar days.
func (r DateRange) Days() int { return calendar.DaysBetween(r.Start, r.End) + 1 }

// Warning flags a selection touching a caution period. At most one
// warning per kind is produced regardless of how many days trigger it.
type Warning struct {
	Kind    calendar.Status // StatusGrandFinal or StatusBusy
	Message string
}

// Summary is the full consolidation result for a selection.
type Summary struct {
	Dates        []calendar.Date // chronological
	Ranges       []DateRange
	CalendarDays int
	BusinessDays int
	Warnings     []Warning
}

// First returns the chronologically first selected day.
// Only valid when CalendarDays > 0.
func (s Summary) First() calendar.Date { return s.Dates[0] }

// Last returns the chronologically last selected day.
func (s Summary) Last() calendar.Date { return s.Dates[len(s.Dates)-1] }

// =============================================================================
// CONSOLIDATOR
// =============================================================================

// Consolidator derives ranges, counts, and warnings from a selection.
// It is stateless; every call recomputes from the supplied days.
type Consolidator struct {
	Classifier *calendar.Classifier
}

// Consolidate processes the current contents of a selection.
func (c *Consolidator) Consolidate(sel *Selection) Summary {
	return c.ConsolidateDates(sel.Dates())
}

// ConsolidateDates is the pure core: it accepts any day set, sorts it,
// and derives the summary. Duplicate days are collapsed.
func (c *Consolidator) ConsolidateDates(dates []calendar.Date) Summary {
	days := dedupe(dates)
	calendar.SortDates(days)

	sum := Summary{
		Dates:        days,
		CalendarDays: len(days),
	}
	if len(days) == 0 {
		return sum
	}

	// Range walk: gap of exactly one day extends, anything else splits.
	start, end := days[0], days[0]
	for _, d := range days[1:] {
		if calendar.DaysBetween(end, d) == 1 {
			end = d
			continue
		}
		sum.Ranges = append(sum.Ranges, c.newRange(start, end))
		start, end = d, d
	}
	sum.Ranges = append(sum.Ranges, c.newRange(start, end))

	for _, d := range days {
		if !d.IsWeekend() {
			sum.BusinessDays++
		}
	}

	sum.Warnings = c.warnings(days)
	return sum
}

// newRange builds a range and tags it by expanding the inclusive interval
// and classifying every day in it; grand-final outranks busy.
func (c *Consolidator) newRange(start, end calendar.Date) DateRange {
	r := DateRange{Start: start, End: end}
	for d := start; d.BeforeOrEqual(end); d = d.AddDays(1) {
		switch c.Classifier.Classify(d).Status() {
		case calendar.StatusGrandFinal:
			r.Tag = calendar.StatusGrandFinal
			return r
		case calendar.StatusBusy:
			r.Tag = calendar.StatusBusy
		}
	}
	return r
}

// warnings scans the selected days chronologically and emits at most one
// warning per caution status, keeping the note of the first trigger.
// Output order is fixed: grand-final first, then busy.
func (c *Consolidator) warnings(days []calendar.Date) []Warning {
	var grandFinal, busy *Warning
	for _, d := range days {
		rule := c.Classifier.MatchRule(d)
		if rule == nil {
			continue
		}
		switch rule.Status {
		case calendar.StatusGrandFinal:
			if grandFinal == nil {
				grandFinal = &Warning{
					Kind: calendar.StatusGrandFinal,
					Message: fmt.Sprintf(
						"You have selected dates during a Grand Final period (%s). Please reconsider these dates.",
						rule.Tooltip()),
				}
			}
		case calendar.StatusBusy:
			if busy == nil {
				busy = &Warning{
					Kind: calendar.StatusBusy,
					Message: fmt.Sprintf(
						"Some selected dates fall within a Busy Period (%s). Maximum 2-3 days recommended.",
						rule.Tooltip()),
				}
			}
		}
		if grandFinal != nil && busy != nil {
			break
		}
	}

	var out []Warning
	if grandFinal != nil {
		out = append(out, *grandFinal)
	}
	if busy != nil {
		out = append(out, *busy)
	}
	return out
}

func dedupe(dates []calendar.Date) []calendar.Date {
	seen := make(map[string]struct{}, len(dates))
	out := make([]calendar.Date, 0, len(dates))
	for _, d := range dates {
		key := d.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, d)
	}
	return out
}
