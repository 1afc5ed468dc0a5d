/*
classifier.go - Date classification policy

PURPOSE:
  Classifies a concrete date against the weekend rule, the holiday table,
  and the ordered period-rule table. This is the single source of truth
  for selectability and tooltip text; the consolidator and the HTTP layer
  both go through it.

POLICY (in order):
  1. Weekend check: Saturday/Sunday are never selectable, even when a
     period rule or holiday also matches.
  2. Holiday check: exact year-scoped lookup; holidays are never
     selectable regardless of weekend status.
  3. Period-rule scan: rules are scanned in table order and the FIRST
     matching rule wins. Overlapping rules are legal; table order is the
     deterministic tie-break.

  A date matching no rule gets no period classification. That is a
  configuration gap, not an error - the day is still selectable if it is
  a non-holiday weekday.
*/
package calendar

import (
	"fmt"
	"time"
)

// =============================================================================
// CLASSIFICATION - Result of classifying one date
// =============================================================================

// Classification is the full status of a single calendar day.
type Classification struct {
	Date      Date
	IsWeekend bool
	Holiday   *Holiday    // nil when not a public holiday
	Rule      *PeriodRule // nil on a configuration gap
	// Selectable is derived: a day can join the selection only when it is
	// neither a weekend nor a public holiday.
	Selectable bool
}

// Status returns the matched rule's status, or "" on a gap.
func (c Classification) Status() Status {
	if c.Rule == nil {
		return ""
	}
	return c.Rule.Status
}

// Tooltip derives the hover text: weekend wins, then holiday name, then
// the rule's note (falling back to its label). Empty on an unclassified
// weekday.
func (c Classification) Tooltip() string {
	if c.IsWeekend {
		return fmt.Sprintf("Weekend (%s)", c.Date.Weekday())
	}
	if c.Holiday != nil {
		return c.Holiday.Name
	}
	if c.Rule != nil {
		return c.Rule.Tooltip()
	}
	return ""
}

// =============================================================================
// CLASSIFIER
// =============================================================================

// Classifier holds the immutable tables and answers classification queries.
type Classifier struct {
	rules    []PeriodRule
	holidays *HolidayTable
}

// NewClassifier validates every rule and builds a classifier. The rule
// slice is copied; precedence follows the supplied order. A nil holiday
// table means no holidays.
func NewClassifier(rules []PeriodRule, holidays *HolidayTable) (*Classifier, error) {
	for _, r := range rules {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}
	owned := make([]PeriodRule, len(rules))
	copy(owned, rules)
	return &Classifier{rules: owned, holidays: holidays}, nil
}

// Classify returns the full classification of a date.
func (c *Classifier) Classify(d Date) Classification {
	holiday := c.holidays.Lookup(d)
	weekend := d.IsWeekend()
	return Classification{
		Date:       d,
		IsWeekend:  weekend,
		Holiday:    holiday,
		Rule:       c.MatchRule(d),
		Selectable: !weekend && holiday == nil,
	}
}

// MatchRule scans the table in order and returns the first rule covering
// the date's (month, day) position, or nil when no rule matches.
func (c *Classifier) MatchRule(d Date) *PeriodRule {
	md := d.MonthDay()
	for i := range c.rules {
		if c.rules[i].Contains(md) {
			return &c.rules[i]
		}
	}
	return nil
}

// Rules returns the rule table in precedence order.
func (c *Classifier) Rules() []PeriodRule {
	out := make([]PeriodRule, len(c.rules))
	copy(out, c.rules)
	return out
}

// Holidays exposes the holiday table for year-scoped listings.
func (c *Classifier) Holidays() *HolidayTable { return c.holidays }

// MonthHasStatus reports whether any rule with the given status covers at
// least one day of the month. Used to flag whole months (e.g. grand-final
// months) in the year view.
func (c *Classifier) MonthHasStatus(month time.Month, status Status) bool {
	for _, r := range c.rules {
		if r.Status != status {
			continue
		}
		if r.Start.Month <= month && month <= r.End.Month {
			return true
		}
	}
	return false
}
