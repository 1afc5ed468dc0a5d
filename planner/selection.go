/*
Package planner provides the leave-planning domain logic.

PURPOSE:
  Everything between the raw date classifier and the presentation layer:
  the candidate-day selection, consolidation of a selection into maximal
  contiguous ranges with warnings and day counts, the leave-request email
  draft, and the busy-period ICS feed.

KEY CONCEPTS IN THIS FILE (selection.go):
  - Selection: the set of candidate leave days, mutated only by
    Toggle / Remove / Clear. Weekend and holiday dates can never become
    members; the toggle operation enforces this via the classifier.

  All three mutations are idempotent: toggling twice restores the prior
  state, removing a non-member is a no-op, clearing an empty selection is
  a no-op.

SEE ALSO:
  - consolidate.go: ranges, business days, warnings
  - email.go: draft rendering
  - export.go: busy-period ICS feed
*/
package planner

import (
	"github.com/leader/leave-planner/calendar"
)

// =============================================================================
// SELECTION - Candidate leave days
// =============================================================================

// Selection is the set of selected candidate leave days, keyed by the
// canonical YYYY-MM-DD form. It is owned by a single UI session and is
// not safe for concurrent mutation; callers serialize access.
type Selection struct {
	classifier *calendar.Classifier
	days       map[string]calendar.Date
}

// NewSelection creates an empty selection gated by the given classifier.
func NewSelection(classifier *calendar.Classifier) *Selection {
	return &Selection{
		classifier: classifier,
		days:       make(map[string]calendar.Date),
	}
}

// Toggle adds the date if absent, removes it if present. Weekend and
// public-holiday dates are rejected with ErrDateNotSelectable and never
// enter the set.
func (s *Selection) Toggle(d calendar.Date) error {
	key := d.Key()
	if _, ok := s.days[key]; ok {
		delete(s.days, key)
		return nil
	}
	cls := s.classifier.Classify(d)
	if !cls.Selectable {
		return &NotSelectableError{Date: d, Classification: cls}
	}
	s.days[key] = d
	return nil
}

// Remove deletes the date from the set. Removing a non-member is a no-op.
func (s *Selection) Remove(d calendar.Date) {
	delete(s.days, d.Key())
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.days = make(map[string]calendar.Date)
}

// Contains reports set membership by canonical key.
func (s *Selection) Contains(d calendar.Date) bool {
	_, ok := s.days[d.Key()]
	return ok
}

// Len returns the number of selected days.
func (s *Selection) Len() int { return len(s.days) }

// Dates returns the selected days in chronological order. Insertion order
// is irrelevant; display order is always chronological.
func (s *Selection) Dates() []calendar.Date {
	out := make([]calendar.Date, 0, len(s.days))
	for _, d := range s.days {
		out = append(out, d)
	}
	calendar.SortDates(out)
	return out
}
