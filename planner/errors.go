/*
errors.go - Centralized error types for the planner domain

Follows the same sentinel + structured pattern as the calendar package:
match the sentinel with errors.Is, unwrap the structured type with
errors.As when the offending input is needed.
*/
package planner

import (
	"errors"
	"fmt"

	"github.com/leader/leave-planner/calendar"
)

var (
	// ErrDateNotSelectable is returned by Selection.Toggle for weekend and
	// public-holiday dates. There is no work on those days, so there is no
	// leave to request.
	ErrDateNotSelectable = errors.New("date is not selectable")
)

// NotSelectableError carries the classification that blocked the toggle.
type NotSelectableError struct {
	Date           calendar.Date
	Classification calendar.Classification
}

func (e *NotSelectableError) Error() string {
	switch {
	case e.Classification.Holiday != nil:
		return fmt.Sprintf("%s is a public holiday (%s)", e.Date, e.Classification.Holiday.Name)
	case e.Classification.IsWeekend:
		return fmt.Sprintf("%s falls on a weekend", e.Date)
	default:
		return fmt.Sprintf("%s is not selectable", e.Date)
	}
}

func (e *NotSelectableError) Unwrap() error { return ErrDateNotSelectable }
