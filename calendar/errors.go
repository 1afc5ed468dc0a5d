/*
errors.go - Centralized error types for the calendar engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Callers match with errors.Is / errors.As; the structured types carry
  the offending input for diagnostics.

ERROR CATEGORIES:
  1. Input errors - malformed or impossible calendar dates
  2. Table errors - invalid period-rule configuration

Note that a date matching no rule is NOT an error: it is a valid
"no classification" result (a configuration gap the engine tolerates).
*/
package calendar

import (
	"errors"
	"fmt"
	"time"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidDate is returned when a supplied date does not name a real
	// calendar day (bad key syntax, Feb 29 outside a leap year, Apr 31).
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrInvalidRule is returned when a period rule violates its invariants
	// (inverted boundaries, year wrap, unknown status).
	ErrInvalidRule = errors.New("invalid period rule")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidDateError reports the input that failed date validation.
// Either Key (string form) or the Year/Month/Day triple is set.
type InvalidDateError struct {
	Key   string
	Year  int
	Month time.Month
	Day   int
	Cause error
}

func (e *InvalidDateError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("invalid calendar date %q", e.Key)
	}
	return fmt.Sprintf("invalid calendar date %04d-%02d-%02d", e.Year, int(e.Month), e.Day)
}

func (e *InvalidDateError) Unwrap() error { return ErrInvalidDate }

// InvalidRuleError reports a period rule that failed validation.
type InvalidRuleError struct {
	Rule   PeriodRule
	Reason string
}

func (e *InvalidRuleError) Error() string {
	return fmt.Sprintf("invalid period rule %q (%02d/%02d-%02d/%02d): %s",
		e.Rule.Label, int(e.Rule.Start.Month), e.Rule.Start.Day,
		int(e.Rule.End.Month), e.Rule.End.Day, e.Reason)
}

func (e *InvalidRuleError) Unwrap() error { return ErrInvalidRule }
