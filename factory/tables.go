/*
Package factory provides JSON to Go table conversion.

PURPOSE:
  Converts JSON table definitions into the classifier's period rules and
  holiday table plus the form option lists (leave types, reasons, legend).
  This enables calendar configuration without code changes - HR can adjust
  the busy periods or the holiday list in JSON, and the factory builds the
  proper Go structs.

JSON SCHEMA:
  {
    "leave_periods": [
      {"start_month": 6, "start_day": 1, "end_month": 6, "end_day": 30,
       "status": "grand-final", "label": "Grand Final",
       "note": "Biggest month of year - Please avoid leave"}
    ],
    "public_holidays": {
      "2026": [{"date": "2026-01-01", "name": "New Year's Day"}]
    },
    "leave_types":   [{"value": "annual", "label": "Annual Leave"}],
    "leave_reasons": [{"value": "vacation", "label": "Family vacation"}],
    "legend":        [{"id": "busy", "label": "Busy Period",
                       "color": "#f59e0b", "description": "..."}]
  }

KEY FEATURES:
  - Validates rule boundaries, statuses, and holiday date/year consistency
  - Preserves the period table's order (it is the overlap tie-break)
  - Ships company defaults (defaults.go) for zero-config startup

USAGE:
  tables, err := factory.ParseTables(jsonStr)   // from JSON
  tables := factory.DefaultTables()             // company defaults
  classifier, err := tables.NewClassifier()

SEE ALSO:
  - calendar/types.go: PeriodRule, HolidayTable
  - defaults.go: embedded company calendar
*/
package factory

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/leader/leave-planner/calendar"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// TablesJSON is the JSON representation of the full configuration.
type TablesJSON struct {
	LeavePeriods   []PeriodJSON             `json:"leave_periods"`
	PublicHolidays map[string][]HolidayJSON `json:"public_holidays"`
	LeaveTypes     []OptionJSON             `json:"leave_types,omitempty"`
	LeaveReasons   []OptionJSON             `json:"leave_reasons,omitempty"`
	Legend         []LegendJSON             `json:"legend,omitempty"`
}

// PeriodJSON represents one period rule. Order in the array is precedence
// order and is preserved.
type PeriodJSON struct {
	StartMonth int    `json:"start_month"`
	StartDay   int    `json:"start_day"`
	EndMonth   int    `json:"end_month"`
	EndDay     int    `json:"end_day"`
	Status     string `json:"status"`
	Label      string `json:"label"`
	Note       string `json:"note,omitempty"`
}

// HolidayJSON represents one public holiday within a year bucket.
type HolidayJSON struct {
	Date string `json:"date"` // YYYY-MM-DD
	Name string `json:"name"`
}

// OptionJSON is a value/label pair for form dropdowns.
type OptionJSON struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// LegendJSON describes one legend entry.
type LegendJSON struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// =============================================================================
// DOMAIN TABLES
// =============================================================================

// Option is a value/label pair (leave types, reasons).
type Option struct {
	Value string
	Label string
}

// LegendItem is one calendar legend entry.
type LegendItem struct {
	ID          string
	Label       string
	Color       string
	Description string
}

// Tables is the parsed, validated configuration set.
type Tables struct {
	Rules        []calendar.PeriodRule
	Holidays     *calendar.HolidayTable
	LeaveTypes   []Option
	LeaveReasons []Option
	Legend       []LegendItem
}

// NewClassifier builds the classifier over these tables.
func (t *Tables) NewClassifier() (*calendar.Classifier, error) {
	return calendar.NewClassifier(t.Rules, t.Holidays)
}

// LeaveTypeLabel resolves a leave type value to its label, "" if unknown.
func (t *Tables) LeaveTypeLabel(value string) string {
	for _, o := range t.LeaveTypes {
		if o.Value == value {
			return o.Label
		}
	}
	return ""
}

// LeaveReasonLabel resolves a reason value to its label, "" if unknown.
func (t *Tables) LeaveReasonLabel(value string) string {
	for _, o := range t.LeaveReasons {
		if o.Value == value {
			return o.Label
		}
	}
	return ""
}

// =============================================================================
// TABLE FACTORY
// =============================================================================

// ParseTables parses a JSON document into validated tables.
func ParseTables(jsonStr string) (*Tables, error) {
	var tj TablesJSON
	if err := json.Unmarshal([]byte(jsonStr), &tj); err != nil {
		return nil, fmt.Errorf("failed to parse tables JSON: %w", err)
	}
	return FromJSON(tj)
}

// FromJSON converts TablesJSON into domain tables, validating as it goes.
func FromJSON(tj TablesJSON) (*Tables, error) {
	rules := make([]calendar.PeriodRule, 0, len(tj.LeavePeriods))
	for i, pj := range tj.LeavePeriods {
		rule := calendar.PeriodRule{
			Start:  calendar.MonthDay{Month: time.Month(pj.StartMonth), Day: pj.StartDay},
			End:    calendar.MonthDay{Month: time.Month(pj.EndMonth), Day: pj.EndDay},
			Status: calendar.Status(pj.Status),
			Label:  pj.Label,
			Note:   pj.Note,
		}
		if err := rule.Validate(); err != nil {
			return nil, fmt.Errorf("leave_periods[%d]: %w", i, err)
		}
		rules = append(rules, rule)
	}

	years := make(map[int][]calendar.Holiday, len(tj.PublicHolidays))
	for yearKey, hs := range tj.PublicHolidays {
		year, err := strconv.Atoi(yearKey)
		if err != nil {
			return nil, fmt.Errorf("public_holidays: year key %q is not a number", yearKey)
		}
		for _, hj := range hs {
			date, err := calendar.ParseDate(hj.Date)
			if err != nil {
				return nil, fmt.Errorf("public_holidays[%s]: %w", yearKey, err)
			}
			if date.Year() != year {
				return nil, fmt.Errorf("public_holidays[%s]: %s is outside its year bucket", yearKey, hj.Date)
			}
			years[year] = append(years[year], calendar.Holiday{Date: date, Name: hj.Name})
		}
	}

	tables := &Tables{
		Rules:    rules,
		Holidays: calendar.NewHolidayTable(years),
	}
	for _, o := range tj.LeaveTypes {
		tables.LeaveTypes = append(tables.LeaveTypes, Option{Value: o.Value, Label: o.Label})
	}
	for _, o := range tj.LeaveReasons {
		tables.LeaveReasons = append(tables.LeaveReasons, Option{Value: o.Value, Label: o.Label})
	}
	for _, l := range tj.Legend {
		tables.Legend = append(tables.Legend, LegendItem{ID: l.ID, Label: l.Label, Color: l.Color, Description: l.Description})
	}
	return tables, nil
}
