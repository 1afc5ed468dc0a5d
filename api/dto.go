/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific display strings (chips, range text)
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data
  carriers. In particular the email composer never validates; the
  ComposeEmail handler gates invocation per its contract.

SEE ALSO:
  - handlers.go: Uses these types
  - planner/consolidate.go: Summary, DateRange, Warning
*/
package api

import (
	"fmt"

	"github.com/leader/leave-planner/calendar"
	"github.com/leader/leave-planner/factory"
	"github.com/leader/leave-planner/planner"
)

// =============================================================================
// CALENDAR VIEW TYPES
// =============================================================================

// DayDTO is one classified day of the year view.
type DayDTO struct {
	Date       string      `json:"date"`
	Weekday    string      `json:"weekday"`
	IsWeekend  bool        `json:"is_weekend"`
	Holiday    *HolidayDTO `json:"holiday,omitempty"`
	Status     string      `json:"status,omitempty"`
	Label      string      `json:"label,omitempty"`
	Tooltip    string      `json:"tooltip,omitempty"`
	Selectable bool        `json:"selectable"`
}

// MonthDTO is one month of the year view.
type MonthDTO struct {
	Month      int      `json:"month"`
	Name       string   `json:"name"`
	GrandFinal bool     `json:"grand_final"`
	Days       []DayDTO `json:"days"`
}

// YearViewDTO is the full classified year.
type YearViewDTO struct {
	Year   int        `json:"year"`
	Months []MonthDTO `json:"months"`
}

// HolidayDTO represents a public holiday.
type HolidayDTO struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// PeriodRuleDTO represents one period rule, in precedence order.
type PeriodRuleDTO struct {
	StartMonth int    `json:"start_month"`
	StartDay   int    `json:"start_day"`
	EndMonth   int    `json:"end_month"`
	EndDay     int    `json:"end_day"`
	Status     string `json:"status"`
	Label      string `json:"label"`
	Note       string `json:"note,omitempty"`
}

// OptionDTO is a value/label pair (leave types, reasons).
type OptionDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// LegendItemDTO is one legend entry.
type LegendItemDTO struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

// =============================================================================
// SELECTION TYPES
// =============================================================================

// ToggleRequest is the body of a toggle call.
type ToggleRequest struct {
	Date string `json:"date"`
}

// SelectedDayDTO is one selected day chip.
type SelectedDayDTO struct {
	Date    string `json:"date"`
	Display string `json:"display"`       // e.g. "Mon, 1 Jun"
	Tag     string `json:"tag,omitempty"` // grand-final | busy
}

// RangeDTO is one consolidated date range.
type RangeDTO struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Days    int    `json:"days"`
	Tag     string `json:"tag,omitempty"`
	Display string `json:"display"`
}

// WarningDTO is one deduplicated period warning.
type WarningDTO struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// SelectionDTO is the consolidated state of a selection session.
type SelectionDTO struct {
	ID           string           `json:"id"`
	Dates        []SelectedDayDTO `json:"dates"`
	Ranges       []RangeDTO       `json:"ranges"`
	CalendarDays int              `json:"calendar_days"`
	BusinessDays int              `json:"business_days"`
	Warnings     []WarningDTO     `json:"warnings"`
}

// =============================================================================
// EMAIL TYPES
// =============================================================================

// ComposeRequest is the leave-request form submission.
type ComposeRequest struct {
	EmployeeName    string `json:"employee_name"`
	ManagerEmail    string `json:"manager_email"`
	LeaveType       string `json:"leave_type"`
	Reason          string `json:"reason,omitempty"`
	CustomReason    string `json:"custom_reason,omitempty"`
	AdditionalNotes string `json:"additional_notes,omitempty"`
}

// DraftDTO is the rendered email draft.
type DraftDTO struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Mailto  string `json:"mailto"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toDayDTO(cls calendar.Classification) DayDTO {
	dto := DayDTO{
		Date:       cls.Date.Key(),
		Weekday:    cls.Date.Weekday().String(),
		IsWeekend:  cls.IsWeekend,
		Tooltip:    cls.Tooltip(),
		Selectable: cls.Selectable,
	}
	if cls.Holiday != nil {
		dto.Holiday = &HolidayDTO{Date: cls.Holiday.Date.Key(), Name: cls.Holiday.Name}
	}
	if cls.Rule != nil {
		dto.Status = string(cls.Rule.Status)
		dto.Label = cls.Rule.Label
	}
	return dto
}

func toPeriodRuleDTO(r calendar.PeriodRule) PeriodRuleDTO {
	return PeriodRuleDTO{
		StartMonth: int(r.Start.Month),
		StartDay:   r.Start.Day,
		EndMonth:   int(r.End.Month),
		EndDay:     r.End.Day,
		Status:     string(r.Status),
		Label:      r.Label,
		Note:       r.Note,
	}
}

func toOptionDTOs(opts []factory.Option) []OptionDTO {
	dtos := make([]OptionDTO, len(opts))
	for i, o := range opts {
		dtos[i] = OptionDTO{Value: o.Value, Label: o.Label}
	}
	return dtos
}

func toSelectionDTO(id string, sum planner.Summary, classifier *calendar.Classifier) SelectionDTO {
	dto := SelectionDTO{
		ID:           id,
		Dates:        make([]SelectedDayDTO, 0, len(sum.Dates)),
		Ranges:       make([]RangeDTO, 0, len(sum.Ranges)),
		CalendarDays: sum.CalendarDays,
		BusinessDays: sum.BusinessDays,
		Warnings:     make([]WarningDTO, 0, len(sum.Warnings)),
	}
	for _, d := range sum.Dates {
		day := SelectedDayDTO{Date: d.Key(), Display: d.Format("Mon, 2 Jan")}
		switch classifier.Classify(d).Status() {
		case calendar.StatusGrandFinal:
			day.Tag = string(calendar.StatusGrandFinal)
		case calendar.StatusBusy:
			day.Tag = string(calendar.StatusBusy)
		}
		dto.Dates = append(dto.Dates, day)
	}
	for _, r := range sum.Ranges {
		dto.Ranges = append(dto.Ranges, RangeDTO{
			Start:   r.Start.Key(),
			End:     r.End.Key(),
			Days:    r.Days(),
			Tag:     string(r.Tag),
			Display: rangeDisplay(r),
		})
	}
	for _, w := range sum.Warnings {
		dto.Warnings = append(dto.Warnings, WarningDTO{Kind: string(w.Kind), Message: w.Message})
	}
	return dto
}

// rangeDisplay renders the panel's compact range text: "Mon, 1 Jun 2026"
// for one day, "1 - 5 Jun 2026" within a month, "28 Jun - 2 Jul 2026"
// across months.
func rangeDisplay(r planner.DateRange) string {
	switch {
	case r.Start.Equal(r.End):
		return r.Start.Format("Mon, 2 Jan 2006")
	case r.Start.Year() == r.End.Year() && r.Start.Month() == r.End.Month():
		return fmt.Sprintf("%s - %s", r.Start.Format("2"), r.End.Format("2 Jan 2006"))
	default:
		return fmt.Sprintf("%s - %s", r.Start.Format("2 Jan"), r.End.Format("2 Jan 2006"))
	}
}
