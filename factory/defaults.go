/*
defaults.go - Company default tables

The shipped company calendar: the leave-suitability periods for a LEADER
business year, Australian national public holidays 2026-2028, and the
form option lists. Served when no JSON override is configured.

The period table is ordered and, by convention, partitions the year with
no gaps. Nothing enforces that - the classifier tolerates gaps and
resolves overlaps by table order - but keep the convention when editing.
*/
package factory

import (
	"time"

	"github.com/leader/leave-planner/calendar"
)

// DefaultTables returns the company calendar. The result is freshly
// built on every call; callers own it.
func DefaultTables() *Tables {
	return &Tables{
		Rules:        defaultPeriods(),
		Holidays:     calendar.NewHolidayTable(defaultHolidays()),
		LeaveTypes:   defaultLeaveTypes(),
		LeaveReasons: defaultLeaveReasons(),
		Legend:       defaultLegend(),
	}
}

func defaultPeriods() []calendar.PeriodRule {
	rule := func(sm time.Month, sd int, em time.Month, ed int, status calendar.Status, label, note string) calendar.PeriodRule {
		return calendar.PeriodRule{
			Start:  calendar.MonthDay{Month: sm, Day: sd},
			End:    calendar.MonthDay{Month: em, Day: ed},
			Status: status,
			Label:  label,
			Note:   note,
		}
	}
	return []calendar.PeriodRule{
		// Q1
		rule(time.January, 1, time.January, 15, calendar.StatusLeaveOK, "Leave OK", ""),
		rule(time.January, 16, time.January, 31, calendar.StatusBusy, "Busy Period", "Back to School/Work"),
		rule(time.February, 1, time.February, 29, calendar.StatusLeaveOK, "Leave OK", ""),
		rule(time.March, 1, time.March, 15, calendar.StatusLeaveOK, "Leave OK", ""),
		rule(time.March, 16, time.March, 31, calendar.StatusBusy, "Busy Period", "Quarter End Target"),

		// Q2
		rule(time.April, 1, time.April, 30, calendar.StatusLongLeave, "Best for Long Leave", ""),
		rule(time.May, 1, time.May, 15, calendar.StatusLeaveOK, "Leave OK", ""),
		rule(time.May, 16, time.May, 31, calendar.StatusBusy, "Busy Period", "End of Financial Year Prep"),
		rule(time.June, 1, time.June, 30, calendar.StatusGrandFinal, "Grand Final", "Biggest month of year - Please avoid leave"),

		// Q3
		rule(time.July, 1, time.July, 31, calendar.StatusLeaveOK, "Leave OK", ""),
		rule(time.August, 1, time.August, 31, calendar.StatusLongLeave, "Best for Long Leave", ""),
		rule(time.September, 1, time.September, 15, calendar.StatusLeaveOK, "Leave OK", ""),
		rule(time.September, 16, time.September, 30, calendar.StatusBusy, "Busy Period", "Quarter End Target"),

		// Q4
		rule(time.October, 1, time.October, 31, calendar.StatusLongLeave, "Best for Long Leave", ""),
		rule(time.November, 1, time.November, 30, calendar.StatusGrandFinal, "Grand Final", "Biggest month of year - Please avoid leave"),
		rule(time.December, 1, time.December, 19, calendar.StatusBusy, "Busy Period", "Holiday Rush & Year End"),
		rule(time.December, 20, time.December, 31, calendar.StatusLeaveOK, "Leave OK", "Christmas/Holiday Season"),
	}
}

// defaultHolidays lists Australian national public holidays. Some vary
// by state; these are the nationally observed dates.
func defaultHolidays() map[int][]calendar.Holiday {
	h := func(year int, month time.Month, day int, name string) calendar.Holiday {
		return calendar.Holiday{Date: calendar.MustDate(year, month, day), Name: name}
	}
	return map[int][]calendar.Holiday{
		2026: {
			h(2026, time.January, 1, "New Year's Day"),
			h(2026, time.January, 26, "Australia Day"),
			h(2026, time.April, 3, "Good Friday"),
			h(2026, time.April, 4, "Saturday before Easter Sunday"),
			h(2026, time.April, 5, "Easter Sunday"),
			h(2026, time.April, 6, "Easter Monday"),
			h(2026, time.April, 25, "Anzac Day"),
			h(2026, time.June, 8, "Queen's Birthday"),
			h(2026, time.December, 25, "Christmas Day"),
			h(2026, time.December, 26, "Boxing Day"),
			h(2026, time.December, 28, "Boxing Day (Observed)"),
		},
		2027: {
			h(2027, time.January, 1, "New Year's Day"),
			h(2027, time.January, 26, "Australia Day"),
			h(2027, time.March, 26, "Good Friday"),
			h(2027, time.March, 27, "Saturday before Easter Sunday"),
			h(2027, time.March, 28, "Easter Sunday"),
			h(2027, time.March, 29, "Easter Monday"),
			h(2027, time.April, 25, "Anzac Day"),
			h(2027, time.April, 26, "Anzac Day (Observed)"),
			h(2027, time.June, 14, "Queen's Birthday"),
			h(2027, time.December, 25, "Christmas Day"),
			h(2027, time.December, 26, "Boxing Day"),
			h(2027, time.December, 27, "Christmas Day (Observed)"),
		},
		2028: {
			h(2028, time.January, 1, "New Year's Day"),
			h(2028, time.January, 3, "New Year's Day (Observed)"),
			h(2028, time.January, 26, "Australia Day"),
			h(2028, time.April, 14, "Good Friday"),
			h(2028, time.April, 15, "Saturday before Easter Sunday"),
			h(2028, time.April, 16, "Easter Sunday"),
			h(2028, time.April, 17, "Easter Monday"),
			h(2028, time.April, 25, "Anzac Day"),
			h(2028, time.June, 12, "Queen's Birthday"),
			h(2028, time.December, 25, "Christmas Day"),
			h(2028, time.December, 26, "Boxing Day"),
		},
	}
}

func defaultLeaveTypes() []Option {
	return []Option{
		{Value: "annual", Label: "Annual Leave"},
		{Value: "personal", Label: "Personal/Sick Leave"},
		{Value: "parental", Label: "Parental Leave"},
		{Value: "bereavement", Label: "Bereavement Leave"},
		{Value: "study", Label: "Study Leave"},
		{Value: "unpaid", Label: "Unpaid Leave"},
		{Value: "other", Label: "Other"},
	}
}

func defaultLeaveReasons() []Option {
	return []Option{
		{Value: "vacation", Label: "Family vacation"},
		{Value: "travel", Label: "Personal travel"},
		{Value: "family", Label: "Family commitment"},
		{Value: "medical", Label: "Medical appointment"},
		{Value: "moving", Label: "Home renovation/moving"},
		{Value: "wedding", Label: "Wedding attendance"},
		{Value: "rest", Label: "Rest and recovery"},
		{Value: "personal", Label: "Personal matters"},
		{Value: "custom", Label: "Other (specify)"},
	}
}

func defaultLegend() []LegendItem {
	return []LegendItem{
		{ID: "leave-ok", Label: "Leave OK", Color: "#22c55e", Description: "Standard leave periods"},
		{ID: "long-leave", Label: "Best for Long Leave", Color: "#3b82f6", Description: "Ideal for extended leave"},
		{ID: "busy", Label: "Busy Period", Color: "#f59e0b", Description: "Max 2-3 days recommended"},
		{ID: "grand-final", Label: "Grand Final", Color: "#ef4444", Description: "Please avoid leave"},
		{ID: "public-holiday", Label: "Public Holiday", Color: "#8b5cf6", Description: "Australian public holidays"},
	}
}
