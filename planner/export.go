/*
export.go - Busy-period ICS feed

PURPOSE:
  Generates the "Add Busy Dates to Outlook" calendar payload: one all-day
  VEVENT per busy or grand-final period rule for a requested year, marked
  free (non-blocking) so it never eats the user's availability, colored
  via Outlook category names, with a one-week-prior display reminder.

FIELD MAPPING (must be preserved):
  DTSTART;VALUE=DATE        rule start, YYYYMMDD
  DTEND;VALUE=DATE          rule end + 1 day (iCalendar end is exclusive)
  CATEGORIES                "Red Category" (grand-final) / "Orange Category" (busy)
  PRIORITY                  1 (grand-final) / 5 (busy)
  X-MICROSOFT-CDO-BUSYSTATUS:FREE, TRANSP:TRANSPARENT, STATUS:CONFIRMED
  VALARM                    DISPLAY, TRIGGER:-P1W
*/
package planner

import (
	"bytes"
	"fmt"
	"time"

	"github.com/emersion/go-ical"

	"github.com/leader/leave-planner/calendar"
)

const (
	icsProdID  = "-//LEADER//Leave Planner//EN"
	icsUIDHost = "leader.com.au"
)

// ICSFileName is the suggested download name for a year's feed.
func ICSFileName(year int) string {
	return fmt.Sprintf("LEADER_Busy_Periods_%d.ics", year)
}

// BusyPeriodsICS renders the busy/grand-final periods of the given year
// as an iCalendar payload. Rules with other statuses are skipped.
func BusyPeriodsICS(classifier *calendar.Classifier, year int) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, icsProdID)
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")
	cal.Props.SetText(ical.PropMethod, "PUBLISH")
	setRaw(cal.Props, "X-WR-CALNAME", fmt.Sprintf("LEADER Busy Periods %d", year))

	dtStamp := ical.NewProp(ical.PropDateTimeStamp)
	dtStamp.SetDateTime(time.Now().UTC())

	index := 0
	for _, rule := range classifier.Rules() {
		if rule.Status != calendar.StatusBusy && rule.Status != calendar.StatusGrandFinal {
			continue
		}
		event := busyEvent(rule, year, index)
		event.Props.Set(dtStamp)
		cal.Children = append(cal.Children, event.Component)
		index++
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("failed to encode ICS feed: %w", err)
	}
	return buf.Bytes(), nil
}

func busyEvent(rule calendar.PeriodRule, year, index int) *ical.Event {
	grandFinal := rule.Status == calendar.StatusGrandFinal

	title := fmt.Sprintf("BUSY PERIOD - %s", rule.Tooltip())
	description := "Busy period - Maximum 2-3 days leave recommended."
	category := "Orange Category"
	priority := "5"
	if grandFinal {
		title = fmt.Sprintf("GRAND FINAL - %s", rule.Tooltip())
		description = "Please avoid taking leave during this period. This is the biggest month of the year."
		category = "Red Category"
		priority = "1"
	}

	start := time.Date(year, rule.Start.Month, rule.Start.Day, 0, 0, 0, 0, time.UTC)
	// iCalendar DTEND is exclusive: the event covers through the rule's
	// inclusive end day.
	end := time.Date(year, rule.End.Month, rule.End.Day+1, 0, 0, 0, 0, time.UTC)

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, fmt.Sprintf("%d-%d-busy@%s", index, year, icsUIDHost))
	event.Props.SetText(ical.PropSummary, title)
	event.Props.SetText(ical.PropDescription, description)
	event.Props.SetText(ical.PropCategories, category)
	event.Props.SetText(ical.PropStatus, "CONFIRMED")
	event.Props.SetText(ical.PropTransparency, "TRANSPARENT")
	setRaw(event.Props, ical.PropPriority, priority)
	setRaw(event.Props, "X-MICROSOFT-CDO-BUSYSTATUS", "FREE")

	startProp := ical.NewProp(ical.PropDateTimeStart)
	startProp.SetDate(start)
	event.Props.Set(startProp)

	endProp := ical.NewProp(ical.PropDateTimeEnd)
	endProp.SetDate(end)
	event.Props.Set(endProp)

	alarm := ical.NewComponent(ical.CompAlarm)
	alarm.Props.SetText(ical.PropAction, "DISPLAY")
	alarm.Props.SetText(ical.PropDescription, fmt.Sprintf("Reminder: %s", title))
	// Raw value: SetText would tag the trigger with VALUE=TEXT, and
	// SetDuration would normalize the week form to days.
	setRaw(alarm.Props, ical.PropTrigger, "-P1W")
	event.Children = append(event.Children, alarm)

	return event
}

// setRaw sets a property value without a VALUE type parameter, for
// properties whose default type is not TEXT (PRIORITY, TRIGGER) and for
// X- extensions.
func setRaw(props ical.Props, name, value string) {
	p := ical.NewProp(name)
	p.Value = value
	props.Set(p)
}
