/*
email.go - Leave-request email draft rendering

PURPOSE:
  Renders the deterministic subject + body for a leave request from a
  consolidation summary and the user-supplied form fields. This is a pure
  template: no randomness, no clock, identical inputs produce identical
  bytes.

  The composer does NOT validate its inputs. Callers gate invocation on a
  non-empty employee name, a manager email, a chosen leave type, and at
  least one selected date; handing the composer less than that is a
  caller bug, not a failure mode handled here.
*/
package planner

import (
	"fmt"
	"net/url"
	"strings"
)

// Presentation layouts (Go reference-time form).
const (
	layoutShortDate = "2 Jan 2006"        // subject dates
	layoutShortDay  = "2 Jan"             // subject first date in a span
	layoutLongDate  = "Monday, 2 January 2006" // body range dates
)

// Fields are the user-supplied inputs to the email draft.
type Fields struct {
	EmployeeName   string
	ManagerEmail   string
	LeaveTypeLabel string
	ReasonText     string // optional
	Notes          string // optional
}

// Draft is the rendered email.
type Draft struct {
	Subject string
	Body    string
}

// Compose renders the draft from a non-empty consolidation summary.
func Compose(sum Summary, fields Fields) Draft {
	return Draft{
		Subject: subject(sum, fields),
		Body:    body(sum, fields),
	}
}

// subject uses the chronologically first and last selected day (not the
// ranges): "Leave Request: <type> - 10 Jul 2026", or "... - 1 Jun to
// 5 Jun 2026" for multi-day selections.
func subject(sum Summary, fields Fields) string {
	first, last := sum.First(), sum.Last()
	if first.Equal(last) {
		return fmt.Sprintf("Leave Request: %s - %s", fields.LeaveTypeLabel, first.Format(layoutShortDate))
	}
	return fmt.Sprintf("Leave Request: %s - %s to %s",
		fields.LeaveTypeLabel, first.Format(layoutShortDay), last.Format(layoutShortDate))
}

func body(sum Summary, fields Fields) string {
	rangeLines := make([]string, len(sum.Ranges))
	for i, r := range sum.Ranges {
		if r.Start.Equal(r.End) {
			rangeLines[i] = r.Start.Format(layoutLongDate)
		} else {
			rangeLines[i] = fmt.Sprintf("%s to %s", r.Start.Format(layoutLongDate), r.End.Format(layoutLongDate))
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, `Dear Manager,

I hope this email finds you well. I am writing to formally request %s for the following date(s):

Leave Details:
  Type: %s
  Date(s):
  %s
  Duration: %d calendar day(s) / %d business day(s)`,
		strings.ToLower(fields.LeaveTypeLabel),
		fields.LeaveTypeLabel,
		strings.Join(rangeLines, "\n  "),
		sum.CalendarDays,
		sum.BusinessDays,
	)

	if fields.ReasonText != "" {
		fmt.Fprintf(&b, "\n  Reason: %s", fields.ReasonText)
	}
	if fields.Notes != "" {
		fmt.Fprintf(&b, "\n\nAdditional Notes:\n%s", fields.Notes)
	}

	fmt.Fprintf(&b, `

I will ensure that all my responsibilities are up to date before my leave begins and will coordinate with my colleagues to ensure a smooth handover of any pending tasks.

Please let me know if you require any additional information or if there are any concerns regarding this request.

Thank you for your consideration.

Kind regards,
%s`, fields.EmployeeName)

	return b.String()
}

// MailtoURL builds the mail-client invocation link for a draft. The
// delivery mechanism itself (opening the client, clipboard fallback) is
// the presentation layer's concern.
func MailtoURL(managerEmail string, draft Draft) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		encodeComponent(managerEmail), encodeComponent(draft.Subject), encodeComponent(draft.Body))
}

// encodeComponent percent-encodes like JS encodeURIComponent: spaces as
// %20, never '+', so mail clients decode the body correctly.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
