package planner_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leader/leave-planner/planner"
)

// =============================================================================
// SUBJECT TESTS
// =============================================================================

func TestCompose_SingleDaySubject(t *testing.T) {
	// GIVEN: A single selected date (2026-07-10) and type "Annual Leave"
	// WHEN: Composing the draft
	// THEN: Subject carries the one date in short form

	c := newCompanyConsolidator(t)
	sum := c.ConsolidateDates(dates("2026-07-10"))

	draft := planner.Compose(sum, planner.Fields{
		EmployeeName:   "Jane Doe",
		ManagerEmail:   "manager@leader.com.au",
		LeaveTypeLabel: "Annual Leave",
	})

	assert.Equal(t, "Leave Request: Annual Leave - 10 Jul 2026", draft.Subject)
	assert.Contains(t, draft.Body, "Jane Doe")
	assert.Contains(t, draft.Body, "1 calendar day(s) / 1 business day(s)")
}

func TestCompose_MultiDaySubjectSpansFirstToLast(t *testing.T) {
	// The subject uses the chronologically first and last selected day,
	// not the individual ranges.
	c := newCompanyConsolidator(t)
	sum := c.ConsolidateDates(dates("2026-07-06", "2026-07-07", "2026-07-20"))

	draft := planner.Compose(sum, planner.Fields{
		EmployeeName:   "Jane Doe",
		ManagerEmail:   "manager@leader.com.au",
		LeaveTypeLabel: "Annual Leave",
	})

	assert.Equal(t, "Leave Request: Annual Leave - 6 Jul to 20 Jul 2026", draft.Subject)
}

// =============================================================================
// BODY TESTS
// =============================================================================

func TestCompose_BodyTemplate(t *testing.T) {
	c := newCompanyConsolidator(t)
	sum := c.ConsolidateDates(dates("2026-07-06", "2026-07-07", "2026-07-08", "2026-07-09", "2026-07-10"))

	draft := planner.Compose(sum, planner.Fields{
		EmployeeName:   "Jane Doe",
		ManagerEmail:   "manager@leader.com.au",
		LeaveTypeLabel: "Annual Leave",
		ReasonText:     "Family vacation",
		Notes:          "Handover notes are on the wiki.",
	})

	assert.True(t, strings.HasPrefix(draft.Body, "Dear Manager,\n"))
	assert.Contains(t, draft.Body, "request annual leave for the following date(s)")
	assert.Contains(t, draft.Body, "Type: Annual Leave")
	assert.Contains(t, draft.Body, "Monday, 6 July 2026 to Friday, 10 July 2026")
	assert.Contains(t, draft.Body, "Duration: 5 calendar day(s) / 5 business day(s)")
	assert.Contains(t, draft.Body, "Reason: Family vacation")
	assert.Contains(t, draft.Body, "Additional Notes:\nHandover notes are on the wiki.")
	assert.True(t, strings.HasSuffix(draft.Body, "Kind regards,\nJane Doe"))
}

func TestCompose_OptionalSectionsOmittedWhenEmpty(t *testing.T) {
	c := newCompanyConsolidator(t)
	sum := c.ConsolidateDates(dates("2026-07-10"))

	draft := planner.Compose(sum, planner.Fields{
		EmployeeName:   "Jane Doe",
		ManagerEmail:   "manager@leader.com.au",
		LeaveTypeLabel: "Study Leave",
	})

	assert.NotContains(t, draft.Body, "Reason:")
	assert.NotContains(t, draft.Body, "Additional Notes:")
}

func TestCompose_EachRangeOnOwnLine(t *testing.T) {
	c := newCompanyConsolidator(t)
	sum := c.ConsolidateDates(dates("2026-07-06", "2026-07-08"))

	draft := planner.Compose(sum, planner.Fields{
		EmployeeName:   "Jane Doe",
		ManagerEmail:   "manager@leader.com.au",
		LeaveTypeLabel: "Annual Leave",
	})

	assert.Contains(t, draft.Body, "Monday, 6 July 2026\n  Wednesday, 8 July 2026")
}

func TestCompose_Deterministic(t *testing.T) {
	// Identical inputs must produce identical bytes: no clock, no
	// randomness anywhere in the template.
	c := newCompanyConsolidator(t)
	sum := c.ConsolidateDates(dates("2026-06-01", "2026-06-02"))
	fields := planner.Fields{
		EmployeeName:   "Jane Doe",
		ManagerEmail:   "manager@leader.com.au",
		LeaveTypeLabel: "Annual Leave",
	}

	first := planner.Compose(sum, fields)
	second := planner.Compose(sum, fields)
	assert.Equal(t, first, second)
}

// =============================================================================
// MAILTO TESTS
// =============================================================================

func TestMailtoURL_EncodesLikeEncodeURIComponent(t *testing.T) {
	c := newCompanyConsolidator(t)
	sum := c.ConsolidateDates(dates("2026-07-10"))
	draft := planner.Compose(sum, planner.Fields{
		EmployeeName:   "Jane Doe",
		ManagerEmail:   "manager@leader.com.au",
		LeaveTypeLabel: "Annual Leave",
	})

	link := planner.MailtoURL("manager@leader.com.au", draft)

	require.True(t, strings.HasPrefix(link, "mailto:manager%40leader.com.au?subject="))
	assert.Contains(t, link, "Leave%20Request%3A%20Annual%20Leave%20-%2010%20Jul%202026")
	assert.NotContains(t, link, "+", "spaces must encode as %20, never '+'")
}
