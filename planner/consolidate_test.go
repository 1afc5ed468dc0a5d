package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leader/leave-planner/calendar"
	"github.com/leader/leave-planner/factory"
	"github.com/leader/leave-planner/planner"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newCompanyConsolidator(t *testing.T) *planner.Consolidator {
	t.Helper()
	classifier, err := factory.DefaultTables().NewClassifier()
	require.NoError(t, err)
	return &planner.Consolidator{Classifier: classifier}
}

func dates(keys ...string) []calendar.Date {
	out := make([]calendar.Date, len(keys))
	for i, k := range keys {
		d, err := calendar.ParseDate(k)
		if err != nil {
			panic(err)
		}
		out[i] = d
	}
	return out
}

// =============================================================================
// RANGE CONSOLIDATION TESTS
// =============================================================================

func TestConsolidate_GrandFinalWeek(t *testing.T) {
	// GIVEN: Five consecutive June weekdays (Mon-Fri, grand-final month)
	// WHEN: Consolidating
	// THEN: One grand-final range, 5 business days, one grand-final warning

	c := newCompanyConsolidator(t)
	sum := c.ConsolidateDates(dates("2026-06-01", "2026-06-02", "2026-06-03", "2026-06-04", "2026-06-05"))

	require.Len(t, sum.Ranges, 1)
	assert.Equal(t, "2026-06-01", sum.Ranges[0].Start.Key())
	assert.Equal(t, "2026-06-05", sum.Ranges[0].End.Key())
	assert.Equal(t, calendar.StatusGrandFinal, sum.Ranges[0].Tag)
	assert.Equal(t, 5, sum.Ranges[0].Days())

	assert.Equal(t, 5, sum.CalendarDays)
	assert.Equal(t, 5, sum.BusinessDays)

	require.Len(t, sum.Warnings, 1)
	assert.Equal(t, calendar.StatusGrandFinal, sum.Warnings[0].Kind)
	assert.Equal(t,
		"You have selected dates during a Grand Final period (Biggest month of year - Please avoid leave). Please reconsider these dates.",
		sum.Warnings[0].Message)
}

func TestConsolidate_NonContiguousBusyDays(t *testing.T) {
	// GIVEN: Two non-contiguous dates inside the March busy window
	// WHEN: Consolidating
	// THEN: Two single-day busy ranges, one (deduplicated) busy warning

	c := newCompanyConsolidator(t)
	sum := c.ConsolidateDates(dates("2026-03-20", "2026-03-25"))

	require.Len(t, sum.Ranges, 2)
	for _, r := range sum.Ranges {
		assert.True(t, r.Start.Equal(r.End))
		assert.Equal(t, calendar.StatusBusy, r.Tag)
	}
	assert.Equal(t, 2, sum.BusinessDays)

	require.Len(t, sum.Warnings, 1)
	assert.Equal(t, calendar.StatusBusy, sum.Warnings[0].Kind)
	assert.Equal(t,
		"Some selected dates fall within a Busy Period (Quarter End Target). Maximum 2-3 days recommended.",
		sum.Warnings[0].Message)
}

func TestConsolidate_SplitsOnAnyGap(t *testing.T) {
	// A one-day gap splits the run; adjacent days merge.
	c := newCompanyConsolidator(t)
	sum := c.ConsolidateDates(dates("2026-07-06", "2026-07-07", "2026-07-09"))

	require.Len(t, sum.Ranges, 2)
	assert.Equal(t, "2026-07-06", sum.Ranges[0].Start.Key())
	assert.Equal(t, "2026-07-07", sum.Ranges[0].End.Key())
	assert.Equal(t, "2026-07-09", sum.Ranges[1].Start.Key())
	assert.Equal(t, "2026-07-09", sum.Ranges[1].End.Key())
}

func TestConsolidate_RangesSpanYearBoundary(t *testing.T) {
	// Contiguity is true date arithmetic: Dec 31 and Jan 1 merge even
	// though their string keys sort into different years.
	c := newCompanyConsolidator(t)
	sum := c.ConsolidateDates(dates("2026-12-31", "2027-01-01"))

	require.Len(t, sum.Ranges, 1)
	assert.Equal(t, "2026-12-31", sum.Ranges[0].Start.Key())
	assert.Equal(t, "2027-01-01", sum.Ranges[0].End.Key())
	assert.Equal(t, 2, sum.Ranges[0].Days())
}

func TestConsolidate_UnionOfRangesEqualsSelection(t *testing.T) {
	// The ranges partition the selection exactly: no omission, no
	// duplication, and no two ranges are mergeable.

	c := newCompanyConsolidator(t)
	input := dates("2026-07-06", "2026-07-07", "2026-07-08", "2026-07-13", "2026-07-20", "2026-07-21")
	sum := c.ConsolidateDates(input)

	union := map[string]bool{}
	for _, r := range sum.Ranges {
		for d := r.Start; d.BeforeOrEqual(r.End); d = d.AddDays(1) {
			assert.False(t, union[d.Key()], "day %s covered twice", d.Key())
			union[d.Key()] = true
		}
	}
	assert.Len(t, union, len(input))
	for _, d := range input {
		assert.True(t, union[d.Key()], "day %s omitted", d.Key())
	}

	for i := 1; i < len(sum.Ranges); i++ {
		gap := calendar.DaysBetween(sum.Ranges[i-1].End, sum.Ranges[i].Start)
		assert.Greater(t, gap, 1, "adjacent ranges %d and %d are mergeable", i-1, i)
	}
}

func TestConsolidate_DeduplicatesInput(t *testing.T) {
	c := newCompanyConsolidator(t)
	sum := c.ConsolidateDates(dates("2026-07-06", "2026-07-06", "2026-07-07"))

	assert.Equal(t, 2, sum.CalendarDays)
	require.Len(t, sum.Ranges, 1)
}

func TestConsolidate_EmptySelection(t *testing.T) {
	c := newCompanyConsolidator(t)
	sum := c.ConsolidateDates(nil)

	assert.Equal(t, 0, sum.CalendarDays)
	assert.Equal(t, 0, sum.BusinessDays)
	assert.Empty(t, sum.Ranges)
	assert.Empty(t, sum.Warnings)
}

// =============================================================================
// BUSINESS DAY TESTS
// =============================================================================

func TestConsolidate_BusinessDays_ExcludeWeekends(t *testing.T) {
	c := newCompanyConsolidator(t)

	// Five consecutive weekdays.
	week := c.ConsolidateDates(dates("2026-07-06", "2026-07-07", "2026-07-08", "2026-07-09", "2026-07-10"))
	assert.Equal(t, 5, week.BusinessDays)

	// Seven consecutive calendar days spanning one weekend. The weekend
	// days cannot enter a real selection, but the consolidator must stay
	// correct for any day set it is handed.
	span := c.ConsolidateDates(dates(
		"2026-07-06", "2026-07-07", "2026-07-08", "2026-07-09", "2026-07-10",
		"2026-07-11", "2026-07-12"))
	assert.Equal(t, 7, span.CalendarDays)
	assert.Equal(t, 5, span.BusinessDays)
	require.Len(t, span.Ranges, 1)
}

// =============================================================================
// WARNING TESTS
// =============================================================================

func TestConsolidate_WarningsDeduplicatedPerKind(t *testing.T) {
	// GIVEN: Ten weekdays all inside the June grand-final period
	// THEN: Exactly one grand-final warning, not ten

	c := newCompanyConsolidator(t)
	sum := c.ConsolidateDates(dates(
		"2026-06-01", "2026-06-02", "2026-06-03", "2026-06-04", "2026-06-05",
		"2026-06-09", "2026-06-10", "2026-06-11", "2026-06-12", "2026-06-15"))

	require.Len(t, sum.Warnings, 1)
	assert.Equal(t, calendar.StatusGrandFinal, sum.Warnings[0].Kind)
}

func TestConsolidate_GrandFinalWarningOrdersFirst(t *testing.T) {
	// GIVEN: A busy day selected before a grand-final day
	// THEN: The grand-final warning still comes first

	c := newCompanyConsolidator(t)
	sum := c.ConsolidateDates(dates("2026-05-18", "2026-06-01")) // busy then grand-final

	require.Len(t, sum.Warnings, 2)
	assert.Equal(t, calendar.StatusGrandFinal, sum.Warnings[0].Kind)
	assert.Equal(t, calendar.StatusBusy, sum.Warnings[1].Kind)
}

func TestConsolidate_NoWarningsForCalmPeriods(t *testing.T) {
	c := newCompanyConsolidator(t)
	sum := c.ConsolidateDates(dates("2026-07-06", "2026-08-03")) // leave-ok, long-leave
	assert.Empty(t, sum.Warnings)
}

// =============================================================================
// RANGE TAG TESTS
// =============================================================================

func TestConsolidate_RangeTag_GrandFinalOutranksBusy(t *testing.T) {
	// A contiguous run crossing from the May busy window into June gets
	// the grand-final tag for the whole range.
	c := newCompanyConsolidator(t)
	sum := c.ConsolidateDates(dates("2026-05-29", "2026-05-30", "2026-05-31", "2026-06-01"))

	require.Len(t, sum.Ranges, 1)
	assert.Equal(t, calendar.StatusGrandFinal, sum.Ranges[0].Tag)
}

func TestConsolidate_RangeTag_CalmRangeUntagged(t *testing.T) {
	c := newCompanyConsolidator(t)
	sum := c.ConsolidateDates(dates("2026-07-06", "2026-07-07"))

	require.Len(t, sum.Ranges, 1)
	assert.Equal(t, calendar.Status(""), sum.Ranges[0].Tag)
}
