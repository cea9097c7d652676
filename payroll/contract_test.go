package payroll_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/warp/overtime-engine/payroll"
	"github.com/warp/overtime-engine/shifts"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func date(year int, month time.Month, day int) shifts.Date {
	return shifts.NewDate(year, month, day)
}

// worked builds one classified shift row for contract-view tests.
func worked(name, email string, day shifts.Date, hours float64) shifts.EnrichedShift {
	return shifts.EnrichedShift{
		Email:          shifts.Email(email),
		FullName:       name,
		ShiftDate:      day,
		DayName:        day.DayName(),
		WeekStart:      day.WeekStart(),
		ScheduledHours: shifts.Hours(hours),
		PaidHours:      shifts.Hours(hours),
	}
}

// workedWeek returns n consecutive 9h days starting at start.
func workedWeek(name, email string, start shifts.Date, n int) []shifts.EnrichedShift {
	rows := make([]shifts.EnrichedShift, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, worked(name, email, start.AddDays(i), 9))
	}
	return rows
}

// =============================================================================
// CONTRACT BOOK
// =============================================================================

func TestContractBook_DefaultAndOverride(t *testing.T) {
	book := payroll.NewContractBook()
	book.ByEmail["kelvin@example.com"] = 40

	assert.Equal(t, 45.0, book.WeeklyHoursFor("amina@example.com"), "default applies without override")
	assert.Equal(t, 40.0, book.WeeklyHoursFor("kelvin@example.com"), "override wins")

	var nilBook *payroll.ContractBook
	assert.Equal(t, 45.0, nilBook.WeeklyHoursFor("anyone@example.com"), "nil book falls back to default")
}

// =============================================================================
// CONTRACT WEEKS
// =============================================================================

func TestContractWeeks_OvertimeIsHoursAboveContract(t *testing.T) {
	// GIVEN: 6 days x 9h = 54h in one week, contracted 45
	// THEN: 9 overtime hours, flagged

	monday := date(2025, time.October, 20)
	rows := payroll.SummarizeContractWeeks(
		workedWeek("Amina Odhiambo", "amina@example.com", monday, 6),
		payroll.NewContractBook(),
	)

	assert.Len(t, rows, 1)
	week := rows[0]
	assert.True(t, week.TotalHours.Value.Equal(shifts.Hours(54).Value))
	assert.True(t, week.ContractedHours.Value.Equal(shifts.Hours(45).Value))
	assert.True(t, week.OvertimeHours.Value.Equal(shifts.Hours(9).Value), "54 - 45 = 9 OT hours")
	assert.True(t, week.HasOvertime)
	assert.Equal(t, monday, week.WeekStart)
}

func TestContractWeeks_NeverNegative(t *testing.T) {
	// GIVEN: 3 days x 9h = 27h against contracted 45
	// THEN: Overtime clamps to zero, not -18

	monday := date(2025, time.October, 20)
	rows := payroll.SummarizeContractWeeks(
		workedWeek("Amina Odhiambo", "amina@example.com", monday, 3),
		payroll.NewContractBook(),
	)

	assert.True(t, rows[0].OvertimeHours.IsZero(), "overtime never goes negative")
	assert.False(t, rows[0].HasOvertime)
}

func TestContractWeeks_PerEmailOverride(t *testing.T) {
	// GIVEN: Kelvin is contracted 40h and works 45h
	// THEN: 5 OT hours where the default contract would find none

	book := payroll.NewContractBook()
	book.ByEmail["kelvin@example.com"] = 40

	monday := date(2025, time.October, 20)
	rows := payroll.SummarizeContractWeeks(
		workedWeek("Kelvin Otieno", "kelvin@example.com", monday, 5),
		book,
	)

	assert.True(t, rows[0].OvertimeHours.Value.Equal(shifts.Hours(5).Value))
	assert.True(t, rows[0].HasOvertime)
}

func TestContractWeeks_SortedByPersonThenWeek(t *testing.T) {
	mon1 := date(2025, time.October, 13)
	mon2 := date(2025, time.October, 20)

	var all []shifts.EnrichedShift
	all = append(all, workedWeek("Zoe Achieng", "zoe@example.com", mon1, 2)...)
	all = append(all, workedWeek("Amina Odhiambo", "amina@example.com", mon2, 2)...)
	all = append(all, workedWeek("Amina Odhiambo", "amina@example.com", mon1, 2)...)

	rows := payroll.SummarizeContractWeeks(all, payroll.NewContractBook())

	assert.Len(t, rows, 3)
	assert.Equal(t, "Amina Odhiambo", rows[0].FullName)
	assert.Equal(t, mon1, rows[0].WeekStart)
	assert.Equal(t, mon2, rows[1].WeekStart)
	assert.Equal(t, "Zoe Achieng", rows[2].FullName)
}

// =============================================================================
// CONTRACT TOTALS
// =============================================================================

func TestContractTotals_SumWeeklyOvertime(t *testing.T) {
	// GIVEN: One heavy week (54h) and one light week (27h)
	// THEN: Total overtime is 9, not max(81 - 90, 0); light weeks never
	//       offset heavy ones

	mon1 := date(2025, time.October, 13)
	mon2 := date(2025, time.October, 20)

	var all []shifts.EnrichedShift
	all = append(all, workedWeek("Amina Odhiambo", "amina@example.com", mon1, 6)...)
	all = append(all, workedWeek("Amina Odhiambo", "amina@example.com", mon2, 3)...)

	weeks := payroll.SummarizeContractWeeks(all, payroll.NewContractBook())
	totals := payroll.RollupContractTotals(weeks)

	assert.Len(t, totals, 1)
	total := totals[0]
	assert.True(t, total.TotalHours.Value.Equal(shifts.Hours(81).Value))
	assert.True(t, total.TotalContracted.Value.Equal(shifts.Hours(90).Value))
	assert.True(t, total.TotalOvertime.Value.Equal(shifts.Hours(9).Value),
		"overtime sums per week: 9 + 0, not clamped over the whole period")
}

func TestContractTotals_SortedByName(t *testing.T) {
	monday := date(2025, time.October, 20)

	var all []shifts.EnrichedShift
	all = append(all, workedWeek("Zoe Achieng", "zoe@example.com", monday, 2)...)
	all = append(all, workedWeek("Amina Odhiambo", "amina@example.com", monday, 2)...)

	totals := payroll.RollupContractTotals(
		payroll.SummarizeContractWeeks(all, payroll.NewContractBook()))

	assert.Equal(t, "Amina Odhiambo", totals[0].FullName)
	assert.Equal(t, "Zoe Achieng", totals[1].FullName)
}
