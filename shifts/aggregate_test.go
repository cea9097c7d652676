package shifts_test

import (
	"testing"
	"time"

	"github.com/warp/overtime-engine/shifts"
)

// Shared helpers (date, h, dd, shift, rec, ...) live in pipeline_test.go and
// classify_test.go.

// classifiedShift builds a post-derive row for aggregate tests.
func classifiedShift(name, email string, day shifts.Date, hours float64, ot, bh bool) shifts.EnrichedShift {
	s := shift(email, day, hours)
	s.FullName = name
	s.IsOTDay = ot
	s.IsBankHoliday = bh
	s.ShiftDays = dd(hours / 9.0)
	s.OTHours = h(0)
	s.BHHours = h(0)
	if ot {
		s.OTHours = h(hours)
	}
	if bh {
		s.BHHours = h(hours)
	}
	return s
}

func TestGranular_KeepsOnlyFlaggedShifts(t *testing.T) {
	// RULE: "Granular holds every shift flagged overtime or bank holiday
	// and nothing else."

	day := date(2025, time.October, 20)
	in := []shifts.EnrichedShift{
		classifiedShift("Amina Odhiambo", "amina@example.com", day, 9, false, false),
		classifiedShift("Amina Odhiambo", "amina@example.com", day.AddDays(5), 9, true, false),
		classifiedShift("Brian Mwangi", "brian@example.com", day, 9, false, true),
	}

	rows := shifts.BuildGranular(in, testTeam)

	if len(rows) != 2 {
		t.Fatalf("RULE VIOLATION: granular rows = %d, want 2", len(rows))
	}
	for _, r := range rows {
		if r.Team != testTeam {
			t.Errorf("team = %q, want %q", r.Team, testTeam)
		}
	}
}

func TestGranular_BankHolidayWinsTheLabel(t *testing.T) {
	// RULE: "A shift that is both OT and BH shows one label, Bank holiday.
	// The precedence is display-only; hour buckets keep both."

	day := date(2025, time.October, 20)
	in := []shifts.EnrichedShift{
		classifiedShift("Amina Odhiambo", "amina@example.com", day, 9, true, true),
	}

	rows := shifts.BuildGranular(in, testTeam)

	if rows[0].DayType != shifts.DayTypeBankHoliday {
		t.Errorf("RULE VIOLATION: day_type = %q, want %q", rows[0].DayType, shifts.DayTypeBankHoliday)
	}
}

func TestGranular_SortedByTeamNameDate(t *testing.T) {
	day := date(2025, time.October, 20)
	in := []shifts.EnrichedShift{
		classifiedShift("Zoe Achieng", "zoe@example.com", day, 9, true, false),
		classifiedShift("Amina Odhiambo", "amina@example.com", day.AddDays(1), 9, true, false),
		classifiedShift("Amina Odhiambo", "amina@example.com", day, 9, true, false),
	}

	rows := shifts.BuildGranular(in, testTeam)

	want := []string{"Amina Odhiambo|2025-10-20", "Amina Odhiambo|2025-10-21", "Zoe Achieng|2025-10-20"}
	for i, r := range rows {
		got := r.FullName + "|" + r.Date.String()
		if got != want[i] {
			t.Errorf("row %d = %s, want %s", i, got, want[i])
		}
	}
}

func TestSummary_EveryPersonGetsARow(t *testing.T) {
	// RULE: "Summary covers every person in the run, including people with
	// no OT or BH at all; their totals are zero."

	day := date(2025, time.October, 20)
	in := []shifts.EnrichedShift{
		classifiedShift("Amina Odhiambo", "amina@example.com", day.AddDays(5), 9, true, false),
		classifiedShift("Brian Mwangi", "brian@example.com", day, 9, false, false),
	}

	rows := shifts.BuildSummary(in, testTeam)

	if len(rows) != 2 {
		t.Fatalf("RULE VIOLATION: summary rows = %d, want 2", len(rows))
	}
	brian := rows[1]
	if brian.FullName != "Brian Mwangi" {
		t.Fatalf("rows should sort by name; got %q second", brian.FullName)
	}
	if brian.DaysOT != 0 || brian.DaysBH != 0 || !brian.HoursOT.IsZero() || !brian.HoursBH.IsZero() {
		t.Error("standard-only person should have all-zero totals")
	}
}

func TestSummary_CountsShiftRowsAndSumsHours(t *testing.T) {
	// RULE: "days_OT counts flagged shift rows (a double shift on one OT
	// date counts 2); hours_OT sums their scheduled hours."

	day := date(2025, time.October, 25)
	in := []shifts.EnrichedShift{
		classifiedShift("Amina Odhiambo", "amina@example.com", day, 4.5, true, false),
		classifiedShift("Amina Odhiambo", "amina@example.com", day, 4.5, true, false),
		classifiedShift("Amina Odhiambo", "amina@example.com", date(2025, time.October, 20), 9, false, true),
	}

	rows := shifts.BuildSummary(in, testTeam)

	if len(rows) != 1 {
		t.Fatalf("summary rows = %d, want 1", len(rows))
	}
	r := rows[0]
	if r.DaysOT != 2 {
		t.Errorf("RULE VIOLATION: days_OT = %d, want 2 shift rows", r.DaysOT)
	}
	if !r.HoursOT.Value.Equal(h(9).Value) {
		t.Errorf("hours_OT = %v, want 9", r.HoursOT.Value)
	}
	if r.DaysBH != 1 || !r.HoursBH.Value.Equal(h(9).Value) {
		t.Errorf("BH totals = (%d, %v), want (1, 9)", r.DaysBH, r.HoursBH.Value)
	}
}

func TestPivot_RebuildsSummaryFromGranular(t *testing.T) {
	// RULE: "On single-classification shifts the pivot's hour columns match
	// the summary's, row for row. The pivot's day columns sum shift_days,
	// so a half shift contributes 0.5."
	//
	// GIVEN: Amina has one full OT shift, Brian one full BH and one half OT
	// WHEN: Both tables are built
	// THEN: Hour columns agree; pivot days are decimal

	day := date(2025, time.October, 20)
	in := []shifts.EnrichedShift{
		classifiedShift("Amina Odhiambo", "amina@example.com", day.AddDays(5), 9, true, false),
		classifiedShift("Brian Mwangi", "brian@example.com", day, 9, false, true),
		classifiedShift("Brian Mwangi", "brian@example.com", day.AddDays(5), 4.5, true, false),
	}

	granular := shifts.BuildGranular(in, testTeam)
	summary := shifts.BuildSummary(in, testTeam)
	pivot := shifts.BuildPivotFromGranular(granular)

	if len(pivot) != len(summary) {
		t.Fatalf("pivot rows = %d, summary rows = %d; want equal", len(pivot), len(summary))
	}
	for i := range pivot {
		p, s := pivot[i], summary[i]
		if p.Email != s.Email {
			t.Fatalf("row %d: pivot %s vs summary %s; same sort expected", i, p.Email, s.Email)
		}
		if !p.HoursOT.Value.Equal(s.HoursOT.Value) || !p.HoursBH.Value.Equal(s.HoursBH.Value) {
			t.Errorf("RULE VIOLATION: %s hour columns diverge: pivot (%v, %v) vs summary (%v, %v)",
				p.Email, p.HoursOT.Value, p.HoursBH.Value, s.HoursOT.Value, s.HoursBH.Value)
		}
	}

	// Brian's half OT shift is half a day in the pivot.
	brian := pivot[1]
	if !brian.DaysOT.Value.Equal(dd(0.5).Value) {
		t.Errorf("pivot days_OT for half shift = %v, want 0.5", brian.DaysOT.Value)
	}
	if !brian.DaysBH.Value.Equal(dd(1).Value) {
		t.Errorf("pivot days_BH = %v, want 1", brian.DaysBH.Value)
	}
}

func TestPivot_BothFlagsBookUnderBankHolidayOnly(t *testing.T) {
	// RULE: "Pivot books a both-flagged shift under Bank holiday only (it
	// follows the granular label), while Summary counts its hours in both
	// columns. The tables deliberately diverge on that data."

	day := date(2025, time.October, 20)
	in := []shifts.EnrichedShift{
		classifiedShift("Amina Odhiambo", "amina@example.com", day, 9, true, true),
	}

	granular := shifts.BuildGranular(in, testTeam)
	pivot := shifts.BuildPivotFromGranular(granular)
	summary := shifts.BuildSummary(in, testTeam)

	p := pivot[0]
	if !p.HoursOT.IsZero() || !p.HoursBH.Value.Equal(h(9).Value) {
		t.Errorf("pivot books (%v OT, %v BH), want (0, 9)", p.HoursOT.Value, p.HoursBH.Value)
	}
	s := summary[0]
	if !s.HoursOT.Value.Equal(h(9).Value) || !s.HoursBH.Value.Equal(h(9).Value) {
		t.Errorf("summary books (%v OT, %v BH), want (9, 9)", s.HoursOT.Value, s.HoursBH.Value)
	}
}

func TestPivot_EmptyGranularYieldsEmptyPivot(t *testing.T) {
	pivot := shifts.BuildPivotFromGranular(nil)
	if pivot == nil || len(pivot) != 0 {
		t.Errorf("empty granular should yield empty non-nil pivot, got %#v", pivot)
	}
}

func TestTeams_DropsTeamsWithoutAnyOTOrBH(t *testing.T) {
	// RULE: "The team roll-up keeps only teams with positive OT or BH
	// hours."

	summary := []shifts.SummaryRow{
		{Team: "Fraud Operations", FullName: "Amina Odhiambo", Email: "amina@example.com",
			DaysOT: 1, HoursOT: h(9), HoursBH: h(0)},
		{Team: "Fraud Operations", FullName: "Brian Mwangi", Email: "brian@example.com",
			HoursOT: h(0), HoursBH: h(0)},
		{Team: "Treasury Ops", FullName: "Carol Njeri", Email: "carol@example.com",
			HoursOT: h(0), HoursBH: h(0)},
	}

	rows := shifts.BuildTeamRollup(summary)

	if len(rows) != 1 {
		t.Fatalf("RULE VIOLATION: roll-up rows = %d, want 1 (Treasury has no OT/BH)", len(rows))
	}
	r := rows[0]
	if r.Team != "Fraud Operations" {
		t.Errorf("team = %q, want Fraud Operations", r.Team)
	}
	if !r.TotalOTHours.Value.Equal(h(9).Value) {
		t.Errorf("total_ot_hours = %v, want 9", r.TotalOTHours.Value)
	}
	if r.PeopleWithOT != 1 || r.PeopleWithBH != 0 {
		t.Errorf("people counts = (%d, %d), want (1, 0)", r.PeopleWithOT, r.PeopleWithBH)
	}
}

func TestWeekly_GroupsByPersonAndWeek(t *testing.T) {
	// GIVEN: Shifts in two different weeks for one person
	// THEN: One row per week with summed hours, sorted by week

	mon1 := date(2025, time.October, 20)
	mon2 := date(2025, time.October, 27)
	in := []shifts.EnrichedShift{
		classifiedShift("Amina Odhiambo", "amina@example.com", mon1, 9, false, false),
		classifiedShift("Amina Odhiambo", "amina@example.com", mon1.AddDays(1), 9, false, false),
		classifiedShift("Amina Odhiambo", "amina@example.com", mon2, 9, true, false),
	}

	rows := shifts.SummarizeWeekly(in, testTeam)

	if len(rows) != 2 {
		t.Fatalf("weekly rows = %d, want 2", len(rows))
	}
	if !rows[0].WeekStart.Equal(mon1) || !rows[1].WeekStart.Equal(mon2) {
		t.Errorf("weeks out of order: %s then %s", rows[0].WeekStart, rows[1].WeekStart)
	}
	if !rows[0].TotalScheduled.Value.Equal(h(18).Value) {
		t.Errorf("week 1 total_scheduled = %v, want 18", rows[0].TotalScheduled.Value)
	}
	if !rows[1].TotalOT.Value.Equal(h(9).Value) {
		t.Errorf("week 2 total_ot = %v, want 9", rows[1].TotalOT.Value)
	}
}

func TestMonthly_KeysByFirstOfMonth(t *testing.T) {
	// GIVEN: Shifts at the end of October and the start of November
	// THEN: Two rows keyed 2025-10-01 and 2025-11-01

	in := []shifts.EnrichedShift{
		classifiedShift("Amina Odhiambo", "amina@example.com", date(2025, time.October, 31), 9, false, false),
		classifiedShift("Amina Odhiambo", "amina@example.com", date(2025, time.November, 1), 9, false, false),
	}

	rows := shifts.SummarizeMonthly(in, testTeam)

	if len(rows) != 2 {
		t.Fatalf("monthly rows = %d, want 2", len(rows))
	}
	if !rows[0].Month.Equal(date(2025, time.October, 1)) {
		t.Errorf("month key = %s, want 2025-10-01", rows[0].Month)
	}
	if !rows[1].Month.Equal(date(2025, time.November, 1)) {
		t.Errorf("month key = %s, want 2025-11-01", rows[1].Month)
	}
}
