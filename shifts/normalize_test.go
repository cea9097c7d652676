package shifts_test

import (
	"testing"
	"time"

	"github.com/warp/overtime-engine/shifts"
)

// Shared helpers (date, h, rec, kenyaCalendar, ...) live in pipeline_test.go.

func normalize(t *testing.T, records []shifts.RawShiftRecord, cfg shifts.Config) []shifts.EnrichedShift {
	t.Helper()
	out, err := shifts.NewNormalizer(kenyaCalendar()).Normalize(records, cfg)
	if err != nil {
		t.Fatalf("normalize should succeed: %v", err)
	}
	return out
}

func TestNormalize_FullNameJoinsAndTrims(t *testing.T) {
	// RULE: "full_name joins trimmed first and last names; when either is
	// empty the join itself is trimmed."

	cases := []struct {
		first, last, want string
	}{
		{"  Amina ", " Odhiambo ", "Amina Odhiambo"},
		{"Amina", "", "Amina"},
		{"", "Odhiambo", "Odhiambo"},
		{"", "", ""},
	}
	for _, c := range cases {
		out := normalize(t, []shifts.RawShiftRecord{
			rec("2025-10-21", c.first, c.last, "amina@example.com", "9"),
		}, testConfig())
		if out[0].FullName != c.want {
			t.Errorf("RULE VIOLATION: full name of (%q, %q) = %q, want %q",
				c.first, c.last, out[0].FullName, c.want)
		}
	}
}

func TestNormalize_LenientHoursDegradeToZero(t *testing.T) {
	// RULE: "Scheduled hours that are absent, blank, non-numeric, or
	// negative normalize to 0.0 silently; a bad duration never blocks a run."

	for _, bad := range []string{"", "  ", "n/a", "nine", "-5"} {
		out := normalize(t, []shifts.RawShiftRecord{
			rec("2025-10-21", "Amina", "Odhiambo", "amina@example.com", bad),
		}, testConfig())
		if !out[0].ScheduledHours.IsZero() {
			t.Errorf("RULE VIOLATION: hours %q should normalize to 0, got %v", bad, out[0].ScheduledHours.Value)
		}
		if !out[0].PaidHours.IsZero() {
			t.Errorf("paid hours for %q should stay 0, got %v", bad, out[0].PaidHours.Value)
		}
	}
}

func TestNormalize_PaidHoursDeductBreakOnlyOnFullShifts(t *testing.T) {
	// RULE: "paid_hours = scheduled - 1 only when scheduled >= team shift
	// hours; shorter shifts have no unpaid break."

	cases := []struct {
		hours string
		want  float64
	}{
		{"9", 8},      // exactly a full shift
		{"10.5", 9.5}, // longer than a full shift
		{"8.99", 8.99},
		{"4.5", 4.5},
		{"0", 0},
	}
	for _, c := range cases {
		out := normalize(t, []shifts.RawShiftRecord{
			rec("2025-10-21", "Amina", "Odhiambo", "amina@example.com", c.hours),
		}, testConfig())
		if !out[0].PaidHours.Value.Equal(h(c.want).Value) {
			t.Errorf("RULE VIOLATION: paid hours for %s scheduled = %v, want %v",
				c.hours, out[0].PaidHours.Value, c.want)
		}
	}
}

func TestNormalize_PaidHoursThresholdFollowsTeamShiftHours(t *testing.T) {
	// GIVEN: A 12-hour team (Core Ops style)
	// THEN: A 9h shift keeps all 9 paid hours, a 12h shift loses the break

	cfg := testConfig()
	cfg.TeamShiftHours = 12.0

	out := normalize(t, []shifts.RawShiftRecord{
		rec("2025-10-21", "Amina", "Odhiambo", "amina@example.com", "9"),
		rec("2025-10-22", "Amina", "Odhiambo", "amina@example.com", "12"),
	}, cfg)

	if !out[0].PaidHours.Value.Equal(h(9).Value) {
		t.Errorf("9h on a 12h team should stay 9 paid, got %v", out[0].PaidHours.Value)
	}
	if !out[1].PaidHours.Value.Equal(h(11).Value) {
		t.Errorf("12h on a 12h team should pay 11, got %v", out[1].PaidHours.Value)
	}
}

func TestNormalize_CalendarColumns(t *testing.T) {
	// GIVEN: A Saturday shift
	// THEN: day_name and week_start are derived from the shift date

	out := normalize(t, []shifts.RawShiftRecord{
		rec("2025-10-25", "Amina", "Odhiambo", "amina@example.com", "9"),
	}, testConfig())

	s := out[0]
	if s.DayName != "Saturday" {
		t.Errorf("day_name = %q, want Saturday", s.DayName)
	}
	if !s.WeekStart.Equal(date(2025, time.October, 20)) {
		t.Errorf("week_start = %s, want 2025-10-20", s.WeekStart)
	}
}

func TestNormalize_RegionEligibilityIsExactTimezoneMatch(t *testing.T) {
	// RULE: "A person is region-eligible when their timesheet timezone
	// equals the configured region timezone exactly."

	nairobi := rec("2025-10-21", "Amina", "Odhiambo", "amina@example.com", "9")
	london := rec("2025-10-21", "Tom", "Hardy", "tom@example.com", "9")
	london.SurferTimezone = "Europe/London"
	blank := rec("2025-10-21", "Ann", "Onymous", "ann@example.com", "9")
	blank.SurferTimezone = ""

	out := normalize(t, []shifts.RawShiftRecord{nairobi, london, blank}, testConfig())

	if !out[0].IsRegionEligible {
		t.Error("Africa/Nairobi should be region-eligible under the default config")
	}
	if out[1].IsRegionEligible || out[2].IsRegionEligible {
		t.Error("RULE VIOLATION: non-matching timezones must not be region-eligible")
	}
}

func TestNormalize_BankHolidayNeedsAllThreeConditions(t *testing.T) {
	// RULE: "is_bank_holiday = region-eligible AND date in calendar AND
	// rules enabled."

	holiday := "2025-10-20" // Mashujaa Day in the test calendar
	ordinary := "2025-10-21"

	// Eligible person, holiday date, rules on.
	out := normalize(t, []shifts.RawShiftRecord{
		rec(holiday, "Amina", "Odhiambo", "amina@example.com", "9"),
		rec(ordinary, "Amina", "Odhiambo", "amina@example.com", "9"),
	}, testConfig())
	if !out[0].IsBankHoliday {
		t.Error("RULE VIOLATION: eligible + calendar date + rules on should flag BH")
	}
	if out[1].IsBankHoliday {
		t.Error("ordinary date should not flag BH")
	}

	// Rules off.
	cfg := testConfig()
	cfg.HolidayRulesEnabled = false
	out = normalize(t, []shifts.RawShiftRecord{
		rec(holiday, "Amina", "Odhiambo", "amina@example.com", "9"),
	}, cfg)
	if out[0].IsBankHoliday {
		t.Error("RULE VIOLATION: rules off must suppress BH")
	}

	// Unknown region configured.
	cfg = testConfig()
	cfg.HolidayRegion = "Atlantis"
	out = normalize(t, []shifts.RawShiftRecord{
		rec(holiday, "Amina", "Odhiambo", "amina@example.com", "9"),
	}, cfg)
	if out[0].IsBankHoliday {
		t.Error("unknown region must not flag BH")
	}
}

func TestNormalize_PreservesInputOrder(t *testing.T) {
	// The normalizer enriches rows; ordering is the classifier's job.

	out := normalize(t, []shifts.RawShiftRecord{
		rec("2025-10-25", "Zoe", "Last", "zoe@example.com", "9"),
		rec("2025-10-20", "Ann", "First", "ann@example.com", "9"),
	}, testConfig())

	if out[0].Email != "zoe@example.com" || out[1].Email != "ann@example.com" {
		t.Error("normalizer must not reorder records")
	}
}

func TestNormalize_ShiftNameKeepsRawSubtype(t *testing.T) {
	r := rec("2025-10-21", "Amina", "Odhiambo", "amina@example.com", "9")
	r.Subtype = "Night Shift"

	out := normalize(t, []shifts.RawShiftRecord{r}, testConfig())
	if out[0].ShiftName != "Night Shift" {
		t.Errorf("shift_name = %q, want the raw subtype", out[0].ShiftName)
	}
}

func TestNormalize_EmailIsTrimmedForIdentity(t *testing.T) {
	out := normalize(t, []shifts.RawShiftRecord{
		rec("2025-10-21", "Amina", "Odhiambo", "  amina@example.com ", "9"),
	}, testConfig())
	if out[0].Email != "amina@example.com" {
		t.Errorf("email = %q, want trimmed", out[0].Email)
	}
}
