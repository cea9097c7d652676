package shifts_test

import (
	"errors"
	"testing"
	"time"

	"github.com/warp/overtime-engine/shifts"
)

// Shared helpers (date, h, rec, ...) live in pipeline_test.go.

func TestDate_ParseAcceptsKnownTimesheetLayouts(t *testing.T) {
	// GIVEN: The date spellings seen in real exports
	// THEN: All parse to the same calendar day

	want := date(2025, time.October, 20)
	inputs := []string{
		"2025-10-20",
		"2025-10-20T08:00:00Z",
		"2025-10-20T08:00:00",
		"2025-10-20 08:00:00",
		"10/20/2025",
	}
	for _, in := range inputs {
		got, err := shifts.ParseDate(in)
		if err != nil {
			t.Errorf("ParseDate(%q) failed: %v", in, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseDate(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestDate_ParseSlashDatesAreMonthFirst(t *testing.T) {
	got, err := shifts.ParseDate("1/2/2025")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if !got.Equal(date(2025, time.January, 2)) {
		t.Errorf("1/2/2025 = %s, want 2025-01-02 (January 2nd)", got)
	}
}

func TestDate_ParseRejectsUnknownLayouts(t *testing.T) {
	for _, in := range []string{"next tuesday", "20251020T", "2025/10/20/1", ""} {
		_, err := shifts.ParseDate(in)
		if !errors.Is(err, shifts.ErrUnparseableDate) {
			t.Errorf("ParseDate(%q) should wrap ErrUnparseableDate, got: %v", in, err)
		}
	}
}

func TestDate_WeekStartIsTheMondayOnOrBefore(t *testing.T) {
	// RULE: "Weeks run Monday to Sunday; week_start is the Monday on or
	// before the shift date."

	monday := date(2025, time.October, 20)
	cases := []struct {
		day  shifts.Date
		name string
	}{
		{monday, "Monday"},
		{monday.AddDays(1), "Tuesday"},
		{monday.AddDays(3), "Thursday"},
		{monday.AddDays(5), "Saturday"},
		{monday.AddDays(6), "Sunday"},
	}
	for _, c := range cases {
		if got := c.day.WeekStart(); !got.Equal(monday) {
			t.Errorf("RULE VIOLATION: WeekStart(%s %s) = %s, want %s", c.name, c.day, got, monday)
		}
		if c.day.DayName() != c.name {
			t.Errorf("DayName(%s) = %q, want %q", c.day, c.day.DayName(), c.name)
		}
	}

	// The next Monday starts its own week.
	next := monday.AddDays(7)
	if !next.WeekStart().Equal(next) {
		t.Errorf("WeekStart(%s) = %s, want itself", next, next.WeekStart())
	}
}

func TestDate_WeekStartCrossesMonthBoundary(t *testing.T) {
	// Sat Nov 1 2025 belongs to the week of Mon Oct 27.
	got := date(2025, time.November, 1).WeekStart()
	if !got.Equal(date(2025, time.October, 27)) {
		t.Errorf("WeekStart(2025-11-01) = %s, want 2025-10-27", got)
	}
}

func TestDate_MonthStart(t *testing.T) {
	got := date(2025, time.October, 31).MonthStart()
	if !got.Equal(date(2025, time.October, 1)) {
		t.Errorf("MonthStart(2025-10-31) = %s, want 2025-10-01", got)
	}
}

func TestDate_MinMaxFoldIgnoreZeroDates(t *testing.T) {
	var zero shifts.Date
	a := date(2025, time.October, 13)
	b := date(2025, time.October, 20)

	if got := shifts.MinDate(zero, b); !got.Equal(b) {
		t.Errorf("MinDate(zero, b) = %s, want %s", got, b)
	}
	if got := shifts.MinDate(a, b); !got.Equal(a) {
		t.Errorf("MinDate(a, b) = %s, want %s", got, a)
	}
	if got := shifts.MaxDate(a, b); !got.Equal(b) {
		t.Errorf("MaxDate(a, b) = %s, want %s", got, b)
	}
	if got := shifts.MaxDate(a, zero); !got.Equal(a) {
		t.Errorf("MaxDate(a, zero) = %s, want %s", got, a)
	}
}
