package shifts_test

import (
	"errors"
	"testing"
	"time"

	"github.com/warp/overtime-engine/shifts"
)

// Shared helpers (date, h, dd, shift, ...) live in pipeline_test.go and
// classify_test.go.

func TestDerive_ShiftDaysDivideByTeamShiftHours(t *testing.T) {
	// RULE: "shift_days = scheduled_hours / team_shift_hours."

	day := date(2025, time.October, 21)
	in := []shifts.EnrichedShift{
		shift("a@example.com", day, 9),
		shift("a@example.com", day, 4.5),
		shift("a@example.com", day, 0),
	}

	out, err := shifts.AddDurationAndFlags(in, 9.0)
	if err != nil {
		t.Fatalf("derive should succeed: %v", err)
	}

	wants := []float64{1, 0.5, 0}
	for i, want := range wants {
		if !out[i].ShiftDays.Value.Equal(dd(want).Value) {
			t.Errorf("RULE VIOLATION: shift_days[%d] = %v, want %v", i, out[i].ShiftDays.Value, want)
		}
		if out[i].ShiftDays.Unit != shifts.UnitDays {
			t.Errorf("shift_days unit = %q, want days", out[i].ShiftDays.Unit)
		}
	}

	// A 12-hour team halves the day value of a 6h shift.
	in = []shifts.EnrichedShift{shift("a@example.com", day, 6)}
	out, err = shifts.AddDurationAndFlags(in, 12.0)
	if err != nil {
		t.Fatalf("derive should succeed: %v", err)
	}
	if !out[0].ShiftDays.Value.Equal(dd(0.5).Value) {
		t.Errorf("6h on a 12h team = %v days, want 0.5", out[0].ShiftDays.Value)
	}
}

func TestDerive_HourBucketsFollowFlags(t *testing.T) {
	// RULE: "ot_hours carries the full scheduled hours when the shift is an
	// OT day, else zero; bh_hours likewise for bank holidays. A shift with
	// both flags fills both buckets."

	day := date(2025, time.October, 20)

	plain := shift("a@example.com", day, 9)
	ot := shift("a@example.com", day, 9)
	ot.IsOTDay = true
	bh := shift("a@example.com", day, 9)
	bh.IsBankHoliday = true
	both := shift("a@example.com", day, 9)
	both.IsOTDay = true
	both.IsBankHoliday = true

	out, err := shifts.AddDurationAndFlags([]shifts.EnrichedShift{plain, ot, bh, both}, 9.0)
	if err != nil {
		t.Fatalf("derive should succeed: %v", err)
	}

	if !out[0].OTHours.IsZero() || !out[0].BHHours.IsZero() {
		t.Error("unflagged shift should have zero hour buckets")
	}
	if !out[1].OTHours.Value.Equal(h(9).Value) || !out[1].BHHours.IsZero() {
		t.Errorf("OT shift buckets = (%v, %v), want (9, 0)", out[1].OTHours.Value, out[1].BHHours.Value)
	}
	if !out[2].BHHours.Value.Equal(h(9).Value) || !out[2].OTHours.IsZero() {
		t.Errorf("BH shift buckets = (%v, %v), want (0, 9)", out[2].OTHours.Value, out[2].BHHours.Value)
	}
	if !out[3].OTHours.Value.Equal(h(9).Value) || !out[3].BHHours.Value.Equal(h(9).Value) {
		t.Errorf("RULE VIOLATION: both-flagged shift fills both buckets, got (%v, %v)",
			out[3].OTHours.Value, out[3].BHHours.Value)
	}
}

func TestDerive_RejectsNonPositiveShiftHours(t *testing.T) {
	for _, bad := range []float64{0, -9} {
		_, err := shifts.AddDurationAndFlags(nil, bad)
		if !errors.Is(err, shifts.ErrInvalidConfig) {
			t.Errorf("team shift hours %v should wrap ErrInvalidConfig, got: %v", bad, err)
		}
	}
}
