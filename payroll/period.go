package payroll

import (
	"fmt"

	"github.com/warp/overtime-engine/shifts"
)

// =============================================================================
// PERIOD - The date range a timesheet covers
// =============================================================================

type Period struct {
	Start shifts.Date
	End   shifts.Date
}

func (p Period) IsZero() bool { return p.Start.IsZero() && p.End.IsZero() }

// String renders the label reports print: "on 2025-10-20" for a single day,
// "from 2025-10-13 to 2025-10-19" otherwise, empty for an empty period.
func (p Period) String() string {
	if p.IsZero() {
		return ""
	}
	if p.Start.Equal(p.End) {
		return fmt.Sprintf("on %s", p.Start)
	}
	return fmt.Sprintf("from %s to %s", p.Start, p.End)
}

// PeriodFor finds the observed shift-date range. An empty run has a zero
// period.
func PeriodFor(shiftRows []shifts.EnrichedShift) Period {
	var p Period
	for _, s := range shiftRows {
		p.Start = shifts.MinDate(p.Start, s.ShiftDate)
		p.End = shifts.MaxDate(p.End, s.ShiftDate)
	}
	return p
}
