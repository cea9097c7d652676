/*
derive.go - Per-row duration and hour-bucket columns

PURPOSE:
  Third pipeline stage. Fills the columns every aggregate sums:

    ShiftDays = ScheduledHours / TeamShiftHours   (fraction of a standard day)
    OTHours   = ScheduledHours if IsOTDay else 0
    BHHours   = ScheduledHours if IsBankHoliday else 0

  A shift that is both an overtime day and a bank holiday contributes its
  full hours to both buckets. The buckets never split a shift; the display
  label (DayTypeFor) is where the single-classification precedence lives.

SEE ALSO:
  - aggregate.go: Sums these columns into the reporting tables
*/
package shifts

import (
	"github.com/shopspring/decimal"
)

// AddDurationAndFlags fills ShiftDays, OTHours, and BHHours in place and
// returns the slice. teamShiftHours is the ShiftDays divisor and must be
// positive.
func AddDurationAndFlags(shifts []EnrichedShift, teamShiftHours float64) ([]EnrichedShift, error) {
	if teamShiftHours <= 0 {
		return nil, &ConfigError{Field: "team_shift_hours", Value: teamShiftHours,
			Reason: "must be positive"}
	}
	divisor := decimal.NewFromFloat(teamShiftHours)

	for i := range shifts {
		s := &shifts[i]
		s.ShiftDays = Amount{Value: s.ScheduledHours.Value.Div(divisor), Unit: UnitDays}

		s.OTHours = Hours(0)
		if s.IsOTDay {
			s.OTHours = s.ScheduledHours
		}

		s.BHHours = Hours(0)
		if s.IsBankHoliday {
			s.BHHours = s.ScheduledHours
		}
	}
	return shifts, nil
}
