/*
classify.go - Overtime day flagging per person-week

PURPOSE:
  Second pipeline stage. Decides, for every person and week, which worked
  dates are overtime.

RULE:
  Within one (email, week) group, order the distinct worked dates
  ascending. The first ContractedDaysPerWeek dates are standard; every
  later date is an overtime date. Every shift on an overtime date is
  flagged, including second shifts on the same date. Calendar position is
  irrelevant: a person whose five contracted dates are Tuesday to Saturday
  gets overtime only on a sixth distinct date.

EXAMPLE:
  Contracted 5, worked dates Mon Tue Wed Thu Fri Sat within one week:
  Mon-Fri standard, Sat overtime. Two shifts on Sat are both overtime.

SEE ALSO:
  - derive.go: Next stage, fills the per-row hour buckets
*/
package shifts

import (
	"sort"
)

// FlagOvertimeDays sorts shifts by (email, week start, shift date) and sets
// IsOTDay on every shift whose date is beyond the contracted distinct dates
// for its person-week. The slice is annotated and returned in that order;
// equal-key rows keep their input order. Negative contracted days behave
// like zero, meaning every worked date is overtime.
func FlagOvertimeDays(shifts []EnrichedShift, contractedDaysPerWeek int) []EnrichedShift {
	if contractedDaysPerWeek < 0 {
		contractedDaysPerWeek = 0
	}

	sort.SliceStable(shifts, func(i, j int) bool {
		a, b := shifts[i], shifts[j]
		if a.Email != b.Email {
			return a.Email < b.Email
		}
		if !a.WeekStart.Equal(b.WeekStart) {
			return a.WeekStart.Before(b.WeekStart)
		}
		return a.ShiftDate.Before(b.ShiftDate)
	})

	for start := 0; start < len(shifts); {
		end := start + 1
		for end < len(shifts) &&
			shifts[end].Email == shifts[start].Email &&
			shifts[end].WeekStart.Equal(shifts[start].WeekStart) {
			end++
		}
		flagWeek(shifts[start:end], contractedDaysPerWeek)
		start = end
	}
	return shifts
}

// flagWeek walks one date-sorted person-week. Counting distinct dates as
// they appear, every row on a date past the contracted count is overtime.
func flagWeek(week []EnrichedShift, contractedDays int) {
	distinct := 0
	var current Date
	for i := range week {
		if i == 0 || !week[i].ShiftDate.Equal(current) {
			distinct++
			current = week[i].ShiftDate
		}
		if distinct > contractedDays {
			week[i].IsOTDay = true
		}
	}
}
