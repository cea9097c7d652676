/*
periods.go - Weekly and monthly totals per person

PURPOSE:
  Period views over the classified shift table: scheduled, overtime, and
  bank-holiday hour totals per person per week and per calendar month.
  Weeks run Monday to Sunday; months are keyed by their first day.

SEE ALSO:
  - aggregate.go: Shift-level and per-person tables
*/
package shifts

import (
	"sort"
)

// =============================================================================
// WEEKLY - Hour totals per person per week
// =============================================================================

type WeeklyRow struct {
	Team           string
	FullName       string
	Email          Email
	WeekStart      Date
	TotalScheduled Amount
	TotalOT        Amount
	TotalBH        Amount
}

type periodKey struct {
	fullName string
	email    Email
	period   string // date string of the week or month start
}

// SummarizeWeekly groups shifts by person and week start. Sorted by (team,
// full name, week start, email).
func SummarizeWeekly(shifts []EnrichedShift, team string) []WeeklyRow {
	byKey := make(map[periodKey]*WeeklyRow)
	order := make([]periodKey, 0)

	for _, s := range shifts {
		key := periodKey{fullName: s.FullName, email: s.Email, period: s.WeekStart.String()}
		row, ok := byKey[key]
		if !ok {
			row = &WeeklyRow{
				Team:           team,
				FullName:       s.FullName,
				Email:          s.Email,
				WeekStart:      s.WeekStart,
				TotalScheduled: Hours(0),
				TotalOT:        Hours(0),
				TotalBH:        Hours(0),
			}
			byKey[key] = row
			order = append(order, key)
		}
		row.TotalScheduled = row.TotalScheduled.Add(s.ScheduledHours)
		row.TotalOT = row.TotalOT.Add(s.OTHours)
		row.TotalBH = row.TotalBH.Add(s.BHHours)
	}

	rows := make([]WeeklyRow, 0, len(order))
	for _, key := range order {
		rows = append(rows, *byKey[key])
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Team != b.Team {
			return a.Team < b.Team
		}
		if a.FullName != b.FullName {
			return a.FullName < b.FullName
		}
		if !a.WeekStart.Equal(b.WeekStart) {
			return a.WeekStart.Before(b.WeekStart)
		}
		return a.Email < b.Email
	})
	return rows
}

// =============================================================================
// MONTHLY - Hour totals per person per calendar month
// =============================================================================

type MonthlyRow struct {
	Team           string
	FullName       string
	Email          Email
	Month          Date // first day of the calendar month
	TotalScheduled Amount
	TotalOT        Amount
	TotalBH        Amount
}

// SummarizeMonthly groups shifts by person and calendar month. Sorted by
// (team, full name, month, email).
func SummarizeMonthly(shifts []EnrichedShift, team string) []MonthlyRow {
	byKey := make(map[periodKey]*MonthlyRow)
	order := make([]periodKey, 0)

	for _, s := range shifts {
		month := s.ShiftDate.MonthStart()
		key := periodKey{fullName: s.FullName, email: s.Email, period: month.String()}
		row, ok := byKey[key]
		if !ok {
			row = &MonthlyRow{
				Team:           team,
				FullName:       s.FullName,
				Email:          s.Email,
				Month:          month,
				TotalScheduled: Hours(0),
				TotalOT:        Hours(0),
				TotalBH:        Hours(0),
			}
			byKey[key] = row
			order = append(order, key)
		}
		row.TotalScheduled = row.TotalScheduled.Add(s.ScheduledHours)
		row.TotalOT = row.TotalOT.Add(s.OTHours)
		row.TotalBH = row.TotalBH.Add(s.BHHours)
	}

	rows := make([]MonthlyRow, 0, len(order))
	for _, key := range order {
		rows = append(rows, *byKey[key])
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Team != b.Team {
			return a.Team < b.Team
		}
		if a.FullName != b.FullName {
			return a.FullName < b.FullName
		}
		if !a.Month.Equal(b.Month) {
			return a.Month.Before(b.Month)
		}
		return a.Email < b.Email
	})
	return rows
}
