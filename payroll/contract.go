/*
contract.go - Contracted-hours overtime views

PURPOSE:
  The older, hours-threshold way of spotting overtime, kept alongside the
  day-count classifier because People teams still reconcile against it:

    weekly overtime = max(total hours - contracted weekly hours, 0)

  Contracted hours come from a single lookup table keyed by email, with
  one default for everyone else. There is no per-employee contract model
  beyond that table.

SEE ALSO:
  - report.go: Attaches these views to the team report
*/
package payroll

import (
	"sort"

	"github.com/warp/overtime-engine/shifts"
)

// =============================================================================
// CONTRACT BOOK - The single contracted-hours lookup table
// =============================================================================

// ContractBook resolves contracted weekly hours per person. A nil override
// map is fine; everyone gets the default.
type ContractBook struct {
	DefaultWeeklyHours float64
	ByEmail            map[shifts.Email]float64
}

// NewContractBook builds a book with the standard 45-hour default and no
// overrides.
func NewContractBook() *ContractBook {
	return &ContractBook{
		DefaultWeeklyHours: DefaultWeeklyContractHours,
		ByEmail:            make(map[shifts.Email]float64),
	}
}

// WeeklyHoursFor looks up one person's contracted weekly hours.
func (b *ContractBook) WeeklyHoursFor(email shifts.Email) float64 {
	if b == nil {
		return DefaultWeeklyContractHours
	}
	if hours, ok := b.ByEmail[email]; ok {
		return hours
	}
	return b.DefaultWeeklyHours
}

// =============================================================================
// CONTRACT WEEKS - Per person per week against contracted hours
// =============================================================================

type ContractWeekRow struct {
	FullName        string
	Email           shifts.Email
	WeekStart       shifts.Date
	TotalHours      shifts.Amount
	ContractedHours shifts.Amount
	OvertimeHours   shifts.Amount // total - contracted, floored at zero
	HasOvertime     bool
}

type contractWeekKey struct {
	fullName string
	email    shifts.Email
	week     string
}

// SummarizeContractWeeks totals scheduled hours per person-week and marks
// everything above the person's contracted hours as overtime. Sorted by
// (full name, email, week start).
func SummarizeContractWeeks(shiftRows []shifts.EnrichedShift, book *ContractBook) []ContractWeekRow {
	byKey := make(map[contractWeekKey]*ContractWeekRow)
	order := make([]contractWeekKey, 0)

	for _, s := range shiftRows {
		key := contractWeekKey{fullName: s.FullName, email: s.Email, week: s.WeekStart.String()}
		row, ok := byKey[key]
		if !ok {
			row = &ContractWeekRow{
				FullName:   s.FullName,
				Email:      s.Email,
				WeekStart:  s.WeekStart,
				TotalHours: shifts.Hours(0),
			}
			byKey[key] = row
			order = append(order, key)
		}
		row.TotalHours = row.TotalHours.Add(s.ScheduledHours)
	}

	rows := make([]ContractWeekRow, 0, len(order))
	for _, key := range order {
		row := byKey[key]
		row.ContractedHours = shifts.Hours(book.WeeklyHoursFor(row.Email))
		overtime := row.TotalHours.Sub(row.ContractedHours)
		if overtime.IsNegative() {
			overtime = overtime.Zero()
		}
		row.OvertimeHours = overtime
		row.HasOvertime = overtime.IsPositive()
		rows = append(rows, *row)
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.FullName != b.FullName {
			return a.FullName < b.FullName
		}
		if a.Email != b.Email {
			return a.Email < b.Email
		}
		return a.WeekStart.Before(b.WeekStart)
	})
	return rows
}

// =============================================================================
// CONTRACT TOTALS - Whole-period roll-up of the weekly view
// =============================================================================

type ContractTotalRow struct {
	FullName        string
	Email           shifts.Email
	TotalHours      shifts.Amount
	TotalContracted shifts.Amount
	TotalOvertime   shifts.Amount
}

// RollupContractTotals sums the weekly view per person. Overtime is summed
// week by week, so one heavy week is never offset by a light one. Sorted by
// (full name, email).
func RollupContractTotals(weeks []ContractWeekRow) []ContractTotalRow {
	byPerson := make(map[contractWeekKey]*ContractTotalRow)
	order := make([]contractWeekKey, 0)

	for _, w := range weeks {
		key := contractWeekKey{fullName: w.FullName, email: w.Email}
		row, ok := byPerson[key]
		if !ok {
			row = &ContractTotalRow{
				FullName:        w.FullName,
				Email:           w.Email,
				TotalHours:      shifts.Hours(0),
				TotalContracted: shifts.Hours(0),
				TotalOvertime:   shifts.Hours(0),
			}
			byPerson[key] = row
			order = append(order, key)
		}
		row.TotalHours = row.TotalHours.Add(w.TotalHours)
		row.TotalContracted = row.TotalContracted.Add(w.ContractedHours)
		row.TotalOvertime = row.TotalOvertime.Add(w.OvertimeHours)
	}

	rows := make([]ContractTotalRow, 0, len(order))
	for _, key := range order {
		rows = append(rows, *byPerson[key])
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.FullName != b.FullName {
			return a.FullName < b.FullName
		}
		return a.Email < b.Email
	})
	return rows
}
