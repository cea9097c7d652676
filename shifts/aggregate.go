/*
aggregate.go - Reporting tables built from classified shifts

PURPOSE:
  The four shift-level reporting tables payroll reads:

    Granular  - every overtime or bank-holiday shift, one row per shift
    Summary   - per person: counts and hour totals of OT and BH
    Pivot     - per person, rebuilt from Granular only (cross-check view)
    Teams     - per team roll-up, filtered to teams with any OT or BH

KEY INVARIANT:
  Pivot is derived strictly from Granular, never from the shift table.
  It exists to prove the filtered per-shift view and the per-person
  summary agree. Granular shows one label per shift (Bank holiday wins
  over Overtime), so for a shift carrying both classifications Pivot
  books the hours under Bank holiday only while Summary counts them in
  both hour columns. On single-classification data the two tables match.

ORDERING:
  Every builder sorts its output; identical input always serializes to
  identical bytes.

SEE ALSO:
  - periods.go: Weekly and monthly totals
  - pipeline.go: Runs every builder over one normalized run
*/
package shifts

import (
	"sort"
)

// =============================================================================
// GRANULAR - Every OT or BH shift, one row per shift
// =============================================================================

type GranularRow struct {
	Team           string
	FullName       string
	Email          Email
	Date           Date
	DayType        DayType
	ShiftName      string
	ScheduledHours Amount
	ShiftDays      Amount
}

// BuildGranular filters to shifts flagged overtime or bank holiday and
// stamps the team label. Sorted by (team, full name, date).
func BuildGranular(shifts []EnrichedShift, team string) []GranularRow {
	rows := make([]GranularRow, 0)
	for _, s := range shifts {
		if !s.IsOTDay && !s.IsBankHoliday {
			continue
		}
		rows = append(rows, GranularRow{
			Team:           team,
			FullName:       s.FullName,
			Email:          s.Email,
			Date:           s.ShiftDate,
			DayType:        DayTypeFor(s),
			ShiftName:      s.ShiftName,
			ScheduledHours: s.ScheduledHours,
			ShiftDays:      s.ShiftDays,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Team != b.Team {
			return a.Team < b.Team
		}
		if a.FullName != b.FullName {
			return a.FullName < b.FullName
		}
		return a.Date.Before(b.Date)
	})
	return rows
}

// =============================================================================
// SUMMARY - Per person: OT/BH shift counts and hour totals
// =============================================================================

type SummaryRow struct {
	Team     string
	FullName string
	Email    Email
	DaysOT   int // count of shifts flagged overtime
	DaysBH   int // count of shifts flagged bank holiday
	HoursOT  Amount
	HoursBH  Amount
}

type personKey struct {
	fullName string
	email    Email
}

// BuildSummary groups all shifts by person. Every person in the run gets a
// row, including people with no overtime at all. Sorted by (team, full
// name, email).
func BuildSummary(shifts []EnrichedShift, team string) []SummaryRow {
	byPerson := make(map[personKey]*SummaryRow)
	order := make([]personKey, 0)

	for _, s := range shifts {
		key := personKey{fullName: s.FullName, email: s.Email}
		row, ok := byPerson[key]
		if !ok {
			row = &SummaryRow{
				Team:     team,
				FullName: s.FullName,
				Email:    s.Email,
				HoursOT:  Hours(0),
				HoursBH:  Hours(0),
			}
			byPerson[key] = row
			order = append(order, key)
		}
		if s.IsOTDay {
			row.DaysOT++
		}
		if s.IsBankHoliday {
			row.DaysBH++
		}
		row.HoursOT = row.HoursOT.Add(s.OTHours)
		row.HoursBH = row.HoursBH.Add(s.BHHours)
	}

	rows := make([]SummaryRow, 0, len(order))
	for _, key := range order {
		rows = append(rows, *byPerson[key])
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Team != b.Team {
			return a.Team < b.Team
		}
		if a.FullName != b.FullName {
			return a.FullName < b.FullName
		}
		return a.Email < b.Email
	})
	return rows
}

// =============================================================================
// PIVOT - Per person, rebuilt from the Granular table only
// =============================================================================

type PivotRow struct {
	Team     string
	FullName string
	Email    Email
	DaysOT   Amount // sum of ShiftDays over Overtime rows (UnitDays)
	DaysBH   Amount // sum of ShiftDays over Bank holiday rows (UnitDays)
	HoursOT  Amount
	HoursBH  Amount
}

// BuildPivotFromGranular re-aggregates the granular rows per person by day
// type. Day columns here sum ShiftDays rather than counting rows, so a short
// shift contributes a fraction of a day. Sorted by (team, full name, email).
func BuildPivotFromGranular(granular []GranularRow) []PivotRow {
	byPerson := make(map[personKey]*PivotRow)
	order := make([]personKey, 0)

	for _, g := range granular {
		key := personKey{fullName: g.FullName, email: g.Email}
		row, ok := byPerson[key]
		if !ok {
			row = &PivotRow{
				Team:     g.Team,
				FullName: g.FullName,
				Email:    g.Email,
				DaysOT:   Days(0),
				DaysBH:   Days(0),
				HoursOT:  Hours(0),
				HoursBH:  Hours(0),
			}
			byPerson[key] = row
			order = append(order, key)
		}
		switch g.DayType {
		case DayTypeOvertime:
			row.DaysOT = row.DaysOT.Add(g.ShiftDays)
			row.HoursOT = row.HoursOT.Add(g.ScheduledHours)
		case DayTypeBankHoliday:
			row.DaysBH = row.DaysBH.Add(g.ShiftDays)
			row.HoursBH = row.HoursBH.Add(g.ScheduledHours)
		}
	}

	rows := make([]PivotRow, 0, len(order))
	for _, key := range order {
		rows = append(rows, *byPerson[key])
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Team != b.Team {
			return a.Team < b.Team
		}
		if a.FullName != b.FullName {
			return a.FullName < b.FullName
		}
		return a.Email < b.Email
	})
	return rows
}

// =============================================================================
// TEAMS - Roll-up per team, only teams with any OT or BH
// =============================================================================

type TeamRollupRow struct {
	Team         string
	TotalOTHours Amount
	TotalBHHours Amount
	PeopleWithOT int // people whose summary OT hours are positive
	PeopleWithBH int
}

// BuildTeamRollup aggregates the summary per team and drops teams with
// neither overtime nor bank-holiday hours. Sorted by team.
func BuildTeamRollup(summary []SummaryRow) []TeamRollupRow {
	byTeam := make(map[string]*TeamRollupRow)
	order := make([]string, 0)

	for _, s := range summary {
		row, ok := byTeam[s.Team]
		if !ok {
			row = &TeamRollupRow{
				Team:         s.Team,
				TotalOTHours: Hours(0),
				TotalBHHours: Hours(0),
			}
			byTeam[s.Team] = row
			order = append(order, s.Team)
		}
		row.TotalOTHours = row.TotalOTHours.Add(s.HoursOT)
		row.TotalBHHours = row.TotalBHHours.Add(s.HoursBH)
		if s.HoursOT.IsPositive() {
			row.PeopleWithOT++
		}
		if s.HoursBH.IsPositive() {
			row.PeopleWithBH++
		}
	}

	rows := make([]TeamRollupRow, 0, len(order))
	for _, team := range order {
		row := byTeam[team]
		if !row.TotalOTHours.IsPositive() && !row.TotalBHHours.IsPositive() {
			continue
		}
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Team < rows[j].Team })
	return rows
}
