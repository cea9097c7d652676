/*
Package export serializes report tables for People/Payroll downloads.

PURPOSE:
  Writes the six classifier tables and the two contracted-hours views as
  CSV, and bundles the six into one Excel workbook. Column order matches
  the historical payroll exports, so downstream sheets keep working.

FILES PRODUCED:
  ot_summary_by_person.csv    Summary by person
  ot_granular_days.csv        One row per OT / bank-holiday shift
  ot_pivot_from_granular.csv  Pivot recomputed from the granular rows
  ot_weekly_summary.csv       Hours per person per week
  ot_monthly_summary.csv      Hours per person per month
  ot_teams_with_overtime.csv  Team roll-up, OT/BH teams only
  ot_contract_weekly.csv      Contracted-hours weekly view
  ot_contract_totals.csv      Contracted-hours period totals

  An empty table still writes its header row, so a zero-shift period
  produces well-formed files.

SEE ALSO:
  - export/xlsx.go: The workbook counterpart
  - payroll/report.go: TeamReport, the input to WriteTable
*/
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/warp/overtime-engine/payroll"
	"github.com/warp/overtime-engine/shifts"
)

// Download filenames, kept bit-for-bit compatible with the payroll sheets
// that import them.
const (
	SummaryFilename        = "ot_summary_by_person.csv"
	GranularFilename       = "ot_granular_days.csv"
	PivotFilename          = "ot_pivot_from_granular.csv"
	WeeklyFilename         = "ot_weekly_summary.csv"
	MonthlyFilename        = "ot_monthly_summary.csv"
	TeamsFilename          = "ot_teams_with_overtime.csv"
	ContractWeeklyFilename = "ot_contract_weekly.csv"
	ContractTotalsFilename = "ot_contract_totals.csv"
)

var (
	summaryHeader        = []string{"team", "full_name", "email", "days_OT", "days_BH", "hours_OT", "hours_BH"}
	granularHeader       = []string{"team", "full_name", "email", "date", "day_type", "shift_name", "scheduled_hours", "shift_days"}
	pivotHeader          = []string{"team", "full_name", "email", "days_OT", "days_BH", "hours_OT", "hours_BH"}
	weeklyHeader         = []string{"team", "full_name", "email", "week_start", "total_scheduled", "total_ot", "total_bh"}
	monthlyHeader        = []string{"team", "full_name", "email", "month", "total_scheduled", "total_ot", "total_bh"}
	teamsHeader          = []string{"team", "total_ot_hours", "total_bh_hours", "people_with_ot", "people_with_bh"}
	contractWeekHeader   = []string{"full_name", "email", "week_start", "total_hours", "contracted_hours", "overtime_hours", "has_overtime"}
	contractTotalsHeader = []string{"full_name", "email", "total_hours", "total_contracted", "total_overtime"}
)

// WriteSummary writes the summary-by-person table.
func WriteSummary(w io.Writer, rows []shifts.SummaryRow) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Team, r.FullName, string(r.Email),
			strconv.Itoa(r.DaysOT), strconv.Itoa(r.DaysBH),
			amountStr(r.HoursOT), amountStr(r.HoursBH),
		})
	}
	return writeCSV(w, summaryHeader, records)
}

// WriteGranular writes the per-shift OT / bank-holiday table.
func WriteGranular(w io.Writer, rows []shifts.GranularRow) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Team, r.FullName, string(r.Email),
			r.Date.String(), string(r.DayType), r.ShiftName,
			amountStr(r.ScheduledHours), amountStr(r.ShiftDays),
		})
	}
	return writeCSV(w, granularHeader, records)
}

// WritePivot writes the pivot recomputed from the granular table.
func WritePivot(w io.Writer, rows []shifts.PivotRow) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Team, r.FullName, string(r.Email),
			amountStr(r.DaysOT), amountStr(r.DaysBH),
			amountStr(r.HoursOT), amountStr(r.HoursBH),
		})
	}
	return writeCSV(w, pivotHeader, records)
}

// WriteWeekly writes the per-week hours view.
func WriteWeekly(w io.Writer, rows []shifts.WeeklyRow) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Team, r.FullName, string(r.Email), r.WeekStart.String(),
			amountStr(r.TotalScheduled), amountStr(r.TotalOT), amountStr(r.TotalBH),
		})
	}
	return writeCSV(w, weeklyHeader, records)
}

// WriteMonthly writes the per-month hours view.
func WriteMonthly(w io.Writer, rows []shifts.MonthlyRow) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Team, r.FullName, string(r.Email), r.Month.String(),
			amountStr(r.TotalScheduled), amountStr(r.TotalOT), amountStr(r.TotalBH),
		})
	}
	return writeCSV(w, monthlyHeader, records)
}

// WriteTeams writes the team roll-up.
func WriteTeams(w io.Writer, rows []shifts.TeamRollupRow) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Team,
			amountStr(r.TotalOTHours), amountStr(r.TotalBHHours),
			strconv.Itoa(r.PeopleWithOT), strconv.Itoa(r.PeopleWithBH),
		})
	}
	return writeCSV(w, teamsHeader, records)
}

// WriteContractWeeks writes the contracted-hours weekly view.
func WriteContractWeeks(w io.Writer, rows []payroll.ContractWeekRow) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.FullName, string(r.Email), r.WeekStart.String(),
			amountStr(r.TotalHours), amountStr(r.ContractedHours), amountStr(r.OvertimeHours),
			strconv.FormatBool(r.HasOvertime),
		})
	}
	return writeCSV(w, contractWeekHeader, records)
}

// WriteContractTotals writes the contracted-hours period totals.
func WriteContractTotals(w io.Writer, rows []payroll.ContractTotalRow) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.FullName, string(r.Email),
			amountStr(r.TotalHours), amountStr(r.TotalContracted), amountStr(r.TotalOvertime),
		})
	}
	return writeCSV(w, contractTotalsHeader, records)
}

// WriteTable writes one of the six classifier tables by name and returns
// its download filename. Table names match the API's ?table= values.
func WriteTable(w io.Writer, table string, report *payroll.TeamReport) (string, error) {
	switch table {
	case "summary":
		return SummaryFilename, WriteSummary(w, report.Tables.Summary)
	case "granular":
		return GranularFilename, WriteGranular(w, report.Tables.Granular)
	case "pivot":
		return PivotFilename, WritePivot(w, report.Tables.Pivot)
	case "weekly":
		return WeeklyFilename, WriteWeekly(w, report.Tables.Weekly)
	case "monthly":
		return MonthlyFilename, WriteMonthly(w, report.Tables.Monthly)
	case "teams":
		return TeamsFilename, WriteTeams(w, report.Tables.Teams)
	default:
		return "", fmt.Errorf("unknown table %q", table)
	}
}

func writeCSV(w io.Writer, header []string, records [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

func amountStr(a shifts.Amount) string {
	return a.Value.String()
}
