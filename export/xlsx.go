/*
xlsx.go - Excel workbook export

PURPOSE:
  Bundles the six classifier tables into a single .xlsx workbook, one
  sheet per table, for the people who review in Excel rather than
  importing CSVs. Numbers are written as numbers so the sheets sum and
  filter without retyping.

SHEETS:
  Summary, Granular, Pivot, Weekly, Monthly, Teams

SEE ALSO:
  - export/csv.go: Shared header definitions and the CSV counterparts
*/
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/warp/overtime-engine/payroll"
	"github.com/warp/overtime-engine/shifts"
)

// BuildWorkbook renders a report as one workbook. Returns the workbook
// bytes and a suggested download filename.
func BuildWorkbook(report *payroll.TeamReport) (*bytes.Buffer, string, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create header style: %w", err)
	}

	sheets := []struct {
		name    string
		headers []string
		rows    [][]any
	}{
		{"Summary", summaryHeader, summaryCells(report.Tables.Summary)},
		{"Granular", granularHeader, granularCells(report.Tables.Granular)},
		{"Pivot", pivotHeader, pivotCells(report.Tables.Pivot)},
		{"Weekly", weeklyHeader, weeklyCells(report.Tables.Weekly)},
		{"Monthly", monthlyHeader, monthlyCells(report.Tables.Monthly)},
		{"Teams", teamsHeader, teamsCells(report.Tables.Teams)},
	}

	for _, sheet := range sheets {
		if err := writeSheet(f, sheet.name, sheet.headers, sheet.rows, headerStyle); err != nil {
			return nil, "", err
		}
	}

	f.DeleteSheet("Sheet1")
	if idx, err := f.GetSheetIndex("Summary"); err == nil {
		f.SetActiveSheet(idx)
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}

	return buf, workbookFilename(report.Team), nil
}

func writeSheet(f *excelize.File, name string, headers []string, rows [][]any, headerStyle int) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", name, err)
	}

	for col, header := range headers {
		cellRef, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(name, cellRef, header)
		f.SetCellStyle(name, cellRef, cellRef, headerStyle)
	}

	for r, row := range rows {
		for c, value := range row {
			cellRef, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			f.SetCellValue(name, cellRef, value)
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	f.SetColWidth(name, "A", lastCol, 18)
	return nil
}

func summaryCells(rows []shifts.SummaryRow) [][]any {
	cells := make([][]any, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []any{
			r.Team, r.FullName, string(r.Email),
			r.DaysOT, r.DaysBH, r.HoursOT.Float64(), r.HoursBH.Float64(),
		})
	}
	return cells
}

func granularCells(rows []shifts.GranularRow) [][]any {
	cells := make([][]any, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []any{
			r.Team, r.FullName, string(r.Email),
			r.Date.String(), string(r.DayType), r.ShiftName,
			r.ScheduledHours.Float64(), r.ShiftDays.Float64(),
		})
	}
	return cells
}

func pivotCells(rows []shifts.PivotRow) [][]any {
	cells := make([][]any, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []any{
			r.Team, r.FullName, string(r.Email),
			r.DaysOT.Float64(), r.DaysBH.Float64(),
			r.HoursOT.Float64(), r.HoursBH.Float64(),
		})
	}
	return cells
}

func weeklyCells(rows []shifts.WeeklyRow) [][]any {
	cells := make([][]any, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []any{
			r.Team, r.FullName, string(r.Email), r.WeekStart.String(),
			r.TotalScheduled.Float64(), r.TotalOT.Float64(), r.TotalBH.Float64(),
		})
	}
	return cells
}

func monthlyCells(rows []shifts.MonthlyRow) [][]any {
	cells := make([][]any, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []any{
			r.Team, r.FullName, string(r.Email), r.Month.String(),
			r.TotalScheduled.Float64(), r.TotalOT.Float64(), r.TotalBH.Float64(),
		})
	}
	return cells
}

func teamsCells(rows []shifts.TeamRollupRow) [][]any {
	cells := make([][]any, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []any{
			r.Team,
			r.TotalOTHours.Float64(), r.TotalBHHours.Float64(),
			r.PeopleWithOT, r.PeopleWithBH,
		})
	}
	return cells
}

// workbookFilename slugs the team label into a safe download name. Team
// labels carry spaces and slashes ("Core Ops / Payment Ops") that must not
// reach a filename.
func workbookFilename(team string) string {
	fields := strings.FieldsFunc(strings.ToLower(team), func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	})
	if len(fields) == 0 {
		return "ot_report.xlsx"
	}
	return fmt.Sprintf("ot_report_%s.xlsx", strings.Join(fields, "_"))
}
