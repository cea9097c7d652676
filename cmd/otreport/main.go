/*
main.go - Batch overtime report CLI

PURPOSE:
  Runs one Dialpad WFM timesheet export through the classifier and writes
  every report table as CSV, without the HTTP server. This is the tool for
  the monthly payroll run: point it at the export, collect the files.

FILES WRITTEN (into -out):
  ot_summary_by_person.csv     Per-person OT/BH day counts and hours
  ot_granular_days.csv         Every flagged day with its label
  ot_pivot_from_granular.csv   Pivot rebuilt from the granular rows
  ot_weekly_summary.csv        Per person per week totals
  ot_monthly_summary.csv       Per person per month totals
  ot_teams_with_overtime.csv   Team roll-up, only teams with OT or BH
  ot_contract_weekly.csv       Hours-threshold view per person-week
  ot_contract_totals.csv       Hours-threshold roll-up per person
  ot_report_<team>.xlsx        Six-sheet workbook (with -xlsx)

COMMAND-LINE FLAGS:
  -input            Timesheet CSV to classify (required)
  -out              Output directory (default: current directory)
  -team             Team label, picks the shift-hour profile (default: Fraud Operations)
  -shift-hours      Override the team's standard shift length
  -contracted-days  Contracted working days per week (default: 5)
  -weekly-hours     Contracted weekly hours for the threshold views (default: 45)
  -bh               Apply bank holiday rules (default: true)
  -region           Holiday region (default: Kenya)
  -tz               Timezone that marks a person as region-based (default: Africa/Nairobi)
  -db               Optional SQLite database; stored holidays, team profiles,
                    and contract overrides then apply to the run
  -xlsx             Also write the six-sheet workbook

EXAMPLES:
  # Plain run with the built-in Kenya 2025 holiday set
  ./otreport -input=TestTimeSheet.csv -out=./reports

  # Core Ops run against the server's database
  ./otreport -input=export.csv -team="Core Ops / Payment Ops" -db=overtime.db -xlsx

SEE ALSO:
  - export/csv.go: Table writers and filenames
  - payroll/report.go: The report this tool serializes
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/warp/overtime-engine/dialpad"
	"github.com/warp/overtime-engine/export"
	"github.com/warp/overtime-engine/factory"
	"github.com/warp/overtime-engine/payroll"
	"github.com/warp/overtime-engine/shifts"
	"github.com/warp/overtime-engine/store/sqlite"
)

func main() {
	// Flags
	input := flag.String("input", "", "timesheet CSV to classify (required)")
	outDir := flag.String("out", ".", "output directory")
	team := flag.String("team", "Fraud Operations", "team label, picks the shift-hour profile")
	shiftHours := flag.Float64("shift-hours", 0, "override the team's standard shift length")
	contractedDays := flag.Int("contracted-days", 5, "contracted working days per week")
	weeklyHours := flag.Float64("weekly-hours", payroll.DefaultWeeklyContractHours, "contracted weekly hours for the threshold views")
	bhEnabled := flag.Bool("bh", true, "apply bank holiday rules")
	region := flag.String("region", payroll.KenyaRegion, "holiday region")
	tz := flag.String("tz", payroll.NairobiTimezone, "timezone that marks a person as region-based")
	dbPath := flag.String("db", "", "optional SQLite database with stored holidays, profiles, and contracts")
	writeXLSX := flag.Bool("xlsx", false, "also write the six-sheet workbook")
	flag.Parse()

	if *input == "" {
		flag.Usage()
		log.Fatal("missing -input")
	}

	fmt.Println("Loading shifts...")
	records, err := loadShifts(*input)
	if err != nil {
		log.Fatalf("Failed to load shifts: %v", err)
	}
	if len(records) == 0 {
		fmt.Println("⚠️ No shift rows found in the CSV.")
		return
	}

	ctx := context.Background()

	// An optional database supplies stored holidays, team profiles, and
	// contract overrides, same as the server.
	var store *sqlite.Store
	if *dbPath != "" {
		store, err = sqlite.New(*dbPath)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer store.Close()
	}

	cfg, book, err := buildConfig(ctx, store, configFlags{
		team:           *team,
		shiftHours:     *shiftHours,
		contractedDays: *contractedDays,
		weeklyHours:    *weeklyHours,
		bhEnabled:      *bhEnabled,
		region:         *region,
		tz:             *tz,
	})
	if err != nil {
		log.Fatalf("Invalid run settings: %v", err)
	}

	reporter := payroll.NewReporter(calendarFor(ctx, store, cfg.HolidayRegion), book)

	fmt.Println("Building report tables...")
	report, err := reporter.BuildTeamReport(records, cfg)
	if err != nil {
		log.Fatalf("Failed to build report: %v", err)
	}

	written, err := writeTables(*outDir, report, *writeXLSX)
	if err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}

	fmt.Println("\n✅ Done.")
	fmt.Printf("Report tables saved to:  %s\n", *outDir)
	for _, name := range written {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println()

	printOverview(os.Stdout, report)
}

// loadShifts reads the timesheet export.
func loadShifts(path string) ([]shifts.RawShiftRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dialpad.ReadTimesheet(f)
}

type configFlags struct {
	team           string
	shiftHours     float64
	contractedDays int
	weeklyHours    float64
	bhEnabled      bool
	region         string
	tz             string
}

// buildConfig resolves flags through the factory, with stored team profiles
// winning over the built-in set when a database is attached.
func buildConfig(ctx context.Context, store *sqlite.Store, fl configFlags) (shifts.Config, *payroll.ContractBook, error) {
	profiles := payroll.DefaultTeamProfiles()
	if store != nil {
		stored, err := store.ListTeamProfiles(ctx)
		if err == nil && len(stored) > 0 {
			profiles = stored
		}
	}

	f := factory.NewReportFactory(profiles)
	cfg, book, err := f.FromJSON(factory.ReportConfigJSON{
		Team:                  fl.team,
		TeamShiftHours:        fl.shiftHours,
		ContractedDaysPerWeek: &fl.contractedDays,
		HolidayRulesEnabled:   &fl.bhEnabled,
		HolidayRegion:         fl.region,
		RegionTimezone:        fl.tz,
		Contract:              &factory.ContractJSON{DefaultWeeklyHours: fl.weeklyHours},
	})
	if err != nil {
		return shifts.Config{}, nil, err
	}

	if store != nil {
		overrides, err := store.ListContractOverrides(ctx)
		if err == nil {
			for _, o := range overrides {
				book.ByEmail[o.Email] = o.WeeklyHours
			}
		}
	}
	return cfg, book, nil
}

// calendarFor mirrors the server: stored rows when the region has any,
// otherwise the built-in Kenya set, otherwise nothing.
func calendarFor(ctx context.Context, store *sqlite.Store, region string) shifts.HolidayCalendar {
	if store != nil {
		stored, err := store.ListHolidays(ctx, region, 0)
		if err == nil && len(stored) > 0 {
			return store
		}
	}
	if region == payroll.KenyaRegion {
		return payroll.KenyaCalendar2025()
	}
	return &shifts.DisabledCalendar{}
}

// writeTables writes every report file and returns the filenames written.
func writeTables(outDir string, report *payroll.TeamReport, writeXLSX bool) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}

	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{export.SummaryFilename, func(w io.Writer) error { return export.WriteSummary(w, report.Tables.Summary) }},
		{export.GranularFilename, func(w io.Writer) error { return export.WriteGranular(w, report.Tables.Granular) }},
		{export.PivotFilename, func(w io.Writer) error { return export.WritePivot(w, report.Tables.Pivot) }},
		{export.WeeklyFilename, func(w io.Writer) error { return export.WriteWeekly(w, report.Tables.Weekly) }},
		{export.MonthlyFilename, func(w io.Writer) error { return export.WriteMonthly(w, report.Tables.Monthly) }},
		{export.TeamsFilename, func(w io.Writer) error { return export.WriteTeams(w, report.Tables.Teams) }},
		{export.ContractWeeklyFilename, func(w io.Writer) error { return export.WriteContractWeeks(w, report.ContractWeeks) }},
		{export.ContractTotalsFilename, func(w io.Writer) error { return export.WriteContractTotals(w, report.ContractTotals) }},
	}

	written := make([]string, 0, len(files)+1)
	for _, file := range files {
		if err := writeFile(filepath.Join(outDir, file.name), file.write); err != nil {
			return nil, fmt.Errorf("%s: %w", file.name, err)
		}
		written = append(written, file.name)
	}

	if writeXLSX {
		buf, name, err := export.BuildWorkbook(report)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(filepath.Join(outDir, name), buf.Bytes(), 0o644); err != nil {
			return nil, err
		}
		written = append(written, name)
	}
	return written, nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// printOverview mirrors the old helper script: total contract overtime for
// the period, then the people behind it.
func printOverview(w io.Writer, report *payroll.TeamReport) {
	totalOT := shifts.Hours(0)
	for _, row := range report.ContractTotals {
		totalOT = totalOT.Add(row.TotalOvertime)
	}

	label := report.Period.String()
	if !totalOT.IsPositive() {
		fmt.Fprintf(w, "ℹ️ No %s overtime detected for the selected period %s.\n", report.Team, label)
		return
	}

	fmt.Fprintf(w, "🔍 Total overtime for %s %s: %.2f hours\n\n", report.Team, label, totalOT.Float64())
	fmt.Fprintln(w, "People with overtime:")

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "full_name\temail\ttotal_overtime")
	for _, row := range report.ContractTotals {
		if !row.TotalOvertime.IsPositive() {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%.2f\n", row.FullName, row.Email, row.TotalOvertime.Float64())
	}
	tw.Flush()
}
