/*
report.go - The per-run team report

PURPOSE:
  One call that a surface (HTTP handler, CLI) makes per uploaded
  timesheet. Wraps the shift pipeline and attaches everything around it:
  the period label, the headline overview, and the contracted-hours
  views.

SEE ALSO:
  - contract.go: The hours-threshold overtime views
  - profiles.go: Team shift-hour resolution
*/
package payroll

import (
	"github.com/warp/overtime-engine/shifts"
)

// =============================================================================
// OVERVIEW - Headline numbers shown above the tables
// =============================================================================

type Overview struct {
	People       int // people in the file (summary rows)
	TotalOTHours shifts.Amount
	TotalBHHours shifts.Amount
}

// BuildOverview totals the summary table.
func BuildOverview(summary []shifts.SummaryRow) Overview {
	o := Overview{
		TotalOTHours: shifts.Hours(0),
		TotalBHHours: shifts.Hours(0),
	}
	o.People = len(summary)
	for _, row := range summary {
		o.TotalOTHours = o.TotalOTHours.Add(row.HoursOT)
		o.TotalBHHours = o.TotalBHHours.Add(row.HoursBH)
	}
	return o
}

// =============================================================================
// TEAM REPORT - Everything one run produces
// =============================================================================

type TeamReport struct {
	Team     string
	Period   Period
	Overview Overview

	// Tables holds the six classifier views (granular, summary, pivot,
	// weekly, monthly, teams) plus the classified shift rows.
	Tables *shifts.Result

	// The contracted-hours views, independent of the day-count classifier.
	ContractWeeks  []ContractWeekRow
	ContractTotals []ContractTotalRow
}

// Reporter runs timesheets into team reports. The calendar and contract
// book are injected; the reporter itself is stateless across runs.
type Reporter struct {
	pipeline  *shifts.Pipeline
	contracts *ContractBook
}

// NewReporter builds a reporter. A nil calendar disables holiday lookups; a
// nil contract book means everyone is on the default weekly hours.
func NewReporter(calendar shifts.HolidayCalendar, contracts *ContractBook) *Reporter {
	if contracts == nil {
		contracts = NewContractBook()
	}
	return &Reporter{
		pipeline:  shifts.NewPipeline(calendar),
		contracts: contracts,
	}
}

// BuildTeamReport classifies one timesheet under cfg and assembles the full
// report. Errors come straight from the pipeline: bad config or a rejected
// record.
func (r *Reporter) BuildTeamReport(records []shifts.RawShiftRecord, cfg shifts.Config) (*TeamReport, error) {
	result, err := r.pipeline.Run(records, cfg)
	if err != nil {
		return nil, err
	}

	weeks := SummarizeContractWeeks(result.Shifts, r.contracts)

	return &TeamReport{
		Team:           cfg.TeamLabel,
		Period:         PeriodFor(result.Shifts),
		Overview:       BuildOverview(result.Summary),
		Tables:         result,
		ContractWeeks:  weeks,
		ContractTotals: RollupContractTotals(weeks),
	}, nil
}
