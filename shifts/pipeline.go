/*
pipeline.go - One entry point over the whole engine

PURPOSE:
  Runs the full classification and aggregation in a fixed order:

    normalize -> flag overtime days -> derive columns -> build all tables

  Everything downstream of the raw records is deterministic: the same
  records and config always produce the same Result, row for row.

USAGE:
  pipe := shifts.NewPipeline(calendar)
  result, err := pipe.Run(records, cfg)
  if err != nil {
      // config error or rejected record; nothing was classified
  }

SEE ALSO:
  - normalize.go, classify.go, derive.go, aggregate.go, periods.go
*/
package shifts

// Result holds the classified shift table and every view built from it.
// All slices are non-nil; an empty run yields empty tables, not nulls.
type Result struct {
	Shifts   []EnrichedShift
	Granular []GranularRow
	Summary  []SummaryRow
	Pivot    []PivotRow
	Weekly   []WeeklyRow
	Monthly  []MonthlyRow
	Teams    []TeamRollupRow
}

// Pipeline wires the stages around an injected holiday calendar.
type Pipeline struct {
	normalizer *Normalizer
}

// NewPipeline builds a pipeline. A nil calendar disables holiday lookups.
func NewPipeline(calendar HolidayCalendar) *Pipeline {
	return &Pipeline{normalizer: NewNormalizer(calendar)}
}

// Run classifies the records under cfg and builds all six tables. A config
// error or a rejected record aborts before any table is built.
func (p *Pipeline) Run(records []RawShiftRecord, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	shifts, err := p.normalizer.Normalize(records, cfg)
	if err != nil {
		return nil, err
	}

	shifts = FlagOvertimeDays(shifts, cfg.ContractedDaysPerWeek)
	shifts, err = AddDurationAndFlags(shifts, cfg.TeamShiftHours)
	if err != nil {
		return nil, err
	}

	granular := BuildGranular(shifts, cfg.TeamLabel)
	summary := BuildSummary(shifts, cfg.TeamLabel)

	return &Result{
		Shifts:   shifts,
		Granular: granular,
		Summary:  summary,
		Pivot:    BuildPivotFromGranular(granular),
		Weekly:   SummarizeWeekly(shifts, cfg.TeamLabel),
		Monthly:  SummarizeMonthly(shifts, cfg.TeamLabel),
		Teams:    BuildTeamRollup(summary),
	}, nil
}
