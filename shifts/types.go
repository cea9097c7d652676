/*
Package shifts provides the core shift classification and aggregation engine.

PURPOSE:
  This package turns a raw per-shift timesheet export into per-person
  overtime and bank-holiday classifications plus aggregated reporting
  tables. It is a pure computation layer: normalized records in, derived
  tables out. It performs no I/O and holds no state between runs.

KEY CONCEPTS IN THIS FILE (types.go):
  - Amount: A quantity with a unit (e.g., 9 hours, 0.5 days)
  - RawShiftRecord: One untyped row from a timesheet export
  - EnrichedShift: A fully classified shift row
  - Config: Per-run classification settings (shift length, contracted days)

DESIGN PRINCIPLES:
  1. Determinism: Identical input and config produce identical output,
     including row ordering.
  2. Precision: Uses decimal.Decimal for hour/day arithmetic to avoid
     floating-point drift in payroll-facing totals.
  3. Type Safety: Emails and dates are typed; raw records stay string-typed
     until the normalizer validates them.
  4. Leniency where safe: malformed hours degrade to zero; malformed dates
     and missing identities abort the run.

USAGE:
  pipe := shifts.NewPipeline(calendar)
  result, err := pipe.Run(records, shifts.DefaultConfig())

SEE ALSO:
  - normalize.go: RawShiftRecord -> EnrichedShift validation and enrichment
  - classify.go: Overtime day flagging per person-week
  - derive.go: Per-row duration and hour-bucket columns
  - aggregate.go: Granular, summary, pivot, and team roll-up tables
  - periods.go: Weekly and monthly totals
*/
package shifts

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// AMOUNT - Quantity with unit (hours worked, fraction of a standard day)
// =============================================================================

type Amount struct {
	Value decimal.Decimal
	Unit  Unit
}

type Unit string

const (
	UnitHours Unit = "hours"
	UnitDays  Unit = "days"
)

func NewAmount(value float64, unit Unit) Amount {
	return Amount{Value: decimal.NewFromFloat(value), Unit: unit}
}

// Hours and Days are shorthands for the two units this engine uses.
func Hours(value float64) Amount { return NewAmount(value, UnitHours) }
func Days(value float64) Amount  { return NewAmount(value, UnitDays) }

func (a Amount) Zero() Amount              { return Amount{Value: decimal.Zero, Unit: a.Unit} }
func (a Amount) Add(b Amount) Amount       { return Amount{Value: a.Value.Add(b.Value), Unit: a.Unit} }
func (a Amount) Sub(b Amount) Amount       { return Amount{Value: a.Value.Sub(b.Value), Unit: a.Unit} }
func (a Amount) IsNegative() bool          { return a.Value.IsNegative() }
func (a Amount) IsZero() bool              { return a.Value.IsZero() }
func (a Amount) IsPositive() bool          { return a.Value.IsPositive() }
func (a Amount) GreaterThan(b Amount) bool { return a.Value.GreaterThan(b.Value) }
func (a Amount) LessThan(b Amount) bool    { return a.Value.LessThan(b.Value) }

// Float64 converts for display and serialization boundaries only; all
// internal arithmetic stays decimal.
func (a Amount) Float64() float64 { return a.Value.InexactFloat64() }

// =============================================================================
// IDENTIFIERS
// =============================================================================

// Email is the identity key for a person across every table. Two rows with
// the same email are the same person even if the display name differs.
type Email string

// =============================================================================
// RAW SHIFT RECORD - One untyped row from a timesheet export
// =============================================================================

// RawShiftRecord carries the source columns as strings, exactly as exported.
// The normalizer owns all parsing and validation; nothing upstream should
// interpret these fields.
type RawShiftRecord struct {
	ShiftDate      string // e.g. "2025-10-20"
	FirstName      string
	LastName       string
	Email          string
	TotalScheduled string // scheduled hours, e.g. "9.0"
	Subtype        string // shift label, e.g. "Night Shift"
	SurferTimezone string // IANA zone of the person, e.g. "Africa/Nairobi"
}

// =============================================================================
// ENRICHED SHIFT - A fully classified shift row
// =============================================================================

type EnrichedShift struct {
	Email     Email
	FirstName string
	LastName  string
	FullName  string

	ShiftDate Date
	DayName   string // English weekday name of ShiftDate, e.g. "Monday"
	WeekStart Date   // Monday on or before ShiftDate

	ScheduledHours Amount // UnitHours; lenient zero when unparseable
	PaidHours      Amount // scheduled minus the unpaid break on full shifts
	ShiftName      string

	IsRegionEligible bool // timezone matches the configured holiday region
	IsBankHoliday    bool
	IsOTDay          bool

	ShiftDays Amount // UnitDays; scheduled / team shift hours
	OTHours   Amount // scheduled hours when IsOTDay, else zero
	BHHours   Amount // scheduled hours when IsBankHoliday, else zero
}

// =============================================================================
// DAY TYPE - Display classification with fixed precedence
// =============================================================================

type DayType string

const (
	DayTypeBankHoliday DayType = "Bank holiday"
	DayTypeOvertime    DayType = "Overtime"
	DayTypeStandard    DayType = "Standard"
)

// DayTypeFor resolves the display label for a shift. A shift can be both an
// overtime day and a bank holiday; the label shows Bank holiday in that case
// while the hour buckets (OTHours, BHHours) keep both classifications.
func DayTypeFor(s EnrichedShift) DayType {
	switch {
	case s.IsBankHoliday:
		return DayTypeBankHoliday
	case s.IsOTDay:
		return DayTypeOvertime
	default:
		return DayTypeStandard
	}
}

// =============================================================================
// CONFIG - Per-run classification settings
// =============================================================================

type Config struct {
	// TeamShiftHours is the team's standard shift length. It is the paid-hours
	// break threshold and the divisor for ShiftDays. Must be positive.
	TeamShiftHours float64

	// ContractedDaysPerWeek is how many distinct worked dates per week are
	// standard before subsequent dates become overtime.
	ContractedDaysPerWeek int

	// HolidayRulesEnabled turns bank-holiday detection on or off for the run.
	HolidayRulesEnabled bool

	// HolidayRegion names the holiday set to consult, e.g. "Kenya".
	HolidayRegion string

	// RegionTimezone marks a person as region-eligible when their timesheet
	// timezone matches it exactly.
	RegionTimezone string

	// TeamLabel is stamped on every aggregated row.
	TeamLabel string
}

func DefaultConfig() Config {
	return Config{
		TeamShiftHours:        9.0,
		ContractedDaysPerWeek: 5,
		HolidayRulesEnabled:   true,
		HolidayRegion:         "Kenya",
		RegionTimezone:        "Africa/Nairobi",
		TeamLabel:             "",
	}
}

// Validate rejects settings the pipeline cannot run with.
func (c Config) Validate() error {
	if c.TeamShiftHours <= 0 {
		return &ConfigError{Field: "team_shift_hours", Value: c.TeamShiftHours,
			Reason: "must be positive"}
	}
	return nil
}
