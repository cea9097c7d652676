/*
normalize.go - RawShiftRecord validation and enrichment

PURPOSE:
  First pipeline stage. Turns untyped export rows into typed shifts with
  identity, calendar, paid-hour, and bank-holiday columns filled in.
  Classification columns (IsOTDay and the derived hour buckets) are left
  zero for the later stages.

RULES:
  - Missing email or shift date is fatal for the whole run.
  - A shift date that matches no known layout is fatal.
  - Scheduled hours that are absent, blank, non-numeric, or negative
    normalize to 0.0 silently.
  - Paid hours deduct the 1-hour unpaid break only on shifts at least as
    long as the team's standard shift.
  - A person is region-eligible when their timesheet timezone equals the
    configured region timezone exactly.
  - A shift is a bank holiday when holiday rules are on, the person is
    region-eligible, and the calendar knows the date for the region.

SEE ALSO:
  - classify.go: Next stage, flags overtime days
  - errors.go: RecordError carries the row, field, and value rejected
*/
package shifts

import (
	"strconv"
	"strings"
)

// Normalizer validates and enriches raw records. The calendar is injected so
// holiday data stays outside the engine.
type Normalizer struct {
	Calendar HolidayCalendar
}

// NewNormalizer builds a normalizer. A nil calendar disables holiday lookups.
func NewNormalizer(calendar HolidayCalendar) *Normalizer {
	if calendar == nil {
		calendar = &DisabledCalendar{}
	}
	return &Normalizer{Calendar: calendar}
}

// Normalize maps every record to an EnrichedShift, preserving input order.
// The first rejected record aborts with a RecordError; the engine never
// classifies a partial run.
func (n *Normalizer) Normalize(records []RawShiftRecord, cfg Config) ([]EnrichedShift, error) {
	oneHour := Hours(1)
	threshold := Hours(cfg.TeamShiftHours)

	shifts := make([]EnrichedShift, 0, len(records))
	for i, r := range records {
		row := i + 1

		email := strings.TrimSpace(r.Email)
		if email == "" {
			return nil, &RecordError{Row: row, Field: "email", Err: ErrMissingEmail}
		}

		rawDate := strings.TrimSpace(r.ShiftDate)
		if rawDate == "" {
			return nil, &RecordError{Row: row, Field: "shift_date", Err: ErrMissingShiftDate}
		}
		date, err := ParseDate(rawDate)
		if err != nil {
			return nil, &RecordError{Row: row, Field: "shift_date", Value: rawDate, Err: ErrUnparseableDate}
		}

		first := strings.TrimSpace(r.FirstName)
		last := strings.TrimSpace(r.LastName)
		full := strings.TrimSpace(first + " " + last)

		scheduled := Hours(parseHours(r.TotalScheduled))
		paid := scheduled
		if !scheduled.LessThan(threshold) {
			paid = scheduled.Sub(oneHour)
		}

		eligible := r.SurferTimezone == cfg.RegionTimezone
		holiday := cfg.HolidayRulesEnabled && eligible &&
			n.Calendar.IsHoliday(cfg.HolidayRegion, date)

		shifts = append(shifts, EnrichedShift{
			Email:            Email(email),
			FirstName:        first,
			LastName:         last,
			FullName:         full,
			ShiftDate:        date,
			DayName:          date.DayName(),
			WeekStart:        date.WeekStart(),
			ScheduledHours:   scheduled,
			PaidHours:        paid,
			ShiftName:        r.Subtype,
			IsRegionEligible: eligible,
			IsBankHoliday:    holiday,
		})
	}
	return shifts, nil
}

// parseHours is deliberately lenient: hour values that are blank, garbage,
// or negative become zero so one bad duration cannot block a payroll run.
func parseHours(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0.0
	}
	h, err := strconv.ParseFloat(s, 64)
	if err != nil || h < 0 {
		return 0.0
	}
	return h
}
