package shifts

import (
	"fmt"
	"time"
)

// =============================================================================
// DATE - Calendar day abstraction (shifts are day-keyed, never sub-day)
// =============================================================================

// Date is a calendar day stored as UTC midnight. Every constructor and
// arithmetic method keeps that normalization, so Equal and map keys built
// from String() behave consistently.
type Date struct {
	Time time.Time
}

// Constructors
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// dateFormats lists the layouts timesheet exports are known to use, tried in
// order. Slash dates are month-first.
var dateFormats = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"1/2/2006",
}

// ParseDate parses a timesheet date string. Any time-of-day component is
// dropped. Unrecognized layouts wrap ErrUnparseableDate.
func ParseDate(s string) (Date, error) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	return Date{}, fmt.Errorf("%q: %w", s, ErrUnparseableDate)
}

// Comparison
func (d Date) Before(other Date) bool { return d.Time.Before(other.Time) }
func (d Date) After(other Date) bool  { return d.Time.After(other.Time) }
func (d Date) Equal(other Date) bool  { return d.Time.Equal(other.Time) }

// Arithmetic
func (d Date) AddDays(n int) Date { return DateOf(d.Time.AddDate(0, 0, n)) }

// Properties
func (d Date) Year() int             { return d.Time.Year() }
func (d Date) Month() time.Month     { return d.Time.Month() }
func (d Date) Day() int              { return d.Time.Day() }
func (d Date) Weekday() time.Weekday { return d.Time.Weekday() }
func (d Date) IsZero() bool          { return d.Time.IsZero() }

// DayName is the English weekday name, e.g. "Monday".
func (d Date) DayName() string { return d.Weekday().String() }

// WeekStart returns the Monday on or before d. Weeks run Monday to Sunday.
func (d Date) WeekStart() Date {
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDays(-offset)
}

// MonthStart returns the first day of d's calendar month.
func (d Date) MonthStart() Date { return NewDate(d.Year(), d.Month(), 1) }

func (d Date) String() string { return d.Time.Format("2006-01-02") }

// =============================================================================
// DATE UTILITIES
// =============================================================================

// MinDate and MaxDate fold a pair for period bounds; zero dates lose.
func MinDate(a, b Date) Date {
	if a.IsZero() {
		return b
	}
	if !b.IsZero() && b.Before(a) {
		return b
	}
	return a
}

func MaxDate(a, b Date) Date {
	if a.IsZero() {
		return b
	}
	if !b.IsZero() && b.After(a) {
		return b
	}
	return a
}
