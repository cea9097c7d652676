/*
errors.go - Centralized error types for the shift engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Callers should wrap these errors with additional context.

ERROR CATEGORIES:
  1. Malformed input - Source rows the engine refuses to classify
  2. Configuration errors - Settings the pipeline cannot run with

LENIENCY RULE:
  Bad identity or time data (email, shift date) aborts the run; an
  unclassifiable shift silently misfiled would corrupt payroll. Bad
  quantity data (scheduled hours) degrades to zero instead, since a
  missing duration only understates totals and stays visible.

USAGE:
  Callers branch with errors.Is / errors.As:

    if shifts.IsMalformedInput(err) {
        // reject the upload, report row and field
    }

SEE ALSO:
  - normalize.go: Produces RecordError for every rejected row
  - types.go: Config.Validate produces ConfigError
*/
package shifts

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrMissingEmail is returned when a record has no email. Email is the
	// person identity key; a row without one cannot be attributed.
	ErrMissingEmail = errors.New("missing email")

	// ErrMissingShiftDate is returned when a record has no shift date.
	ErrMissingShiftDate = errors.New("missing shift date")

	// ErrUnparseableDate is returned when a shift date does not match any
	// known timesheet date layout.
	ErrUnparseableDate = errors.New("unparseable date")

	// ErrMissingColumn is returned by readers when a required source column
	// is absent from the export header.
	ErrMissingColumn = errors.New("missing required column")

	// ErrInvalidConfig is returned when run settings fail validation.
	ErrInvalidConfig = errors.New("invalid config")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// RecordError reports which record and field the engine rejected. Row is the
// 1-based position of the record in its source.
type RecordError struct {
	Row   int
	Field string
	Value string
	Err   error
}

func (e *RecordError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("record %d: field %q: %v", e.Row, e.Field, e.Err)
	}
	return fmt.Sprintf("record %d: field %q value %q: %v", e.Row, e.Field, e.Value, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// ConfigError reports which setting failed validation.
type ConfigError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s=%v: %s", e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsMalformedInput returns true when the error means the source data is bad
// and the run should be rejected rather than retried.
func IsMalformedInput(err error) bool {
	return errors.Is(err, ErrMissingEmail) ||
		errors.Is(err, ErrMissingShiftDate) ||
		errors.Is(err, ErrUnparseableDate) ||
		errors.Is(err, ErrMissingColumn)
}
