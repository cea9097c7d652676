/*
Package dialpad reads the Dialpad WFM shift export.

PURPOSE:
  Converts the raw CSV export into shifts.RawShiftRecord values. The
  export is wide and inconsistently cased across WFM versions, so the
  reader matches headers case-insensitively and ignores punctuation.

EXPECTED COLUMNS:
  shift_date        required
  email             required
  first_name        optional, defaults empty
  last_name         optional, defaults empty
  total_scheduled   optional, defaults zero hours
  subtype           optional, the shift name
  surfer_timezone   optional, drives bank-holiday eligibility

  A missing required column fails with shifts.ErrMissingColumn. Missing
  VALUES in present columns are the normalizer's problem, not the
  reader's.

USAGE:
  file, _ := os.Open("shifts.csv")
  defer file.Close()
  records, err := dialpad.ReadTimesheet(file)

SEE ALSO:
  - shifts/normalize.go: Validates and enriches the records read here
*/
package dialpad

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/warp/overtime-engine/shifts"
)

// ReadTimesheet reads a Dialpad WFM CSV export into raw shift records.
func ReadTimesheet(r io.Reader) ([]shifts.RawShiftRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("timesheet has no header row: %w", shifts.ErrMissingColumn)
		}
		return nil, fmt.Errorf("failed to read timesheet header: %w", err)
	}

	colMap := normalizeHeaders(headers)
	dateIdx, ok := findColumn(colMap, []string{"shift_date", "date"})
	if !ok {
		return nil, fmt.Errorf("shift_date: %w", shifts.ErrMissingColumn)
	}
	emailIdx, ok := findColumn(colMap, []string{"email"})
	if !ok {
		return nil, fmt.Errorf("email: %w", shifts.ErrMissingColumn)
	}
	firstNameIdx, _ := findColumn(colMap, []string{"first_name"})
	lastNameIdx, _ := findColumn(colMap, []string{"last_name"})
	scheduledIdx, _ := findColumn(colMap, []string{"total_scheduled", "total_scheduled_hours"})
	subtypeIdx, _ := findColumn(colMap, []string{"subtype", "shift_subtype"})
	timezoneIdx, _ := findColumn(colMap, []string{"surfer_timezone", "timezone"})

	var records []shifts.RawShiftRecord
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read timesheet row: %w", err)
		}
		if len(record) == 0 {
			continue
		}

		records = append(records, shifts.RawShiftRecord{
			ShiftDate:      getValue(record, dateIdx),
			FirstName:      getValue(record, firstNameIdx),
			LastName:       getValue(record, lastNameIdx),
			Email:          getValue(record, emailIdx),
			TotalScheduled: getValue(record, scheduledIdx),
			Subtype:        getValue(record, subtypeIdx),
			SurferTimezone: getValue(record, timezoneIdx),
		})
	}

	return records, nil
}

// normalizeHeaders maps normalized header names to their column index.
// The first occurrence wins when an export repeats a header.
func normalizeHeaders(headers []string) map[string]int {
	result := make(map[string]int, len(headers))
	for idx, header := range headers {
		normalized := normalizeHeader(header)
		if _, exists := result[normalized]; !exists {
			result[normalized] = idx
		}
	}
	return result
}

func normalizeHeader(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	value = strings.ReplaceAll(value, " ", "")
	value = strings.ReplaceAll(value, "_", "")
	value = strings.ReplaceAll(value, "-", "")
	return value
}

func findColumn(headers map[string]int, names []string) (int, bool) {
	for _, name := range names {
		if idx, ok := headers[normalizeHeader(name)]; ok {
			return idx, true
		}
	}
	return -1, false
}

func getValue(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
