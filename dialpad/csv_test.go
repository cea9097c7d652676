package dialpad

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/overtime-engine/shifts"
)

func TestReadTimesheet_ParsesFullExport(t *testing.T) {
	csvData := strings.Join([]string{
		"shift_date,first_name,last_name,email,total_scheduled,subtype,surfer_timezone",
		"2025-10-13,Kelvin,Odhiambo,kelvin@example.com,9,Day Shift,Africa/Nairobi",
		"2025-10-14,Amina,Wanjiru,amina@example.com,8.5,Night Shift,Africa/Nairobi",
	}, "\n")

	records, err := ReadTimesheet(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, shifts.RawShiftRecord{
		ShiftDate:      "2025-10-13",
		FirstName:      "Kelvin",
		LastName:       "Odhiambo",
		Email:          "kelvin@example.com",
		TotalScheduled: "9",
		Subtype:        "Day Shift",
		SurferTimezone: "Africa/Nairobi",
	}, records[0])
	assert.Equal(t, "8.5", records[1].TotalScheduled)
}

func TestReadTimesheet_HeaderMatchingIsForgiving(t *testing.T) {
	csvData := strings.Join([]string{
		"Shift Date,EMAIL,Total-Scheduled,Shift_Subtype",
		"2025-10-13,kelvin@example.com,9,Day Shift",
	}, "\n")

	records, err := ReadTimesheet(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "2025-10-13", records[0].ShiftDate)
	assert.Equal(t, "kelvin@example.com", records[0].Email)
	assert.Equal(t, "9", records[0].TotalScheduled)
	assert.Equal(t, "Day Shift", records[0].Subtype)
}

func TestReadTimesheet_OptionalColumnsDefaultEmpty(t *testing.T) {
	csvData := strings.Join([]string{
		"shift_date,email",
		"2025-10-13,kelvin@example.com",
	}, "\n")

	records, err := ReadTimesheet(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Empty(t, records[0].FirstName)
	assert.Empty(t, records[0].TotalScheduled, "absent hours column reads as empty, normalizer zeroes it")
	assert.Empty(t, records[0].SurferTimezone)
}

func TestReadTimesheet_MissingRequiredColumnFails(t *testing.T) {
	_, err := ReadTimesheet(strings.NewReader("first_name,email\nKelvin,kelvin@example.com"))
	require.Error(t, err)
	assert.ErrorIs(t, err, shifts.ErrMissingColumn)
	assert.Contains(t, err.Error(), "shift_date")

	_, err = ReadTimesheet(strings.NewReader("shift_date\n2025-10-13"))
	require.Error(t, err)
	assert.ErrorIs(t, err, shifts.ErrMissingColumn)
	assert.Contains(t, err.Error(), "email")

	_, err = ReadTimesheet(strings.NewReader(""))
	assert.ErrorIs(t, err, shifts.ErrMissingColumn, "a file with no header has no required columns")
}

func TestReadTimesheet_RaggedRowsTolerated(t *testing.T) {
	csvData := strings.Join([]string{
		"shift_date,first_name,last_name,email,total_scheduled",
		"2025-10-13,Kelvin,Odhiambo,kelvin@example.com,9",
		"2025-10-14,Amina",
	}, "\n")

	records, err := ReadTimesheet(strings.NewReader(csvData))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Amina", records[1].FirstName)
	assert.Empty(t, records[1].Email, "short rows read as blanks for the normalizer to judge")
}

func TestReadTimesheet_HeaderOnlyYieldsNoRecords(t *testing.T) {
	records, err := ReadTimesheet(strings.NewReader("shift_date,email\n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}
