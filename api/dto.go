/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

TYPES:
  Report:
    ReportRequest, ReportDTO, OverviewDTO, PeriodDTO + one DTO per table

  Reference data:
    HolidayDTO, TeamProfileDTO, ContractOverrideDTO

  Samples:
    SampleDTO

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - factory/config.go: ReportConfigJSON type
*/
package api

import (
	"time"

	"github.com/warp/overtime-engine/factory"
	"github.com/warp/overtime-engine/payroll"
	"github.com/warp/overtime-engine/shifts"
	"github.com/warp/overtime-engine/store/sqlite"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// ReportRequest is the JSON body for report and export endpoints.
type ReportRequest struct {
	Config factory.ReportConfigJSON `json:"config"`
	Rows   []ShiftRowDTO            `json:"rows"`
}

// ShiftRowDTO is one raw timesheet row, mirroring the CSV export columns.
type ShiftRowDTO struct {
	ShiftDate      string `json:"shift_date"`
	FirstName      string `json:"first_name,omitempty"`
	LastName       string `json:"last_name,omitempty"`
	Email          string `json:"email"`
	TotalScheduled string `json:"total_scheduled,omitempty"`
	Subtype        string `json:"subtype,omitempty"`
	SurferTimezone string `json:"surfer_timezone,omitempty"`
}

// =============================================================================
// REPORT RESPONSE TYPES
// =============================================================================

// ReportDTO is the full report response.
type ReportDTO struct {
	Team           string             `json:"team"`
	Period         PeriodDTO          `json:"period"`
	Overview       OverviewDTO        `json:"overview"`
	Summary        []SummaryRowDTO    `json:"summary"`
	Granular       []GranularRowDTO   `json:"granular"`
	Pivot          []PivotRowDTO      `json:"pivot"`
	Weekly         []WeeklyRowDTO     `json:"weekly"`
	Monthly        []MonthlyRowDTO    `json:"monthly"`
	Teams          []TeamRowDTO       `json:"teams"`
	ContractWeekly []ContractWeekDTO  `json:"contract_weekly"`
	ContractTotals []ContractTotalDTO `json:"contract_totals"`
}

// PeriodDTO describes the date range covered by the timesheet.
type PeriodDTO struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
	Label string `json:"label"`
}

// OverviewDTO carries the headline numbers.
type OverviewDTO struct {
	People       int     `json:"people"`
	TotalOTHours float64 `json:"total_ot_hours"`
	TotalBHHours float64 `json:"total_bh_hours"`
}

type SummaryRowDTO struct {
	Team     string  `json:"team"`
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	DaysOT   int     `json:"days_ot"`
	DaysBH   int     `json:"days_bh"`
	HoursOT  float64 `json:"hours_ot"`
	HoursBH  float64 `json:"hours_bh"`
}

type GranularRowDTO struct {
	Team           string  `json:"team"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	Date           string  `json:"date"`
	DayType        string  `json:"day_type"`
	ShiftName      string  `json:"shift_name"`
	ScheduledHours float64 `json:"scheduled_hours"`
	ShiftDays      float64 `json:"shift_days"`
}

type PivotRowDTO struct {
	Team     string  `json:"team"`
	FullName string  `json:"full_name"`
	Email    string  `json:"email"`
	DaysOT   float64 `json:"days_ot"`
	DaysBH   float64 `json:"days_bh"`
	HoursOT  float64 `json:"hours_ot"`
	HoursBH  float64 `json:"hours_bh"`
}

type WeeklyRowDTO struct {
	Team           string  `json:"team"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	WeekStart      string  `json:"week_start"`
	TotalScheduled float64 `json:"total_scheduled"`
	TotalOT        float64 `json:"total_ot"`
	TotalBH        float64 `json:"total_bh"`
}

type MonthlyRowDTO struct {
	Team           string  `json:"team"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	Month          string  `json:"month"`
	TotalScheduled float64 `json:"total_scheduled"`
	TotalOT        float64 `json:"total_ot"`
	TotalBH        float64 `json:"total_bh"`
}

type TeamRowDTO struct {
	Team         string  `json:"team"`
	TotalOTHours float64 `json:"total_ot_hours"`
	TotalBHHours float64 `json:"total_bh_hours"`
	PeopleWithOT int     `json:"people_with_ot"`
	PeopleWithBH int     `json:"people_with_bh"`
}

type ContractWeekDTO struct {
	FullName        string  `json:"full_name"`
	Email           string  `json:"email"`
	WeekStart       string  `json:"week_start"`
	TotalHours      float64 `json:"total_hours"`
	ContractedHours float64 `json:"contracted_hours"`
	OvertimeHours   float64 `json:"overtime_hours"`
	HasOvertime     bool    `json:"has_overtime"`
}

type ContractTotalDTO struct {
	FullName        string  `json:"full_name"`
	Email           string  `json:"email"`
	TotalHours      float64 `json:"total_hours"`
	TotalContracted float64 `json:"total_contracted"`
	TotalOvertime   float64 `json:"total_overtime"`
}

// =============================================================================
// REFERENCE DATA TYPES
// =============================================================================

// HolidayDTO represents one calendar entry.
type HolidayDTO struct {
	ID     string `json:"id"`
	Region string `json:"region"`
	Date   string `json:"date"`
	Name   string `json:"name"`
}

// TeamProfileDTO represents a team's shift-hours profile.
type TeamProfileDTO struct {
	Name       string  `json:"name"`
	ShiftHours float64 `json:"shift_hours"`
}

// ContractOverrideDTO represents a stored contracted-hours override.
type ContractOverrideDTO struct {
	Email       string  `json:"email"`
	WeeklyHours float64 `json:"weekly_hours"`
	UpdatedAt   string  `json:"updated_at,omitempty"`
}

// SampleDTO describes a canned demo timesheet.
type SampleDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Rows        int    `json:"rows"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toRawRecords(rows []ShiftRowDTO) []shifts.RawShiftRecord {
	records := make([]shifts.RawShiftRecord, len(rows))
	for i, row := range rows {
		records[i] = shifts.RawShiftRecord(row)
	}
	return records
}

func toReportDTO(report *payroll.TeamReport) ReportDTO {
	return ReportDTO{
		Team:           report.Team,
		Period:         toPeriodDTO(report.Period),
		Overview:       toOverviewDTO(report.Overview),
		Summary:        toSummaryDTOs(report.Tables.Summary),
		Granular:       toGranularDTOs(report.Tables.Granular),
		Pivot:          toPivotDTOs(report.Tables.Pivot),
		Weekly:         toWeeklyDTOs(report.Tables.Weekly),
		Monthly:        toMonthlyDTOs(report.Tables.Monthly),
		Teams:          toTeamDTOs(report.Tables.Teams),
		ContractWeekly: toContractWeekDTOs(report.ContractWeeks),
		ContractTotals: toContractTotalDTOs(report.ContractTotals),
	}
}

func toPeriodDTO(p payroll.Period) PeriodDTO {
	dto := PeriodDTO{Label: p.String()}
	if !p.IsZero() {
		dto.Start = p.Start.String()
		dto.End = p.End.String()
	}
	return dto
}

func toOverviewDTO(o payroll.Overview) OverviewDTO {
	return OverviewDTO{
		People:       o.People,
		TotalOTHours: o.TotalOTHours.Float64(),
		TotalBHHours: o.TotalBHHours.Float64(),
	}
}

func toSummaryDTOs(rows []shifts.SummaryRow) []SummaryRowDTO {
	dtos := make([]SummaryRowDTO, len(rows))
	for i, r := range rows {
		dtos[i] = SummaryRowDTO{
			Team: r.Team, FullName: r.FullName, Email: string(r.Email),
			DaysOT: r.DaysOT, DaysBH: r.DaysBH,
			HoursOT: r.HoursOT.Float64(), HoursBH: r.HoursBH.Float64(),
		}
	}
	return dtos
}

func toGranularDTOs(rows []shifts.GranularRow) []GranularRowDTO {
	dtos := make([]GranularRowDTO, len(rows))
	for i, r := range rows {
		dtos[i] = GranularRowDTO{
			Team: r.Team, FullName: r.FullName, Email: string(r.Email),
			Date: r.Date.String(), DayType: string(r.DayType), ShiftName: r.ShiftName,
			ScheduledHours: r.ScheduledHours.Float64(), ShiftDays: r.ShiftDays.Float64(),
		}
	}
	return dtos
}

func toPivotDTOs(rows []shifts.PivotRow) []PivotRowDTO {
	dtos := make([]PivotRowDTO, len(rows))
	for i, r := range rows {
		dtos[i] = PivotRowDTO{
			Team: r.Team, FullName: r.FullName, Email: string(r.Email),
			DaysOT: r.DaysOT.Float64(), DaysBH: r.DaysBH.Float64(),
			HoursOT: r.HoursOT.Float64(), HoursBH: r.HoursBH.Float64(),
		}
	}
	return dtos
}

func toWeeklyDTOs(rows []shifts.WeeklyRow) []WeeklyRowDTO {
	dtos := make([]WeeklyRowDTO, len(rows))
	for i, r := range rows {
		dtos[i] = WeeklyRowDTO{
			Team: r.Team, FullName: r.FullName, Email: string(r.Email),
			WeekStart:      r.WeekStart.String(),
			TotalScheduled: r.TotalScheduled.Float64(),
			TotalOT:        r.TotalOT.Float64(), TotalBH: r.TotalBH.Float64(),
		}
	}
	return dtos
}

func toMonthlyDTOs(rows []shifts.MonthlyRow) []MonthlyRowDTO {
	dtos := make([]MonthlyRowDTO, len(rows))
	for i, r := range rows {
		dtos[i] = MonthlyRowDTO{
			Team: r.Team, FullName: r.FullName, Email: string(r.Email),
			Month:          r.Month.String(),
			TotalScheduled: r.TotalScheduled.Float64(),
			TotalOT:        r.TotalOT.Float64(), TotalBH: r.TotalBH.Float64(),
		}
	}
	return dtos
}

func toTeamDTOs(rows []shifts.TeamRollupRow) []TeamRowDTO {
	dtos := make([]TeamRowDTO, len(rows))
	for i, r := range rows {
		dtos[i] = TeamRowDTO{
			Team:         r.Team,
			TotalOTHours: r.TotalOTHours.Float64(), TotalBHHours: r.TotalBHHours.Float64(),
			PeopleWithOT: r.PeopleWithOT, PeopleWithBH: r.PeopleWithBH,
		}
	}
	return dtos
}

func toContractWeekDTOs(rows []payroll.ContractWeekRow) []ContractWeekDTO {
	dtos := make([]ContractWeekDTO, len(rows))
	for i, r := range rows {
		dtos[i] = ContractWeekDTO{
			FullName: r.FullName, Email: string(r.Email), WeekStart: r.WeekStart.String(),
			TotalHours:      r.TotalHours.Float64(),
			ContractedHours: r.ContractedHours.Float64(),
			OvertimeHours:   r.OvertimeHours.Float64(),
			HasOvertime:     r.HasOvertime,
		}
	}
	return dtos
}

func toContractTotalDTOs(rows []payroll.ContractTotalRow) []ContractTotalDTO {
	dtos := make([]ContractTotalDTO, len(rows))
	for i, r := range rows {
		dtos[i] = ContractTotalDTO{
			FullName: r.FullName, Email: string(r.Email),
			TotalHours:      r.TotalHours.Float64(),
			TotalContracted: r.TotalContracted.Float64(),
			TotalOvertime:   r.TotalOvertime.Float64(),
		}
	}
	return dtos
}

func toHolidayDTOs(holidays []shifts.Holiday) []HolidayDTO {
	dtos := make([]HolidayDTO, 0, len(holidays))
	for _, h := range holidays {
		dtos = append(dtos, HolidayDTO{
			ID:     h.ID,
			Region: h.Region,
			Date:   h.Date.String(),
			Name:   h.Name,
		})
	}
	return dtos
}

func toTeamProfileDTOs(profiles []payroll.TeamProfile) []TeamProfileDTO {
	dtos := make([]TeamProfileDTO, 0, len(profiles))
	for _, p := range profiles {
		dtos = append(dtos, TeamProfileDTO{Name: p.Name, ShiftHours: p.ShiftHours})
	}
	return dtos
}

func toContractOverrideDTOs(overrides []sqlite.ContractOverride) []ContractOverrideDTO {
	dtos := make([]ContractOverrideDTO, 0, len(overrides))
	for _, o := range overrides {
		dtos = append(dtos, ContractOverrideDTO{
			Email:       string(o.Email),
			WeeklyHours: o.WeeklyHours,
			UpdatedAt:   o.UpdatedAt.Format(time.RFC3339),
		})
	}
	return dtos
}
