/*
Package factory provides JSON to Go report-configuration conversion.

PURPOSE:
  Converts JSON run settings into shifts.Config and payroll.ContractBook
  values, and JSON holiday sets into shifts.Holiday data. This enables
  configuration without code changes - People/HR can adjust a team's
  shift length, contracted hours, or a year's holiday set in JSON, and
  the factory creates the proper Go values.

WHY JSON?
  - Non-developers can adjust run settings
  - Easy integration with an admin UI
  - Version control for team settings and holiday sets
  - Database storage of per-team configs

REPORT CONFIG SCHEMA:
  {
    "team": "Fraud Operations",
    "team_shift_hours": 9,
    "contracted_days_per_week": 5,
    "holiday_rules_enabled": true,
    "holiday_region": "Kenya",
    "region_timezone": "Africa/Nairobi",
    "contract": {
      "default_weekly_hours": 45,
      "by_email": {"kelvin@example.com": 40}
    }
  }

HOLIDAY SET SCHEMA:
  {
    "region": "Kenya",
    "holidays": [
      {"date": "2025-10-20", "name": "Mashujaa Day"},
      {"date": "2025-12-25", "name": "Christmas Day"}
    ]
  }

KEY FEATURES:
  - Validates JSON structure and dates
  - Sets sensible defaults (team profile shift hours, Kenya region)
  - Distinguishes "false"/"0" from "absent" via pointer fields

USAGE:
  factory := factory.NewReportFactory(payroll.DefaultTeamProfiles())
  cfg, book, err := factory.ParseReportConfig(jsonString)
  holidays, err := factory.ParseHolidaySet(jsonString)

SEE ALSO:
  - shifts/types.go: Config definition and validation
  - payroll/contract.go: ContractBook lookup semantics
*/
package factory

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/warp/overtime-engine/payroll"
	"github.com/warp/overtime-engine/shifts"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// ReportConfigJSON is the JSON representation of one run's settings.
// Pointer fields distinguish an explicit false/zero from an absent field.
type ReportConfigJSON struct {
	Team                  string        `json:"team"`
	TeamShiftHours        float64       `json:"team_shift_hours,omitempty"`
	ContractedDaysPerWeek *int          `json:"contracted_days_per_week,omitempty"`
	HolidayRulesEnabled   *bool         `json:"holiday_rules_enabled,omitempty"`
	HolidayRegion         string        `json:"holiday_region,omitempty"`
	RegionTimezone        string        `json:"region_timezone,omitempty"`
	Contract              *ContractJSON `json:"contract,omitempty"`
}

// ContractJSON carries the contracted-hours lookup table.
type ContractJSON struct {
	DefaultWeeklyHours float64            `json:"default_weekly_hours,omitempty"`
	ByEmail            map[string]float64 `json:"by_email,omitempty"`
}

// HolidaySetJSON is the JSON representation of one region's holiday data.
type HolidaySetJSON struct {
	Region   string        `json:"region"`
	Holidays []HolidayJSON `json:"holidays"`
}

type HolidayJSON struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// =============================================================================
// REPORT FACTORY
// =============================================================================

// ReportFactory converts JSON settings to Go values, resolving team shift
// hours against a profile set when the JSON leaves them out.
type ReportFactory struct {
	profiles []payroll.TeamProfile
}

// NewReportFactory creates a factory. Nil profiles fall back to the default
// team set.
func NewReportFactory(profiles []payroll.TeamProfile) *ReportFactory {
	if profiles == nil {
		profiles = payroll.DefaultTeamProfiles()
	}
	return &ReportFactory{profiles: profiles}
}

// ParseReportConfig parses a JSON string into a run config and a contract
// book.
func (f *ReportFactory) ParseReportConfig(jsonStr string) (shifts.Config, *payroll.ContractBook, error) {
	var rj ReportConfigJSON
	if err := json.Unmarshal([]byte(jsonStr), &rj); err != nil {
		return shifts.Config{}, nil, fmt.Errorf("failed to parse report config JSON: %w", err)
	}
	return f.FromJSON(rj)
}

// FromJSON converts ReportConfigJSON to shifts.Config and a ContractBook,
// applying defaults for absent fields.
func (f *ReportFactory) FromJSON(rj ReportConfigJSON) (shifts.Config, *payroll.ContractBook, error) {
	cfg := shifts.DefaultConfig()
	cfg.TeamLabel = rj.Team

	if rj.TeamShiftHours != 0 {
		cfg.TeamShiftHours = rj.TeamShiftHours
	} else {
		cfg.TeamShiftHours = payroll.ShiftHoursFor(f.profiles, rj.Team)
	}
	if rj.ContractedDaysPerWeek != nil {
		cfg.ContractedDaysPerWeek = *rj.ContractedDaysPerWeek
	}
	if rj.HolidayRulesEnabled != nil {
		cfg.HolidayRulesEnabled = *rj.HolidayRulesEnabled
	}
	if rj.HolidayRegion != "" {
		cfg.HolidayRegion = rj.HolidayRegion
	}
	if rj.RegionTimezone != "" {
		cfg.RegionTimezone = rj.RegionTimezone
	}

	if err := cfg.Validate(); err != nil {
		return shifts.Config{}, nil, err
	}

	book := payroll.NewContractBook()
	if rj.Contract != nil {
		if rj.Contract.DefaultWeeklyHours != 0 {
			book.DefaultWeeklyHours = rj.Contract.DefaultWeeklyHours
		}
		for email, hours := range rj.Contract.ByEmail {
			book.ByEmail[shifts.Email(email)] = hours
		}
	}

	return cfg, book, nil
}

// ToJSON converts a run config and contract book back to the JSON shape,
// for echoing effective settings to an admin UI.
func (f *ReportFactory) ToJSON(cfg shifts.Config, book *payroll.ContractBook) ReportConfigJSON {
	contracted := cfg.ContractedDaysPerWeek
	enabled := cfg.HolidayRulesEnabled

	rj := ReportConfigJSON{
		Team:                  cfg.TeamLabel,
		TeamShiftHours:        cfg.TeamShiftHours,
		ContractedDaysPerWeek: &contracted,
		HolidayRulesEnabled:   &enabled,
		HolidayRegion:         cfg.HolidayRegion,
		RegionTimezone:        cfg.RegionTimezone,
	}

	if book != nil {
		cj := &ContractJSON{
			DefaultWeeklyHours: book.DefaultWeeklyHours,
			ByEmail:            make(map[string]float64, len(book.ByEmail)),
		}
		for email, hours := range book.ByEmail {
			cj.ByEmail[string(email)] = hours
		}
		rj.Contract = cj
	}
	return rj
}

// =============================================================================
// HOLIDAY SETS
// =============================================================================

// ParseHolidaySet parses a JSON holiday set into calendar data. Every date
// must parse; the region must be named.
func (f *ReportFactory) ParseHolidaySet(jsonStr string) ([]shifts.Holiday, error) {
	var hj HolidaySetJSON
	if err := json.Unmarshal([]byte(jsonStr), &hj); err != nil {
		return nil, fmt.Errorf("failed to parse holiday set JSON: %w", err)
	}
	return f.HolidaysFromJSON(hj)
}

// HolidaysFromJSON converts HolidaySetJSON to shifts.Holiday values.
func (f *ReportFactory) HolidaysFromJSON(hj HolidaySetJSON) ([]shifts.Holiday, error) {
	region := strings.TrimSpace(hj.Region)
	if region == "" {
		return nil, fmt.Errorf("holiday set requires a region")
	}

	holidays := make([]shifts.Holiday, 0, len(hj.Holidays))
	for i, entry := range hj.Holidays {
		date, err := shifts.ParseDate(entry.Date)
		if err != nil {
			return nil, fmt.Errorf("holiday %d: %w", i+1, err)
		}
		holidays = append(holidays, shifts.Holiday{
			ID:     fmt.Sprintf("%s-%s", strings.ToLower(region), date),
			Region: region,
			Date:   date,
			Name:   strings.TrimSpace(entry.Name),
		})
	}
	return holidays, nil
}
