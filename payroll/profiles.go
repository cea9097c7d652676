// Package payroll layers team and region knowledge over the shift engine:
// team shift-hour profiles, the Kenya holiday data set, contracted-hours
// overtime views, and the per-run report payroll actually reads.
package payroll

import (
	"github.com/warp/overtime-engine/shifts"
)

// =============================================================================
// REGION AND CONTRACT DEFAULTS
// =============================================================================

const (
	// KenyaRegion names the built-in holiday set.
	KenyaRegion = "Kenya"

	// NairobiTimezone marks a person as Kenya-based in timesheet exports.
	NairobiTimezone = "Africa/Nairobi"

	// DefaultShiftHours is the standard shift length for teams without a
	// profile, 1h unpaid lunch included.
	DefaultShiftHours = 9.0

	// DefaultWeeklyContractHours is the contracted weekly hours fallback for
	// the hours-threshold overtime views.
	DefaultWeeklyContractHours = 45.0
)

// =============================================================================
// TEAM PROFILES - Standard shift length per team
// =============================================================================

type TeamProfile struct {
	Name       string
	ShiftHours float64
}

// DefaultTeamProfiles returns the known teams. Core Ops / Payment Ops runs
// 12-hour shifts; everyone else runs 9.
func DefaultTeamProfiles() []TeamProfile {
	return []TeamProfile{
		{Name: "Fraud Operations", ShiftHours: 9.0},
		{Name: "Customer Support", ShiftHours: 9.0},
		{Name: "Core Ops / Payment Ops", ShiftHours: 12.0},
		{Name: "Compliance Ops", ShiftHours: 9.0},
		{Name: "Treasury Ops", ShiftHours: 9.0},
	}
}

// ShiftHoursFor looks up a team's standard shift length, falling back to
// DefaultShiftHours for unknown teams.
func ShiftHoursFor(profiles []TeamProfile, team string) float64 {
	for _, p := range profiles {
		if p.Name == team {
			return p.ShiftHours
		}
	}
	return DefaultShiftHours
}

// ConfigForTeam builds the standard run config for a team: its shift-hour
// profile plus the Kenya holiday defaults.
func ConfigForTeam(team string, profiles []TeamProfile) shifts.Config {
	cfg := shifts.DefaultConfig()
	cfg.TeamLabel = team
	cfg.TeamShiftHours = ShiftHoursFor(profiles, team)
	return cfg
}
