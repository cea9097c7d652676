/*
samples.go - Canned demo timesheets for testing and demonstrations

PURPOSE:

	Provides small, realistic timesheet extracts that exercise specific
	classification behavior without uploading a real export. Each sample
	carries its rows plus the config it was designed for, so the UI can
	POST them straight back to /api/reports.

AVAILABLE SAMPLES:

	fraud-week:      Six-day week plus Mashujaa Day, shows OT and BH
	core-ops-roster: 12-hour shift team, sixth day flagged as overtime
	christmas-cover: Christmas and Boxing Day inside an overtime week

HOW SAMPLES DIFFER FROM REAL RUNS:

	Samples never touch the database. They are fixed in-memory rows; the
	report they produce still respects stored holidays, team profiles, and
	contract overrides at run time.

USAGE VIA API:

	GET /api/samples            -> list with row counts
	GET /api/samples/fraud-week -> rows + suggested config

SEE ALSO:
  - handlers.go: ListSamples, GetSample handlers
  - dto.go: SampleDTO, ShiftRowDTO
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/warp/overtime-engine/factory"
)

// =============================================================================
// SAMPLE DEFINITIONS
// =============================================================================

type sampleTimesheet struct {
	ID          string
	Name        string
	Description string
	Config      factory.ReportConfigJSON
	Rows        []ShiftRowDTO
}

var samples = []sampleTimesheet{
	{
		ID:          "fraud-week",
		Name:        "Fraud week with a sixth day",
		Description: "One analyst works six days then Mashujaa Day; a London teammate works the same holiday without the flag",
		Config: factory.ReportConfigJSON{
			Team: "Fraud Operations",
		},
		Rows: []ShiftRowDTO{
			{ShiftDate: "2025-10-13", FirstName: "Kelvin", LastName: "Odhiambo", Email: "kelvin@example.com", TotalScheduled: "9.0", Subtype: "regular", SurferTimezone: "Africa/Nairobi"},
			{ShiftDate: "2025-10-14", FirstName: "Kelvin", LastName: "Odhiambo", Email: "kelvin@example.com", TotalScheduled: "9.0", Subtype: "regular", SurferTimezone: "Africa/Nairobi"},
			{ShiftDate: "2025-10-15", FirstName: "Kelvin", LastName: "Odhiambo", Email: "kelvin@example.com", TotalScheduled: "9.0", Subtype: "regular", SurferTimezone: "Africa/Nairobi"},
			{ShiftDate: "2025-10-16", FirstName: "Kelvin", LastName: "Odhiambo", Email: "kelvin@example.com", TotalScheduled: "9.0", Subtype: "regular", SurferTimezone: "Africa/Nairobi"},
			{ShiftDate: "2025-10-17", FirstName: "Kelvin", LastName: "Odhiambo", Email: "kelvin@example.com", TotalScheduled: "9.0", Subtype: "regular", SurferTimezone: "Africa/Nairobi"},
			{ShiftDate: "2025-10-18", FirstName: "Kelvin", LastName: "Odhiambo", Email: "kelvin@example.com", TotalScheduled: "9.0", Subtype: "regular", SurferTimezone: "Africa/Nairobi"},
			{ShiftDate: "2025-10-20", FirstName: "Kelvin", LastName: "Odhiambo", Email: "kelvin@example.com", TotalScheduled: "9.0", Subtype: "regular", SurferTimezone: "Africa/Nairobi"},
			{ShiftDate: "2025-10-13", FirstName: "Amina", LastName: "Hassan", Email: "amina@example.com", TotalScheduled: "9.0", Subtype: "regular", SurferTimezone: "Europe/London"},
			{ShiftDate: "2025-10-14", FirstName: "Amina", LastName: "Hassan", Email: "amina@example.com", TotalScheduled: "9.0", Subtype: "regular", SurferTimezone: "Europe/London"},
			{ShiftDate: "2025-10-15", FirstName: "Amina", LastName: "Hassan", Email: "amina@example.com", TotalScheduled: "9.0", Subtype: "regular", SurferTimezone: "Europe/London"},
			{ShiftDate: "2025-10-16", FirstName: "Amina", LastName: "Hassan", Email: "amina@example.com", TotalScheduled: "9.0", Subtype: "regular", SurferTimezone: "Europe/London"},
			{ShiftDate: "2025-10-17", FirstName: "Amina", LastName: "Hassan", Email: "amina@example.com", TotalScheduled: "9.0", Subtype: "regular", SurferTimezone: "Europe/London"},
			{ShiftDate: "2025-10-20", FirstName: "Amina", LastName: "Hassan", Email: "amina@example.com", TotalScheduled: "9.0", Subtype: "regular", SurferTimezone: "Europe/London"},
		},
	},
	{
		ID:          "core-ops-roster",
		Name:        "Core Ops 12-hour roster",
		Description: "Payment operations on 12-hour shifts; the sixth roster day adds twelve overtime hours",
		Config: factory.ReportConfigJSON{
			Team: "Core Ops / Payment Ops",
		},
		Rows: []ShiftRowDTO{
			{ShiftDate: "2025-11-03", FirstName: "Brian", LastName: "Mwangi", Email: "brian@example.com", TotalScheduled: "12.0", Subtype: "regular", SurferTimezone: "Africa/Nairobi"},
			{ShiftDate: "2025-11-04", FirstName: "Brian", LastName: "Mwangi", Email: "brian@example.com", TotalScheduled: "12.0", Subtype: "regular", SurferTimezone: "Africa/Nairobi"},
			{ShiftDate: "2025-11-05", FirstName: "Brian", LastName: "Mwangi", Email: "brian@example.com", TotalScheduled: "12.0", Subtype: "regular", SurferTimezone: "Africa/Nairobi"},
			{ShiftDate: "2025-11-06", FirstName: "Brian", LastName: "Mwangi", Email: "brian@example.com", TotalScheduled: "12.0", Subtype: "regular", SurferTimezone: "Africa/Nairobi"},
			{ShiftDate: "2025-11-07", FirstName: "Brian", LastName: "Mwangi", Email: "brian@example.com", TotalScheduled: "12.0", Subtype: "regular", SurferTimezone: "Africa/Nairobi"},
			{ShiftDate: "2025-11-08", FirstName: "Brian", LastName: "Mwangi", Email: "brian@example.com", TotalScheduled: "12.0", Subtype: "regular", SurferTimezone: "Africa/Nairobi"},
			{ShiftDate: "2025-11-03", FirstName: "Grace", LastName: "Njeri", Email: "grace@example.com", TotalScheduled: "12.0", Subtype: "regular", SurferTimezone: "Africa/Nairobi"},
			{ShiftDate: "2025-11-05", FirstName: "Grace", LastName: "Njeri", Email: "grace@example.com", TotalScheduled: "12.0", Subtype: "regular", SurferTimezone: "Africa/Nairobi"},
			{ShiftDate: "2025-11-07", FirstName: "Grace", LastName: "Njeri", Email: "grace@example.com", TotalScheduled: "12.0", Subtype: "regular", SurferTimezone: "Africa/Nairobi"},
		},
	},
	{
		ID:          "christmas-cover",
		Name:        "Christmas cover week",
		Description: "Six-day week across Christmas and Boxing Day; the holidays outrank the overtime flag",
		Config: factory.ReportConfigJSON{
			Team: "Customer Support",
		},
		Rows: []ShiftRowDTO{
			{ShiftDate: "2025-12-22", FirstName: "Wanjiku", LastName: "Kamau", Email: "wanjiku@example.com", TotalScheduled: "9.0", Subtype: "regular", SurferTimezone: "Africa/Nairobi"},
			{ShiftDate: "2025-12-23", FirstName: "Wanjiku", LastName: "Kamau", Email: "wanjiku@example.com", TotalScheduled: "9.0", Subtype: "regular", SurferTimezone: "Africa/Nairobi"},
			{ShiftDate: "2025-12-24", FirstName: "Wanjiku", LastName: "Kamau", Email: "wanjiku@example.com", TotalScheduled: "9.0", Subtype: "regular", SurferTimezone: "Africa/Nairobi"},
			{ShiftDate: "2025-12-25", FirstName: "Wanjiku", LastName: "Kamau", Email: "wanjiku@example.com", TotalScheduled: "9.0", Subtype: "holiday", SurferTimezone: "Africa/Nairobi"},
			{ShiftDate: "2025-12-26", FirstName: "Wanjiku", LastName: "Kamau", Email: "wanjiku@example.com", TotalScheduled: "9.0", Subtype: "holiday", SurferTimezone: "Africa/Nairobi"},
			{ShiftDate: "2025-12-27", FirstName: "Wanjiku", LastName: "Kamau", Email: "wanjiku@example.com", TotalScheduled: "9.0", Subtype: "regular", SurferTimezone: "Africa/Nairobi"},
		},
	},
}

// =============================================================================
// SAMPLE HANDLERS
// =============================================================================

// ListSamples returns the available samples with row counts.
// GET /api/samples
func (h *Handler) ListSamples(w http.ResponseWriter, r *http.Request) {
	out := make([]SampleDTO, 0, len(samples))
	for _, s := range samples {
		out = append(out, SampleDTO{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			Rows:        len(s.Rows),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"samples": out})
}

// GetSample returns one sample with its rows and suggested config.
// GET /api/samples/{id}
func (h *Handler) GetSample(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	for _, s := range samples {
		if s.ID != id {
			continue
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"id":          s.ID,
			"name":        s.Name,
			"description": s.Description,
			"config":      s.Config,
			"rows":        s.Rows,
		})
		return
	}

	writeError(w, http.StatusNotFound, "Sample not found", nil)
}
