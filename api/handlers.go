/*
handlers.go - HTTP API handlers for the overtime report engine

PURPOSE:
  Exposes the shift classification pipeline via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to domain logic.

ENDPOINTS:
  Reports:
    POST   /api/reports                Classify a timesheet, return all tables
    POST   /api/exports/csv?table=     Same input, one table as CSV download
    POST   /api/exports/xlsx           Same input, six-sheet workbook download

  Holidays:
    GET    /api/holidays               List stored holidays (region, year)
    POST   /api/holidays               Store a holiday set
    POST   /api/holidays/defaults      Seed the Kenya 2025 set
    DELETE /api/holidays/{id}          Remove one holiday

  Teams:
    GET    /api/teams                  List shift-hour profiles
    POST   /api/teams                  Create/update a profile
    DELETE /api/teams/{name}           Remove a profile

  Contracts:
    GET    /api/contracts              List contracted-hours overrides
    PUT    /api/contracts/{email}      Set one person's weekly hours
    DELETE /api/contracts/{email}      Remove an override

  Samples:
    GET    /api/samples                List canned demo timesheets
    GET    /api/samples/{id}           One sample with rows and config

  Health:
    GET    /api/health                 Liveness probe

REQUEST FLOW:
  1. Parse HTTP request (JSON body or multipart CSV upload)
  2. Resolve config through the factory (store profiles win over built-ins)
  3. Run the pipeline via payroll.Reporter
  4. Serialize response
  5. Handle errors

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed input, rejected timesheet rows, invalid settings
  - 404: Resource not found
  - 500: Internal errors

SECURITY NOTE:
  Currently NO authentication or authorization. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - samples.go: Canned demo timesheets
  - server.go: Router setup and middleware
*/
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/warp/overtime-engine/dialpad"
	"github.com/warp/overtime-engine/export"
	"github.com/warp/overtime-engine/factory"
	"github.com/warp/overtime-engine/payroll"
	"github.com/warp/overtime-engine/shifts"
	"github.com/warp/overtime-engine/store/sqlite"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store *sqlite.Store

	// Factory with the built-in team profiles, used when the store has
	// no profiles of its own.
	Factory *factory.ReportFactory
}

// NewHandler creates a new handler with the given store.
func NewHandler(store *sqlite.Store) *Handler {
	return &Handler{
		Store:   store,
		Factory: factory.NewReportFactory(nil),
	}
}

// reportFactory resolves team shift hours against stored profiles when any
// exist, otherwise against the built-in set.
func (h *Handler) reportFactory(ctx context.Context) *factory.ReportFactory {
	profiles, err := h.Store.ListTeamProfiles(ctx)
	if err != nil || len(profiles) == 0 {
		return h.Factory
	}
	return factory.NewReportFactory(profiles)
}

// calendarFor picks the holiday calendar for a run: stored rows when the
// region has any, otherwise the built-in Kenya set for Kenya, otherwise an
// empty calendar.
func (h *Handler) calendarFor(ctx context.Context, region string) shifts.HolidayCalendar {
	stored, err := h.Store.ListHolidays(ctx, region, 0)
	if err == nil && len(stored) > 0 {
		return h.Store
	}
	if region == payroll.KenyaRegion {
		return payroll.KenyaCalendar2025()
	}
	return &shifts.DisabledCalendar{}
}

// contractBook layers stored overrides under the request's explicit
// entries. Explicit JSON wins per email; stored rows fill the rest.
func (h *Handler) contractBook(ctx context.Context, book *payroll.ContractBook) *payroll.ContractBook {
	stored, err := h.Store.ListContractOverrides(ctx)
	if err != nil {
		return book
	}
	for _, o := range stored {
		if _, ok := book.ByEmail[o.Email]; !ok {
			book.ByEmail[o.Email] = o.WeeklyHours
		}
	}
	return book
}

// =============================================================================
// REPORT HANDLERS
// =============================================================================

// CreateReport classifies a timesheet and returns every table.
// POST /api/reports
func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	cfg, book, records, err := h.parseReportRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid report request", err)
		return
	}

	report, err := h.runReport(r.Context(), cfg, book, records)
	if err != nil {
		writeReportError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toReportDTO(report))
}

// ExportCSV classifies a timesheet and returns one table as a CSV download.
// POST /api/exports/csv?table=summary|granular|pivot|weekly|monthly|teams
func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	table := r.URL.Query().Get("table")
	if table == "" {
		table = "summary"
	}

	cfg, book, records, err := h.parseReportRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid report request", err)
		return
	}

	report, err := h.runReport(r.Context(), cfg, book, records)
	if err != nil {
		writeReportError(w, err)
		return
	}

	var buf bytes.Buffer
	filename, err := export.WriteTable(&buf, table, report)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Unknown table", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(buf.Bytes())
}

// ExportWorkbook classifies a timesheet and returns the six-sheet workbook.
// POST /api/exports/xlsx
func (h *Handler) ExportWorkbook(w http.ResponseWriter, r *http.Request) {
	cfg, book, records, err := h.parseReportRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid report request", err)
		return
	}

	report, err := h.runReport(r.Context(), cfg, book, records)
	if err != nil {
		writeReportError(w, err)
		return
	}

	buf, filename, err := export.BuildWorkbook(report)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to build workbook", err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(buf.Bytes())
}

// runReport assembles the reporter for one request and runs the pipeline.
func (h *Handler) runReport(ctx context.Context, cfg shifts.Config, book *payroll.ContractBook, records []shifts.RawShiftRecord) (*payroll.TeamReport, error) {
	book = h.contractBook(ctx, book)
	reporter := payroll.NewReporter(h.calendarFor(ctx, cfg.HolidayRegion), book)
	return reporter.BuildTeamReport(records, cfg)
}

// parseReportRequest extracts the run config, contract book, and raw rows
// from either a JSON body or a multipart CSV upload.
func (h *Handler) parseReportRequest(r *http.Request) (shifts.Config, *payroll.ContractBook, []shifts.RawShiftRecord, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return h.parseMultipartRequest(r)
	}
	return h.parseJSONRequest(r)
}

func (h *Handler) parseJSONRequest(r *http.Request) (shifts.Config, *payroll.ContractBook, []shifts.RawShiftRecord, error) {
	var req ReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return shifts.Config{}, nil, nil, fmt.Errorf("invalid request body: %w", err)
	}

	cfg, book, err := h.reportFactory(r.Context()).FromJSON(req.Config)
	if err != nil {
		return shifts.Config{}, nil, nil, err
	}
	return cfg, book, toRawRecords(req.Rows), nil
}

func (h *Handler) parseMultipartRequest(r *http.Request) (shifts.Config, *payroll.ContractBook, []shifts.RawShiftRecord, error) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		return shifts.Config{}, nil, nil, fmt.Errorf("invalid multipart form: %w", err)
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		return shifts.Config{}, nil, nil, fmt.Errorf("missing file field: %w", err)
	}
	defer file.Close()

	records, err := dialpad.ReadTimesheet(file)
	if err != nil {
		return shifts.Config{}, nil, nil, err
	}

	rj, err := configFromForm(r)
	if err != nil {
		return shifts.Config{}, nil, nil, err
	}

	cfg, book, err := h.reportFactory(r.Context()).FromJSON(rj)
	if err != nil {
		return shifts.Config{}, nil, nil, err
	}
	return cfg, book, records, nil
}

// configFromForm reads run settings from multipart fields. A "config" field
// may carry the whole JSON document; individual fields override it so plain
// HTML forms work too.
func configFromForm(r *http.Request) (factory.ReportConfigJSON, error) {
	var rj factory.ReportConfigJSON

	if raw := r.FormValue("config"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &rj); err != nil {
			return rj, fmt.Errorf("invalid config field: %w", err)
		}
	}

	if v := r.FormValue("team"); v != "" {
		rj.Team = v
	}
	if v := r.FormValue("team_shift_hours"); v != "" {
		hours, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return rj, fmt.Errorf("invalid team_shift_hours: %w", err)
		}
		rj.TeamShiftHours = hours
	}
	if v := r.FormValue("contracted_days_per_week"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return rj, fmt.Errorf("invalid contracted_days_per_week: %w", err)
		}
		rj.ContractedDaysPerWeek = &days
	}
	if v := r.FormValue("holiday_rules_enabled"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return rj, fmt.Errorf("invalid holiday_rules_enabled: %w", err)
		}
		rj.HolidayRulesEnabled = &enabled
	}
	if v := r.FormValue("holiday_region"); v != "" {
		rj.HolidayRegion = v
	}
	if v := r.FormValue("region_timezone"); v != "" {
		rj.RegionTimezone = v
	}
	if v := r.FormValue("weekly_hours"); v != "" {
		hours, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return rj, fmt.Errorf("invalid weekly_hours: %w", err)
		}
		if rj.Contract == nil {
			rj.Contract = &factory.ContractJSON{}
		}
		rj.Contract.DefaultWeeklyHours = hours
	}

	return rj, nil
}

// =============================================================================
// HOLIDAY HANDLERS
// =============================================================================

// ListHolidays returns stored holidays for a region.
// GET /api/holidays?region=Kenya&year=2025
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	region := r.URL.Query().Get("region")
	if region == "" {
		region = payroll.KenyaRegion
	}

	year := 0
	if v := r.URL.Query().Get("year"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid year", err)
			return
		}
		year = parsed
	}

	holidays, err := h.Store.ListHolidays(r.Context(), region, year)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list holidays", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"holidays": toHolidayDTOs(holidays)})
}

// CreateHolidays stores a holiday set.
// POST /api/holidays
func (h *Handler) CreateHolidays(w http.ResponseWriter, r *http.Request) {
	var req factory.HolidaySetJSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	holidays, err := h.Factory.HolidaysFromJSON(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid holiday set", err)
		return
	}

	ctx := r.Context()
	for _, holiday := range holidays {
		if err := h.Store.SaveHoliday(ctx, holiday); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to save holiday", err)
			return
		}
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"status": "created",
		"count":  len(holidays),
	})
}

// AddDefaultHolidays seeds the built-in Kenya 2025 set.
// POST /api/holidays/defaults
func (h *Handler) AddDefaultHolidays(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.SeedKenya2025(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to seed holidays", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"status": "created",
		"count":  len(payroll.KenyaHolidays2025()),
	})
}

// DeleteHoliday removes one holiday.
// DELETE /api/holidays/{id}
func (h *Handler) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.Store.DeleteHoliday(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete holiday", err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Holiday not found", nil)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"status": "deleted"})
}

// =============================================================================
// TEAM PROFILE HANDLERS
// =============================================================================

// ListTeams returns the shift-hour profiles: stored ones when any exist,
// otherwise the built-in set.
// GET /api/teams
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.Store.ListTeamProfiles(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list teams", err)
		return
	}
	if len(profiles) == 0 {
		profiles = payroll.DefaultTeamProfiles()
	}

	writeJSON(w, http.StatusOK, map[string]any{"teams": toTeamProfileDTOs(profiles)})
}

// SaveTeam creates or updates a shift-hour profile.
// POST /api/teams
func (h *Handler) SaveTeam(w http.ResponseWriter, r *http.Request) {
	var req TeamProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.ShiftHours <= 0 {
		writeError(w, http.StatusBadRequest, "Team name and positive shift_hours are required", nil)
		return
	}

	profile := payroll.TeamProfile{Name: req.Name, ShiftHours: req.ShiftHours}
	if err := h.Store.SaveTeamProfile(r.Context(), profile); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save team", err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"status": "created", "team": req.Name})
}

// DeleteTeam removes a shift-hour profile.
// DELETE /api/teams/{name}
func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	deleted, err := h.Store.DeleteTeamProfile(r.Context(), name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete team", err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Team not found", nil)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"status": "deleted"})
}

// =============================================================================
// CONTRACT OVERRIDE HANDLERS
// =============================================================================

// ListContracts returns the contracted-hours overrides.
// GET /api/contracts
func (h *Handler) ListContracts(w http.ResponseWriter, r *http.Request) {
	overrides, err := h.Store.ListContractOverrides(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list contracts", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"default_weekly_hours": payroll.DefaultWeeklyContractHours,
		"overrides":            toContractOverrideDTOs(overrides),
	})
}

// PutContract sets one person's contracted weekly hours.
// PUT /api/contracts/{email}
func (h *Handler) PutContract(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(chi.URLParam(r, "email"))
	if email == "" {
		writeError(w, http.StatusBadRequest, "Email is required", nil)
		return
	}

	var req struct {
		WeeklyHours float64 `json:"weekly_hours"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.WeeklyHours <= 0 {
		writeError(w, http.StatusBadRequest, "weekly_hours must be positive", nil)
		return
	}

	if err := h.Store.SaveContractOverride(r.Context(), shifts.Email(email), req.WeeklyHours); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save contract", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"status": "saved", "email": email})
}

// DeleteContract removes a contracted-hours override.
// DELETE /api/contracts/{email}
func (h *Handler) DeleteContract(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	deleted, err := h.Store.DeleteContractOverride(r.Context(), shifts.Email(email))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete contract", err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Contract override not found", nil)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"status": "deleted"})
}

// =============================================================================
// HEALTH
// =============================================================================

// Health reports liveness.
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

// writeReportError maps pipeline failures onto HTTP statuses: bad rows and
// bad settings are the client's problem, everything else is ours.
func writeReportError(w http.ResponseWriter, err error) {
	switch {
	case shifts.IsMalformedInput(err):
		writeError(w, http.StatusBadRequest, "Rejected timesheet", err)
	case errors.Is(err, shifts.ErrInvalidConfig):
		writeError(w, http.StatusBadRequest, "Invalid run settings", err)
	default:
		writeError(w, http.StatusInternalServerError, "Failed to build report", err)
	}
}
