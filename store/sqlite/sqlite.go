/*
Package sqlite provides a SQLite-backed implementation of report reference data.

PURPOSE:
  Persists the reference data a report run needs but a timesheet export
  does not carry: regional holiday calendars, per-team shift-hour
  profiles, and per-person contracted weekly hours. In production, the
  same patterns apply to PostgreSQL - only minor SQL dialect differences.

INTERFACES IMPLEMENTED:
  shifts.HolidayCalendar: Bank-holiday lookups during normalization

KEY TABLES:
  holidays:           Region-keyed holiday dates (Kenya 2025 seed available)
  team_profiles:      Team name to shift-hours mapping
  contract_overrides: Per-email contracted weekly hours

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. In production with PostgreSQL,
  database-level concurrency control handles this instead.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  store, err := sqlite.New("./data/overtime.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  // Use as the pipeline's calendar
  pipeline := shifts.NewPipeline(store)

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - shifts/calendar.go: HolidayCalendar interface and in-memory implementations
  - payroll/holidays.go: The built-in Kenya 2025 set used by SeedKenya2025
  - payroll/contract.go: ContractBook consumed by the contract views
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/overtime-engine/payroll"
	"github.com/warp/overtime-engine/shifts"
)

// Store persists holidays, team profiles, and contract overrides in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Holidays (region-keyed calendar data)
	CREATE TABLE IF NOT EXISTS holidays (
		id TEXT PRIMARY KEY,
		region TEXT NOT NULL,
		date TEXT NOT NULL,
		name TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_holidays_region_date
		ON holidays(region, date);
	CREATE UNIQUE INDEX IF NOT EXISTS idx_holidays_unique
		ON holidays(region, date, name);

	-- Team profiles (shift length per team)
	CREATE TABLE IF NOT EXISTS team_profiles (
		name TEXT PRIMARY KEY,
		shift_hours REAL NOT NULL,
		created_at TEXT NOT NULL
	);

	-- Contract overrides (contracted weekly hours per person)
	CREATE TABLE IF NOT EXISTS contract_overrides (
		email TEXT PRIMARY KEY,
		weekly_hours REAL NOT NULL,
		updated_at TEXT NOT NULL
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// HOLIDAY CALENDAR (shifts.HolidayCalendar interface)
// =============================================================================

// IsHoliday checks if a date is a stored holiday for the given region.
func (s *Store) IsHoliday(region string, date shifts.Date) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM holidays WHERE region = ? AND date = ?",
		region, date.String(),
	).Scan(&count)
	if err != nil {
		return false
	}
	return count > 0
}

// Holidays returns the stored holidays for a region in a given year,
// ordered by date.
func (s *Store) Holidays(region string, year int) []shifts.Holiday {
	holidays, err := s.ListHolidays(context.Background(), region, year)
	if err != nil {
		return nil
	}
	return holidays
}

// ListHolidays returns holidays for a region, optionally filtered to a
// year (0 means all years).
func (s *Store) ListHolidays(ctx context.Context, region string, year int) ([]shifts.Holiday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `
		SELECT id, region, date, name
		FROM holidays
		WHERE region = ?
		ORDER BY date ASC, name ASC
	`
	args := []any{region}

	if year != 0 {
		query = `
			SELECT id, region, date, name
			FROM holidays
			WHERE region = ? AND strftime('%Y', date) = ?
			ORDER BY date ASC, name ASC
		`
		args = append(args, fmt.Sprintf("%04d", year))
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	var holidays []shifts.Holiday
	for rows.Next() {
		var h shifts.Holiday
		var dateStr string
		if err := rows.Scan(&h.ID, &h.Region, &dateStr, &h.Name); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		h.Date, err = shifts.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("stored holiday %s: %w", h.ID, err)
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

// SaveHoliday saves a holiday. Re-saving the same (region, date, name) is
// a no-op, which makes seeding idempotent.
func (s *Store) SaveHoliday(ctx context.Context, h shifts.Holiday) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.saveHoliday(ctx, s.db, h)
}

func (s *Store) saveHoliday(ctx context.Context, db interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}, h shifts.Holiday) error {
	query := `
		INSERT INTO holidays (id, region, date, name, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(region, date, name) DO NOTHING
	`

	_, err := db.ExecContext(ctx, query,
		h.ID,
		h.Region,
		h.Date.String(),
		h.Name,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to save holiday: %w", err)
	}
	return nil
}

// DeleteHoliday deletes a holiday by ID. Returns false if no row matched.
func (s *Store) DeleteHoliday(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM holidays WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// SeedKenya2025 inserts the built-in Kenya 2025 holiday set. Safe to call
// more than once.
func (s *Store) SeedKenya2025(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer sqlTx.Rollback()

	for _, h := range payroll.KenyaHolidays2025() {
		if err := s.saveHoliday(ctx, sqlTx, h); err != nil {
			return err
		}
	}

	return sqlTx.Commit()
}

// =============================================================================
// TEAM PROFILES
// =============================================================================

// SaveTeamProfile saves a team's shift-hours profile.
func (s *Store) SaveTeamProfile(ctx context.Context, p payroll.TeamProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO team_profiles (name, shift_hours, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			shift_hours = excluded.shift_hours
	`

	_, err := s.db.ExecContext(ctx, query,
		p.Name, p.ShiftHours,
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// GetTeamProfile retrieves a team profile by name. Returns nil when the
// team is unknown.
func (s *Store) GetTeamProfile(ctx context.Context, name string) (*payroll.TeamProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var p payroll.TeamProfile
	err := s.db.QueryRowContext(ctx,
		"SELECT name, shift_hours FROM team_profiles WHERE name = ?",
		name,
	).Scan(&p.Name, &p.ShiftHours)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListTeamProfiles returns all team profiles ordered by name.
func (s *Store) ListTeamProfiles(ctx context.Context) ([]payroll.TeamProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT name, shift_hours FROM team_profiles ORDER BY name",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []payroll.TeamProfile
	for rows.Next() {
		var p payroll.TeamProfile
		if err := rows.Scan(&p.Name, &p.ShiftHours); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

// DeleteTeamProfile removes a team profile. Returns false if no row matched.
func (s *Store) DeleteTeamProfile(ctx context.Context, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM team_profiles WHERE name = ?", name)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// SeedTeamProfiles saves a profile set, overwriting shift hours for teams
// already present.
func (s *Store) SeedTeamProfiles(ctx context.Context, profiles []payroll.TeamProfile) error {
	for _, p := range profiles {
		if err := s.SaveTeamProfile(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// CONTRACT OVERRIDES
// =============================================================================

// ContractOverride is a stored per-person contracted-hours row.
type ContractOverride struct {
	Email       shifts.Email
	WeeklyHours float64
	UpdatedAt   time.Time
}

// SaveContractOverride upserts the contracted weekly hours for one person.
func (s *Store) SaveContractOverride(ctx context.Context, email shifts.Email, weeklyHours float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO contract_overrides (email, weekly_hours, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(email) DO UPDATE SET
			weekly_hours = excluded.weekly_hours,
			updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, query,
		string(email), weeklyHours,
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

// ListContractOverrides returns all overrides ordered by email.
func (s *Store) ListContractOverrides(ctx context.Context) ([]ContractOverride, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT email, weekly_hours, updated_at FROM contract_overrides ORDER BY email",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var overrides []ContractOverride
	for rows.Next() {
		var o ContractOverride
		var email, updatedAt string
		if err := rows.Scan(&email, &o.WeeklyHours, &updatedAt); err != nil {
			return nil, err
		}
		o.Email = shifts.Email(email)
		o.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		overrides = append(overrides, o)
	}
	return overrides, rows.Err()
}

// DeleteContractOverride removes an override. Returns false if no row matched.
func (s *Store) DeleteContractOverride(ctx context.Context, email shifts.Email) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, "DELETE FROM contract_overrides WHERE email = ?", string(email))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// ContractBook builds a lookup book from the stored overrides, with the
// standard default for everyone else.
func (s *Store) ContractBook(ctx context.Context) (*payroll.ContractBook, error) {
	overrides, err := s.ListContractOverrides(ctx)
	if err != nil {
		return nil, err
	}

	book := payroll.NewContractBook()
	for _, o := range overrides {
		book.ByEmail[o.Email] = o.WeeklyHours
	}
	return book, nil
}

// =============================================================================
// UTILITIES
// =============================================================================

// Reset clears all data (for testing/demo).
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables := []string{"holidays", "team_profiles", "contract_overrides"}
	for _, table := range tables {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}
	return nil
}
