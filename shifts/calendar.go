package shifts

import (
	"fmt"
	"sort"
)

// =============================================================================
// HOLIDAY CALENDAR - Region-keyed bank holiday lookup
// =============================================================================

// Holiday is one gazetted bank holiday in a region.
type Holiday struct {
	ID     string
	Region string // e.g. "Kenya"
	Date   Date
	Name   string // e.g. "Jamhuri Day"
}

// HolidayCalendar provides bank holiday lookup. Holiday sets are data,
// supplied per deployment; adding a year or a region is data entry, not a
// code change. The engine never hardcodes a holiday date.
type HolidayCalendar interface {
	// IsHoliday reports whether date is a bank holiday in region.
	// Unknown regions are never holidays.
	IsHoliday(region string, date Date) bool

	// Holidays returns the known holidays for a region in a given year,
	// sorted by date.
	Holidays(region string, year int) []Holiday
}

// DisabledCalendar is a no-op calendar for when holiday rules are off or no
// holiday data is available.
type DisabledCalendar struct{}

func (d *DisabledCalendar) IsHoliday(region string, date Date) bool    { return false }
func (d *DisabledCalendar) Holidays(region string, year int) []Holiday { return nil }

// =============================================================================
// STATIC CALENDAR - In-memory calendar built from a holiday data set
// =============================================================================

// StaticCalendar serves holiday lookups from an in-memory set. It backs
// single-run tools and tests; servers use a store-backed implementation.
type StaticCalendar struct {
	items []Holiday
	index map[string]map[string]bool // region -> date string -> present
	seen  map[string]bool            // region|date|name for dedupe
}

func NewStaticCalendar(holidays []Holiday) *StaticCalendar {
	c := &StaticCalendar{
		index: make(map[string]map[string]bool),
		seen:  make(map[string]bool),
	}
	for _, h := range holidays {
		c.Add(h)
	}
	return c
}

// Add registers one holiday. Duplicate (region, date, name) entries collapse.
func (c *StaticCalendar) Add(h Holiday) {
	key := fmt.Sprintf("%s|%s|%s", h.Region, h.Date, h.Name)
	if c.seen[key] {
		return
	}
	c.seen[key] = true

	dates, ok := c.index[h.Region]
	if !ok {
		dates = make(map[string]bool)
		c.index[h.Region] = dates
	}
	dates[h.Date.String()] = true
	c.items = append(c.items, h)
}

func (c *StaticCalendar) IsHoliday(region string, date Date) bool {
	dates, ok := c.index[region]
	if !ok {
		return false
	}
	return dates[date.String()]
}

func (c *StaticCalendar) Holidays(region string, year int) []Holiday {
	out := make([]Holiday, 0)
	for _, h := range c.items {
		if h.Region == region && h.Date.Year() == year {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Name < out[j].Name
	})
	return out
}
