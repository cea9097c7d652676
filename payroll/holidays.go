package payroll

import (
	"fmt"
	"time"

	"github.com/warp/overtime-engine/shifts"
)

// KenyaHolidays2025 is the gazetted Kenya public holiday set for 2025.
// The Idd dates follow the lunar calendar and are the gazetted
// approximations. Other years and regions are deployment data, loaded via
// the store or a holiday-set file; nothing in the engine assumes this list.
func KenyaHolidays2025() []shifts.Holiday {
	entries := []struct {
		month time.Month
		day   int
		name  string
	}{
		{time.January, 1, "New Year's Day"},
		{time.March, 31, "Idd-ul-Fitr"},
		{time.April, 18, "Good Friday"},
		{time.April, 21, "Easter Monday"},
		{time.May, 1, "Labour Day"},
		{time.June, 1, "Madaraka Day"},
		{time.June, 7, "Idd-ul-Azha"},
		{time.October, 10, "Huduma / Mazingira Day"},
		{time.October, 20, "Mashujaa Day"},
		{time.December, 12, "Jamhuri Day"},
		{time.December, 25, "Christmas Day"},
		{time.December, 26, "Boxing Day"},
	}

	holidays := make([]shifts.Holiday, 0, len(entries))
	for _, e := range entries {
		d := shifts.NewDate(2025, e.month, e.day)
		holidays = append(holidays, shifts.Holiday{
			ID:     fmt.Sprintf("ke-%s", d),
			Region: KenyaRegion,
			Date:   d,
			Name:   e.name,
		})
	}
	return holidays
}

// KenyaCalendar2025 is a ready-to-use calendar over KenyaHolidays2025 for
// single-run tools and tests.
func KenyaCalendar2025() *shifts.StaticCalendar {
	return shifts.NewStaticCalendar(KenyaHolidays2025())
}
