package extract

import (
	"time"

	"hotel_quoter/internal/domain"
)

// DefaultPastWindowDays bounds the "user meant next month" correction: a
// parsed date this many days or more in the past is assumed to be a genuine
// past date and left alone for the caller to reject.
const DefaultPastWindowDays = 60

// NormalizeDates validates and corrects the check_in/check_out fields of an
// extracted record against the reference date. Unparseable dates become
// absent. A date in the recent past (gap under pastWindowDays) is retargeted
// to the same day of the following month. A check_out at or before check_in
// is retargeted to check_in's year/month and, if still not after it, advanced
// one more month. Pure; idempotent for a fixed reference date.
func NormalizeDates(rec domain.Reservation, ref time.Time, pastWindowDays int) domain.Reservation {
	if pastWindowDays <= 0 {
		pastWindowDays = DefaultPastWindowDays
	}
	today := truncateDay(ref)

	if rec.CheckIn != "" {
		ci, err := time.Parse(domain.DateLayout, rec.CheckIn)
		if err != nil {
			rec.CheckIn = ""
		} else if ci.Before(today) && daysBetween(ci, today) < pastWindowDays {
			if next, ok := nextMonthSameDay(ci); ok {
				rec.CheckIn = next.Format(domain.DateLayout)
			} else {
				rec.CheckIn = ""
			}
		}
	}

	if rec.CheckOut == "" {
		return rec
	}
	co, err := time.Parse(domain.DateLayout, rec.CheckOut)
	if err != nil {
		rec.CheckOut = ""
		return rec
	}

	if rec.CheckIn != "" {
		ci, err := time.Parse(domain.DateLayout, rec.CheckIn)
		if err == nil && !co.After(ci) {
			// End date likely given as a bare day-of-month: pull it into
			// check_in's month, then roll forward once if that is not enough.
			adj, ok := withYearMonth(co, ci.Year(), ci.Month())
			if ok && !adj.After(ci) {
				adj, ok = nextMonthSameDay(adj)
			}
			if ok {
				rec.CheckOut = adj.Format(domain.DateLayout)
			} else {
				rec.CheckOut = ""
			}
		}
	} else if co.Before(today) && daysBetween(co, today) < pastWindowDays {
		if next, ok := nextMonthSameDay(co); ok {
			rec.CheckOut = next.Format(domain.DateLayout)
		} else {
			rec.CheckOut = ""
		}
	}
	return rec
}

// Nights returns the stay length implied by the record's dates, or 1 when
// either end is missing or the span is not positive.
func Nights(rec domain.Reservation) int {
	if !rec.HasDates() {
		return 1
	}
	ci, err1 := time.Parse(domain.DateLayout, rec.CheckIn)
	co, err2 := time.Parse(domain.DateLayout, rec.CheckOut)
	if err1 != nil || err2 != nil {
		return 1
	}
	if n := daysBetween(ci, co); n > 0 {
		return n
	}
	return 1
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(a, b time.Time) int {
	return int(truncateDay(b).Sub(truncateDay(a)) / (24 * time.Hour))
}

// nextMonthSameDay advances one month keeping the day-of-month, wrapping
// December into January of the next year. Reports false when the day does
// not exist in the target month (e.g. Jan 31 -> Feb): such a correction is
// meaningless and the field should degrade to absent.
func nextMonthSameDay(t time.Time) (time.Time, bool) {
	y, m, d := t.Date()
	m++
	if m > 12 {
		m = time.January
		y++
	}
	return withDay(y, m, d)
}

func withYearMonth(t time.Time, y int, m time.Month) (time.Time, bool) {
	return withDay(y, m, t.Day())
}

func withDay(y int, m time.Month, d int) (time.Time, bool) {
	nt := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	if nt.Day() != d || nt.Month() != m {
		return time.Time{}, false
	}
	return nt, true
}
