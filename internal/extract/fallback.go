package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"hotel_quoter/internal/domain"
)

var (
	// "somos N" outranks "para N": in "somos 4 para 2 habitaciones" the
	// "para" count refers to rooms, not guests.
	guestPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*persona`),
		regexp.MustCompile(`somos\s+(\d+)`),
		regexp.MustCompile(`para\s+(\d+)`),
	}
	roomPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(\d+)\s*habitaci`),
		regexp.MustCompile(`(\d+)\s*cuarto`),
		regexp.MustCompile(`(\d+)\s*pieza`),
	}
	rangePattern = regexp.MustCompile(`del\s+(\d+)\s+al\s+(\d+)`)
)

// typeKeywords pairs each canonical type token with the message keywords
// that signal it. All matching families are reported, not just the first.
var typeKeywords = []struct {
	token    string
	keywords []string
}{
	{"single", []string{"single", "sencilla"}},
	{"estandar", []string{"estandar", "standard"}},
	{"superior", []string{"superior"}},
	{"doble", []string{"doble"}},
}

// Fallback reconstructs a reservation record from raw text using only
// pattern matching. It is the network-free path taken whenever the remote
// extraction cannot complete, and it never fails.
func Fallback(message string, ref time.Time) domain.Reservation {
	// foldAccents keeps ñ; fold it here so "mañana" reaches its keyword.
	msg := strings.ReplaceAll(foldAccents(message), "ñ", "n")
	today := truncateDay(ref)

	var rec domain.Reservation

	for _, p := range guestPatterns {
		if m := p.FindStringSubmatch(msg); m != nil {
			rec.Guests = m[1]
			break
		}
	}
	for _, p := range roomPatterns {
		if m := p.FindStringSubmatch(msg); m != nil {
			rec.RoomCount = m[1]
			break
		}
	}
	// A guest count with no room count implies a single room.
	if rec.Guests != "" && rec.RoomCount == "" {
		rec.RoomCount = "1"
	}

	var types []string
	for _, tk := range typeKeywords {
		for _, kw := range tk.keywords {
			if strings.Contains(msg, kw) {
				types = append(types, tk.token)
				break
			}
		}
	}
	if len(types) > 0 {
		rec.RoomTypes = strings.Join(types, ", ")
	}

	// Relative day keywords. "pasado manana" must be tested before "manana"
	// since the latter is a substring of the former.
	switch {
	case strings.Contains(msg, "pasado manana"):
		rec.CheckIn = today.AddDate(0, 0, 2).Format(domain.DateLayout)
		rec.CheckOut = today.AddDate(0, 0, 3).Format(domain.DateLayout)
	case strings.Contains(msg, "manana"):
		rec.CheckIn = today.AddDate(0, 0, 1).Format(domain.DateLayout)
		rec.CheckOut = today.AddDate(0, 0, 2).Format(domain.DateLayout)
	case strings.Contains(msg, "hoy"):
		rec.CheckIn = today.Format(domain.DateLayout)
		rec.CheckOut = today.AddDate(0, 0, 1).Format(domain.DateLayout)
	}

	// An explicit "del D1 al D2" range overrides any keyword-derived dates.
	// Conversion failures here leave the dates as previously set.
	if m := rangePattern.FindStringSubmatch(msg); m != nil {
		startDay, _ := strconv.Atoi(m[1])
		endDay, _ := strconv.Atoi(m[2])

		year, month := today.Year(), today.Month()
		if startDay < today.Day() {
			// That day already passed this month; the user means next month.
			month++
			if month > 12 {
				month = time.January
				year++
			}
		}
		ci, okIn := withDay(year, month, startDay)
		co, okOut := withDay(year, month, endDay)
		if okIn && okOut {
			rec.CheckIn = ci.Format(domain.DateLayout)
			rec.CheckOut = co.Format(domain.DateLayout)
		}
	}

	return rec
}
