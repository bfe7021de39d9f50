package extract

import (
	"strconv"
	"strings"

	"hotel_quoter/internal/domain"
)

// Count limits beyond which an extracted value is treated as noise.
const (
	maxGuests = 50
	maxRooms  = 20
)

var accentFolder = strings.NewReplacer(
	"á", "a",
	"é", "e",
	"í", "i",
	"ó", "o",
	"ú", "u",
)

// foldAccents lowers the string and strips the Spanish vowel accents so
// downstream keyword matching works on a single canonical form.
func foldAccents(s string) string {
	return accentFolder.Replace(strings.ToLower(s))
}

// ValidateFields normalizes an extracted record before it is trusted. Every
// validation failure degrades the single offending field to absent; the
// record as a whole is never rejected. Idempotent.
func ValidateFields(rec domain.Reservation) domain.Reservation {
	rec.CheckIn = cleanNull(rec.CheckIn)
	rec.CheckOut = cleanNull(rec.CheckOut)
	rec.Guests = boundedCount(cleanNull(rec.Guests), maxGuests)
	rec.RoomCount = boundedCount(cleanNull(rec.RoomCount), maxRooms)

	if rt := cleanNull(rec.RoomTypes); rt != "" {
		rec.RoomTypes = foldAccents(rt)
	} else {
		rec.RoomTypes = ""
	}
	return rec
}

func cleanNull(s string) string {
	s = strings.TrimSpace(s)
	if s == "null" {
		return ""
	}
	return s
}

// boundedCount keeps s only if it parses as an integer in (0, max],
// re-rendered in the integer's own string form.
func boundedCount(s string, max int) string {
	if s == "" {
		return ""
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 || n > max {
		return ""
	}
	return strconv.Itoa(n)
}
