package pricing

import (
	"regexp"
	"strconv"
	"strings"
)

// RoomSpec is one parsed (type token, quantity) pair from a free-text room
// description such as "2 estandar, 1 superior".
type RoomSpec struct {
	Type     string
	Quantity int
}

var (
	segmentSplit = regexp.MustCompile(`[,;]|\s+y\s+|\s+e\s+`)
	digitQty     = regexp.MustCompile(`^(\d+)\s*(single|estandar|standard|superior|doble|sencilla|individual|matrimonial)`)
	wordQty      = regexp.MustCompile(`^(un|una|dos|tres|cuatro|cinco|seis|siete|ocho|nueve|diez)\s*(single|estandar|standard|superior|doble|sencilla|individual|matrimonial)`)
)

var wordNumbers = map[string]int{
	"un": 1, "una": 1,
	"dos":    2,
	"tres":   3,
	"cuatro": 4,
	"cinco":  5,
	"seis":   6,
	"siete":  7,
	"ocho":   8,
	"nueve":  9,
	"diez":   10,
}

// bareKeywords classifies a segment with no explicit quantity. Evaluated in
// fixed priority order: single family first, then estandar, superior, doble.
// A segment naming two families classifies as the first match.
var bareKeywords = []struct {
	token    string
	keywords []string
}{
	{"single", []string{"single", "sencilla", "individual"}},
	{"estandar", []string{"estandar", "standard"}},
	{"superior", []string{"superior", "premium"}},
	{"doble", []string{"doble", "matrimonial"}},
}

// ParseRoomSpec tokenizes a room description into ordered (type, quantity)
// pairs. Segments are split on commas, semicolons and the standalone
// connectors "y"/"e". Segments matching no keyword are dropped. An empty
// parse yields the default single standard room.
func ParseRoomSpec(spec string) []RoomSpec {
	var out []RoomSpec

	for _, part := range segmentSplit.Split(foldAccents(spec), -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if m := digitQty.FindStringSubmatch(part); m != nil {
			qty, _ := strconv.Atoi(m[1])
			out = append(out, RoomSpec{Type: m[2], Quantity: qty})
			continue
		}
		if m := wordQty.FindStringSubmatch(part); m != nil {
			qty := wordNumbers[m[1]]
			if qty == 0 {
				qty = 1
			}
			out = append(out, RoomSpec{Type: m[2], Quantity: qty})
			continue
		}

		for _, bk := range bareKeywords {
			if containsAny(part, bk.keywords) {
				out = append(out, RoomSpec{Type: bk.token, Quantity: 1})
				break
			}
		}
	}

	if len(out) == 0 {
		out = append(out, RoomSpec{Type: "estandar", Quantity: 1})
	}
	return out
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

var accentFolder = strings.NewReplacer(
	"á", "a",
	"é", "e",
	"í", "i",
	"ó", "o",
	"ú", "u",
)

func foldAccents(s string) string {
	return accentFolder.Replace(strings.ToLower(strings.TrimSpace(s)))
}
