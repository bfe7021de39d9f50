package pricing

import (
	"fmt"
	"sort"
	"strings"

	"hotel_quoter/internal/domain"
)

// FallbackNightly prices a room whose canonical type is missing from the
// table; a misconfigured table must not block quoting.
const FallbackNightly = 50000

// taxPercent is the Chilean IVA applied on the net total.
const taxPercent = 19

// NormalizeType maps a raw type token to its canonical display name using
// fixed keyword precedence. Unrecognized text defaults to the standard room.
func NormalizeType(token string) string {
	t := foldAccents(token)
	switch {
	case containsAny(t, []string{"single", "sencilla", "individual"}):
		return domain.TypeSingle
	case containsAny(t, []string{"estandar", "standard"}):
		return domain.TypeStandard
	case containsAny(t, []string{"superior", "premium"}):
		return domain.TypeSuperior
	case containsAny(t, []string{"doble", "matrimonial", "2 camas"}):
		return domain.TypeDouble
	default:
		return domain.TypeStandard
	}
}

// Totals prices a room-spec string for a stay of the given length against
// the given table. Pure and deterministic: parse, normalize, look up (with the
// fixed fallback price for missing entries), then net / tax / gross.
func Totals(spec string, nights int, prices domain.PriceTable) domain.Quotation {
	var q domain.Quotation
	for _, rs := range ParseRoomSpec(spec) {
		name := NormalizeType(rs.Type)
		nightly, ok := prices[name]
		if !ok {
			nightly = FallbackNightly
		}
		total := rs.Quantity * nights * nightly
		q.Items = append(q.Items, domain.LineItem{
			Type:     name,
			Quantity: rs.Quantity,
			Nightly:  nightly,
			Total:    total,
		})
		q.Net += total
	}
	q.Tax = q.Net * taxPercent / 100
	q.Gross = q.Net + q.Tax
	return q
}

// LongStayDiscount returns the rebate earned by stay length: 5% from three
// nights, 10% from five, 15% from seven. Reported for display only.
func LongStayDiscount(net, nights int) domain.Discount {
	pct := 0
	switch {
	case nights >= 7:
		pct = 15
	case nights >= 5:
		pct = 10
	case nights >= 3:
		pct = 5
	}
	amount := net * pct / 100
	return domain.Discount{Percent: pct, Amount: amount, Total: net - amount}
}

// FormatPrice renders an integer amount with a period as thousands
// separator, e.g. 50000 -> "$50.000".
func FormatPrice(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	s := fmt.Sprintf("%d", amount)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	return "$" + sign + strings.Join(parts, ".")
}

// Validate checks that the table covers all four canonical types with
// positive prices. Advisory: quoting still works via FallbackNightly.
func Validate(prices domain.PriceTable) error {
	for _, name := range domain.CanonicalTypes {
		p, ok := prices[name]
		if !ok {
			return fmt.Errorf("price table: missing %s", name)
		}
		if p <= 0 {
			return fmt.Errorf("price table: invalid price %d for %s", p, name)
		}
	}
	return nil
}

// MinNightly returns the cheapest configured nightly price, 0 on an empty table.
func MinNightly(prices domain.PriceTable) int {
	min := 0
	for _, p := range prices {
		if min == 0 || p < min {
			min = p
		}
	}
	return min
}

// MaxNightly returns the most expensive configured nightly price.
func MaxNightly(prices domain.PriceTable) int {
	max := 0
	for _, p := range prices {
		if p > max {
			max = p
		}
	}
	return max
}

// Summary renders the whole price list as display text, one line per type in
// name order, with the cheapest price as the closing "from" line.
func Summary(prices domain.PriceTable) string {
	names := make([]string, 0, len(prices))
	for name := range prices {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("LISTA DE PRECIOS\n\n")
	for _, name := range names {
		fmt.Fprintf(&b, "- %s: %s por noche\n", name, FormatPrice(prices[name]))
	}
	fmt.Fprintf(&b, "\nPrecio desde: %s", FormatPrice(MinNightly(prices)))
	return b.String()
}
