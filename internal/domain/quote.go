package domain

// Canonical room-type display names. All free-text room descriptions
// normalize into one of these four.
const (
	TypeSingle   = "Habitación Single"
	TypeStandard = "Habitación Estándar"
	TypeSuperior = "Habitación Superior"
	TypeDouble   = "Habitación Doble 2 Camas"
)

// CanonicalTypes lists the four categories a price table must cover.
var CanonicalTypes = []string{TypeSingle, TypeStandard, TypeSuperior, TypeDouble}

// PriceTable maps a canonical room-type name to its nightly price.
type PriceTable map[string]int

// LineItem is one priced room group in a quotation.
type LineItem struct {
	Type     string `json:"tipo"`
	Quantity int    `json:"cantidad"`
	Nightly  int    `json:"precio_noche"`
	Total    int    `json:"total"`
}

// Quotation is the itemized price breakdown for a stay.
type Quotation struct {
	Items []LineItem `json:"habitaciones"`
	Net   int        `json:"total_neto"`
	Tax   int        `json:"iva"`
	Gross int        `json:"total_bruto"`
}

// Discount is the optional long-stay rebate, reported next to a quotation
// but never folded into its gross total.
type Discount struct {
	Percent int `json:"descuento_porcentaje"`
	Amount  int `json:"descuento_monto"`
	Total   int `json:"total_con_descuento"`
}

// HotelInfo is the hotel metadata printed on rendered quotations.
type HotelInfo struct {
	Name  string
	Phone string
	RUT   string
	Email string
}
