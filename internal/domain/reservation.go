package domain

// DateLayout is the only calendar format the pipeline understands.
const DateLayout = "2006-01-02"

// Reservation is the structured record extracted from one customer message.
// Every field is optional: the empty string means "not mentioned", never a
// guessed default. The JSON keys mirror the wire contract of the completion
// service.
type Reservation struct {
	CheckIn   string `json:"check_in,omitempty"`
	CheckOut  string `json:"check_out,omitempty"`
	Guests    string `json:"cant_personas,omitempty"`
	RoomCount string `json:"cantidad_habitaciones,omitempty"`
	RoomTypes string `json:"tipo_habitaciones,omitempty"`
}

// HasDates reports whether both ends of the stay are present.
func (r Reservation) HasDates() bool {
	return r.CheckIn != "" && r.CheckOut != ""
}
