package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"hotel_quoter/internal/domain"
	"hotel_quoter/internal/pricing"
)

// Quote renders a quotation document: header, control block (code and
// emission/validity dates), contact block, stay details, itemized charges,
// totals and payment terms. Line-item order and the net/tax/gross figures
// reproduce the aggregator output exactly.
func Quote(hotel domain.HotelInfo, res domain.Reservation, q domain.Quotation, nights int, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetTitle("Cotización", true)
	tr := pdf.UnicodeTranslatorFromDescriptor("") // core fonts are cp1252; fold the accents
	pdf.AddPage()

	// header
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(26, 35, 126)
	pdf.CellFormat(110, 12, tr(hotel.Name), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 12, tr("COTIZACIÓN"), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	// control block: quote code, emission date, validity = emission + 1 day
	code := fmt.Sprintf("%s-%02d", now.Format("020106"), now.Hour())
	control := [][2]string{
		{"COD. COT", code},
		{"FECHA EMISIÓN", now.Format("02.01.06")},
		{"FECHA VALIDEZ", now.AddDate(0, 0, 1).Format("02.01.06")},
	}
	pdf.SetFont("Helvetica", "", 9)
	for _, row := range control {
		pdf.CellFormat(110, 6, "", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(38, 6, tr(row[0]), "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(38, 6, row[1], "1", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// contact block
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(25, 6, tr("TELÉFONO"), "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(60, 6, hotel.Phone, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(25, 6, "RUT", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, hotel.RUT, "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// stay block
	stay := [][2]string{
		{"CHECK IN", orDash(res.CheckIn)},
		{"CHECK OUT", orDash(res.CheckOut)},
		{"NOCHES", fmt.Sprintf("%d", nights)},
		{"HUÉSPEDES", orDash(res.Guests)},
	}
	for _, row := range stay {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(38, 6, tr(row[0]), "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(48, 6, row[1], "1", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// charges table
	pdf.SetFillColor(26, 35, 126)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(78, 8, tr("DESCRIPCIÓN"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 8, "CANT", "1", 0, "C", true, 0, "")
	pdf.CellFormat(34, 8, "UNITARIO", "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 8, "TOTAL CLP", "1", 1, "C", true, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", 10)
	for _, it := range q.Items {
		pdf.CellFormat(78, 7, tr(it.Type), "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", it.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(34, 7, pricing.FormatPrice(it.Nightly), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 7, pricing.FormatPrice(it.Total), "1", 1, "C", false, 0, "")
	}

	// totals block
	totals := [][2]string{
		{"NETO", pricing.FormatPrice(q.Net)},
		{"IVA (19%)", pricing.FormatPrice(q.Tax)},
		{"TOTAL", pricing.FormatPrice(q.Gross)},
	}
	for i, row := range totals {
		pdf.CellFormat(98, 7, "", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		fill := i == len(totals)-1
		if fill {
			pdf.SetFillColor(232, 234, 246)
		}
		pdf.CellFormat(34, 7, row[0], "1", 0, "R", fill, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(40, 7, row[1], "1", 1, "R", fill, 0, "")
	}
	pdf.Ln(8)

	// terms and bank details
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(0, 6, tr("TÉRMINOS Y CONDICIONES:"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 5, "- Tarifa NO Reembolsable. Sujeto a disponibilidad.\n"+
		"- Para confirmar se solicita pago del 100% por adelantado.\n"+
		"- Incluye Desayuno. Check-in: 15:00 | Check-out: 12:00.", "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(0, 6, "DATOS BANCARIOS PARA TRANSFERENCIA:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(0, 5, tr(fmt.Sprintf("Razón Social: %s SpA | RUT: %s\nEmail: %s",
		hotel.Name, hotel.RUT, hotel.Email)), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// QuoteBase64 renders the document base64-encoded for transports that cannot
// carry raw bytes.
func QuoteBase64(hotel domain.HotelInfo, res domain.Reservation, q domain.Quotation, nights int, now time.Time) (string, error) {
	b, err := Quote(hotel, res, q, nights, now)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
