package httpserver

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"hotel_quoter/internal/app"
	"hotel_quoter/internal/domain"
	"hotel_quoter/internal/pricing"
	"hotel_quoter/internal/render"
)

type Handlers struct {
	Q     *app.QuoteService
	Hotel domain.HotelInfo
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/v1/quotes", h.postQuote)
	s.mux.Get("/v1/prices", h.getPrices)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

type quoteRequest struct {
	Message string `json:"message"`
}

// quoteResponse wraps the pipeline result with pre-formatted display amounts
// so upstream presenters agree on the currency convention.
type quoteResponse struct {
	app.QuoteResult
	Display struct {
		Net   string `json:"total_neto"`
		Tax   string `json:"iva"`
		Gross string `json:"total_bruto"`
	} `json:"montos_fmt"`
}

// postQuote runs the full pipeline on one message. Extraction quality is
// never an HTTP error; only a malformed request is.
func (h *Handlers) postQuote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "body must be a JSON object with a message field")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeProblem(w, http.StatusBadRequest, "Empty message", "message must not be empty")
		return
	}

	res := h.Q.Quote(r.Context(), req.Message)

	if r.URL.Query().Get("format") == "pdf" {
		pdf, err := render.Quote(h.Hotel, res.Reservation, res.Quotation, res.Nights, time.Now())
		if err != nil {
			writeProblem(w, http.StatusInternalServerError, "Render failed", "could not render quotation document")
			return
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="cotizacion.pdf"`)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(pdf); err != nil {
			log.Error().Err(err).Msg("failed to write quote PDF body")
		}
		return
	}

	out := quoteResponse{QuoteResult: res}
	out.Display.Net = pricing.FormatPrice(res.Quotation.Net)
	out.Display.Tax = pricing.FormatPrice(res.Quotation.Tax)
	out.Display.Gross = pricing.FormatPrice(res.Quotation.Gross)
	writeJSON(w, http.StatusOK, out)
}

type pricesResponse struct {
	Prices  map[string]string `json:"precios"`
	From    string            `json:"desde"`
	Summary string            `json:"resumen"`
}

func (h *Handlers) getPrices(w http.ResponseWriter, r *http.Request) {
	table := h.Q.Prices()
	out := pricesResponse{
		Prices:  make(map[string]string, len(table)),
		From:    pricing.FormatPrice(pricing.MinNightly(table)),
		Summary: pricing.Summary(table),
	}
	for name, p := range table {
		out.Prices[name] = pricing.FormatPrice(p)
	}
	writeJSON(w, http.StatusOK, out)
}
