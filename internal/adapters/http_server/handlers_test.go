package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpserver "hotel_quoter/internal/adapters/http_server"
	"hotel_quoter/internal/app"
	"hotel_quoter/internal/domain"
)

type fixedExtractor struct{ rec domain.Reservation }

func (f fixedExtractor) Extract(ctx context.Context, message string) domain.Reservation {
	return f.rec
}

func newTestServer(rec domain.Reservation) http.Handler {
	prices := domain.PriceTable{
		domain.TypeSingle:   40000,
		domain.TypeStandard: 50000,
		domain.TypeSuperior: 70000,
		domain.TypeDouble:   65000,
	}
	q := app.NewQuoteService(fixedExtractor{rec: rec}, nil, prices, time.Hour)
	srv := httpserver.New()
	srv.MountHandlers(&httpserver.Handlers{
		Q:     q,
		Hotel: domain.HotelInfo{Name: "Hotel Mirador", Phone: "+56 9 1234 5678", RUT: "76.123.456-7", Email: "reservas@mirador.cl"},
	})
	return srv.Mux()
}

func TestPostQuote(t *testing.T) {
	h := newTestServer(domain.Reservation{
		CheckIn:   "2026-04-10",
		CheckOut:  "2026-04-13",
		Guests:    "4",
		RoomCount: "3",
		RoomTypes: "2 estandar, 1 superior",
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/quotes", strings.NewReader(`{"message": "somos 4 del 10 al 13"}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, body %s", rr.Code, rr.Body.String())
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type: got %q", ct)
	}

	var body struct {
		Nights    int `json:"noches"`
		Quotation struct {
			Net   int `json:"total_neto"`
			Gross int `json:"total_bruto"`
		} `json:"cotizacion"`
		Display struct {
			Gross string `json:"total_bruto"`
		} `json:"montos_fmt"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Nights != 3 || body.Quotation.Net != 510000 || body.Quotation.Gross != 606900 {
		t.Fatalf("got %+v", body)
	}
	if body.Display.Gross != "$606.900" {
		t.Fatalf("display gross: got %q", body.Display.Gross)
	}
}

func TestPostQuote_BadRequests(t *testing.T) {
	h := newTestServer(domain.Reservation{})

	cases := []struct {
		name string
		body string
	}{
		{"not json", "hola"},
		{"empty message", `{"message": "   "}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/quotes", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("status: got %d", rr.Code)
			}
			if ct := rr.Header().Get("Content-Type"); ct != "application/problem+json" {
				t.Fatalf("content type: got %q", ct)
			}
		})
	}
}

func TestPostQuote_PDF(t *testing.T) {
	h := newTestServer(domain.Reservation{CheckIn: "2026-04-10", CheckOut: "2026-04-12", RoomTypes: "doble"})

	req := httptest.NewRequest(http.MethodPost, "/v1/quotes?format=pdf", strings.NewReader(`{"message": "una doble"}`))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("content type: got %q", ct)
	}
	if !strings.HasPrefix(rr.Body.String(), "%PDF-") {
		t.Fatalf("body is not a PDF document")
	}
}

func TestGetPrices(t *testing.T) {
	h := newTestServer(domain.Reservation{})

	req := httptest.NewRequest(http.MethodGet, "/v1/prices", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d", rr.Code)
	}
	var body struct {
		Prices  map[string]string `json:"precios"`
		From    string            `json:"desde"`
		Summary string            `json:"resumen"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Prices[domain.TypeStandard] != "$50.000" {
		t.Fatalf("prices: got %+v", body.Prices)
	}
	if body.From != "$40.000" {
		t.Fatalf("from: got %q", body.From)
	}
	if !strings.Contains(body.Summary, "Precio desde") {
		t.Fatalf("summary: got %q", body.Summary)
	}
}

func TestHealthz(t *testing.T) {
	h := newTestServer(domain.Reservation{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK || rr.Body.String() != "ok" {
		t.Fatalf("got %d %q", rr.Code, rr.Body.String())
	}
}
