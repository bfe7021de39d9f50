package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"time"

	"github.com/rs/zerolog/log"

	"hotel_quoter/internal/domain"
	"hotel_quoter/internal/extract"
	"hotel_quoter/internal/pricing"
)

// QuoteResult is the full outcome of quoting one message: the extracted
// record, the implied stay length and the priced breakdown.
type QuoteResult struct {
	Reservation domain.Reservation `json:"reserva"`
	Nights      int                `json:"noches"`
	Quotation   domain.Quotation   `json:"cotizacion"`
	Discount    domain.Discount    `json:"descuento"`
}

// QuoteService runs the message → reservation → quotation pipeline. The
// cache is optional; with a nil cache every message is extracted fresh.
type QuoteService struct {
	extractor domain.Extractor
	cache     domain.Cache
	prices    domain.PriceTable
	cacheTTL  time.Duration
	now       func() time.Time
}

func NewQuoteService(e domain.Extractor, c domain.Cache, prices domain.PriceTable, ttl time.Duration) *QuoteService {
	return &QuoteService{extractor: e, cache: c, prices: prices, cacheTTL: ttl, now: time.Now}
}

// WithClock overrides the reference-date source; tests pin it.
func (s *QuoteService) WithClock(now func() time.Time) *QuoteService {
	s.now = now
	return s
}

// Quote never fails: extraction degrades internally and pricing is total.
func (s *QuoteService) Quote(ctx context.Context, message string) QuoteResult {
	key := quoteKey(s.now(), message)
	if s.cache != nil {
		var cached QuoteResult
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return cached
		}
	}

	rec := s.extractor.Extract(ctx, message)
	nights := extract.Nights(rec)
	q := pricing.Totals(rec.RoomTypes, nights, s.prices)

	out := QuoteResult{
		Reservation: rec,
		Nights:      nights,
		Quotation:   q,
		Discount:    pricing.LongStayDiscount(q.Net, nights),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds())); err != nil {
			log.Warn().Err(err).Msg("quote cache set failed")
		}
	}
	return out
}

// Prices exposes the read-only table for display endpoints.
func (s *QuoteService) Prices() domain.PriceTable { return s.prices }

// quoteKey is date-scoped: the same message means different dates tomorrow.
func quoteKey(now time.Time, message string) string {
	sum := sha1.Sum([]byte(now.Format(domain.DateLayout) + "|" + message))
	return "quote:" + hex.EncodeToString(sum[:])
}
