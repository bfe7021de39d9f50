package extract_test

import (
	"testing"
	"time"

	"hotel_quoter/internal/domain"
	"hotel_quoter/internal/extract"
)

func date(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNormalizeDates_PastDateCorrection(t *testing.T) {
	cases := []struct {
		name    string
		ref     string
		in      domain.Reservation
		wantIn  string
		wantOut string
	}{
		{
			name:   "recent past check_in moves to next month",
			ref:    "2026-03-15",
			in:     domain.Reservation{CheckIn: "2026-03-02"},
			wantIn: "2026-04-02",
		},
		{
			name:   "far past check_in left as parsed",
			ref:    "2026-03-15",
			in:     domain.Reservation{CheckIn: "2025-12-01"},
			wantIn: "2025-12-01",
		},
		{
			name:   "december wraps into january",
			ref:    "2026-01-10",
			in:     domain.Reservation{CheckIn: "2025-12-20"},
			wantIn: "2026-01-20",
		},
		{
			name:   "unparseable check_in becomes absent",
			ref:    "2026-03-15",
			in:     domain.Reservation{CheckIn: "next tuesday"},
			wantIn: "",
		},
		{
			name:    "lone past check_out moves to next month",
			ref:     "2026-03-15",
			in:      domain.Reservation{CheckOut: "2026-03-02"},
			wantOut: "2026-04-02",
		},
		{
			name:   "day missing from target month degrades to absent",
			ref:    "2026-02-05",
			in:     domain.Reservation{CheckIn: "2026-01-31"},
			wantIn: "",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := extract.NormalizeDates(tc.in, date(tc.ref), 60)
			if got.CheckIn != tc.wantIn {
				t.Fatalf("check_in: got %q want %q", got.CheckIn, tc.wantIn)
			}
			if got.CheckOut != tc.wantOut {
				t.Fatalf("check_out: got %q want %q", got.CheckOut, tc.wantOut)
			}
		})
	}
}

func TestNormalizeDates_OrderingCorrection(t *testing.T) {
	ref := date("2026-03-15")

	// check_out before check_in but valid in check_in's month
	got := extract.NormalizeDates(domain.Reservation{CheckIn: "2026-03-20", CheckOut: "2026-02-25"}, ref, 60)
	if got.CheckOut != "2026-03-25" {
		t.Fatalf("retarget to check_in month: got %q", got.CheckOut)
	}

	// check_out still not after check_in once retargeted: advance one month
	got = extract.NormalizeDates(domain.Reservation{CheckIn: "2026-03-20", CheckOut: "2026-03-18"}, ref, 60)
	if got.CheckOut != "2026-04-18" {
		t.Fatalf("advance one month: got %q", got.CheckOut)
	}

	// ordering invariant restored in both cases
	for _, rec := range []domain.Reservation{
		{CheckIn: "2026-03-20", CheckOut: "2026-03-20"},
		{CheckIn: "2026-03-20", CheckOut: "2026-03-01"},
	} {
		out := extract.NormalizeDates(rec, ref, 60)
		if out.CheckOut != "" && out.CheckOut <= out.CheckIn {
			t.Fatalf("check_out %q not after check_in %q", out.CheckOut, out.CheckIn)
		}
	}
}

func TestNormalizeDates_Idempotent(t *testing.T) {
	ref := date("2026-03-15")
	in := domain.Reservation{CheckIn: "2026-03-02", CheckOut: "2026-03-01"}

	once := extract.NormalizeDates(in, ref, 60)
	twice := extract.NormalizeDates(once, ref, 60)
	if once != twice {
		t.Fatalf("not idempotent: %+v vs %+v", once, twice)
	}
}

func TestNormalizeDates_ConfigurableWindow(t *testing.T) {
	ref := date("2026-03-15")
	// 13 days in the past: corrected with the default window, kept with a
	// 10-day window.
	in := domain.Reservation{CheckIn: "2026-03-02"}
	if got := extract.NormalizeDates(in, ref, 10); got.CheckIn != "2026-03-02" {
		t.Fatalf("narrow window should keep the date, got %q", got.CheckIn)
	}
}

func TestNights(t *testing.T) {
	cases := []struct {
		rec  domain.Reservation
		want int
	}{
		{domain.Reservation{CheckIn: "2026-03-20", CheckOut: "2026-03-23"}, 3},
		{domain.Reservation{CheckIn: "2026-03-20", CheckOut: "2026-03-21"}, 1},
		{domain.Reservation{CheckIn: "2026-03-20"}, 1},
		{domain.Reservation{}, 1},
	}
	for _, tc := range cases {
		if got := extract.Nights(tc.rec); got != tc.want {
			t.Fatalf("Nights(%+v) = %d, want %d", tc.rec, got, tc.want)
		}
	}
}
