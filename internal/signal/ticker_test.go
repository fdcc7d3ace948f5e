package signal

import (
	"testing"

	"SignalDesk/internal/domain/models"
)

func TestDisplayTickerHongKong(t *testing.T) {
	if got := DisplayTicker("700", models.VenueHKEX); got != "HKG:700" {
		t.Fatalf("expected HKG:700, got %q", got)
	}
	if got := DisplayTicker("HKG:700", models.VenueHKEX); got != "HKG:700" {
		t.Fatalf("prefix should not be doubled, got %q", got)
	}
}

func TestDisplayTickerOtherVenuesUnchanged(t *testing.T) {
	if got := DisplayTicker("AAPL", models.VenueBATS); got != "AAPL" {
		t.Fatalf("expected AAPL, got %q", got)
	}
}

func TestDisplayTickerStripsTrailingComma(t *testing.T) {
	if got := DisplayTicker("AAPL,", models.VenueBATS); got != "AAPL" {
		t.Fatalf("trailing comma not stripped: %q", got)
	}
}

func TestLookupKeyHongKong(t *testing.T) {
	if got := LookupKey("700", models.VenueHKEX); got != "0700.HK" {
		t.Fatalf("expected 0700.HK, got %q", got)
	}
	if got := LookupKey("HKG:700", models.VenueHKEX); got != "0700.HK" {
		t.Fatalf("prefix not stripped: %q", got)
	}
}

func TestLookupKeyIdempotent(t *testing.T) {
	once := LookupKey("700", models.VenueHKEX)
	twice := LookupKey(once, models.VenueHKEX)
	if once != twice {
		t.Fatalf("normalization not idempotent: %q vs %q", once, twice)
	}
}

func TestLookupKeyNonHKPassthrough(t *testing.T) {
	if got := LookupKey("EURUSD", models.VenueOANDA); got != "EURUSD" {
		t.Fatalf("expected passthrough, got %q", got)
	}
}
