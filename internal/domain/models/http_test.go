package models

import "testing"

func TestExchangeCatalogMatchesVenues(t *testing.T) {
	if len(ExchangeCatalog) != len(Venues) {
		t.Fatalf("catalog has %d entries, want %d", len(ExchangeCatalog), len(Venues))
	}
	for _, e := range ExchangeCatalog {
		if _, ok := ParseVenue(e.Code); !ok {
			t.Fatalf("catalog code %q is not a known venue", e.Code)
		}
		if e.Name == "" {
			t.Fatalf("catalog entry %q has no display name", e.Code)
		}
	}
}
