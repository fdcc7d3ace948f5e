package signal

import (
	"strings"

	"SignalDesk/internal/domain/models"
)

const (
	hkDisplayPrefix = "HKG:"
	hkLookupSuffix  = ".HK"
	hkPadWidth      = 4
)

// DisplayTicker formats a raw ticker token for display. Hong Kong tickers get
// the HKG: prefix unless already present; all other venues pass through.
func DisplayTicker(ticker string, venue models.Venue) string {
	ticker = strings.TrimSuffix(ticker, ",")
	if venue == models.VenueHKEX && !strings.HasPrefix(ticker, hkDisplayPrefix) {
		return hkDisplayPrefix + ticker
	}
	return ticker
}

// LookupKey converts a raw ticker token into the price provider's symbol
// format. Hong Kong tickers reduce to their digits, zero-padded to four,
// with the .HK market suffix; other venues are accepted natively by the
// provider and pass through unchanged. Purely textual: no validation that
// the symbol exists.
func LookupKey(ticker string, venue models.Venue) string {
	ticker = strings.TrimSuffix(ticker, ",")
	if venue != models.VenueHKEX {
		return ticker
	}
	ticker = strings.TrimPrefix(ticker, hkDisplayPrefix)
	var digits strings.Builder
	for _, r := range ticker {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	number := digits.String()
	for len(number) < hkPadWidth {
		number = "0" + number
	}
	return number + hkLookupSuffix
}
