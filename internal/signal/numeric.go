package signal

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// extractValue returns the first capture group of re in text, trimmed, or ""
// when there is no match.
func extractValue(text string, re *regexp.Regexp) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// parseDecimal is the parse-or-default combinator applied at every numeric
// extraction site: malformed or empty input yields the null decimal, never
// an error.
func parseDecimal(s string) decimal.NullDecimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// parseLabeled extracts a labeled numeric value from text and parses it.
func parseLabeled(text string, re *regexp.Regexp) decimal.NullDecimal {
	return parseDecimal(extractValue(text, re))
}

// Format4 renders a decimal to exactly four fractional digits. Null formats
// to the empty string, not "0.0000".
func Format4(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.StringFixed(4)
}
