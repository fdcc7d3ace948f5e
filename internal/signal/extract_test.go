package signal

import (
	"testing"

	"SignalDesk/internal/domain/models"
)

func TestExtractFieldsEmptyInput(t *testing.T) {
	f := ExtractFields("")
	for _, v := range models.Venues {
		if f.Venues[v] != "" {
			t.Fatalf("venue %s not defaulted: %q", v, f.Venues[v])
		}
	}
	if f.StopLoss != "" || f.DateText != "" || f.Remark != "" {
		t.Fatalf("expected empty defaults, got %+v", f)
	}
	if f.FullText != "" {
		t.Fatalf("full text should be retained verbatim")
	}
}

func TestExtractFieldsVenueLine(t *testing.T) {
	f := ExtractFields("HKEX:700 信號觸發價=300.00")
	if got := f.Venues[models.VenueHKEX]; got != "700 信號觸發價=300.00" {
		t.Fatalf("unexpected HKEX field: %q", got)
	}
	if f.Venues[models.VenueBATS] != "" {
		t.Fatalf("BATS should stay empty")
	}
}

func TestExtractFieldsLastVenueLineWins(t *testing.T) {
	f := ExtractFields("HKEX:700 first\nHKEX:9988 second")
	if got := f.Venues[models.VenueHKEX]; got != "9988 second" {
		t.Fatalf("expected last line to win, got %q", got)
	}
}

func TestExtractFieldsStopLossStoresWholeLine(t *testing.T) {
	f := ExtractFields("策略失效價=290.00")
	if f.StopLoss != "策略失效價=290.00" {
		t.Fatalf("stop-loss should store the whole line, got %q", f.StopLoss)
	}
}

func TestExtractFieldsDateValue(t *testing.T) {
	f := ExtractFields("日期 = 2024-01-02")
	if f.DateText != "2024-01-02" {
		t.Fatalf("unexpected date text %q", f.DateText)
	}
}

func TestExtractFieldsRemarkVariants(t *testing.T) {
	f := ExtractFields("備注: something")
	if f.Remark != "備注: something" {
		t.Fatalf("unexpected remark %q", f.Remark)
	}
	f = ExtractFields("備註: other")
	if f.Remark != "備註: other" {
		t.Fatalf("alternate spelling not matched: %q", f.Remark)
	}
}

func TestExtractFieldsRulesNotExclusive(t *testing.T) {
	// A single line with a venue code and the stop-loss label fires both rules.
	f := ExtractFields("HKEX:700 策略失效價=290.00")
	if f.Venues[models.VenueHKEX] != "700 策略失效價=290.00" {
		t.Fatalf("venue rule did not fire: %q", f.Venues[models.VenueHKEX])
	}
	if f.StopLoss != "HKEX:700 策略失效價=290.00" {
		t.Fatalf("stop-loss rule did not fire: %q", f.StopLoss)
	}
}

func TestExtractFieldsIgnoresUnmatchedLines(t *testing.T) {
	f := ExtractFields("just a note\n\n  \nanother line")
	if f.FullText != "just a note\n\n  \nanother line" {
		t.Fatalf("full text altered: %q", f.FullText)
	}
	if f.StopLoss != "" || f.DateText != "" || f.Remark != "" {
		t.Fatalf("unmatched lines should not populate fields")
	}
}
