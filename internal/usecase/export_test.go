package usecase

import (
	"strings"
	"testing"
	"time"

	"SignalDesk/internal/domain/models"
)

func TestExportCSV(t *testing.T) {
	rows := []models.SignalRow{
		{
			DisplayTicker:   "HKG:700",
			LookupKey:       "0700.HK",
			SignalDate:      "2024-01-02",
			Sentiment:       "bullish",
			TriggerPrice:    "300.0000",
			TriggerDayClose: "305.0000",
			PresentClose:    "298.0000",
			PLPercent:       "-0.6667",
			IsValid:         true,
		},
	}

	now := time.Date(2024, 1, 5, 9, 30, 15, 0, time.UTC)
	resp, err := ExportCSV(rows, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Filename != "signals_20240105_093015.csv" {
		t.Fatalf("unexpected filename %q", resp.Filename)
	}

	lines := strings.Split(strings.TrimSpace(resp.CSV), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "display_ticker,lookup_key,signal_date") {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[1], "HKG:700") || !strings.Contains(lines[1], "-0.6667") {
		t.Fatalf("unexpected row %q", lines[1])
	}
	if !strings.Contains(lines[1], "true") {
		t.Fatalf("expected is_valid column, got %q", lines[1])
	}
}

func TestExportCSVEmpty(t *testing.T) {
	resp, err := ExportCSV(nil, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(resp.CSV, "display_ticker") {
		t.Fatalf("expected header in empty export, got %q", resp.CSV)
	}
}
