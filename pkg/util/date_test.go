package util

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2024-01-02")
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Format(DateLayout) != "2024-01-02" {
		t.Fatalf("unexpected date %v", got)
	}
	if _, ok := ParseDate("02/01/2024"); ok {
		t.Fatalf("expected failure for non-ISO date")
	}
	if _, ok := ParseDate(""); ok {
		t.Fatalf("expected failure for empty string")
	}
}

func TestResolveWindowExplicitBounds(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	from, to, err := ResolveWindow("2024-01-01", "2024-01-31", 1, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if from.Format(DateLayout) != "2024-01-01" {
		t.Fatalf("unexpected from %v", from)
	}
	if to.Hour() != 23 || to.Minute() != 59 || to.Second() != 59 {
		t.Fatalf("to should extend to end of day, got %v", to)
	}
}

func TestResolveWindowDaysAgo(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	from, to, err := ResolveWindow("", "", 7, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !to.Equal(now) {
		t.Fatalf("to should be now, got %v", to)
	}
	if !from.Equal(now.AddDate(0, 0, -7)) {
		t.Fatalf("unexpected from %v", from)
	}
}

func TestResolveWindowMalformed(t *testing.T) {
	now := time.Now()
	if _, _, err := ResolveWindow("bad", "2024-01-31", 1, now); err == nil {
		t.Fatalf("expected error for malformed from_date")
	}
	if _, _, err := ResolveWindow("2024-02-01", "2024-01-31", 1, now); err == nil {
		t.Fatalf("expected error for inverted bounds")
	}
}
