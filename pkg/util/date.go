package util

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string. Returns (t, true) if it worked.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ResolveWindow turns a fetch request's bounds into an inclusive [from, to]
// window. Explicit from/to dates win, with to extended to end of day;
// otherwise the window is the last daysAgo days ending at now. Malformed
// bounds are a caller error, surfaced before the pipeline runs.
func ResolveWindow(fromStr, toStr string, daysAgo int, now time.Time) (time.Time, time.Time, error) {
	if fromStr != "" && toStr != "" {
		from, ok := ParseDate(fromStr)
		if !ok {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid from_date %q", fromStr)
		}
		to, ok := ParseDate(toStr)
		if !ok {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid to_date %q", toStr)
		}
		to = to.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		if to.Before(from) {
			return time.Time{}, time.Time{}, fmt.Errorf("to_date %q before from_date %q", toStr, fromStr)
		}
		return from, to, nil
	}
	if daysAgo < 1 {
		daysAgo = 1
	}
	return now.AddDate(0, 0, -daysAgo), now, nil
}
