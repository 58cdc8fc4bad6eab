// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"time"
)

// FormatDaysLeft formats a remaining-day count.
// e.g., 1 -> "1 day left", 5 -> "5 days left", 0 -> "done"
func FormatDaysLeft(days int) string {
	switch {
	case days <= 0:
		return "done"
	case days == 1:
		return "1 day left"
	default:
		return fmt.Sprintf("%d days left", days)
	}
}

// FormatLastTapped describes when a goal was last tapped relative to now.
func FormatLastTapped(last *time.Time, now time.Time) string {
	if last == nil {
		return "never"
	}
	l := last.In(now.Location())
	ly, lm, ld := l.Date()
	ny, nm, nd := now.Date()
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, now.Location())
	day := time.Date(ly, lm, ld, 0, 0, 0, 0, now.Location())

	switch {
	case day.Equal(today):
		return "today " + l.Format("15:04")
	case day.Equal(today.AddDate(0, 0, -1)):
		return "yesterday"
	case ly == ny:
		return l.Format("Jan 02")
	default:
		return l.Format("2006-01-02")
	}
}

// ShortID returns the first 8 characters of an ID for display.
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// Truncate shortens s to maxLen runes, marking the cut with an ellipsis.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}
