package util

import (
	"fmt"
	"time"
)

// FormatCount formats a count with K/M suffix for readability.
// Examples: 500 -> "500", 1500 -> "1.5K", 1500000 -> "1.5M"
func FormatCount(n float64) string {
	if n < 1000 {
		return fmt.Sprintf("%.0f", n)
	}
	if n < 1000000 {
		return fmt.Sprintf("%.1fK", n/1000)
	}
	return fmt.Sprintf("%.1fM", n/1000000)
}

// FormatDay formats a timestamp as an ISO date (2006-01-02).
func FormatDay(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatClock formats a timestamp as a wall-clock time (15:04:05).
func FormatClock(t time.Time) string {
	return t.Format("15:04:05")
}

// FormatMetric formats a metric widget value rounded to one decimal place.
func FormatMetric(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
