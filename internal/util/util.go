package util

import (
	"fmt"
	"strconv"
)

// FormatDays formats a day count without trailing zeros, e.g. "6.5d".
func FormatDays(days float64) string {
	return strconv.FormatFloat(days, 'g', -1, 64) + "d"
}

// FormatPercent formats a 0..1 ratio as a percentage, e.g. "85%".
func FormatPercent(ratio float64) string {
	return fmt.Sprintf("%.0f%%", ratio*100)
}

// Truncate shortens s to at most max runes, appending an ellipsis when cut.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
