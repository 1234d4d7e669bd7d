package metrics

import "fmt"

// PadCount renders a count with at least two digits ("05", "42", "123").
func PadCount(n int) string {
	return fmt.Sprintf("%02d", n)
}

// FormatPercent renders a percentage with two decimals.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.2f", p)
}
