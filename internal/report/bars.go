package report

import (
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	barFull          = "█"
	barEmpty         = "░"
	minBarWidth      = 10
	maxBarWidth      = 40
	colorReset       = "\x1b[0m"
	barColor         = "\x1b[36m"
	terminalFallback = 80
)

// DensityBar draws a horizontal bar filled to pct percent of width cells.
func DensityBar(pct float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled := int(math.Round(pct / 100 * float64(width)))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat(barFull, filled) + strings.Repeat(barEmpty, width-filled)
}

// BarWidthFor picks a bar width that leaves room for the letter and count
// columns inside totalWidth.
func BarWidthFor(totalWidth int) int {
	if totalWidth <= 0 {
		totalWidth = terminalFallback
	}
	w := totalWidth / 2
	if w < minBarWidth {
		w = minBarWidth
	}
	if w > maxBarWidth {
		w = maxBarWidth
	}
	return w
}

// TerminalWidth returns the width of the terminal behind w, or 0.
func TerminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return 0
	}
	return width
}

// ShouldUseColor reports whether ANSI colors should be written to w.
func ShouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
