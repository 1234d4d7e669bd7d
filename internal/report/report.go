package report

import (
	"fmt"
	"io"

	"github.com/verte-zerg/charcount/internal/metrics"
)

// EmptyDensityMessage is shown when there are no letters to report.
const EmptyDensityMessage = "No characters found. Start typing to see letter density."

// TextOptions controls RenderText.
type TextOptions struct {
	// Width is the available terminal width; 0 uses a default.
	Width int
	Color bool
}

// RenderText prints a summary table and the letter density bars.
func RenderText(w io.Writer, res metrics.Result, opts TextOptions) error {
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	rows := [][]string{
		{"Characters", metrics.PadCount(res.Characters)},
		{"Words", metrics.PadCount(res.Words)},
		{"Sentences", metrics.PadCount(res.Sentences)},
		{"Reading time", ReadingLabel(res.ReadingTime)},
	}
	for _, line := range formatTable([]string{"Metric", "Value"}, rows, map[int]bool{1: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return RenderDensity(w, res.Letters, res.LetterTotal, opts)
}

// RenderDensity prints one bar per letter.
func RenderDensity(w io.Writer, letters []metrics.LetterFrequency, total int, opts TextOptions) error {
	if _, err := fmt.Fprintf(w, "Letter Density (%d letters)\n", total); err != nil {
		return err
	}
	if len(letters) == 0 {
		_, err := fmt.Fprintln(w, EmptyDensityMessage)
		return err
	}
	barWidth := BarWidthFor(opts.Width)
	rows := make([][]string, 0, len(letters))
	for _, entry := range letters {
		bar := DensityBar(entry.Percentage, barWidth)
		if opts.Color {
			bar = barColor + bar + colorReset
		}
		rows = append(rows, []string{
			string(entry.Letter),
			bar,
			DensityLabel(entry),
		})
	}
	for _, line := range formatTable(nil, rows, map[int]bool{2: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// DensityLabel formats an entry as "count (pp.pp%)".
func DensityLabel(entry metrics.LetterFrequency) string {
	return fmt.Sprintf("%d (%s%%)", entry.Count, metrics.FormatPercent(entry.Percentage))
}

// ReadingLabel formats a reading time for display.
func ReadingLabel(rt metrics.ReadingTime) string {
	if rt.Minutes == 1 || rt.Display == "< 1" {
		return rt.Display + " minute"
	}
	return rt.Display + " minutes"
}
