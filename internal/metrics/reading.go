package metrics

import (
	"strconv"
	"strings"
)

// DefaultWordsPerMinute is the assumed reading speed.
const DefaultWordsPerMinute = 200

// ReadingTime is an estimated reading duration in whole minutes.
type ReadingTime struct {
	Minutes int
	Display string
}

// EstimateReadingTime returns ceil(words / wpm) minutes. Empty text reads as
// "0"; text whose tokens are all punctuation reads as "< 1". A non-positive
// wpm falls back to DefaultWordsPerMinute.
func EstimateReadingTime(text string, wpm int) ReadingTime {
	if wpm <= 0 {
		wpm = DefaultWordsPerMinute
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ReadingTime{Minutes: 0, Display: "0"}
	}
	words := CountWords(trimmed)
	minutes := (words + wpm - 1) / wpm
	if minutes < 1 {
		return ReadingTime{Minutes: 0, Display: "< 1"}
	}
	return ReadingTime{Minutes: minutes, Display: strconv.Itoa(minutes)}
}
