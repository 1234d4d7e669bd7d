// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/charcount/internal/metrics"
)

// Theme is the display preference.
type Theme string

const (
	// ThemeLight is the default theme.
	ThemeLight Theme = "light"
	// ThemeDark is the dark theme.
	ThemeDark Theme = "dark"
)

// ParseTheme parses "light" or "dark".
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	default:
		return ThemeLight, fmt.Errorf("unknown theme %q (expected light or dark)", s)
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Settings defines analysis and display options.
type Settings struct {
	ExcludeSpaces  bool
	WordsPerMinute int
	LetterScope    metrics.LetterScope
	AllLetters     bool
	LimitEnabled   bool
	LimitValue     int
	Theme          Theme
}
