package metrics

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DensityTop is the number of letters reported by LetterDensity.
const DensityTop = 5

// LetterScope selects which code points count as letters for density.
type LetterScope int

const (
	// ScopeASCII counts only A-Z after upper-casing.
	ScopeASCII LetterScope = iota
	// ScopeUnicode counts every Unicode letter after upper-casing.
	ScopeUnicode
)

// ParseLetterScope parses "ascii" or "unicode".
func ParseLetterScope(s string) (LetterScope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ascii":
		return ScopeASCII, nil
	case "unicode":
		return ScopeUnicode, nil
	default:
		return ScopeASCII, fmt.Errorf("unknown letter scope %q (expected ascii or unicode)", s)
	}
}

// String implements fmt.Stringer.
func (s LetterScope) String() string {
	if s == ScopeUnicode {
		return "unicode"
	}
	return "ascii"
}

func (s LetterScope) counts(r rune) bool {
	if s == ScopeUnicode {
		return unicode.IsLetter(r)
	}
	return r >= 'A' && r <= 'Z'
}

// LetterFrequency is one entry of a letter distribution.
type LetterFrequency struct {
	Letter     rune
	Count      int
	Percentage float64
}

// LetterDensity returns the DensityTop most frequent letters of text.
func LetterDensity(text string, scope LetterScope) []LetterFrequency {
	entries, _ := LetterDistribution(text, scope)
	if len(entries) > DensityTop {
		entries = entries[:DensityTop]
	}
	return entries
}

// LetterDistribution returns every counted letter of text, most frequent
// first, together with the total letter count. Letters with equal counts keep
// the order in which they first appear. Percentages are relative to the total.
func LetterDistribution(text string, scope LetterScope) ([]LetterFrequency, int) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, 0
	}
	upper := cases.Upper(language.Und).String(trimmed)

	index := map[rune]int{}
	var entries []LetterFrequency
	total := 0
	for _, r := range upper {
		if !scope.counts(r) {
			continue
		}
		total++
		if i, ok := index[r]; ok {
			entries[i].Count++
			continue
		}
		index[r] = len(entries)
		entries = append(entries, LetterFrequency{Letter: r, Count: 1})
	}
	if total == 0 {
		return nil, 0
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	for i := range entries {
		entries[i].Percentage = float64(entries[i].Count) / float64(total) * 100
	}
	return entries, total
}
