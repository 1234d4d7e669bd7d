package metrics

import (
	"strings"
	"unicode"
)

// CountSentences counts sentence boundaries: a word character, optional
// whitespace, then a run of '.', '!' or '?' that is followed by whitespace or
// the end of the text. Text with word characters but no boundary counts as one
// sentence.
func CountSentences(text string) int {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}
	runes := []rune(trimmed)
	count := 0
	for i := 0; i < len(runes); {
		end, ok := matchBoundary(runes, i)
		if !ok {
			i++
			continue
		}
		count++
		i = end
	}
	if count == 0 && hasWordChar(trimmed) {
		return 1
	}
	return count
}

// matchBoundary tries to match a sentence boundary starting at runes[start]
// and returns the index just past the punctuation run.
func matchBoundary(runes []rune, start int) (int, bool) {
	if !IsWordChar(runes[start]) {
		return 0, false
	}
	i := start + 1
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	marks := i
	for i < len(runes) && isSentenceMark(runes[i]) {
		i++
	}
	if i == marks {
		return 0, false
	}
	if i < len(runes) && !unicode.IsSpace(runes[i]) {
		return 0, false
	}
	return i, true
}
