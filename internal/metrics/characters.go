package metrics

import (
	"unicode"
	"unicode/utf8"
)

// CountCharacters returns the number of code points in text. With
// excludeSpaces set, Unicode whitespace is not counted.
func CountCharacters(text string, excludeSpaces bool) int {
	if !excludeSpaces {
		return utf8.RuneCountInString(text)
	}
	count := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			count++
		}
	}
	return count
}
