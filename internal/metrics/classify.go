// Package metrics computes text statistics: characters, words, sentences,
// reading time, and letter density.
package metrics

import (
	"strings"
	"unicode"
)

// IsWordChar reports whether r is a Unicode letter or number.
func IsWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isSentenceMark(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func hasWordChar(s string) bool {
	return strings.IndexFunc(s, IsWordChar) >= 0
}
