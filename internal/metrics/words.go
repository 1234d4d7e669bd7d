package metrics

import "strings"

// CountWords counts whitespace-separated tokens that contain at least one
// letter or number. Tokens made only of punctuation ("--", "...") are skipped.
func CountWords(text string) int {
	count := 0
	for _, token := range strings.Fields(text) {
		if hasWordChar(token) {
			count++
		}
	}
	return count
}
