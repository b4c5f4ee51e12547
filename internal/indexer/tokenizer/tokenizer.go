// Package tokenizer provides text tokenisation for the search engine.
// Text is split on the ASCII space character only; terms are kept exactly as
// written, with no case folding and no stemming.
package tokenizer

import "strings"

// SplitIntoWords breaks text into its non-empty space-delimited words, left
// to right. Tabs and newlines are not separators and stay inside words.
func SplitIntoWords(text string) []string {
	words := make([]string, 0, strings.Count(text, " ")+1)
	for _, word := range strings.Split(text, " ") {
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	return words
}
