package parser

import (
	"sort"
	"strings"

	"github.com/Adithya-Monish-Kumar-K/search-server/internal/indexer/tokenizer"
)

const minusPrefix = "-"

// Query is a parsed free-text query: terms that must contribute relevance
// and terms whose documents are excluded outright.
type Query struct {
	PlusWords  map[string]struct{}
	MinusWords map[string]struct{}
	RawQuery   string
}

// Parse tokenises query, drops stop words and sorts the remaining words into
// plus and minus sets. A word with a single leading dash is a minus word with
// the dash stripped; a lone dash is ignored. Parse never fails.
func Parse(query string, stopWords *tokenizer.StopWords) *Query {
	plan := &Query{
		PlusWords:  make(map[string]struct{}),
		MinusWords: make(map[string]struct{}),
		RawQuery:   query,
	}
	for _, word := range stopWords.SplitIntoWordsNoStop(query) {
		if strings.HasPrefix(word, minusPrefix) {
			term := word[len(minusPrefix):]
			if term == "" {
				continue
			}
			plan.MinusWords[term] = struct{}{}
			continue
		}
		plan.PlusWords[word] = struct{}{}
	}
	return plan
}

// Plus returns the plus words in lexical order.
func (q *Query) Plus() []string {
	return sortedKeys(q.PlusWords)
}

// Minus returns the minus words in lexical order.
func (q *Query) Minus() []string {
	return sortedKeys(q.MinusWords)
}

// IsEmpty reports whether the query has no plus words and therefore cannot
// match anything.
func (q *Query) IsEmpty() bool {
	return len(q.PlusWords) == 0
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
