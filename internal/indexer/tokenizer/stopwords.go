package tokenizer

// StopWords is a set of terms excluded from both indexing and querying. The
// zero value is an empty set ready for use.
type StopWords struct {
	words map[string]struct{}
}

// NewStopWords returns a set populated from the space-separated text.
func NewStopWords(text string) *StopWords {
	s := &StopWords{}
	s.Add(text)
	return s
}

// Add tokenises text and inserts every word. Adding a word that is already
// present is a no-op.
func (s *StopWords) Add(text string) {
	if s.words == nil {
		s.words = make(map[string]struct{})
	}
	for _, word := range SplitIntoWords(text) {
		s.words[word] = struct{}{}
	}
}

// Contains reports whether term is a stop word. A nil set contains nothing.
func (s *StopWords) Contains(term string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[term]
	return ok
}

// Filter returns the tokens that are not stop words, in their original order.
func (s *StopWords) Filter(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if s.Contains(token) {
			continue
		}
		kept = append(kept, token)
	}
	return kept
}

// Len returns the number of distinct stop words.
func (s *StopWords) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// SplitIntoWordsNoStop tokenises text and drops stop words in one pass.
func (s *StopWords) SplitIntoWordsNoStop(text string) []string {
	return s.Filter(SplitIntoWords(text))
}
