// Package index holds the in-memory inverted index: for every term, the
// documents containing it and the term's frequency within each document.
package index

import "sort"

// InvertedIndex maps term -> document id -> term frequency. It has a single
// writer during the build phase and no internal locking; once building is
// done it may be read from any number of goroutines.
type InvertedIndex struct {
	postings map[string]map[int]float64
	docCount int
}

func NewInvertedIndex() *InvertedIndex {
	return &InvertedIndex{
		postings: make(map[string]map[int]float64),
	}
}

// AddDocument folds the already-filtered tokens of document docID into the
// index. Each occurrence contributes 1/len(tokens) to the term's frequency,
// so the frequencies of one document sum to 1. A document without tokens
// adds no postings but still counts towards the corpus size.
func (m *InvertedIndex) AddDocument(docID int, tokens []string) {
	m.docCount++
	if len(tokens) == 0 {
		return
	}
	inc := 1.0 / float64(len(tokens))
	for _, term := range tokens {
		docs, exists := m.postings[term]
		if !exists {
			docs = make(map[int]float64)
			m.postings[term] = docs
		}
		docs[docID] += inc
	}
}

// DocumentFrequency returns the document id -> TF mapping for term and
// whether the term was ever indexed. The returned map must not be modified.
func (m *InvertedIndex) DocumentFrequency(term string) (map[int]float64, bool) {
	docs, exists := m.postings[term]
	return docs, exists
}

// DocumentCount returns the number of AddDocument calls so far.
func (m *InvertedIndex) DocumentCount() int {
	return m.docCount
}

// Terms returns the number of distinct indexed terms.
func (m *InvertedIndex) Terms() int {
	return len(m.postings)
}

// Snapshot returns every term with its postings, terms in lexical order and
// postings by ascending document id.
func (m *InvertedIndex) Snapshot() []TermEntry {
	entries := make([]TermEntry, 0, len(m.postings))
	for term, docs := range m.postings {
		postings := make(PostingList, 0, len(docs))
		for docID, tf := range docs {
			postings = append(postings, Posting{DocID: docID, TF: tf})
		}
		sort.Slice(postings, func(i, j int) bool {
			return postings[i].DocID < postings[j].DocID
		})
		entries = append(entries, TermEntry{
			Term:     term,
			Postings: postings,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Term < entries[j].Term
	})
	return entries
}
