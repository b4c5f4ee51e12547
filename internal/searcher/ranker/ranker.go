package ranker

import (
	"math"
	"sort"

	"github.com/Adithya-Monish-Kumar-K/search-server/internal/searcher/parser"
)

// MaxResultDocumentCount caps the number of documents a search returns.
const MaxResultDocumentCount = 5

type ScoredDoc struct {
	DocID     int     `json:"document_id"`
	Relevance float64 `json:"relevance"`
}

// Index is the read side of the inverted index used for scoring.
type Index interface {
	DocumentFrequency(term string) (map[int]float64, bool)
	DocumentCount() int
}

// FindAllDocuments scores every document matching at least one plus word by
// summing TF*IDF over the plus words it contains, then drops every document
// containing any minus word. The result is in no particular order.
func FindAllDocuments(idx Index, q *parser.Query) []ScoredDoc {
	relevance := make(map[int]float64)
	totalDocs := idx.DocumentCount()
	for term := range q.PlusWords {
		docs, ok := idx.DocumentFrequency(term)
		if !ok || len(docs) == 0 {
			continue
		}
		idf := computeIDF(totalDocs, len(docs))
		for docID, tf := range docs {
			relevance[docID] += tf * idf
		}
	}
	for term := range q.MinusWords {
		docs, ok := idx.DocumentFrequency(term)
		if !ok {
			continue
		}
		for docID := range docs {
			delete(relevance, docID)
		}
	}

	result := make([]ScoredDoc, 0, len(relevance))
	for docID, score := range relevance {
		result = append(result, ScoredDoc{
			DocID:     docID,
			Relevance: score,
		})
	}
	return result
}

// Rank orders docs by relevance, highest first, breaking ties by ascending
// document id, and keeps at most limit of them. A non-positive limit keeps
// all. docs may be reordered in place.
func Rank(docs []ScoredDoc, limit int) []ScoredDoc {
	if limit > 0 && len(docs) > limit {
		return TopK(docs, limit)
	}
	sort.Slice(docs, func(i, j int) bool {
		return better(docs[i], docs[j])
	})
	return docs
}

// computeIDF is ln(totalDocs/docFreq). docFreq is never zero for an indexed
// term, and totalDocs >= docFreq.
func computeIDF(totalDocs int, docFreq int) float64 {
	return math.Log(float64(totalDocs) / float64(docFreq))
}

func better(a, b ScoredDoc) bool {
	if a.Relevance != b.Relevance {
		return a.Relevance > b.Relevance
	}
	return a.DocID < b.DocID
}
