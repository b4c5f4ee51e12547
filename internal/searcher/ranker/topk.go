package ranker

import "container/heap"

// TopK returns the limit best documents in Rank order using a bounded
// min-heap, without sorting the whole candidate set.
func TopK(docs []ScoredDoc, limit int) []ScoredDoc {
	if limit <= 0 {
		return []ScoredDoc{}
	}
	h := make(scoredDocHeap, 0, limit+1)
	for _, doc := range docs {
		heap.Push(&h, doc)
		if h.Len() > limit {
			heap.Pop(&h)
		}
	}
	result := make([]ScoredDoc, h.Len())
	for i := len(result) - 1; i >= 0; i-- {
		result[i] = heap.Pop(&h).(ScoredDoc)
	}
	return result
}

// scoredDocHeap keeps the worst document at the root.
type scoredDocHeap []ScoredDoc

func (h scoredDocHeap) Len() int { return len(h) }

func (h scoredDocHeap) Less(i, j int) bool {
	return better(h[j], h[i])
}

func (h scoredDocHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *scoredDocHeap) Push(x any) {
	*h = append(*h, x.(ScoredDoc))
}

func (h *scoredDocHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
