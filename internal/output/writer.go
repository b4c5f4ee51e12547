// Package output renders ranked search results as text records.
package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/Adithya-Monish-Kumar-K/search-server/internal/searcher/ranker"
)

// Format renders one result as "{ document_id = <id>, relevance = <r> }",
// the relevance printed with six significant digits.
func Format(doc ranker.ScoredDoc) string {
	return fmt.Sprintf("{ document_id = %d, relevance = %s }",
		doc.DocID,
		strconv.FormatFloat(doc.Relevance, 'g', 6, 64),
	)
}

// Writer writes one formatted result per line.
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteResults writes docs in the given order and flushes.
func (w *Writer) WriteResults(docs []ranker.ScoredDoc) error {
	for _, doc := range docs {
		if _, err := w.w.WriteString(Format(doc)); err != nil {
			return fmt.Errorf("writing result for document %d: %w", doc.DocID, err)
		}
		if err := w.w.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing result for document %d: %w", doc.DocID, err)
		}
	}
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("flushing results: %w", err)
	}
	return nil
}
