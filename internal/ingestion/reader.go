// Package ingestion reads a search session from a line-oriented text source:
// a stop-words line, a document count, that many document lines and a query
// line.
package ingestion

import (
	"bufio"
	"errors"
	"io"
	"log/slog"

	"github.com/Adithya-Monish-Kumar-K/search-server/internal/indexer"
	"github.com/Adithya-Monish-Kumar-K/search-server/pkg/config"
	apperrors "github.com/Adithya-Monish-Kumar-K/search-server/pkg/errors"
)

// Corpus is everything a session supplies before results are written.
type Corpus struct {
	StopWords string
	Documents []indexer.Document
	Query     string
}

// Reader consumes lines from an io.Reader. Lines missing at end of input
// read as empty strings.
type Reader struct {
	scanner      *bufio.Scanner
	maxDocuments int
	line         int
	missing      int
	logger       *slog.Logger
}

func NewReader(r io.Reader, cfg config.InputConfig) *Reader {
	scanner := bufio.NewScanner(r)
	initial := 64 * 1024
	if cfg.MaxLineBytes < initial {
		initial = cfg.MaxLineBytes
	}
	scanner.Buffer(make([]byte, 0, initial), cfg.MaxLineBytes)
	return &Reader{
		scanner:      scanner,
		maxDocuments: cfg.MaxDocuments,
		logger:       slog.Default().With("component", "ingestion"),
	}
}

// ReadLine returns the next line without its terminator.
func (r *Reader) ReadLine() (string, error) {
	r.line++
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}
	if err := r.scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return "", apperrors.Newf(apperrors.ErrInputTooLong, apperrors.ExitInput, "line %d exceeds the configured maximum", r.line)
		}
		return "", apperrors.Newf(apperrors.ErrInternal, apperrors.ExitInternal, "reading line %d: %v", r.line, err)
	}
	r.missing++
	return "", nil
}

// ReadLineWithNumber reads a line holding a document count.
func (r *Reader) ReadLineWithNumber() (int, error) {
	line, err := r.ReadLine()
	if err != nil {
		return 0, err
	}
	n, err := parseDocumentCount(line)
	if err != nil {
		return 0, apperrors.Newf(apperrors.ErrInvalidInput, apperrors.ExitInput, "line %d: %v", r.line, err)
	}
	if err := validateDocumentCount(n, r.maxDocuments); err != nil {
		return 0, apperrors.Newf(apperrors.ErrInvalidInput, apperrors.ExitInput, "line %d: %v", r.line, err)
	}
	return n, nil
}

// ReadCorpus reads a whole session. Documents get ids 0..n-1 in input order.
func (r *Reader) ReadCorpus() (*Corpus, error) {
	stopWords, err := r.ReadLine()
	if err != nil {
		return nil, err
	}
	count, err := r.ReadLineWithNumber()
	if err != nil {
		return nil, err
	}
	docs := make([]indexer.Document, 0, count)
	for id := 0; id < count; id++ {
		text, err := r.ReadLine()
		if err != nil {
			return nil, err
		}
		docs = append(docs, indexer.Document{ID: id, Text: text})
	}
	query, err := r.ReadLine()
	if err != nil {
		return nil, err
	}
	if r.missing > 0 {
		r.logger.Warn("input ended early, missing lines read as empty",
			"missing_lines", r.missing,
			"declared_documents", count,
		)
	}
	return &Corpus{
		StopWords: stopWords,
		Documents: docs,
		Query:     query,
	}, nil
}
