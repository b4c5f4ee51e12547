// Package searcher is the search server façade: it owns an indexing engine
// and answers free-text queries against it with TF-IDF ranking.
package searcher

import (
	"context"
	"log/slog"
	"time"

	"github.com/Adithya-Monish-Kumar-K/search-server/internal/indexer"
	"github.com/Adithya-Monish-Kumar-K/search-server/internal/searcher/parser"
	"github.com/Adithya-Monish-Kumar-K/search-server/internal/searcher/ranker"
	"github.com/Adithya-Monish-Kumar-K/search-server/pkg/config"
	"github.com/Adithya-Monish-Kumar-K/search-server/pkg/metrics"
)

// Server is built once with SetStopWords and AddDocument/BulkLoad and then
// queried. Queries only read the index, so FindTopDocuments may be called
// from several goroutines once building is finished.
type Server struct {
	engine  *indexer.Engine
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// New creates an empty server. m may be nil to disable metrics.
func New(cfg config.IndexerConfig, m *metrics.Metrics) *Server {
	return &Server{
		engine:  indexer.NewEngine(cfg, m),
		metrics: m,
		logger:  slog.Default().With("component", "search-server"),
	}
}

func (s *Server) SetStopWords(text string) {
	s.engine.SetStopWords(text)
}

func (s *Server) AddDocument(id int, text string) {
	s.engine.AddDocument(id, text)
}

func (s *Server) BulkLoad(ctx context.Context, docs []indexer.Document) error {
	return s.engine.BulkLoad(ctx, docs)
}

func (s *Server) DocumentCount() int {
	return s.engine.Index().DocumentCount()
}

// FindAllDocuments returns every document matching the parsed query, unordered.
func (s *Server) FindAllDocuments(q *parser.Query) []ranker.ScoredDoc {
	return ranker.FindAllDocuments(s.engine.Index(), q)
}

// FindTopDocuments returns at most ranker.MaxResultDocumentCount documents
// for rawQuery, most relevant first, ties broken by ascending id.
func (s *Server) FindTopDocuments(rawQuery string) []ranker.ScoredDoc {
	start := time.Now()
	q := parser.Parse(rawQuery, s.engine.StopWords())
	matched := s.FindAllDocuments(q)
	candidates := len(matched)
	result := ranker.Rank(matched, ranker.MaxResultDocumentCount)

	s.observe(q, candidates, len(result), time.Since(start))
	s.logger.Debug("query executed",
		"query", rawQuery,
		"plus_words", len(q.PlusWords),
		"minus_words", len(q.MinusWords),
		"candidates", candidates,
		"results", len(result),
	)
	return result
}

func (s *Server) observe(q *parser.Query, candidates, returned int, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}
	resultType := metrics.ResultMatched
	switch {
	case q.IsEmpty():
		resultType = metrics.ResultEmpty
	case returned == 0:
		resultType = metrics.ResultZero
	}
	s.metrics.SearchQueriesTotal.WithLabelValues(resultType).Inc()
	s.metrics.SearchLatency.Observe(elapsed.Seconds())
	s.metrics.SearchResultsCount.Observe(float64(returned))
	s.metrics.SearchCandidates.Observe(float64(candidates))
}
