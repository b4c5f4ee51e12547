package indexer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Adithya-Monish-Kumar-K/search-server/internal/indexer/index"
	"github.com/Adithya-Monish-Kumar-K/search-server/internal/indexer/tokenizer"
	"github.com/Adithya-Monish-Kumar-K/search-server/pkg/config"
	"github.com/Adithya-Monish-Kumar-K/search-server/pkg/metrics"
	"golang.org/x/sync/errgroup"
)

// Document is a raw document awaiting indexing.
type Document struct {
	ID   int
	Text string
}

// Engine owns the stop-word set and the inverted index and runs the
// tokenise -> filter -> index pipeline. It is not safe for concurrent
// mutation; after the build phase the index may be read concurrently.
type Engine struct {
	stopWords *tokenizer.StopWords
	index     *index.InvertedIndex
	workers   int
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewEngine creates an empty engine. m may be nil.
func NewEngine(cfg config.IndexerConfig, m *metrics.Metrics) *Engine {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	return &Engine{
		stopWords: &tokenizer.StopWords{},
		index:     index.NewInvertedIndex(),
		workers:   workers,
		metrics:   m,
		logger:    slog.Default().With("component", "indexer"),
	}
}

// SetStopWords adds the space-separated words to the stop-word set. Words
// added after documents were indexed do not remove existing postings.
func (e *Engine) SetStopWords(text string) {
	e.stopWords.Add(text)
	e.logger.Debug("stop words set", "count", e.stopWords.Len())
}

func (e *Engine) StopWords() *tokenizer.StopWords {
	return e.stopWords
}

func (e *Engine) Index() *index.InvertedIndex {
	return e.index
}

// AddDocument tokenises text, drops stop words and indexes the rest under id.
func (e *Engine) AddDocument(id int, text string) {
	e.addTokens(id, e.stopWords.SplitIntoWordsNoStop(text))
}

// BulkLoad indexes docs as if AddDocument were called for each in order.
// Tokenisation runs on up to cfg.Workers goroutines; postings are then
// folded into the index sequentially. Nothing is indexed if ctx is cancelled
// before the fold starts.
func (e *Engine) BulkLoad(ctx context.Context, docs []Document) error {
	start := time.Now()
	tokens := make([][]string, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := range docs {
		i := i // per-iteration copy (pre-Go 1.22 loop semantics)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tokens[i] = e.stopWords.SplitIntoWordsNoStop(docs[i].Text)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("tokenizing corpus: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("tokenizing corpus: %w", err)
	}

	for i, doc := range docs {
		e.addTokens(doc.ID, tokens[i])
	}

	elapsed := time.Since(start)
	if e.metrics != nil {
		e.metrics.BulkLoadDuration.Observe(elapsed.Seconds())
	}
	e.logger.Info("corpus loaded",
		"documents", len(docs),
		"terms", e.index.Terms(),
		"workers", e.workers,
		"latency_ms", elapsed.Milliseconds(),
	)
	return nil
}

func (e *Engine) addTokens(id int, tokens []string) {
	e.index.AddDocument(id, tokens)
	if e.metrics != nil {
		e.metrics.DocsIndexedTotal.Inc()
		if len(tokens) == 0 {
			e.metrics.EmptyDocsTotal.Inc()
		}
		e.metrics.IndexTerms.Set(float64(e.index.Terms()))
	}
	if len(tokens) == 0 {
		e.logger.Debug("document has no indexable tokens", "doc_id", id)
		return
	}
	e.logger.Debug("document indexed",
		"doc_id", id,
		"token_count", len(tokens),
	)
}
