// Package metrics defines the Prometheus collectors for indexing and search
// and exports them in text exposition format.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Query result types recorded by SearchQueriesTotal.
const (
	ResultMatched = "matched"
	ResultZero    = "zero_result"
	ResultEmpty   = "empty_query"
)

// Metrics holds all Prometheus collectors for one search server. Each
// instance owns its registry, so several can live in one process.
type Metrics struct {
	Registry           *prometheus.Registry
	DocsIndexedTotal   prometheus.Counter
	EmptyDocsTotal     prometheus.Counter
	IndexTerms         prometheus.Gauge
	BulkLoadDuration   prometheus.Histogram
	SearchQueriesTotal *prometheus.CounterVec
	SearchLatency      prometheus.Histogram
	SearchResultsCount prometheus.Histogram
	SearchCandidates   prometheus.Histogram
}

// New creates and registers all collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		DocsIndexedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "docs_indexed_total",
				Help: "Total documents added to the index.",
			},
		),
		EmptyDocsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "docs_empty_total",
				Help: "Documents that had no tokens left after stop-word removal.",
			},
		),
		IndexTerms: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "index_terms",
				Help: "Number of distinct terms in the inverted index.",
			},
		),
		BulkLoadDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "bulk_load_duration_seconds",
				Help:    "Time spent loading a corpus into the index.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
			},
		),
		SearchQueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "search_queries_total",
				Help: "Total search queries by result type (matched, zero_result, empty_query).",
			},
			[]string{"result_type"},
		),
		SearchLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "search_latency_seconds",
				Help:    "Search query latency in seconds.",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
		),
		SearchResultsCount: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "search_results_count",
				Help:    "Number of results returned per search query.",
				Buckets: []float64{0, 1, 2, 3, 4, 5},
			},
		),
		SearchCandidates: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "search_candidates_count",
				Help:    "Documents left after minus-word exclusion, before truncation.",
				Buckets: []float64{0, 1, 5, 10, 50, 100, 1000, 10000},
			},
		),
	}

	m.Registry = prometheus.NewRegistry()
	m.Registry.MustRegister(
		m.DocsIndexedTotal,
		m.EmptyDocsTotal,
		m.IndexTerms,
		m.BulkLoadDuration,
		m.SearchQueriesTotal,
		m.SearchLatency,
		m.SearchResultsCount,
		m.SearchCandidates,
	)

	return m
}

// WriteTextfile writes the registry to path in text exposition format,
// suitable for the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("writing metrics textfile %s: %w", path, err)
	}
	return nil
}
