package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIndependentRegistries(t *testing.T) {
	a := New()
	b := New()

	a.DocsIndexedTotal.Add(3)
	a.SearchQueriesTotal.WithLabelValues(ResultMatched).Inc()

	assert.Equal(t, 3.0, testutil.ToFloat64(a.DocsIndexedTotal))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.DocsIndexedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(a.SearchQueriesTotal.WithLabelValues(ResultMatched)))
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.DocsIndexedTotal.Add(2)
	m.IndexTerms.Set(5)

	path := filepath.Join(t.TempDir(), "search.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "docs_indexed_total 2")
	assert.Contains(t, string(data), "index_terms 5")
}

func TestWriteTextfileBadPath(t *testing.T) {
	m := New()
	err := m.WriteTextfile(filepath.Join(t.TempDir(), "missing", "dir", "search.prom"))
	assert.Error(t, err)
}
