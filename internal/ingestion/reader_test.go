package ingestion

import (
	"strings"
	"testing"

	"github.com/Adithya-Monish-Kumar-K/search-server/internal/indexer"
	"github.com/Adithya-Monish-Kumar-K/search-server/pkg/config"
	apperrors "github.com/Adithya-Monish-Kumar-K/search-server/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testInput = config.InputConfig{MaxLineBytes: 1 << 16, MaxDocuments: 100}

func TestReadCorpus(t *testing.T) {
	input := "the a an\n2\na cat sat on a mat\na dog sat on the mat\ncat mat -dog\n"
	c, err := NewReader(strings.NewReader(input), testInput).ReadCorpus()
	require.NoError(t, err)

	assert.Equal(t, "the a an", c.StopWords)
	assert.Equal(t, []indexer.Document{
		{ID: 0, Text: "a cat sat on a mat"},
		{ID: 1, Text: "a dog sat on the mat"},
	}, c.Documents)
	assert.Equal(t, "cat mat -dog", c.Query)
}

func TestReadCorpusCRLF(t *testing.T) {
	input := "the\r\n1\r\ncat\r\ncat\r\n"
	c, err := NewReader(strings.NewReader(input), testInput).ReadCorpus()
	require.NoError(t, err)
	assert.Equal(t, "the", c.StopWords)
	assert.Equal(t, "cat", c.Documents[0].Text)
	assert.Equal(t, "cat", c.Query)
}

func TestReadCorpusMissingLines(t *testing.T) {
	c, err := NewReader(strings.NewReader("in the\n3\nwhite cat\n"), testInput).ReadCorpus()
	require.NoError(t, err)
	require.Len(t, c.Documents, 3)
	assert.Equal(t, "white cat", c.Documents[0].Text)
	assert.Equal(t, "", c.Documents[1].Text)
	assert.Equal(t, "", c.Documents[2].Text)
	assert.Equal(t, "", c.Query)
}

func TestReadCorpusZeroDocuments(t *testing.T) {
	c, err := NewReader(strings.NewReader("\n0\nanything\n"), testInput).ReadCorpus()
	require.NoError(t, err)
	assert.Empty(t, c.Documents)
	assert.Equal(t, "anything", c.Query)
}

func TestReadLineWithNumber(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    int
		wantErr bool
	}{
		{"plain", "3", 3, false},
		{"padded", "  12  ", 12, false},
		{"trailing text ignored", "2 documents", 2, false},
		{"empty", "", 0, true},
		{"not a number", "three", 0, true},
		{"negative", "-1", 0, true},
		{"above limit", "101", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewReader(strings.NewReader(tt.line+"\n"), testInput).ReadLineWithNumber()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
				assert.Equal(t, apperrors.ExitInput, apperrors.ExitCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestReadLineTooLong(t *testing.T) {
	cfg := config.InputConfig{MaxLineBytes: 16}
	r := NewReader(strings.NewReader(strings.Repeat("x", 64)+"\n"), cfg)
	_, err := r.ReadLine()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInputTooLong)
}

func TestValidateDocumentCountNoLimit(t *testing.T) {
	assert.NoError(t, validateDocumentCount(5_000_000, 0))
	assert.Error(t, validateDocumentCount(-3, 0))
}
