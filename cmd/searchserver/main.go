package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Adithya-Monish-Kumar-K/search-server/internal/ingestion"
	"github.com/Adithya-Monish-Kumar-K/search-server/internal/output"
	"github.com/Adithya-Monish-Kumar-K/search-server/internal/searcher"
	"github.com/Adithya-Monish-Kumar-K/search-server/pkg/config"
	apperrors "github.com/Adithya-Monish-Kumar-K/search-server/pkg/errors"
	"github.com/Adithya-Monish-Kumar-K/search-server/pkg/logger"
	"github.com/Adithya-Monish-Kumar-K/search-server/pkg/metrics"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "searchserver: %v\n", err)
	}
	os.Exit(apperrors.ExitCode(err))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("searchserver", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to config file")
	if err := fs.Parse(args); err != nil {
		return apperrors.Newf(apperrors.ErrConfig, apperrors.ExitConfig, "parsing flags: %v", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format, stderr)

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New()
	}

	corpus, err := ingestion.NewReader(stdin, cfg.Input).ReadCorpus()
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	slog.Debug("input read",
		"documents", len(corpus.Documents),
		"query", corpus.Query,
	)

	server := searcher.New(cfg.Indexer, m)
	server.SetStopWords(corpus.StopWords)
	if err := server.BulkLoad(ctx, corpus.Documents); err != nil {
		return apperrors.Newf(apperrors.ErrInternal, apperrors.ExitInternal, "loading corpus: %v", err)
	}

	results := server.FindTopDocuments(corpus.Query)
	if err := output.NewWriter(stdout).WriteResults(results); err != nil {
		return err
	}

	if m != nil && cfg.Metrics.Textfile != "" {
		if err := m.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			slog.Error("metrics export failed", "error", err)
		}
	}
	return nil
}
