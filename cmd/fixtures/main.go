package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/prediction-league/external/fifa"
	"github.com/riskibarqy/prediction-league/internal/app"
	"github.com/riskibarqy/prediction-league/internal/config"
	"github.com/riskibarqy/prediction-league/internal/domain/match"
	"github.com/riskibarqy/prediction-league/internal/platform/logging"
	"github.com/riskibarqy/prediction-league/internal/usecase"
)

func main() {
	source := flag.String("source", "fixture_mundial_2026.json", "fixture JSON file path or http(s) URL")
	workers := flag.Int("workers", 4, "number of concurrent upserts")
	timeout := flag.Duration("timeout", 20*time.Second, "timeout for remote sources")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.New(logging.Options{Level: cfg.LogLevel}).With("service", cfg.ServiceName, "command", "fixtures")
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, *source, *workers, *timeout); err != nil {
		logger.Error("fixture import failed", "source", *source, "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *logging.Logger, source string, workers int, timeout time.Duration) error {
	fixtures, err := fifa.NewLoader(fifa.LoaderConfig{Timeout: timeout}).Load(ctx, source)
	if err != nil {
		return err
	}

	matches, skipped := toMatches(logger, fixtures)
	if len(matches) == 0 {
		return fmt.Errorf("no importable fixtures in %s (%d skipped)", source, skipped)
	}

	cfg.StoreSeed = false
	repos, err := app.OpenRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = repos.Close() }()

	result, err := usecase.NewFixtureImportService(repos.Matches, logger).ImportMatches(ctx, usecase.ImportMatchesInput{
		Matches:    matches,
		MaxWorkers: workers,
	})
	if err != nil {
		return err
	}

	for _, failure := range result.Failures {
		logger.Warn("fixture not imported", "match_id", failure.MatchID, "error", failure.Message)
	}
	logger.Info("fixture import finished",
		"source", source,
		"total", result.Total,
		"imported", result.Imported,
		"failed", result.Failed,
		"skipped", skipped,
		"workers", result.WorkerCount,
	)
	return nil
}

func toMatches(logger *logging.Logger, fixtures []fifa.Fixture) ([]match.Match, int) {
	out := make([]match.Match, 0, len(fixtures))
	skipped := 0
	for i, fixture := range fixtures {
		item, err := fixture.ToMatch()
		if err != nil {
			skipped++
			logger.Warn("skip fixture", "index", i, "error", err)
			continue
		}
		out = append(out, item)
	}
	return out, skipped
}
