package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/prediction-league/internal/domain/match"
	"github.com/riskibarqy/prediction-league/internal/platform/logging"
)

const (
	defaultImportWorkers = 4
	maxImportWorkers     = 32
)

type ImportMatchesInput struct {
	Matches    []match.Match
	MaxWorkers int
}

type ImportFailure struct {
	MatchID string
	Message string
}

type ImportMatchesResult struct {
	Total       int
	Imported    int
	Failed      int
	WorkerCount int
	Failures    []ImportFailure
}

// FixtureImportService upserts externally sourced matches by id.
type FixtureImportService struct {
	matches match.Repository
	logger  *logging.Logger
}

func NewFixtureImportService(matches match.Repository, logger *logging.Logger) *FixtureImportService {
	if logger == nil {
		logger = logging.Default()
	}
	return &FixtureImportService{matches: matches, logger: logger}
}

func (s *FixtureImportService) ImportMatches(ctx context.Context, input ImportMatchesInput) (result ImportMatchesResult, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureImportService.ImportMatches")
	defer func() { endUsecaseSpan(span, err) }()

	workerCount := normalizeImportWorkerCount(input.MaxWorkers, len(input.Matches))
	result = ImportMatchesResult{
		Total:       len(input.Matches),
		WorkerCount: workerCount,
		Failures:    make([]ImportFailure, 0),
	}
	if len(input.Matches) == 0 {
		return result, nil
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return ImportMatchesResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		imported atomic.Int32
		mu       sync.Mutex
		workers  sync.WaitGroup
	)
	for _, item := range input.Matches {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			if err := s.importOne(ctx, item); err != nil {
				s.logger.WarnContext(ctx, "fixture import failed", "match_id", item.ID, "error", err)
				mu.Lock()
				result.Failures = append(result.Failures, ImportFailure{MatchID: item.ID, Message: err.Error()})
				mu.Unlock()
				return
			}
			imported.Add(1)
		}); err != nil {
			workers.Done()
			return ImportMatchesResult{}, fmt.Errorf("submit import task to worker pool: %w", err)
		}
	}
	workers.Wait()

	sort.SliceStable(result.Failures, func(i, j int) bool {
		return result.Failures[i].MatchID < result.Failures[j].MatchID
	})
	result.Imported = int(imported.Load())
	result.Failed = len(result.Failures)

	s.logger.InfoContext(ctx, "fixture import finished",
		"total", result.Total,
		"imported", result.Imported,
		"failed", result.Failed,
		"workers", result.WorkerCount,
	)
	return result, nil
}

func (s *FixtureImportService) importOne(ctx context.Context, item match.Match) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if item.Status == match.StatusUpcoming {
		item.HomeScore = nil
		item.AwayScore = nil
	}
	if err := item.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.matches.Upsert(ctx, item); err != nil {
		return fmt.Errorf("upsert match: %w", err)
	}
	return nil
}

func normalizeImportWorkerCount(requested, tasks int) int {
	count := requested
	if count <= 0 {
		count = defaultImportWorkers
	}
	if count > maxImportWorkers {
		count = maxImportWorkers
	}
	if tasks > 0 && count > tasks {
		count = tasks
	}
	if count < 1 {
		count = 1
	}
	return count
}
