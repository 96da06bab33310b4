package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/riskibarqy/prediction-league/internal/domain/match"
	"github.com/riskibarqy/prediction-league/internal/infrastructure/repository/memory"
	matchmock "github.com/riskibarqy/prediction-league/internal/mocks/domain/match"
	"github.com/stretchr/testify/mock"
)

func TestFixtureImportService_ImportMatches(t *testing.T) {
	t.Parallel()

	repo := memory.NewMatchRepository()
	service := NewFixtureImportService(repo, newDiscardLogger())

	items := make([]match.Match, 0, 12)
	for i := 1; i <= 10; i++ {
		items = append(items, match.Match{
			ID:       fmt.Sprintf("match-%d", i),
			HomeTeam: "Mexico",
			AwayTeam: "TBD",
			Date:     fmt.Sprintf("2026-06-%02d", i+10),
			Status:   match.StatusUpcoming,
		})
	}
	items = append(items,
		match.Match{ID: "match-bad-date", HomeTeam: "A", AwayTeam: "B", Date: "", Status: match.StatusUpcoming},
		match.Match{ID: "match-bad-score", HomeTeam: "A", AwayTeam: "B", Date: "2026-07-01", Status: match.StatusFinished, HomeScore: intPtr(-2)},
	)

	result, err := service.ImportMatches(t.Context(), ImportMatchesInput{Matches: items, MaxWorkers: 3})
	if err != nil {
		t.Fatalf("import matches: %v", err)
	}
	if result.Total != 12 || result.Imported != 10 || result.Failed != 2 || result.WorkerCount != 3 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Failures[0].MatchID != "match-bad-date" || result.Failures[1].MatchID != "match-bad-score" {
		t.Fatalf("expected failures sorted by match id, got %+v", result.Failures)
	}

	stored, err := repo.List(t.Context(), match.ListFilter{})
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(stored) != 10 {
		t.Fatalf("expected 10 stored matches, got %d", len(stored))
	}

	// Re-importing updates rows in place.
	items[0].Stadium = "Estadio Azteca"
	again, err := service.ImportMatches(t.Context(), ImportMatchesInput{Matches: items[:1]})
	if err != nil {
		t.Fatalf("reimport: %v", err)
	}
	if again.Imported != 1 || again.WorkerCount != 1 {
		t.Fatalf("unexpected reimport result: %+v", again)
	}
	got, _, _ := repo.GetByID(t.Context(), "match-1")
	if got.Stadium != "Estadio Azteca" {
		t.Fatalf("expected updated stadium, got %q", got.Stadium)
	}
}

func TestFixtureImportService_StoreFailureUsingMockery(t *testing.T) {
	t.Parallel()

	repo := matchmock.NewRepository(t)
	service := NewFixtureImportService(repo, newDiscardLogger())

	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(m match.Match) bool { return m.ID == "match-1" })).
		Return(errors.New("db down")).
		Once()

	result, err := service.ImportMatches(t.Context(), ImportMatchesInput{Matches: []match.Match{
		{ID: "match-1", HomeTeam: "A", AwayTeam: "B", Date: "2026-06-11", Status: match.StatusUpcoming},
	}})
	if err != nil {
		t.Fatalf("import matches: %v", err)
	}
	if result.Failed != 1 || result.Imported != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestNormalizeImportWorkerCount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		requested, tasks, want int
	}{
		{requested: 0, tasks: 100, want: defaultImportWorkers},
		{requested: 100, tasks: 100, want: maxImportWorkers},
		{requested: 8, tasks: 2, want: 2},
		{requested: 0, tasks: 0, want: defaultImportWorkers},
	}
	for _, tc := range cases {
		if got := normalizeImportWorkerCount(tc.requested, tc.tasks); got != tc.want {
			t.Fatalf("normalizeImportWorkerCount(%d, %d)=%d want=%d", tc.requested, tc.tasks, got, tc.want)
		}
	}
}
