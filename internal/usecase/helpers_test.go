package usecase

import (
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/prediction-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/prediction-league/internal/platform/logging"
)

var fixedNow = time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

type sequenceIDGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

func (g *sequenceIDGenerator) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("%s-%03d", g.prefix, g.next), nil
}

// scriptedCodeGenerator returns codes in order and repeats the last one.
type scriptedCodeGenerator struct {
	mu    sync.Mutex
	codes []string
	calls int
}

func (g *scriptedCodeGenerator) NewCode(length int) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.codes) == 0 {
		return "", fmt.Errorf("no codes scripted")
	}
	idx := g.calls
	if idx >= len(g.codes) {
		idx = len(g.codes) - 1
	}
	g.calls++
	return g.codes[idx], nil
}

type testServices struct {
	store       *memory.Store
	groups      *GroupService
	matches     *MatchService
	predictions *PredictionService
	admin       *AdminService
}

func newTestServices(codes ...string) testServices {
	store := memory.NewStore()
	if len(codes) == 0 {
		codes = []string{"CODE0001"}
	}

	groups := NewGroupService(store.Groups, &sequenceIDGenerator{prefix: "group"}, &scriptedCodeGenerator{codes: codes}, GroupServiceConfig{
		InviteCodeLength:      8,
		InviteCodeMaxAttempts: 3,
		InviteLinkBaseURL:     "http://localhost:3000/",
	})
	groups.now = func() time.Time { return fixedNow }

	predictions := NewPredictionService(store.Matches, store.Predictions, &sequenceIDGenerator{prefix: "pred"})
	predictions.now = func() time.Time { return fixedNow }

	admin := NewAdminService(store.Users, store.Groups, store.Matches, store.Predictions, NewRoleGuard(false))
	admin.now = func() time.Time { return fixedNow }

	return testServices{
		store:       store,
		groups:      groups,
		matches:     NewMatchService(store.Matches, store.Predictions, NewRoleGuard(false), &sequenceIDGenerator{prefix: "match"}),
		predictions: predictions,
		admin:       admin,
	}
}

func newDiscardLogger() *logging.Logger {
	return logging.NewNop()
}
