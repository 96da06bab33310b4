package memory

import (
	"testing"
	"time"

	"github.com/riskibarqy/prediction-league/internal/domain/group"
	"github.com/riskibarqy/prediction-league/internal/domain/match"
)

func TestStoreSeed(t *testing.T) {
	t.Parallel()

	store := NewStore()
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	if err := store.Seed(t.Context(), "hash", now); err != nil {
		t.Fatalf("seed: %v", err)
	}

	office, ok, _ := store.Groups.GetByInviteCode(t.Context(), "OFFICE01")
	if !ok {
		t.Fatalf("expected Office League to be seeded")
	}
	if office.ScoringSystem != group.ScoringExtended || office.AdminID != UserIDAlice {
		t.Fatalf("unexpected Office League: %+v", office)
	}

	official, _, _ := store.Groups.GetByID(t.Context(), GroupIDWorldCupOfficial)
	members, _ := store.Groups.ListMembers(t.Context(), GroupIDWorldCupOfficial)
	if official.PlayerCount != len(members) || len(members) != 3 {
		t.Fatalf("expected 3 members with matching playerCount, got count=%d members=%d", official.PlayerCount, len(members))
	}

	ranked := group.Rank(members)
	if ranked[0].UserID != UserIDPlatformAdmin || ranked[0].Points != 10 {
		t.Fatalf("expected platform admin on top, got %+v", ranked[0])
	}

	matches, _ := store.Matches.List(t.Context(), match.ListFilter{Status: match.StatusUpcoming})
	if len(matches) != 1 || matches[0].Date != "2026-06-01" {
		t.Fatalf("unexpected seeded matches: %+v", matches)
	}

	alice, ok, _ := store.Users.GetByEmail(t.Context(), "alice@example.com")
	if !ok || alice.PasswordHash != "hash" {
		t.Fatalf("expected seeded alice with password hash")
	}
}
