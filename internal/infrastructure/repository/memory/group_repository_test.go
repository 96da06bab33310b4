package memory

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/prediction-league/internal/domain/group"
	"github.com/riskibarqy/prediction-league/internal/domain/user"
)

func newTestGroupRepo(t *testing.T) (*GroupRepository, group.Group) {
	t.Helper()

	users := NewUserRepository(
		user.User{ID: "owner", Email: "owner@example.com", Name: "Owner"},
		user.User{ID: "u1", Email: "u1@example.com", Name: "User One"},
	)
	repo := NewGroupRepository(users)
	created, err := repo.CreateWithOwner(t.Context(), group.Group{
		ID:         "group-1",
		Name:       "Office League",
		AdminID:    "owner",
		InviteCode: "OFFICE01",
	}, group.Member{UserID: "owner", IsAdmin: true})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	return repo, created
}

func TestGroupRepository_CreateWithOwner(t *testing.T) {
	t.Parallel()

	repo, created := newTestGroupRepo(t)
	if created.PlayerCount != 1 {
		t.Fatalf("expected playerCount=1, got %d", created.PlayerCount)
	}

	members, err := repo.ListMembers(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("list members: %v", err)
	}
	if len(members) != 1 || members[0].UserID != "owner" || !members[0].IsAdmin {
		t.Fatalf("expected owner admin membership, got %+v", members)
	}
	if members[0].UserName != "Owner" {
		t.Fatalf("expected member profile joined with user, got %q", members[0].UserName)
	}

	_, err = repo.CreateWithOwner(t.Context(), group.Group{ID: "group-2", InviteCode: "OFFICE01"}, group.Member{UserID: "u1"})
	if !errors.Is(err, group.ErrInviteCodeTaken) {
		t.Fatalf("expected ErrInviteCodeTaken, got %v", err)
	}
}

func TestGroupRepository_AddMemberIdempotent(t *testing.T) {
	t.Parallel()

	repo, created := newTestGroupRepo(t)
	joinedAt := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	first, inserted, err := repo.AddMember(t.Context(), group.Member{GroupID: created.ID, UserID: "u1", JoinedAt: joinedAt})
	if err != nil || !inserted {
		t.Fatalf("first join: inserted=%v err=%v", inserted, err)
	}
	second, inserted, err := repo.AddMember(t.Context(), group.Member{GroupID: created.ID, UserID: "u1", Points: 99, JoinedAt: joinedAt.Add(time.Hour)})
	if err != nil || inserted {
		t.Fatalf("second join: inserted=%v err=%v", inserted, err)
	}
	if second.Seq != first.Seq || second.Points != 0 || !second.JoinedAt.Equal(joinedAt) {
		t.Fatalf("second join must return the untouched row, got %+v", second)
	}

	stored, _, _ := repo.GetByID(t.Context(), created.ID)
	if stored.PlayerCount != 2 {
		t.Fatalf("expected playerCount=2, got %d", stored.PlayerCount)
	}
}

func TestGroupRepository_AddMemberUnknownGroup(t *testing.T) {
	t.Parallel()

	repo, _ := newTestGroupRepo(t)
	if _, _, err := repo.AddMember(t.Context(), group.Member{GroupID: "missing", UserID: "u1"}); !errors.Is(err, group.ErrGroupNotFound) {
		t.Fatalf("expected ErrGroupNotFound, got %v", err)
	}
}

func TestGroupRepository_ConcurrentJoinsKeepPlayerCount(t *testing.T) {
	t.Parallel()

	repo, created := newTestGroupRepo(t)

	const joiners = 64
	var wg sync.WaitGroup
	for i := range joiners {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			// every user joins twice to exercise the idempotent path under contention.
			member := group.Member{GroupID: created.ID, UserID: fmt.Sprintf("user-%d", i%32)}
			if _, _, err := repo.AddMember(t.Context(), member); err != nil {
				t.Errorf("add member: %v", err)
			}
		}(i)
	}
	wg.Wait()

	stored, _, _ := repo.GetByID(t.Context(), created.ID)
	members, err := repo.ListMembers(t.Context(), created.ID)
	if err != nil {
		t.Fatalf("list members: %v", err)
	}
	if stored.PlayerCount != len(members) {
		t.Fatalf("playerCount=%d but %d members", stored.PlayerCount, len(members))
	}
	if len(members) != 33 {
		t.Fatalf("expected owner plus 32 distinct members, got %d", len(members))
	}
	for i := 1; i < len(members); i++ {
		if members[i].Seq <= members[i-1].Seq {
			t.Fatalf("members must be returned in join order")
		}
	}
}

func TestGroupRepository_ListFilters(t *testing.T) {
	t.Parallel()

	repo, created := newTestGroupRepo(t)
	if _, err := repo.CreateWithOwner(t.Context(), group.Group{ID: "group-2", Name: "World Cup Official", AdminID: "u1", InviteCode: "OFFICIAL"}, group.Member{UserID: "u1", IsAdmin: true}); err != nil {
		t.Fatalf("create second group: %v", err)
	}

	mine, _ := repo.List(t.Context(), group.ListFilter{MemberUserID: "owner"})
	if len(mine) != 1 || mine[0].ID != created.ID {
		t.Fatalf("unexpected member filter result: %+v", mine)
	}
	owned, _ := repo.List(t.Context(), group.ListFilter{AdminUserID: "u1"})
	if len(owned) != 1 || owned[0].ID != "group-2" {
		t.Fatalf("unexpected admin filter result: %+v", owned)
	}
	searched, _ := repo.List(t.Context(), group.ListFilter{Search: "world"})
	if len(searched) != 1 || searched[0].ID != "group-2" {
		t.Fatalf("unexpected search result: %+v", searched)
	}
	all, _ := repo.List(t.Context(), group.ListFilter{})
	if len(all) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(all))
	}

	memberships, _ := repo.ListMembershipsByUser(t.Context(), "u1")
	if len(memberships) != 1 || memberships[0].GroupID != "group-2" {
		t.Fatalf("unexpected memberships for u1: %+v", memberships)
	}
}
