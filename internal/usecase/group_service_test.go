package usecase

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/riskibarqy/prediction-league/internal/domain/group"
)

func TestGroupService_OfficeLeagueScenario(t *testing.T) {
	t.Parallel()

	svc := newTestServices("OFFICE01")
	ctx := t.Context()

	created, err := svc.groups.CreateGroup(ctx, CreateGroupInput{
		OwnerUserID:   "user-a",
		Name:          "Office League",
		ScoringSystem: group.ScoringExtended,
	})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	if created.Group.PlayerCount != 1 {
		t.Fatalf("expected playerCount=1, got %d", created.Group.PlayerCount)
	}
	if !created.Viewer.IsMember || !created.Viewer.IsAdmin {
		t.Fatalf("expected owner isMember/isAdmin, got %+v", created.Viewer)
	}
	if created.Group.InviteLink != "http://localhost:3000/join/OFFICE01" {
		t.Fatalf("unexpected invite link: %s", created.Group.InviteLink)
	}
	if created.Group.Status != group.StatusActive {
		t.Fatalf("expected active group, got %s", created.Group.Status)
	}

	joined, err := svc.groups.JoinByInviteCode(ctx, "user-b", " office01 ")
	if err != nil {
		t.Fatalf("join group: %v", err)
	}
	if joined.Group.PlayerCount != 2 {
		t.Fatalf("expected playerCount=2, got %d", joined.Group.PlayerCount)
	}
	if !joined.Viewer.IsMember || joined.Viewer.IsAdmin {
		t.Fatalf("expected joiner isMember=true isAdmin=false, got %+v", joined.Viewer)
	}

	ownerView, err := svc.groups.GetGroup(ctx, "user-a", created.Group.ID)
	if err != nil {
		t.Fatalf("get group as owner: %v", err)
	}
	if !ownerView.Viewer.IsMember || !ownerView.Viewer.IsAdmin {
		t.Fatalf("expected owner context unchanged, got %+v", ownerView.Viewer)
	}

	ranking, err := svc.groups.Ranking(ctx, created.Group.ID)
	if err != nil {
		t.Fatalf("ranking: %v", err)
	}
	if len(ranking) != 2 {
		t.Fatalf("expected 2 ranked members, got %d", len(ranking))
	}
	if ranking[0].UserID != "user-a" || ranking[0].Position != 1 || ranking[1].UserID != "user-b" || ranking[1].Position != 2 {
		t.Fatalf("expected tie to keep join order, got %+v", ranking)
	}
}

func TestGroupService_JoinTwiceIsIdempotent(t *testing.T) {
	t.Parallel()

	svc := newTestServices("JOINTWICE")
	ctx := t.Context()

	created, err := svc.groups.CreateGroup(ctx, CreateGroupInput{OwnerUserID: "owner", Name: "Twice"})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	for i := 0; i < 2; i++ {
		view, err := svc.groups.JoinByInviteCode(ctx, "user-b", "JOINTWICE")
		if err != nil {
			t.Fatalf("join attempt %d: %v", i+1, err)
		}
		if view.Group.PlayerCount != 2 {
			t.Fatalf("join attempt %d: expected playerCount=2, got %d", i+1, view.Group.PlayerCount)
		}
	}

	// The owner re-joining through the invite code changes nothing either.
	view, err := svc.groups.JoinByInviteCode(ctx, "owner", "JOINTWICE")
	if err != nil {
		t.Fatalf("owner join: %v", err)
	}
	if view.Group.PlayerCount != 2 || !view.Viewer.IsAdmin {
		t.Fatalf("unexpected owner rejoin view: %+v", view)
	}

	members, err := svc.groups.ListMembers(ctx, created.Group.ID)
	if err != nil {
		t.Fatalf("list members: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
	if !members[0].IsAdmin || members[1].IsAdmin {
		t.Fatalf("expected only the owner membership to carry isAdmin, got %+v", members)
	}
}

func TestGroupService_ConcurrentJoinsKeepPlayerCount(t *testing.T) {
	t.Parallel()

	svc := newTestServices("RACE0001")
	ctx := t.Context()

	created, err := svc.groups.CreateGroup(ctx, CreateGroupInput{OwnerUserID: "owner", Name: "Race"})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}

	const joiners = 24
	var wg sync.WaitGroup
	errs := make(chan error, joiners*2)
	for i := 0; i < joiners*2; i++ {
		wg.Add(1)
		userID := fmt.Sprintf("user-%02d", i%joiners)
		go func() {
			defer wg.Done()
			if _, err := svc.groups.JoinByInviteCode(ctx, userID, "RACE0001"); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent join: %v", err)
	}

	view, err := svc.groups.GetGroup(ctx, "owner", created.Group.ID)
	if err != nil {
		t.Fatalf("get group: %v", err)
	}
	members, err := svc.groups.ListMembers(ctx, created.Group.ID)
	if err != nil {
		t.Fatalf("list members: %v", err)
	}
	if view.Group.PlayerCount != len(members) || len(members) != joiners+1 {
		t.Fatalf("playerCount drift: playerCount=%d members=%d want=%d", view.Group.PlayerCount, len(members), joiners+1)
	}
}

func TestGroupService_CreateGroupRetriesInviteCollision(t *testing.T) {
	t.Parallel()

	svc := newTestServices("TAKEN001", "TAKEN001", "FRESH001")
	ctx := t.Context()

	if _, err := svc.groups.CreateGroup(ctx, CreateGroupInput{OwnerUserID: "owner-1", Name: "First"}); err != nil {
		t.Fatalf("create first group: %v", err)
	}
	second, err := svc.groups.CreateGroup(ctx, CreateGroupInput{OwnerUserID: "owner-2", Name: "Second"})
	if err != nil {
		t.Fatalf("create second group: %v", err)
	}
	if second.Group.InviteCode != "FRESH001" {
		t.Fatalf("expected regenerated invite code, got %s", second.Group.InviteCode)
	}
}

func TestGroupService_CreateGroupExhaustsInviteAttempts(t *testing.T) {
	t.Parallel()

	svc := newTestServices("SAMECODE")
	ctx := t.Context()

	if _, err := svc.groups.CreateGroup(ctx, CreateGroupInput{OwnerUserID: "owner-1", Name: "First"}); err != nil {
		t.Fatalf("create first group: %v", err)
	}
	_, err := svc.groups.CreateGroup(ctx, CreateGroupInput{OwnerUserID: "owner-2", Name: "Second"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestGroupService_CreateGroupValidation(t *testing.T) {
	t.Parallel()

	svc := newTestServices()
	cases := []CreateGroupInput{
		{Name: "No owner"},
		{OwnerUserID: "owner"},
		{OwnerUserID: "owner", Name: "Bad scoring", ScoringSystem: "golf"},
	}
	for _, input := range cases {
		if _, err := svc.groups.CreateGroup(t.Context(), input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", input, err)
		}
	}
}

func TestGroupService_ListGroupsFilters(t *testing.T) {
	t.Parallel()

	svc := newTestServices("CODEAAAA", "CODEBBBB")
	ctx := t.Context()

	office, err := svc.groups.CreateGroup(ctx, CreateGroupInput{OwnerUserID: "alice", Name: "Office League"})
	if err != nil {
		t.Fatalf("create office: %v", err)
	}
	if _, err := svc.groups.CreateGroup(ctx, CreateGroupInput{OwnerUserID: "bob", Name: "Family Cup"}); err != nil {
		t.Fatalf("create family: %v", err)
	}
	if _, err := svc.groups.JoinByInviteCode(ctx, "carol", "CODEBBBB"); err != nil {
		t.Fatalf("carol join: %v", err)
	}

	mine, err := svc.groups.ListGroups(ctx, ListGroupsInput{ViewerUserID: "carol"})
	if err != nil {
		t.Fatalf("list mine: %v", err)
	}
	if len(mine) != 1 || mine[0].Group.Name != "Family Cup" || !mine[0].Viewer.IsMember || mine[0].Viewer.IsAdmin {
		t.Fatalf("unexpected mine result: %+v", mine)
	}

	all, err := svc.groups.ListGroups(ctx, ListGroupsInput{ViewerUserID: "carol", Filter: GroupFilterAll})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 groups for all, got %d", len(all))
	}
	for _, view := range all {
		if view.Group.ID == office.Group.ID && view.Viewer.IsMember {
			t.Fatalf("carol should not be a member of office league")
		}
	}

	admin, err := svc.groups.ListGroups(ctx, ListGroupsInput{ViewerUserID: "alice", Filter: GroupFilterAdmin})
	if err != nil {
		t.Fatalf("list admin: %v", err)
	}
	if len(admin) != 1 || admin[0].Group.ID != office.Group.ID || !admin[0].Viewer.IsAdmin {
		t.Fatalf("unexpected admin result: %+v", admin)
	}

	searched, err := svc.groups.ListGroups(ctx, ListGroupsInput{ViewerUserID: "alice", Filter: GroupFilterAll, Search: "FAMILY"})
	if err != nil {
		t.Fatalf("list search: %v", err)
	}
	if len(searched) != 1 || searched[0].Group.Name != "Family Cup" {
		t.Fatalf("unexpected search result: %+v", searched)
	}

	if _, err := svc.groups.ListGroups(ctx, ListGroupsInput{ViewerUserID: "alice", Filter: "public"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown filter, got %v", err)
	}
}

func TestGroupService_MemberAdminIsNotOwner(t *testing.T) {
	t.Parallel()

	svc := newTestServices("ADMINS01")
	ctx := t.Context()

	created, err := svc.groups.CreateGroup(ctx, CreateGroupInput{OwnerUserID: "owner", Name: "Admins"})
	if err != nil {
		t.Fatalf("create group: %v", err)
	}
	if _, err := svc.groups.AddMember(ctx, AddMemberInput{GroupID: created.Group.ID, UserID: "deputy", IsAdmin: true, Points: 7}); err != nil {
		t.Fatalf("add member: %v", err)
	}

	view, err := svc.groups.GetGroup(ctx, "deputy", created.Group.ID)
	if err != nil {
		t.Fatalf("get group: %v", err)
	}
	if !view.Viewer.IsMember || view.Viewer.IsAdmin {
		t.Fatalf("member-admin must not be reported as owner admin, got %+v", view.Viewer)
	}

	ranking, err := svc.groups.Ranking(ctx, created.Group.ID)
	if err != nil {
		t.Fatalf("ranking: %v", err)
	}
	if ranking[0].UserID != "deputy" || ranking[0].Points != 7 {
		t.Fatalf("expected deputy to lead ranking, got %+v", ranking)
	}
}

func TestGroupService_UnknownGroup(t *testing.T) {
	t.Parallel()

	svc := newTestServices()
	ctx := t.Context()

	if _, err := svc.groups.GetGroup(ctx, "user", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for get, got %v", err)
	}
	if _, err := svc.groups.ListMembers(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for members, got %v", err)
	}
	if _, err := svc.groups.Ranking(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for ranking, got %v", err)
	}
	if _, err := svc.groups.AddMember(ctx, AddMemberInput{GroupID: "missing", UserID: "user"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for add member, got %v", err)
	}
	if _, err := svc.groups.JoinByInviteCode(ctx, "user", "NOPE0000"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for join, got %v", err)
	}
}
