package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/prediction-league/internal/domain/group"
	"github.com/riskibarqy/prediction-league/internal/domain/match"
	"github.com/riskibarqy/prediction-league/internal/domain/user"
)

const (
	UserIDPlatformAdmin = "user-admin"
	UserIDAlice         = "user-1"
	UserIDBob           = "user-2"
	UserIDGroupAdmin    = "user-group-admin"

	GroupIDWorldCupOfficial = "group-1"
	GroupIDOfficeLeague     = "group-2"

	// SeedPassword is shared by every seeded account.
	SeedPassword = "password123"
)

func SeedUsers(passwordHash string, now time.Time) []user.User {
	return []user.User{
		{ID: UserIDPlatformAdmin, Email: "admin@example.com", Name: "Admin User", Role: user.RolePlatformAdmin, AvatarURL: "https://i.pravatar.cc/150?u=admin", PasswordHash: passwordHash, CreatedAt: now},
		{ID: UserIDAlice, Email: "alice@example.com", Name: "Alice Player", Role: user.RolePlayer, AvatarURL: "https://i.pravatar.cc/150?u=alice", PasswordHash: passwordHash, CreatedAt: now},
		{ID: UserIDBob, Email: "bob@example.com", Name: "Bob Player", Role: user.RolePlayer, AvatarURL: "https://i.pravatar.cc/150?u=bob", PasswordHash: passwordHash, CreatedAt: now},
		{ID: UserIDGroupAdmin, Email: "group_admin@example.com", Name: "Group Admin", Role: user.RoleGroupAdmin, AvatarURL: "https://i.pravatar.cc/150?u=group_admin", PasswordHash: passwordHash, CreatedAt: now},
	}
}

func SeedGroups(now time.Time) []group.Group {
	return []group.Group{
		{
			ID:            GroupIDWorldCupOfficial,
			Name:          "World Cup 2026 Official",
			Description:   "The official prediction group.",
			AdminID:       UserIDGroupAdmin,
			InviteCode:    "OFFICIAL",
			ScoringSystem: group.ScoringClassic,
			Status:        group.StatusActive,
			CreatedAt:     now,
		},
		{
			ID:            GroupIDOfficeLeague,
			Name:          "Office League",
			Description:   "For the office crew.",
			AdminID:       UserIDAlice,
			InviteCode:    "OFFICE01",
			ScoringSystem: group.ScoringExtended,
			Status:        group.StatusActive,
			CreatedAt:     now,
		},
	}
}

// SeedMembers lists memberships beyond each group's owner.
func SeedMembers(now time.Time) []group.Member {
	return []group.Member{
		{GroupID: GroupIDWorldCupOfficial, UserID: UserIDPlatformAdmin, IsAdmin: true, Points: 10, JoinedAt: now},
		{GroupID: GroupIDWorldCupOfficial, UserID: UserIDAlice, Points: 5, JoinedAt: now},
		{GroupID: GroupIDOfficeLeague, UserID: UserIDBob, JoinedAt: now},
	}
}

func SeedMatches(now time.Time) []match.Match {
	return []match.Match{
		{
			ID:       "match-1",
			HomeTeam: "USA",
			AwayTeam: "England",
			HomeFlag: "🇺🇸",
			AwayFlag: "🏴󠁧󠁢󠁥󠁮󠁧󠁿",
			Date:     now.Format(match.DateLayout),
			Time:     "14:00",
			Status:   match.StatusUpcoming,
		},
	}
}

// Store bundles the memory repositories that share state.
type Store struct {
	Users       *UserRepository
	Groups      *GroupRepository
	Matches     *MatchRepository
	Predictions *PredictionRepository
}

func NewStore() *Store {
	users := NewUserRepository()
	return &Store{
		Users:       users,
		Groups:      NewGroupRepository(users),
		Matches:     NewMatchRepository(),
		Predictions: NewPredictionRepository(),
	}
}

// Seed loads the demo dataset used for local runs.
func (s *Store) Seed(ctx context.Context, passwordHash string, now time.Time) error {
	now = now.UTC()
	for _, item := range SeedUsers(passwordHash, now) {
		if err := s.Users.Create(ctx, item); err != nil {
			return fmt.Errorf("seed user %s: %w", item.ID, err)
		}
	}

	for _, item := range SeedGroups(now) {
		owner := group.Member{UserID: item.AdminID, IsAdmin: true, JoinedAt: now}
		if _, err := s.Groups.CreateWithOwner(ctx, item, owner); err != nil {
			return fmt.Errorf("seed group %s: %w", item.ID, err)
		}
	}
	for _, item := range SeedMembers(now) {
		if _, _, err := s.Groups.AddMember(ctx, item); err != nil {
			return fmt.Errorf("seed member %s/%s: %w", item.GroupID, item.UserID, err)
		}
	}

	for _, item := range SeedMatches(now) {
		if err := s.Matches.Upsert(ctx, item); err != nil {
			return fmt.Errorf("seed match %s: %w", item.ID, err)
		}
	}
	return nil
}
