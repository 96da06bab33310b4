package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/riskibarqy/prediction-league/internal/domain/group"
	"github.com/riskibarqy/prediction-league/internal/domain/match"
	"github.com/riskibarqy/prediction-league/internal/domain/prediction"
	"github.com/riskibarqy/prediction-league/internal/domain/user"
)

const (
	reportTopGroupsLimit = 5
	reportRecentWindow   = 7 * 24 * time.Hour
)

type AdminStats struct {
	TotalUsers       int
	TotalGroups      int
	ActiveMatches    int
	TotalPredictions int
}

type AdminReports struct {
	Users       UserReport
	Groups      GroupReport
	Predictions PredictionReport
}

type UserReport struct {
	Total       int
	Admins      int
	NewThisWeek int
}

type GroupReport struct {
	Total        int
	Active       int
	AvgMembers   float64
	LargestGroup int
	NewThisWeek  int
	TopGroups    []TopGroup
}

type TopGroup struct {
	GroupID         string
	Name            string
	MemberCount     int
	PredictionCount int
}

type PredictionReport struct {
	Total  int
	Scored int
}

type AdminService struct {
	users       user.Repository
	groups      group.Repository
	matches     match.Repository
	predictions prediction.Repository
	guard       RoleGuard
	now         func() time.Time
}

func NewAdminService(
	users user.Repository,
	groups group.Repository,
	matches match.Repository,
	predictions prediction.Repository,
	guard RoleGuard,
) *AdminService {
	return &AdminService{
		users:       users,
		groups:      groups,
		matches:     matches,
		predictions: predictions,
		guard:       guard,
		now:         time.Now,
	}
}

func (s *AdminService) Stats(ctx context.Context, actor user.User) (stats AdminStats, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.Stats")
	defer func() { endUsecaseSpan(span, err) }()

	if err := s.guard.Require(actor, user.RolePlatformAdmin); err != nil {
		return AdminStats{}, err
	}

	users, err := s.users.List(ctx, user.ListFilter{})
	if err != nil {
		return AdminStats{}, fmt.Errorf("list users: %w", err)
	}
	groups, err := s.groups.List(ctx, group.ListFilter{})
	if err != nil {
		return AdminStats{}, fmt.Errorf("list groups: %w", err)
	}
	matches, err := s.matches.List(ctx, match.ListFilter{})
	if err != nil {
		return AdminStats{}, fmt.Errorf("list matches: %w", err)
	}
	predictions, err := s.predictions.List(ctx, prediction.ListFilter{})
	if err != nil {
		return AdminStats{}, fmt.Errorf("list predictions: %w", err)
	}

	stats = AdminStats{
		TotalUsers:       len(users),
		TotalGroups:      len(groups),
		TotalPredictions: len(predictions),
	}
	for _, m := range matches {
		if m.IsActive() {
			stats.ActiveMatches++
		}
	}
	return stats, nil
}

func (s *AdminService) Reports(ctx context.Context, actor user.User) (reports AdminReports, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdminService.Reports")
	defer func() { endUsecaseSpan(span, err) }()

	if err := s.guard.Require(actor, user.RolePlatformAdmin); err != nil {
		return AdminReports{}, err
	}

	users, err := s.users.List(ctx, user.ListFilter{})
	if err != nil {
		return AdminReports{}, fmt.Errorf("list users: %w", err)
	}
	groups, err := s.groups.List(ctx, group.ListFilter{})
	if err != nil {
		return AdminReports{}, fmt.Errorf("list groups: %w", err)
	}
	predictions, err := s.predictions.List(ctx, prediction.ListFilter{})
	if err != nil {
		return AdminReports{}, fmt.Errorf("list predictions: %w", err)
	}

	weekAgo := s.now().UTC().Add(-reportRecentWindow)

	reports.Users.Total = len(users)
	for _, u := range users {
		if user.IsAdminRole(u.Role) {
			reports.Users.Admins++
		}
		if !u.CreatedAt.Before(weekAgo) {
			reports.Users.NewThisWeek++
		}
	}

	reports.Groups.Total = len(groups)
	totalMembers := 0
	for _, g := range groups {
		totalMembers += g.PlayerCount
		if g.Status == group.StatusActive {
			reports.Groups.Active++
		}
		if g.PlayerCount > reports.Groups.LargestGroup {
			reports.Groups.LargestGroup = g.PlayerCount
		}
		if !g.CreatedAt.Before(weekAgo) {
			reports.Groups.NewThisWeek++
		}
	}
	if len(groups) > 0 {
		reports.Groups.AvgMembers = float64(totalMembers) / float64(len(groups))
	}

	topGroups, err := s.topGroups(ctx, groups, predictions)
	if err != nil {
		return AdminReports{}, err
	}
	reports.Groups.TopGroups = topGroups

	reports.Predictions.Total = len(predictions)
	for _, p := range predictions {
		if p.Points != nil {
			reports.Predictions.Scored++
		}
	}
	return reports, nil
}

// topGroups picks the largest groups and counts predictions made by their members.
func (s *AdminService) topGroups(ctx context.Context, groups []group.Group, predictions []prediction.Prediction) ([]TopGroup, error) {
	sorted := append([]group.Group(nil), groups...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PlayerCount > sorted[j].PlayerCount
	})
	if len(sorted) > reportTopGroupsLimit {
		sorted = sorted[:reportTopGroupsLimit]
	}

	predictionsByUser := make(map[string]int)
	for _, p := range predictions {
		predictionsByUser[p.UserID]++
	}

	out := make([]TopGroup, 0, len(sorted))
	for _, g := range sorted {
		members, err := s.groups.ListMembers(ctx, g.ID)
		if err != nil {
			return nil, fmt.Errorf("list members for group=%s: %w", g.ID, err)
		}
		count := 0
		for _, m := range members {
			count += predictionsByUser[m.UserID]
		}
		out = append(out, TopGroup{
			GroupID:         g.ID,
			Name:            g.Name,
			MemberCount:     g.PlayerCount,
			PredictionCount: count,
		})
	}
	return out, nil
}
