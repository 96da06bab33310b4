package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/prediction-league/internal/domain/match"
	"github.com/riskibarqy/prediction-league/internal/domain/prediction"
	"github.com/riskibarqy/prediction-league/internal/domain/user"
	idgen "github.com/riskibarqy/prediction-league/internal/platform/id"
)

// MatchWithPrediction carries the viewer's own prediction, if any.
type MatchWithPrediction struct {
	Match          match.Match
	UserPrediction *prediction.Prediction
}

type CreateMatchInput struct {
	HomeTeam    string
	AwayTeam    string
	HomeFlag    string
	AwayFlag    string
	Date        string
	Time        string
	Status      string
	MatchNumber *int
	Stage       string
	GroupLabel  string
	Stadium     string
	City        string
}

// UpdateMatchInput applies only the non-nil fields.
type UpdateMatchInput struct {
	Status    *string
	HomeScore *int
	AwayScore *int
}

type MatchService struct {
	matches     match.Repository
	predictions prediction.Repository
	guard       RoleGuard
	idGen       idgen.Generator
}

func NewMatchService(matches match.Repository, predictions prediction.Repository, guard RoleGuard, idGen idgen.Generator) *MatchService {
	return &MatchService{
		matches:     matches,
		predictions: predictions,
		guard:       guard,
		idGen:       idGen,
	}
}

func (s *MatchService) ListMatches(ctx context.Context, status, viewerUserID string) (items []MatchWithPrediction, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer func() { endUsecaseSpan(span, err) }()

	status = match.NormalizeStatus(status)
	viewerUserID = strings.TrimSpace(viewerUserID)
	if status != "" && !match.IsValidStatus(status) {
		return nil, fmt.Errorf("%w: invalid match status %q", ErrInvalidInput, status)
	}

	matches, err := s.matches.List(ctx, match.ListFilter{Status: status})
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	byMatch := make(map[string]prediction.Prediction)
	if viewerUserID != "" && len(matches) > 0 {
		own, err := s.predictions.List(ctx, prediction.ListFilter{UserID: viewerUserID})
		if err != nil {
			return nil, fmt.Errorf("list viewer predictions: %w", err)
		}
		for _, p := range own {
			byMatch[p.MatchID] = p
		}
	}

	items = make([]MatchWithPrediction, 0, len(matches))
	for _, m := range matches {
		item := MatchWithPrediction{Match: m}
		if p, ok := byMatch[m.ID]; ok {
			item.UserPrediction = &p
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *MatchService) GetMatch(ctx context.Context, matchID string) (item match.Match, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatch")
	defer func() { endUsecaseSpan(span, err) }()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	return s.getMatch(ctx, matchID)
}

// CreateMatch stores a new match. Scores always start empty.
func (s *MatchService) CreateMatch(ctx context.Context, actor user.User, input CreateMatchInput) (item match.Match, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.CreateMatch")
	defer func() { endUsecaseSpan(span, err) }()

	if err := s.guard.Require(actor, user.RoleGroupAdmin, user.RolePlatformAdmin); err != nil {
		return match.Match{}, err
	}

	matchID, err := s.idGen.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	item = match.Match{
		ID:          matchID,
		HomeTeam:    strings.TrimSpace(input.HomeTeam),
		AwayTeam:    strings.TrimSpace(input.AwayTeam),
		HomeFlag:    strings.TrimSpace(input.HomeFlag),
		AwayFlag:    strings.TrimSpace(input.AwayFlag),
		Date:        strings.TrimSpace(input.Date),
		Time:        strings.TrimSpace(input.Time),
		Status:      match.NormalizeStatus(input.Status),
		MatchNumber: input.MatchNumber,
		Stage:       strings.TrimSpace(input.Stage),
		GroupLabel:  strings.TrimSpace(input.GroupLabel),
		Stadium:     strings.TrimSpace(input.Stadium),
		City:        strings.TrimSpace(input.City),
	}
	if item.Status == "" {
		item.Status = match.StatusUpcoming
	}
	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.matches.Create(ctx, item); err != nil {
		if errors.Is(err, match.ErrMatchExists) {
			return match.Match{}, fmt.Errorf("%w: match %s already exists", ErrConflict, item.ID)
		}
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}
	return item, nil
}

// UpdateMatch changes status and scores in place. A resulting status of
// upcoming clears the scores and rejects any supplied in the same request.
func (s *MatchService) UpdateMatch(ctx context.Context, actor user.User, matchID string, input UpdateMatchInput) (item match.Match, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateMatch")
	defer func() { endUsecaseSpan(span, err) }()

	if err := s.guard.Require(actor, user.RoleGroupAdmin, user.RolePlatformAdmin); err != nil {
		return match.Match{}, err
	}

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, err = s.getMatch(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}

	if input.Status != nil {
		status := match.NormalizeStatus(*input.Status)
		if !match.IsValidStatus(status) {
			return match.Match{}, fmt.Errorf("%w: invalid match status %q", ErrInvalidInput, *input.Status)
		}
		item.Status = status
	}
	if (input.HomeScore != nil && *input.HomeScore < 0) || (input.AwayScore != nil && *input.AwayScore < 0) {
		return match.Match{}, fmt.Errorf("%w: scores must be non-negative", ErrInvalidInput)
	}

	if item.Status == match.StatusUpcoming {
		if input.HomeScore != nil || input.AwayScore != nil {
			return match.Match{}, fmt.Errorf("%w: upcoming match cannot carry a score", ErrInvalidInput)
		}
		item.HomeScore = nil
		item.AwayScore = nil
	} else {
		if input.HomeScore != nil {
			v := *input.HomeScore
			item.HomeScore = &v
		}
		if input.AwayScore != nil {
			v := *input.AwayScore
			item.AwayScore = &v
		}
	}

	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.matches.Update(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}
	return item, nil
}

func (s *MatchService) getMatch(ctx context.Context, matchID string) (match.Match, error) {
	item, exists, err := s.matches.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match not found", ErrNotFound)
	}
	return item, nil
}
