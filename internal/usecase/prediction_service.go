package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/prediction-league/internal/domain/match"
	"github.com/riskibarqy/prediction-league/internal/domain/prediction"
	idgen "github.com/riskibarqy/prediction-league/internal/platform/id"
)

type UpsertPredictionInput struct {
	MatchID   string
	UserID    string
	HomeScore int
	AwayScore int
}

type ListPredictionsInput struct {
	UserID  string
	MatchID string
}

type PredictionService struct {
	matches     match.Repository
	predictions prediction.Repository
	idGen       idgen.Generator
	now         func() time.Time
}

func NewPredictionService(matches match.Repository, predictions prediction.Repository, idGen idgen.Generator) *PredictionService {
	return &PredictionService{
		matches:     matches,
		predictions: predictions,
		idGen:       idGen,
		now:         time.Now,
	}
}

// Upsert writes the user's prediction for a match. Resubmitting overwrites the
// scores of the existing row and keeps its id and points.
func (s *PredictionService) Upsert(ctx context.Context, input UpsertPredictionInput) (item prediction.Prediction, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.Upsert")
	defer func() { endUsecaseSpan(span, err) }()

	input.MatchID = strings.TrimSpace(input.MatchID)
	input.UserID = strings.TrimSpace(input.UserID)
	if input.MatchID == "" {
		return prediction.Prediction{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if input.UserID == "" {
		return prediction.Prediction{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if input.HomeScore < 0 || input.AwayScore < 0 {
		return prediction.Prediction{}, fmt.Errorf("%w: scores must be non-negative", ErrInvalidInput)
	}

	_, exists, err := s.matches.GetByID(ctx, input.MatchID)
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return prediction.Prediction{}, fmt.Errorf("%w: match not found", ErrNotFound)
	}

	predictionID, err := s.idGen.NewID()
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("generate prediction id: %w", err)
	}

	now := s.now().UTC()
	item, err = s.predictions.Upsert(ctx, prediction.Prediction{
		ID:        predictionID,
		MatchID:   input.MatchID,
		UserID:    input.UserID,
		HomeScore: input.HomeScore,
		AwayScore: input.AwayScore,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("upsert prediction: %w", err)
	}
	return item, nil
}

func (s *PredictionService) List(ctx context.Context, input ListPredictionsInput) (items []prediction.Prediction, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.List")
	defer func() { endUsecaseSpan(span, err) }()

	items, err = s.predictions.List(ctx, prediction.ListFilter{
		UserID:  strings.TrimSpace(input.UserID),
		MatchID: strings.TrimSpace(input.MatchID),
	})
	if err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}
	return items, nil
}
