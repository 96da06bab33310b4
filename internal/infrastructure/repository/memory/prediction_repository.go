package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/prediction-league/internal/domain/prediction"
)

type PredictionRepository struct {
	mu    sync.RWMutex
	items map[string]prediction.Prediction
	order []string
}

func NewPredictionRepository() *PredictionRepository {
	return &PredictionRepository{items: make(map[string]prediction.Prediction)}
}

func (r *PredictionRepository) Upsert(_ context.Context, item prediction.Prediction) (prediction.Prediction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := predictionKey(item.MatchID, item.UserID)
	if existing, ok := r.items[key]; ok {
		existing.HomeScore = item.HomeScore
		existing.AwayScore = item.AwayScore
		existing.UpdatedAt = item.UpdatedAt
		r.items[key] = existing
		return clonePrediction(existing), nil
	}

	r.items[key] = clonePrediction(item)
	r.order = append(r.order, key)
	return clonePrediction(item), nil
}

func (r *PredictionRepository) GetByMatchAndUser(_ context.Context, matchID, userID string) (prediction.Prediction, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[predictionKey(matchID, userID)]
	if !ok {
		return prediction.Prediction{}, false, nil
	}
	return clonePrediction(item), true, nil
}

func (r *PredictionRepository) List(_ context.Context, filter prediction.ListFilter) ([]prediction.Prediction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]prediction.Prediction, 0, len(r.order))
	for _, key := range r.order {
		item := r.items[key]
		if filter.Matches(item) {
			out = append(out, clonePrediction(item))
		}
	}
	return out, nil
}

func predictionKey(matchID, userID string) string {
	return matchID + "::" + userID
}

func clonePrediction(p prediction.Prediction) prediction.Prediction {
	copied := p
	copied.Points = cloneInt(p.Points)
	return copied
}
