package prediction

import "context"

type Repository interface {
	// Upsert writes by (MatchID, UserID). An existing row keeps its ID, Points
	// and CreatedAt; only the scores and UpdatedAt change.
	Upsert(ctx context.Context, prediction Prediction) (Prediction, error)
	GetByMatchAndUser(ctx context.Context, matchID, userID string) (Prediction, bool, error)
	List(ctx context.Context, filter ListFilter) ([]Prediction, error)
}
