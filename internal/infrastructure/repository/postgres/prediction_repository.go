package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/prediction-league/internal/domain/prediction"
	qb "github.com/riskibarqy/prediction-league/internal/platform/querybuilder"
)

// predictionUpsertSuffix keeps id, points and created_at of an existing row.
const predictionUpsertSuffix = `ON CONFLICT (match_id, user_id) DO UPDATE SET
    home_score = EXCLUDED.home_score,
    away_score = EXCLUDED.away_score,
    updated_at = EXCLUDED.updated_at
RETURNING *`

type PredictionRepository struct {
	db *sqlx.DB
}

func NewPredictionRepository(db *sqlx.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

func (r *PredictionRepository) Upsert(ctx context.Context, item prediction.Prediction) (prediction.Prediction, error) {
	query, args, err := qb.InsertModel("predictions", predictionRowFromDomain(item), predictionUpsertSuffix)
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("build upsert prediction query: %w", err)
	}

	var row predictionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return prediction.Prediction{}, fmt.Errorf("upsert prediction: %w", err)
	}
	return predictionFromRow(row), nil
}

func (r *PredictionRepository) GetByMatchAndUser(ctx context.Context, matchID, userID string) (prediction.Prediction, bool, error) {
	query, args, err := qb.Select("*").
		From("predictions").
		Where(qb.Eq("match_id", matchID), qb.Eq("user_id", userID)).
		ToSQL()
	if err != nil {
		return prediction.Prediction{}, false, fmt.Errorf("build get prediction query: %w", err)
	}

	var row predictionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return prediction.Prediction{}, false, nil
		}
		return prediction.Prediction{}, false, fmt.Errorf("get prediction: %w", err)
	}
	return predictionFromRow(row), true, nil
}

func (r *PredictionRepository) List(ctx context.Context, filter prediction.ListFilter) ([]prediction.Prediction, error) {
	query, args, err := buildListPredictionsQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("build list predictions query: %w", err)
	}

	var rows []predictionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}

	out := make([]prediction.Prediction, 0, len(rows))
	for _, row := range rows {
		out = append(out, predictionFromRow(row))
	}
	return out, nil
}

func buildListPredictionsQuery(filter prediction.ListFilter) (string, []any, error) {
	conditions := make([]qb.Condition, 0, 3)
	if filter.UserID != "" {
		conditions = append(conditions, qb.Eq("user_id", filter.UserID))
	}
	if filter.MatchID != "" {
		conditions = append(conditions, qb.Eq("match_id", filter.MatchID))
	}
	if len(filter.UserIDs) > 0 {
		userIDs := make([]any, 0, len(filter.UserIDs))
		for _, userID := range filter.UserIDs {
			userIDs = append(userIDs, userID)
		}
		conditions = append(conditions, qb.In("user_id", userIDs))
	}

	return qb.Select("*").
		From("predictions").
		Where(conditions...).
		OrderBy("created_at", "id").
		ToSQL()
}

func predictionRowFromDomain(p prediction.Prediction) predictionTableModel {
	return predictionTableModel{
		ID:        p.ID,
		MatchID:   p.MatchID,
		UserID:    p.UserID,
		HomeScore: p.HomeScore,
		AwayScore: p.AwayScore,
		Points:    p.Points,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func predictionFromRow(row predictionTableModel) prediction.Prediction {
	return prediction.Prediction{
		ID:        row.ID,
		MatchID:   row.MatchID,
		UserID:    row.UserID,
		HomeScore: row.HomeScore,
		AwayScore: row.AwayScore,
		Points:    row.Points,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
