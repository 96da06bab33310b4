package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/prediction-league/internal/domain/match"
	qb "github.com/riskibarqy/prediction-league/internal/platform/querybuilder"
)

const (
	matchesPrimaryKeyConstraint = "matches_pkey"

	matchUpsertSuffix = `ON CONFLICT (id) DO UPDATE SET
    home_team = EXCLUDED.home_team,
    away_team = EXCLUDED.away_team,
    home_flag = EXCLUDED.home_flag,
    away_flag = EXCLUDED.away_flag,
    match_date = EXCLUDED.match_date,
    match_time = EXCLUDED.match_time,
    status = EXCLUDED.status,
    home_score = EXCLUDED.home_score,
    away_score = EXCLUDED.away_score,
    match_number = EXCLUDED.match_number,
    stage = EXCLUDED.stage,
    group_label = EXCLUDED.group_label,
    stadium = EXCLUDED.stadium,
    city = EXCLUDED.city,
    updated_at = NOW()`
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) error {
	query, args, err := qb.InsertModel("matches", matchInsertFromDomain(item), "")
	if err != nil {
		return fmt.Errorf("build create match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err, matchesPrimaryKeyConstraint) {
			return fmt.Errorf("create match: %w", match.ErrMatchExists)
		}
		return fmt.Errorf("create match: %w", err)
	}
	return nil
}

func (r *MatchRepository) Update(ctx context.Context, item match.Match) error {
	query, args, err := buildUpdateMatchQuery(item)
	if err != nil {
		return fmt.Errorf("build update match query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update match: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected update match: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update match: not found")
	}
	return nil
}

func (r *MatchRepository) Upsert(ctx context.Context, item match.Match) error {
	query, args, err := qb.InsertModel("matches", matchInsertFromDomain(item), matchUpsertSuffix)
	if err != nil {
		return fmt.Errorf("build upsert match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert match: %w", err)
	}
	return nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").Where(qb.Eq("id", matchID)).ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match: %w", err)
	}
	return matchFromRow(row), true, nil
}

func (r *MatchRepository) List(ctx context.Context, filter match.ListFilter) ([]match.Match, error) {
	query, args, err := buildListMatchesQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func buildListMatchesQuery(filter match.ListFilter) (string, []any, error) {
	conditions := make([]qb.Condition, 0, 1)
	if filter.Status != "" {
		conditions = append(conditions, qb.Eq("status", filter.Status))
	}
	return qb.Select("*").
		From("matches").
		Where(conditions...).
		OrderBy("match_date", "match_time ASC NULLS FIRST", "id").
		ToSQL()
}

func buildUpdateMatchQuery(item match.Match) (string, []any, error) {
	row := matchInsertFromDomain(item)
	return qb.Update("matches").
		Set("home_team", row.HomeTeam).
		Set("away_team", row.AwayTeam).
		Set("home_flag", row.HomeFlag).
		Set("away_flag", row.AwayFlag).
		Set("match_date", row.MatchDate).
		Set("match_time", row.MatchTime).
		Set("status", row.Status).
		Set("home_score", row.HomeScore).
		Set("away_score", row.AwayScore).
		Set("match_number", row.MatchNumber).
		Set("stage", row.Stage).
		Set("group_label", row.GroupLabel).
		Set("stadium", row.Stadium).
		Set("city", row.City).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", row.ID)).
		ToSQL()
}

func matchInsertFromDomain(m match.Match) matchInsertModel {
	return matchInsertModel{
		ID:          m.ID,
		HomeTeam:    m.HomeTeam,
		AwayTeam:    m.AwayTeam,
		HomeFlag:    stringPtr(m.HomeFlag),
		AwayFlag:    stringPtr(m.AwayFlag),
		MatchDate:   m.Date,
		MatchTime:   stringPtr(m.Time),
		Status:      m.Status,
		HomeScore:   m.HomeScore,
		AwayScore:   m.AwayScore,
		MatchNumber: m.MatchNumber,
		Stage:       stringPtr(m.Stage),
		GroupLabel:  stringPtr(m.GroupLabel),
		Stadium:     stringPtr(m.Stadium),
		City:        stringPtr(m.City),
	}
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:          row.ID,
		HomeTeam:    row.HomeTeam,
		AwayTeam:    row.AwayTeam,
		HomeFlag:    derefString(row.HomeFlag),
		AwayFlag:    derefString(row.AwayFlag),
		Date:        row.MatchDate.Format(match.DateLayout),
		Time:        derefString(row.MatchTime),
		Status:      row.Status,
		HomeScore:   row.HomeScore,
		AwayScore:   row.AwayScore,
		MatchNumber: row.MatchNumber,
		Stage:       derefString(row.Stage),
		GroupLabel:  derefString(row.GroupLabel),
		Stadium:     derefString(row.Stadium),
		City:        derefString(row.City),
	}
}
