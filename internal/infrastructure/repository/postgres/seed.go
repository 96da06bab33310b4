package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/prediction-league/internal/domain/group"
	"github.com/riskibarqy/prediction-league/internal/infrastructure/repository/memory"
	qb "github.com/riskibarqy/prediction-league/internal/platform/querybuilder"
)

// BootstrapSeed loads the demo dataset into an empty database.
func BootstrapSeed(ctx context.Context, db *sqlx.DB, passwordHash string, now time.Time) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM users`); err != nil {
		return fmt.Errorf("count users for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	now = now.UTC()
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, u := range memory.SeedUsers(passwordHash, now) {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO users (id, email, name, role, avatar_url, password_hash, created_at)
VALUES (:id, :email, :name, :role, :avatar_url, :password_hash, :created_at)
ON CONFLICT (id) DO NOTHING`, userRowFromDomain(u))
		if err != nil {
			return fmt.Errorf("bind seed user %s query: %w", u.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed user %s: %w", u.ID, err)
		}
	}

	members := make([]group.Member, 0)
	for _, g := range memory.SeedGroups(now) {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO groups (id, name, description, admin_id, player_count, invite_code, invite_link, scoring_system, status, created_at)
VALUES (:id, :name, :description, :admin_id, 0, :invite_code, :invite_link, :scoring_system, :status, :created_at)
ON CONFLICT (id) DO NOTHING`, groupRowFromDomain(g))
		if err != nil {
			return fmt.Errorf("bind seed group %s query: %w", g.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed group %s: %w", g.ID, err)
		}
		members = append(members, group.Member{GroupID: g.ID, UserID: g.AdminID, IsAdmin: true, JoinedAt: now})
	}
	members = append(members, memory.SeedMembers(now)...)

	for _, m := range members {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO group_members (group_id, user_id, joined_at, points, is_admin)
VALUES (:group_id, :user_id, :joined_at, :points, :is_admin)
ON CONFLICT (group_id, user_id) DO NOTHING`, memberInsertFromDomain(m))
		if err != nil {
			return fmt.Errorf("bind seed member %s/%s query: %w", m.GroupID, m.UserID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed member %s/%s: %w", m.GroupID, m.UserID, err)
		}
	}

	for _, g := range memory.SeedGroups(now) {
		sqlQuery, args, err := buildRefreshPlayerCountQuery(g.ID)
		if err != nil {
			return fmt.Errorf("build seed player count %s query: %w", g.ID, err)
		}
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed player count %s: %w", g.ID, err)
		}
	}

	for _, m := range memory.SeedMatches(now) {
		sqlQuery, args, err := qb.InsertModel("matches", matchInsertFromDomain(m), "ON CONFLICT (id) DO NOTHING")
		if err != nil {
			return fmt.Errorf("build seed match %s query: %w", m.ID, err)
		}
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed match %s: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
