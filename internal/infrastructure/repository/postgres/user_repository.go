package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/prediction-league/internal/domain/user"
	qb "github.com/riskibarqy/prediction-league/internal/platform/querybuilder"
)

const usersEmailConstraint = "users_email_key"

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, item user.User) error {
	query, args, err := qb.InsertModel("users", userRowFromDomain(item), "")
	if err != nil {
		return fmt.Errorf("build create user query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err, usersEmailConstraint) {
			return fmt.Errorf("create user: %w", user.ErrEmailTaken)
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	return r.getOne(ctx, "id", userID)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, bool, error) {
	return r.getOne(ctx, "email", email)
}

func (r *UserRepository) List(ctx context.Context, filter user.ListFilter) ([]user.User, error) {
	query, args, err := buildListUsersQuery(filter)
	if err != nil {
		return nil, fmt.Errorf("build list users query: %w", err)
	}

	var rows []userTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]user.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, userFromRow(row))
	}
	return out, nil
}

func (r *UserRepository) getOne(ctx context.Context, column, value string) (user.User, bool, error) {
	query, args, err := qb.Select("*").From("users").Where(qb.Eq(column, value)).ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build get user by %s query: %w", column, err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("get user by %s: %w", column, err)
	}
	return userFromRow(row), true, nil
}

func buildListUsersQuery(filter user.ListFilter) (string, []any, error) {
	conditions := make([]qb.Condition, 0, 2)
	if filter.Role != "" {
		conditions = append(conditions, qb.Eq("role", filter.Role))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := qb.ContainsPattern(search)
		conditions = append(conditions, qb.Or(qb.ILike("name", pattern), qb.ILike("email", pattern)))
	}

	return qb.Select("*").
		From("users").
		Where(conditions...).
		OrderBy("created_at", "id").
		ToSQL()
}

func userRowFromDomain(u user.User) userTableModel {
	return userTableModel{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		Role:         u.Role,
		AvatarURL:    stringPtr(u.AvatarURL),
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}

func userFromRow(row userTableModel) user.User {
	return user.User{
		ID:           row.ID,
		Email:        row.Email,
		Name:         row.Name,
		Role:         row.Role,
		AvatarURL:    derefString(row.AvatarURL),
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}
}
