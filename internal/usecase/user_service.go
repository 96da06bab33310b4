package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/prediction-league/internal/domain/user"
)

type ListUsersInput struct {
	Search string
	Role   string
}

type UserService struct {
	users user.Repository
}

func NewUserService(users user.Repository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context, input ListUsersInput) (items []user.User, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.List")
	defer func() { endUsecaseSpan(span, err) }()

	filter := user.ListFilter{
		Search: strings.TrimSpace(input.Search),
		Role:   strings.TrimSpace(input.Role),
	}
	if filter.Role != "" && !user.IsValidRole(filter.Role) {
		return nil, fmt.Errorf("%w: invalid role %q", ErrInvalidInput, filter.Role)
	}

	items, err = s.users.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return items, nil
}
