package user

import "context"

type Repository interface {
	Create(ctx context.Context, user User) error
	GetByID(ctx context.Context, userID string) (User, bool, error)
	GetByEmail(ctx context.Context, email string) (User, bool, error)
	List(ctx context.Context, filter ListFilter) ([]User, error)
}
