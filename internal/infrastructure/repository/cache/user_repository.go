// Package cache decorates store repositories with an in-process read cache.
package cache

import (
	"context"

	"github.com/riskibarqy/prediction-league/internal/domain/user"
	basecache "github.com/riskibarqy/prediction-league/internal/platform/cache"
)

const (
	userIDKeyPrefix    = "user:id:"
	userEmailKeyPrefix = "user:email:"
)

// UserRepository caches point lookups of users. Token resolution hits GetByEmail on every
// authenticated request; misses are never cached so a fresh registration is visible at once.
type UserRepository struct {
	next  user.Repository
	cache *basecache.Store[user.User]
}

var _ user.Repository = (*UserRepository)(nil)

func NewUserRepository(next user.Repository, cache *basecache.Store[user.User]) *UserRepository {
	return &UserRepository{next: next, cache: cache}
}

func (r *UserRepository) Create(ctx context.Context, item user.User) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.cache.Delete(ctx, userIDKeyPrefix+item.ID, userEmailKeyPrefix+item.Email)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	return r.cache.GetOrLoad(ctx, userIDKeyPrefix+userID, func(ctx context.Context) (user.User, bool, error) {
		return r.next.GetByID(ctx, userID)
	})
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, bool, error) {
	return r.cache.GetOrLoad(ctx, userEmailKeyPrefix+email, func(ctx context.Context) (user.User, bool, error) {
		return r.next.GetByEmail(ctx, email)
	})
}

// List always reads through; filtered listings are not cached.
func (r *UserRepository) List(ctx context.Context, filter user.ListFilter) ([]user.User, error) {
	return r.next.List(ctx, filter)
}
