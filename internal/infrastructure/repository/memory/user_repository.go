package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/prediction-league/internal/domain/user"
)

type UserRepository struct {
	mu      sync.RWMutex
	items   map[string]user.User
	byEmail map[string]string
	order   []string
}

func NewUserRepository(seed ...user.User) *UserRepository {
	repo := &UserRepository{
		items:   make(map[string]user.User, len(seed)),
		byEmail: make(map[string]string, len(seed)),
	}
	for _, item := range seed {
		_ = repo.Create(context.Background(), item)
	}
	return repo
}

func (r *UserRepository) Create(_ context.Context, item user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[item.Email]; exists {
		return user.ErrEmailTaken
	}
	if _, exists := r.items[item.ID]; !exists {
		r.order = append(r.order, item.ID)
	}
	r.items[item.ID] = item
	r.byEmail[item.Email] = item.ID
	return nil
}

func (r *UserRepository) GetByID(_ context.Context, userID string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[userID]
	return item, ok, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (user.User, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	userID, ok := r.byEmail[email]
	if !ok {
		return user.User{}, false, nil
	}
	return r.items[userID], true, nil
}

func (r *UserRepository) List(_ context.Context, filter user.ListFilter) ([]user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]user.User, 0, len(r.order))
	for _, userID := range r.order {
		item := r.items[userID]
		if filter.Matches(item) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *UserRepository) profile(userID string) (user.User, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[userID]
	return item, ok
}
