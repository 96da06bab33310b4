package usermock

import (
	context "context"

	user "github.com/riskibarqy/prediction-league/internal/domain/user"
	mock "github.com/stretchr/testify/mock"
)

// Repository is a mock type for the user.Repository type
type Repository struct {
	mock.Mock
}

func (_m *Repository) Create(ctx context.Context, item user.User) error {
	ret := _m.Called(ctx, item)
	return ret.Error(0)
}

func (_m *Repository) GetByID(ctx context.Context, userID string) (user.User, bool, error) {
	ret := _m.Called(ctx, userID)
	return ret.Get(0).(user.User), ret.Bool(1), ret.Error(2)
}

func (_m *Repository) GetByEmail(ctx context.Context, email string) (user.User, bool, error) {
	ret := _m.Called(ctx, email)
	return ret.Get(0).(user.User), ret.Bool(1), ret.Error(2)
}

func (_m *Repository) List(ctx context.Context, filter user.ListFilter) ([]user.User, error) {
	ret := _m.Called(ctx, filter)
	items, _ := ret.Get(0).([]user.User)
	return items, ret.Error(1)
}

// NewRepository creates a new instance of Repository. It also registers a
// cleanup function to assert the mocks expectations.
func NewRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *Repository {
	m := &Repository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
