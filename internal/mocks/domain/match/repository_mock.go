package matchmock

import (
	context "context"

	match "github.com/riskibarqy/prediction-league/internal/domain/match"
	mock "github.com/stretchr/testify/mock"
)

// Repository is a mock type for the match.Repository type
type Repository struct {
	mock.Mock
}

func (_m *Repository) Create(ctx context.Context, item match.Match) error {
	ret := _m.Called(ctx, item)
	return ret.Error(0)
}

func (_m *Repository) Update(ctx context.Context, item match.Match) error {
	ret := _m.Called(ctx, item)
	return ret.Error(0)
}

func (_m *Repository) Upsert(ctx context.Context, item match.Match) error {
	ret := _m.Called(ctx, item)
	return ret.Error(0)
}

func (_m *Repository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	ret := _m.Called(ctx, matchID)
	return ret.Get(0).(match.Match), ret.Bool(1), ret.Error(2)
}

func (_m *Repository) List(ctx context.Context, filter match.ListFilter) ([]match.Match, error) {
	ret := _m.Called(ctx, filter)
	items, _ := ret.Get(0).([]match.Match)
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
