package predictionmock

import (
	context "context"

	prediction "github.com/riskibarqy/prediction-league/internal/domain/prediction"
	mock "github.com/stretchr/testify/mock"
)

// Repository is a mock type for the prediction.Repository type
type Repository struct {
	mock.Mock
}

func (_m *Repository) Upsert(ctx context.Context, item prediction.Prediction) (prediction.Prediction, error) {
	ret := _m.Called(ctx, item)
	return ret.Get(0).(prediction.Prediction), ret.Error(1)
}

func (_m *Repository) GetByMatchAndUser(ctx context.Context, matchID, userID string) (prediction.Prediction, bool, error) {
	ret := _m.Called(ctx, matchID, userID)
	return ret.Get(0).(prediction.Prediction), ret.Bool(1), ret.Error(2)
}

func (_m *Repository) List(ctx context.Context, filter prediction.ListFilter) ([]prediction.Prediction, error) {
	ret := _m.Called(ctx, filter)
	items, _ := ret.Get(0).([]prediction.Prediction)
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
