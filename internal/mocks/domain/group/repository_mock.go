package groupmock

import (
	context "context"

	group "github.com/riskibarqy/prediction-league/internal/domain/group"
	mock "github.com/stretchr/testify/mock"
)

// Repository is a mock type for the group.Repository type
type Repository struct {
	mock.Mock
}

func (_m *Repository) CreateWithOwner(ctx context.Context, item group.Group, owner group.Member) (group.Group, error) {
	ret := _m.Called(ctx, item, owner)
	return ret.Get(0).(group.Group), ret.Error(1)
}

func (_m *Repository) GetByID(ctx context.Context, groupID string) (group.Group, bool, error) {
	ret := _m.Called(ctx, groupID)
	return ret.Get(0).(group.Group), ret.Bool(1), ret.Error(2)
}

func (_m *Repository) GetByInviteCode(ctx context.Context, inviteCode string) (group.Group, bool, error) {
	ret := _m.Called(ctx, inviteCode)
	return ret.Get(0).(group.Group), ret.Bool(1), ret.Error(2)
}

func (_m *Repository) List(ctx context.Context, filter group.ListFilter) ([]group.Group, error) {
	ret := _m.Called(ctx, filter)
	items, _ := ret.Get(0).([]group.Group)
	return items, ret.Error(1)
}

func (_m *Repository) AddMember(ctx context.Context, member group.Member) (group.Member, bool, error) {
	ret := _m.Called(ctx, member)
	return ret.Get(0).(group.Member), ret.Bool(1), ret.Error(2)
}

func (_m *Repository) ListMembers(ctx context.Context, groupID string) ([]group.MemberProfile, error) {
	ret := _m.Called(ctx, groupID)
	items, _ := ret.Get(0).([]group.MemberProfile)
	return items, ret.Error(1)
}

func (_m *Repository) ListMembershipsByUser(ctx context.Context, userID string) ([]group.Member, error) {
	ret := _m.Called(ctx, userID)
	items, _ := ret.Get(0).([]group.Member)
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
