package group

import "context"

type Repository interface {
	// CreateWithOwner stores the group and the owner's membership atomically.
	CreateWithOwner(ctx context.Context, group Group, owner Member) (Group, error)
	GetByID(ctx context.Context, groupID string) (Group, bool, error)
	GetByInviteCode(ctx context.Context, inviteCode string) (Group, bool, error)
	List(ctx context.Context, filter ListFilter) ([]Group, error)
	// AddMember inserts the membership and refreshes PlayerCount in one unit.
	// An existing (group, user) row is returned untouched with created=false.
	AddMember(ctx context.Context, member Member) (stored Member, created bool, err error)
	// ListMembers returns memberships in join order.
	ListMembers(ctx context.Context, groupID string) ([]MemberProfile, error)
	ListMembershipsByUser(ctx context.Context, userID string) ([]Member, error)
}
