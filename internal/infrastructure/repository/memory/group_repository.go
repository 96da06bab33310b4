package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/prediction-league/internal/domain/group"
)

// GroupRepository keeps groups and memberships behind one lock so a join and
// the PlayerCount refresh are never observed apart.
type GroupRepository struct {
	mu           sync.RWMutex
	users        *UserRepository
	groups       map[string]group.Group
	byInviteCode map[string]string
	order        []string
	members      map[string][]group.Member
	seq          int64
}

func NewGroupRepository(users *UserRepository) *GroupRepository {
	return &GroupRepository{
		users:        users,
		groups:       make(map[string]group.Group),
		byInviteCode: make(map[string]string),
		members:      make(map[string][]group.Member),
	}
}

func (r *GroupRepository) CreateWithOwner(_ context.Context, item group.Group, owner group.Member) (group.Group, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byInviteCode[item.InviteCode]; exists {
		return group.Group{}, group.ErrInviteCodeTaken
	}

	r.seq++
	owner.GroupID = item.ID
	owner.Seq = r.seq
	item.PlayerCount = 1

	r.groups[item.ID] = item
	r.byInviteCode[item.InviteCode] = item.ID
	r.order = append(r.order, item.ID)
	r.members[item.ID] = []group.Member{owner}
	return item, nil
}

func (r *GroupRepository) GetByID(_ context.Context, groupID string) (group.Group, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.groups[groupID]
	return item, ok, nil
}

func (r *GroupRepository) GetByInviteCode(_ context.Context, inviteCode string) (group.Group, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	groupID, ok := r.byInviteCode[inviteCode]
	if !ok {
		return group.Group{}, false, nil
	}
	return r.groups[groupID], true, nil
}

func (r *GroupRepository) List(_ context.Context, filter group.ListFilter) ([]group.Group, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]group.Group, 0, len(r.order))
	for _, groupID := range r.order {
		item := r.groups[groupID]
		if filter.AdminUserID != "" && item.AdminID != filter.AdminUserID {
			continue
		}
		if filter.MemberUserID != "" && !r.hasMemberLocked(groupID, filter.MemberUserID) {
			continue
		}
		if !filter.MatchesName(item.Name) {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *GroupRepository) AddMember(_ context.Context, member group.Member) (group.Member, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.groups[member.GroupID]
	if !ok {
		return group.Member{}, false, group.ErrGroupNotFound
	}
	for _, existing := range r.members[member.GroupID] {
		if existing.UserID == member.UserID {
			return existing, false, nil
		}
	}

	r.seq++
	member.Seq = r.seq
	r.members[member.GroupID] = append(r.members[member.GroupID], member)

	item.PlayerCount = len(r.members[member.GroupID])
	r.groups[member.GroupID] = item
	return member, true, nil
}

func (r *GroupRepository) ListMembers(_ context.Context, groupID string) ([]group.MemberProfile, error) {
	r.mu.RLock()
	members := append([]group.Member(nil), r.members[groupID]...)
	r.mu.RUnlock()

	out := make([]group.MemberProfile, 0, len(members))
	for _, member := range members {
		item := group.MemberProfile{Member: member}
		if r.users != nil {
			if profile, ok := r.users.profile(member.UserID); ok {
				item.UserName = profile.Name
				item.UserEmail = profile.Email
				item.AvatarURL = profile.AvatarURL
			}
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *GroupRepository) ListMembershipsByUser(_ context.Context, userID string) ([]group.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]group.Member, 0)
	for _, groupID := range r.order {
		for _, member := range r.members[groupID] {
			if member.UserID == userID {
				out = append(out, member)
				break
			}
		}
	}
	return out, nil
}

func (r *GroupRepository) hasMemberLocked(groupID, userID string) bool {
	for _, member := range r.members[groupID] {
		if member.UserID == userID {
			return true
		}
	}
	return false
}
