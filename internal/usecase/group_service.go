package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/prediction-league/internal/domain/group"
	idgen "github.com/riskibarqy/prediction-league/internal/platform/id"
)

const (
	GroupFilterMine  = "mine"
	GroupFilterAll   = "all"
	GroupFilterAdmin = "admin"
)

const (
	defaultInviteCodeLength      = 8
	defaultInviteCodeMaxAttempts = 5
)

type GroupServiceConfig struct {
	InviteCodeLength      int
	InviteCodeMaxAttempts int
	// InviteLinkBaseURL prefixes /join/<code>. Empty leaves InviteLink unset.
	InviteLinkBaseURL string
}

type CreateGroupInput struct {
	OwnerUserID   string
	Name          string
	Description   string
	ScoringSystem string
}

type ListGroupsInput struct {
	ViewerUserID string
	Filter       string
	Search       string
}

type AddMemberInput struct {
	GroupID string
	UserID  string
	IsAdmin bool
	Points  int
}

// GroupView is a group shaped for one viewer.
type GroupView struct {
	Group  group.Group
	Viewer group.ViewerContext
}

type GroupService struct {
	groups  group.Repository
	idGen   idgen.Generator
	codeGen idgen.CodeGenerator
	cfg     GroupServiceConfig
	now     func() time.Time
}

func NewGroupService(groups group.Repository, idGen idgen.Generator, codeGen idgen.CodeGenerator, cfg GroupServiceConfig) *GroupService {
	if cfg.InviteCodeLength <= 0 {
		cfg.InviteCodeLength = defaultInviteCodeLength
	}
	if cfg.InviteCodeMaxAttempts <= 0 {
		cfg.InviteCodeMaxAttempts = defaultInviteCodeMaxAttempts
	}
	cfg.InviteLinkBaseURL = strings.TrimRight(strings.TrimSpace(cfg.InviteLinkBaseURL), "/")

	return &GroupService{
		groups:  groups,
		idGen:   idGen,
		codeGen: codeGen,
		cfg:     cfg,
		now:     time.Now,
	}
}

// CreateGroup stores the group together with the owner's admin membership.
// Invite code collisions are retried up to InviteCodeMaxAttempts times.
func (s *GroupService) CreateGroup(ctx context.Context, input CreateGroupInput) (view GroupView, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.CreateGroup")
	defer func() { endUsecaseSpan(span, err) }()

	input.OwnerUserID = strings.TrimSpace(input.OwnerUserID)
	input.Name = strings.TrimSpace(input.Name)
	input.Description = strings.TrimSpace(input.Description)
	input.ScoringSystem = strings.ToLower(strings.TrimSpace(input.ScoringSystem))
	if input.OwnerUserID == "" {
		return GroupView{}, fmt.Errorf("%w: owner user id is required", ErrInvalidInput)
	}
	if input.Name == "" {
		return GroupView{}, fmt.Errorf("%w: group name is required", ErrInvalidInput)
	}
	if input.ScoringSystem == "" {
		input.ScoringSystem = group.ScoringClassic
	}
	if !group.IsValidScoringSystem(input.ScoringSystem) {
		return GroupView{}, fmt.Errorf("%w: invalid scoring system %q", ErrInvalidInput, input.ScoringSystem)
	}

	groupID, err := s.idGen.NewID()
	if err != nil {
		return GroupView{}, fmt.Errorf("generate group id: %w", err)
	}

	now := s.now().UTC()
	owner := group.Member{
		GroupID:  groupID,
		UserID:   input.OwnerUserID,
		JoinedAt: now,
		IsAdmin:  true,
	}

	for attempt := 0; attempt < s.cfg.InviteCodeMaxAttempts; attempt++ {
		code, err := s.codeGen.NewCode(s.cfg.InviteCodeLength)
		if err != nil {
			return GroupView{}, fmt.Errorf("generate invite code: %w", err)
		}

		_, taken, err := s.groups.GetByInviteCode(ctx, code)
		if err != nil {
			return GroupView{}, fmt.Errorf("check invite code: %w", err)
		}
		if taken {
			continue
		}

		item := group.Group{
			ID:            groupID,
			Name:          input.Name,
			Description:   input.Description,
			AdminID:       input.OwnerUserID,
			PlayerCount:   1,
			InviteCode:    code,
			InviteLink:    s.inviteLink(code),
			ScoringSystem: input.ScoringSystem,
			Status:        group.StatusActive,
			CreatedAt:     now,
		}
		stored, err := s.groups.CreateWithOwner(ctx, item, owner)
		if errors.Is(err, group.ErrInviteCodeTaken) {
			continue
		}
		if err != nil {
			return GroupView{}, fmt.Errorf("create group: %w", err)
		}

		return GroupView{
			Group:  stored,
			Viewer: group.ResolveContext(stored, input.OwnerUserID, []group.Member{owner}),
		}, nil
	}

	return GroupView{}, fmt.Errorf("%w: could not allocate a unique invite code after %d attempts", ErrConflict, s.cfg.InviteCodeMaxAttempts)
}

func (s *GroupService) ListGroups(ctx context.Context, input ListGroupsInput) (views []GroupView, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.ListGroups")
	defer func() { endUsecaseSpan(span, err) }()

	input.ViewerUserID = strings.TrimSpace(input.ViewerUserID)
	input.Filter = strings.ToLower(strings.TrimSpace(input.Filter))
	if input.ViewerUserID == "" {
		return nil, fmt.Errorf("%w: viewer user id is required", ErrInvalidInput)
	}

	filter := group.ListFilter{Search: strings.TrimSpace(input.Search)}
	switch input.Filter {
	case "", GroupFilterMine:
		filter.MemberUserID = input.ViewerUserID
	case GroupFilterAdmin:
		filter.AdminUserID = input.ViewerUserID
	case GroupFilterAll:
	default:
		return nil, fmt.Errorf("%w: filter must be one of mine, all, admin", ErrInvalidInput)
	}

	items, err := s.groups.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	memberships, err := s.groups.ListMembershipsByUser(ctx, input.ViewerUserID)
	if err != nil {
		return nil, fmt.Errorf("list viewer memberships: %w", err)
	}

	views = make([]GroupView, 0, len(items))
	for _, item := range items {
		views = append(views, GroupView{
			Group:  item,
			Viewer: group.ResolveContext(item, input.ViewerUserID, memberships),
		})
	}
	return views, nil
}

func (s *GroupService) GetGroup(ctx context.Context, viewerUserID, groupID string) (view GroupView, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.GetGroup")
	defer func() { endUsecaseSpan(span, err) }()

	viewerUserID = strings.TrimSpace(viewerUserID)
	groupID = strings.TrimSpace(groupID)
	if groupID == "" {
		return GroupView{}, fmt.Errorf("%w: group id is required", ErrInvalidInput)
	}

	item, err := s.getGroup(ctx, groupID)
	if err != nil {
		return GroupView{}, err
	}
	return s.viewFor(ctx, item, viewerUserID)
}

// JoinByInviteCode adds the viewer to the group owning code. Joining a group
// the viewer already belongs to succeeds without changes.
func (s *GroupService) JoinByInviteCode(ctx context.Context, viewerUserID, inviteCode string) (view GroupView, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.JoinByInviteCode")
	defer func() { endUsecaseSpan(span, err) }()

	viewerUserID = strings.TrimSpace(viewerUserID)
	inviteCode = group.NormalizeInviteCode(inviteCode)
	if viewerUserID == "" {
		return GroupView{}, fmt.Errorf("%w: viewer user id is required", ErrInvalidInput)
	}
	if inviteCode == "" {
		return GroupView{}, fmt.Errorf("%w: invite code is required", ErrInvalidInput)
	}

	item, exists, err := s.groups.GetByInviteCode(ctx, inviteCode)
	if err != nil {
		return GroupView{}, fmt.Errorf("get group by invite code: %w", err)
	}
	if !exists {
		return GroupView{}, fmt.Errorf("%w: invalid invite code", ErrNotFound)
	}

	if _, err := s.addMember(ctx, group.Member{
		GroupID:  item.ID,
		UserID:   viewerUserID,
		JoinedAt: s.now().UTC(),
	}); err != nil {
		return GroupView{}, err
	}

	// Reload so the response carries the refreshed player count.
	item, err = s.getGroup(ctx, item.ID)
	if err != nil {
		return GroupView{}, err
	}
	return s.viewFor(ctx, item, viewerUserID)
}

func (s *GroupService) AddMember(ctx context.Context, input AddMemberInput) (member group.Member, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.AddMember")
	defer func() { endUsecaseSpan(span, err) }()

	input.GroupID = strings.TrimSpace(input.GroupID)
	input.UserID = strings.TrimSpace(input.UserID)
	if input.GroupID == "" || input.UserID == "" {
		return group.Member{}, fmt.Errorf("%w: group id and user id are required", ErrInvalidInput)
	}
	if input.Points < 0 {
		return group.Member{}, fmt.Errorf("%w: points must be >= 0", ErrInvalidInput)
	}

	return s.addMember(ctx, group.Member{
		GroupID:  input.GroupID,
		UserID:   input.UserID,
		JoinedAt: s.now().UTC(),
		Points:   input.Points,
		IsAdmin:  input.IsAdmin,
	})
}

func (s *GroupService) ListMembers(ctx context.Context, groupID string) (members []group.MemberProfile, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.ListMembers")
	defer func() { endUsecaseSpan(span, err) }()

	groupID = strings.TrimSpace(groupID)
	if groupID == "" {
		return nil, fmt.Errorf("%w: group id is required", ErrInvalidInput)
	}
	if _, err := s.getGroup(ctx, groupID); err != nil {
		return nil, err
	}

	members, err = s.groups.ListMembers(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("list group members: %w", err)
	}
	if members == nil {
		members = []group.MemberProfile{}
	}
	return members, nil
}

func (s *GroupService) Ranking(ctx context.Context, groupID string) (ranked []group.RankedMember, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GroupService.Ranking")
	defer func() { endUsecaseSpan(span, err) }()

	members, err := s.ListMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return group.Rank(members), nil
}

func (s *GroupService) addMember(ctx context.Context, member group.Member) (group.Member, error) {
	stored, _, err := s.groups.AddMember(ctx, member)
	if errors.Is(err, group.ErrGroupNotFound) {
		return group.Member{}, fmt.Errorf("%w: group not found", ErrNotFound)
	}
	if err != nil {
		return group.Member{}, fmt.Errorf("add group member: %w", err)
	}
	return stored, nil
}

func (s *GroupService) getGroup(ctx context.Context, groupID string) (group.Group, error) {
	item, exists, err := s.groups.GetByID(ctx, groupID)
	if err != nil {
		return group.Group{}, fmt.Errorf("get group by id: %w", err)
	}
	if !exists {
		return group.Group{}, fmt.Errorf("%w: group not found", ErrNotFound)
	}
	return item, nil
}

func (s *GroupService) viewFor(ctx context.Context, item group.Group, viewerUserID string) (GroupView, error) {
	if viewerUserID == "" {
		return GroupView{Group: item}, nil
	}
	memberships, err := s.groups.ListMembershipsByUser(ctx, viewerUserID)
	if err != nil {
		return GroupView{}, fmt.Errorf("list viewer memberships: %w", err)
	}
	return GroupView{
		Group:  item,
		Viewer: group.ResolveContext(item, viewerUserID, memberships),
	}, nil
}

func (s *GroupService) inviteLink(code string) string {
	if s.cfg.InviteLinkBaseURL == "" {
		return ""
	}
	return s.cfg.InviteLinkBaseURL + "/join/" + code
}
