package group

import (
	"errors"
	"strings"
	"time"
)

const (
	ScoringClassic  = "classic"
	ScoringExtended = "extended"
	ScoringSimple   = "simple"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

var (
	// ErrGroupNotFound is returned by membership writes against an unknown group.
	ErrGroupNotFound = errors.New("group not found")
	// ErrInviteCodeTaken is returned when another group already owns the invite code.
	ErrInviteCodeTaken = errors.New("invite code already in use")
)

// Group is a prediction league. PlayerCount always equals its membership cardinality.
type Group struct {
	ID            string
	Name          string
	Description   string
	AdminID       string
	PlayerCount   int
	InviteCode    string
	InviteLink    string
	ScoringSystem string
	Status        string
	CreatedAt     time.Time
}

// Member is one (group, user) membership row. Seq is the store insertion order.
type Member struct {
	GroupID  string
	UserID   string
	JoinedAt time.Time
	Points   int
	IsAdmin  bool
	Seq      int64
}

// MemberProfile is a membership joined with the user's public fields.
type MemberProfile struct {
	Member
	UserName  string
	UserEmail string
	AvatarURL string
}

type RankedMember struct {
	MemberProfile
	Position int
}

type ViewerContext struct {
	IsMember bool
	IsAdmin  bool
}

type ListFilter struct {
	// MemberUserID restricts results to groups the user belongs to.
	MemberUserID string
	// AdminUserID restricts results to groups the user owns.
	AdminUserID string
	Search      string
}

func (f ListFilter) MatchesName(name string) bool {
	search := strings.ToLower(strings.TrimSpace(f.Search))
	return search == "" || strings.Contains(strings.ToLower(name), search)
}

func IsValidScoringSystem(value string) bool {
	switch value {
	case ScoringClassic, ScoringExtended, ScoringSimple:
		return true
	default:
		return false
	}
}

func IsValidStatus(value string) bool {
	return value == StatusActive || value == StatusInactive
}

func NormalizeInviteCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
