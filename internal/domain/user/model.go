package user

import (
	"errors"
	"strings"
	"time"
)

const (
	RolePlayer        = "player"
	RoleGroupAdmin    = "group_admin"
	RolePlatformAdmin = "platform_admin"
)

// ErrEmailTaken is returned by repositories when the email is already registered.
var ErrEmailTaken = errors.New("email already registered")

// User is a registered player. PasswordHash never leaves the service layer.
type User struct {
	ID           string
	Email        string
	Name         string
	Role         string
	AvatarURL    string
	PasswordHash string
	CreatedAt    time.Time
}

func IsValidRole(role string) bool {
	switch role {
	case RolePlayer, RoleGroupAdmin, RolePlatformAdmin:
		return true
	default:
		return false
	}
}

// IsAdminRole reports roles allowed to manage matches.
func IsAdminRole(role string) bool {
	return role == RoleGroupAdmin || role == RolePlatformAdmin
}

type ListFilter struct {
	Search string
	Role   string
}

// Matches applies the filter the way every store implementation must.
func (f ListFilter) Matches(u User) bool {
	if f.Role != "" && u.Role != f.Role {
		return false
	}
	search := strings.ToLower(strings.TrimSpace(f.Search))
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(u.Name), search) ||
		strings.Contains(strings.ToLower(u.Email), search)
}
