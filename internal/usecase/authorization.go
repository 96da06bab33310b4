package usecase

import (
	"fmt"
	"slices"

	"github.com/riskibarqy/prediction-league/internal/domain/user"
)

// RoleGuard gates admin operations. A disabled guard admits every
// authenticated user.
type RoleGuard struct {
	enforce bool
}

func NewRoleGuard(enforce bool) RoleGuard {
	return RoleGuard{enforce: enforce}
}

func (g RoleGuard) Require(actor user.User, roles ...string) error {
	if actor.ID == "" {
		return fmt.Errorf("%w: authentication required", ErrUnauthenticated)
	}
	if !g.enforce || len(roles) == 0 {
		return nil
	}
	if slices.Contains(roles, actor.Role) {
		return nil
	}
	return fmt.Errorf("%w: role %q is not allowed", ErrUnauthorized, actor.Role)
}
