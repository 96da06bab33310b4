package usecase

import (
	"errors"
	"testing"

	"github.com/riskibarqy/prediction-league/internal/domain/user"
	"github.com/riskibarqy/prediction-league/internal/infrastructure/repository/memory"
)

func TestUserService_List(t *testing.T) {
	t.Parallel()

	service := NewUserService(memory.NewUserRepository(memory.SeedUsers("hash", fixedNow)...))

	players, err := service.List(t.Context(), ListUsersInput{Role: user.RolePlayer})
	if err != nil {
		t.Fatalf("list players: %v", err)
	}
	if len(players) != 2 {
		t.Fatalf("expected 2 players, got %d", len(players))
	}

	searched, err := service.List(t.Context(), ListUsersInput{Search: "GROUP_ADMIN@"})
	if err != nil {
		t.Fatalf("search users: %v", err)
	}
	if len(searched) != 1 || searched[0].ID != memory.UserIDGroupAdmin {
		t.Fatalf("unexpected search result: %+v", searched)
	}

	if _, err := service.List(t.Context(), ListUsersInput{Role: "superuser"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown role, got %v", err)
	}
}
