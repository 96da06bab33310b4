package match

import "context"

type Repository interface {
	Create(ctx context.Context, match Match) error
	Update(ctx context.Context, match Match) error
	// Upsert inserts or replaces by id. Used by fixture imports.
	Upsert(ctx context.Context, match Match) error
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	// List returns matches ordered by date, time, then id.
	List(ctx context.Context, filter ListFilter) ([]Match, error)
}
