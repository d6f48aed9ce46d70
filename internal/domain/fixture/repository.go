package fixture

import "context"

// Repository is the fixture side of the storage boundary.
type Repository interface {
	// SaveFixtures replaces every fixture of the season with items.
	SaveFixtures(ctx context.Context, seasonID string, items []Fixture) error
	// SaveAssignments persists only the referee fields of items.
	SaveAssignments(ctx context.Context, items []Fixture) error
	UpdateResult(ctx context.Context, item Fixture) error
	ListBySeason(ctx context.Context, seasonID string) ([]Fixture, error)
	ListPlayed(ctx context.Context, seasonID string) ([]Fixture, error)
}
