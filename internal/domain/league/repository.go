package league

import "context"

// Repository describes league and season persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]League, error)
	GetByID(ctx context.Context, leagueID string) (League, bool, error)
	GetByName(ctx context.Context, name string) (League, bool, error)
	Create(ctx context.Context, item League) error

	ListSeasons(ctx context.Context) ([]Season, error)
	GetSeason(ctx context.Context, year int) (Season, bool, error)
	CreateSeason(ctx context.Context, item Season) error
}
