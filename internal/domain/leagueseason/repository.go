package leagueseason

import (
	"context"

	"github.com/riskibarqy/league-season/internal/domain/team"
)

// Repository stores league seasons without their fixtures; fixtures go
// through fixture.Repository.
type Repository interface {
	Create(ctx context.Context, item LeagueSeason) error
	GetByKey(ctx context.Context, key Key) (LeagueSeason, bool, error)
	ListByYear(ctx context.Context, year int) ([]LeagueSeason, error)
	Save(ctx context.Context, item LeagueSeason) error
	FindTeams(ctx context.Context, key Key) ([]team.Team, error)
}
