package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/riskibarqy/league-season/internal/domain/league"
	"github.com/riskibarqy/league-season/internal/domain/referee"
	"github.com/riskibarqy/league-season/internal/domain/team"
	basecache "github.com/riskibarqy/league-season/internal/platform/cache"
)

// lookup caches the answer of a GetBy call, including "not found".
type lookup[T any] struct {
	value  T
	exists bool
}

type LeagueRepository struct {
	next    league.Repository
	lists   *basecache.Store[[]league.League]
	items   *basecache.Store[lookup[league.League]]
	seasons *basecache.Store[lookup[league.Season]]
}

func NewLeagueRepository(next league.Repository, ttl time.Duration) *LeagueRepository {
	return &LeagueRepository{
		next:    next,
		lists:   basecache.NewStore[[]league.League](ttl),
		items:   basecache.NewStore[lookup[league.League]](ttl),
		seasons: basecache.NewStore[lookup[league.Season]](ttl),
	}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	items, err := r.lists.GetOrLoad(ctx, "league:list", r.next.List)
	if err != nil {
		return nil, err
	}
	return append([]league.League(nil), items...), nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	cached, err := r.items.GetOrLoad(ctx, "league:id:"+leagueID, func(ctx context.Context) (lookup[league.League], error) {
		item, exists, err := r.next.GetByID(ctx, leagueID)
		return lookup[league.League]{value: item, exists: exists}, err
	})
	if err != nil {
		return league.League{}, false, err
	}
	return cached.value, cached.exists, nil
}

// GetByName backs the duplicate check on create, so it always reads through.
func (r *LeagueRepository) GetByName(ctx context.Context, name string) (league.League, bool, error) {
	return r.next.GetByName(ctx, name)
}

func (r *LeagueRepository) Create(ctx context.Context, item league.League) error {
	if err := r.next.Create(ctx, item); err != nil {
		return err
	}
	r.lists.Delete(ctx, "league:list")
	r.items.Delete(ctx, "league:id:"+item.ID)
	return nil
}

func (r *LeagueRepository) ListSeasons(ctx context.Context) ([]league.Season, error) {
	return r.next.ListSeasons(ctx)
}

func (r *LeagueRepository) GetSeason(ctx context.Context, year int) (league.Season, bool, error) {
	cached, err := r.seasons.GetOrLoad(ctx, seasonKey(year), func(ctx context.Context) (lookup[league.Season], error) {
		item, exists, err := r.next.GetSeason(ctx, year)
		return lookup[league.Season]{value: item, exists: exists}, err
	})
	if err != nil {
		return league.Season{}, false, err
	}
	return cached.value, cached.exists, nil
}

func (r *LeagueRepository) CreateSeason(ctx context.Context, item league.Season) error {
	if err := r.next.CreateSeason(ctx, item); err != nil {
		return err
	}
	r.seasons.Delete(ctx, seasonKey(item.Year))
	return nil
}

func seasonKey(year int) string {
	return "season:" + strconv.Itoa(year)
}

type TeamRepository struct {
	next  team.Repository
	lists *basecache.Store[[]team.Team]
	items *basecache.Store[lookup[team.Team]]
}

func NewTeamRepository(next team.Repository, ttl time.Duration) *TeamRepository {
	return &TeamRepository{
		next:  next,
		lists: basecache.NewStore[[]team.Team](ttl),
		items: basecache.NewStore[lookup[team.Team]](ttl),
	}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	items, err := r.lists.GetOrLoad(ctx, "team:list", r.next.List)
	if err != nil {
		return nil, err
	}
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, teamID string) (team.Team, bool, error) {
	cached, err := r.items.GetOrLoad(ctx, "team:id:"+teamID, func(ctx context.Context) (lookup[team.Team], error) {
		item, exists, err := r.next.GetByID(ctx, teamID)
		return lookup[team.Team]{value: item, exists: exists}, err
	})
	if err != nil {
		return team.Team{}, false, err
	}
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) Upsert(ctx context.Context, item team.Team) error {
	if err := r.next.Upsert(ctx, item); err != nil {
		return err
	}
	r.lists.Delete(ctx, "team:list")
	r.items.Delete(ctx, "team:id:"+item.ID)
	return nil
}

// RefereeRepository caches the active pool read by every scheduling run.
type RefereeRepository struct {
	next   referee.Repository
	active *basecache.Store[[]referee.Referee]
	items  *basecache.Store[lookup[referee.Referee]]
}

func NewRefereeRepository(next referee.Repository, ttl time.Duration) *RefereeRepository {
	return &RefereeRepository{
		next:   next,
		active: basecache.NewStore[[]referee.Referee](ttl),
		items:  basecache.NewStore[lookup[referee.Referee]](ttl),
	}
}

func (r *RefereeRepository) ListActive(ctx context.Context) ([]referee.Referee, error) {
	items, err := r.active.GetOrLoad(ctx, "referee:active", r.next.ListActive)
	if err != nil {
		return nil, err
	}
	return append([]referee.Referee(nil), items...), nil
}

func (r *RefereeRepository) GetByID(ctx context.Context, refereeID string) (referee.Referee, bool, error) {
	cached, err := r.items.GetOrLoad(ctx, "referee:id:"+refereeID, func(ctx context.Context) (lookup[referee.Referee], error) {
		item, exists, err := r.next.GetByID(ctx, refereeID)
		return lookup[referee.Referee]{value: item, exists: exists}, err
	})
	if err != nil {
		return referee.Referee{}, false, err
	}
	return cached.value, cached.exists, nil
}

func (r *RefereeRepository) Upsert(ctx context.Context, item referee.Referee) error {
	if err := r.next.Upsert(ctx, item); err != nil {
		return err
	}
	r.active.Delete(ctx, "referee:active")
	r.items.Delete(ctx, "referee:id:"+item.ID)
	return nil
}
