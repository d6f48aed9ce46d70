package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/league-season/internal/domain/leagueseason"
	"github.com/riskibarqy/league-season/internal/domain/team"
)

var ErrLeagueSeasonNotFound = errors.New("league season not found")

// LeagueSeasonRepository keeps seasons without fixtures. Roster entries are
// resolved against the team registry on FindTeams so activity changes made
// after a team joined are visible to the scheduler.
type LeagueSeasonRepository struct {
	mu    sync.RWMutex
	items map[leagueseason.Key]leagueseason.LeagueSeason
	teams *TeamRepository
	now   func() time.Time
}

func NewLeagueSeasonRepository(seasons []leagueseason.LeagueSeason, teams *TeamRepository) *LeagueSeasonRepository {
	items := make(map[leagueseason.Key]leagueseason.LeagueSeason, len(seasons))
	for _, item := range seasons {
		stored := item.Clone()
		stored.Fixtures = nil
		items[item.Key] = stored
	}

	return &LeagueSeasonRepository{items: items, teams: teams, now: time.Now}
}

func (r *LeagueSeasonRepository) Create(_ context.Context, item leagueseason.LeagueSeason) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.Key]; ok {
		return errors.Wrapf(leagueseason.ErrAlreadyExists, "league season=%s", item.Key)
	}
	stored := item.Clone()
	stored.Fixtures = nil
	now := r.now().UTC()
	stored.CreatedAt, stored.UpdatedAt = now, now
	r.items[item.Key] = stored
	return nil
}

func (r *LeagueSeasonRepository) GetByKey(_ context.Context, key leagueseason.Key) (leagueseason.LeagueSeason, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[key]
	if !ok {
		return leagueseason.LeagueSeason{}, false, nil
	}
	return item.Clone(), true, nil
}

func (r *LeagueSeasonRepository) ListByYear(_ context.Context, year int) ([]leagueseason.LeagueSeason, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]leagueseason.LeagueSeason, 0)
	for key, item := range r.items {
		if key.Year == year {
			out = append(out, item.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key.LeagueID < out[j].Key.LeagueID })
	return out, nil
}

func (r *LeagueSeasonRepository) Save(_ context.Context, item leagueseason.LeagueSeason) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[item.Key]
	if !ok {
		return errors.Wrapf(ErrLeagueSeasonNotFound, "league season=%s", item.Key)
	}
	stored := item.Clone()
	stored.Fixtures = nil
	stored.CreatedAt = current.CreatedAt
	stored.UpdatedAt = r.now().UTC()
	r.items[item.Key] = stored
	return nil
}

func (r *LeagueSeasonRepository) FindTeams(_ context.Context, key leagueseason.Key) ([]team.Team, error) {
	r.mu.RLock()
	item, ok := r.items[key]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrLeagueSeasonNotFound, "league season=%s", key)
	}

	if r.teams == nil {
		return append([]team.Team(nil), item.Teams...), nil
	}
	return r.teams.lookup(team.IDs(item.Teams)), nil
}
