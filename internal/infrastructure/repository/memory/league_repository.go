package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/riskibarqy/league-season/internal/domain/league"
)

type LeagueRepository struct {
	mu      sync.RWMutex
	items   map[string]league.League
	orders  []string
	seasons map[int]league.Season
}

func NewLeagueRepository(leagues []league.League, seasons []league.Season) *LeagueRepository {
	items := make(map[string]league.League, len(leagues))
	orders := make([]string, 0, len(leagues))
	for _, l := range leagues {
		if _, ok := items[l.ID]; !ok {
			orders = append(orders, l.ID)
		}
		items[l.ID] = l
	}

	bySeason := make(map[int]league.Season, len(seasons))
	for _, s := range seasons {
		bySeason[s.Year] = s
	}

	return &LeagueRepository{
		items:   items,
		orders:  orders,
		seasons: bySeason,
	}
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[leagueID]
	if !ok {
		return league.League{}, false, nil
	}

	return l, true, nil
}

func (r *LeagueRepository) GetByName(_ context.Context, name string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.orders {
		if strings.EqualFold(r.items[id].Name, strings.TrimSpace(name)) {
			return r.items[id], true, nil
		}
	}
	return league.League{}, false, nil
}

func (r *LeagueRepository) Create(_ context.Context, item league.League) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ID]; !ok {
		r.orders = append(r.orders, item.ID)
	}
	r.items[item.ID] = item
	return nil
}

func (r *LeagueRepository) ListSeasons(_ context.Context) ([]league.Season, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.Season, 0, len(r.seasons))
	for _, s := range r.seasons {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out, nil
}

func (r *LeagueRepository) GetSeason(_ context.Context, year int) (league.Season, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.seasons[year]
	return s, ok, nil
}

func (r *LeagueRepository) CreateSeason(_ context.Context, item league.Season) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seasons[item.Year] = item
	return nil
}
