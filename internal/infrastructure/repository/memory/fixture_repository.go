package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/league-season/internal/domain/fixture"
)

var ErrFixtureNotFound = errors.New("fixture not found")

type FixtureRepository struct {
	mu               sync.RWMutex
	fixturesBySeason map[string][]fixture.Fixture
}

func NewFixtureRepository(fixtures []fixture.Fixture) *FixtureRepository {
	fixturesBySeason := make(map[string][]fixture.Fixture)
	for _, item := range fixtures {
		fixturesBySeason[item.SeasonID] = append(fixturesBySeason[item.SeasonID], item.Clone())
	}

	return &FixtureRepository{fixturesBySeason: fixturesBySeason}
}

func (r *FixtureRepository) SaveFixtures(_ context.Context, seasonID string, items []fixture.Fixture) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(items) == 0 {
		delete(r.fixturesBySeason, seasonID)
		return nil
	}
	stored := fixture.CloneAll(items)
	for i := range stored {
		stored[i].SeasonID = seasonID
	}
	r.fixturesBySeason[seasonID] = stored
	return nil
}

func (r *FixtureRepository) SaveAssignments(_ context.Context, items []fixture.Fixture) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		idx := r.indexOf(item.SeasonID, item.ID)
		if idx < 0 {
			return errors.Wrapf(ErrFixtureNotFound, "fixture=%s", item.ID)
		}
		stored := &r.fixturesBySeason[item.SeasonID][idx]
		stored.MainRefereeID = item.MainRefereeID
		stored.AssistantRefereeIDs = append([]string(nil), item.AssistantRefereeIDs...)
	}
	return nil
}

func (r *FixtureRepository) UpdateResult(_ context.Context, item fixture.Fixture) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(item.SeasonID, item.ID)
	if idx < 0 {
		return errors.Wrapf(ErrFixtureNotFound, "fixture=%s", item.ID)
	}
	stored := &r.fixturesBySeason[item.SeasonID][idx]
	next := item.Clone()
	stored.Status = next.Status
	stored.Result = next.Result
	stored.ScheduledAt = next.ScheduledAt
	return nil
}

func (r *FixtureRepository) ListBySeason(_ context.Context, seasonID string) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return sortedFixtures(fixture.CloneAll(r.fixturesBySeason[seasonID])), nil
}

func (r *FixtureRepository) ListPlayed(_ context.Context, seasonID string) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fixture.Fixture, 0, len(r.fixturesBySeason[seasonID]))
	for _, item := range r.fixturesBySeason[seasonID] {
		if item.IsPlayed() {
			out = append(out, item.Clone())
		}
	}
	return sortedFixtures(out), nil
}

func (r *FixtureRepository) indexOf(seasonID, fixtureID string) int {
	for idx, item := range r.fixturesBySeason[seasonID] {
		if item.ID == fixtureID {
			return idx
		}
	}
	return -1
}

func sortedFixtures(items []fixture.Fixture) []fixture.Fixture {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Round != items[j].Round {
			return items[i].Round < items[j].Round
		}
		if !items[i].ScheduledAt.Equal(items[j].ScheduledAt) {
			return items[i].ScheduledAt.Before(items[j].ScheduledAt)
		}
		return items[i].ID < items[j].ID
	})
	return items
}
