package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/riskibarqy/league-season/internal/domain/referee"
)

type RefereeRepository struct {
	mu    sync.RWMutex
	items map[string]referee.Referee
}

func NewRefereeRepository(referees []referee.Referee) *RefereeRepository {
	items := make(map[string]referee.Referee, len(referees))
	for _, item := range referees {
		items[item.ID] = item
	}

	return &RefereeRepository{items: items}
}

func (r *RefereeRepository) ListActive(_ context.Context) ([]referee.Referee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]referee.Referee, 0, len(r.items))
	for _, item := range r.items {
		if item.Active {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *RefereeRepository) GetByID(_ context.Context, refereeID string) (referee.Referee, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[refereeID]
	return item, ok, nil
}

func (r *RefereeRepository) Upsert(_ context.Context, item referee.Referee) error {
	refereeID := strings.TrimSpace(item.ID)
	if refereeID == "" {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[refereeID] = item
	return nil
}
