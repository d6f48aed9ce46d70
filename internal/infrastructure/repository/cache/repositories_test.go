package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/league-season/internal/domain/league"
	"github.com/riskibarqy/league-season/internal/domain/referee"
	"github.com/riskibarqy/league-season/internal/domain/team"
	leaguemock "github.com/riskibarqy/league-season/internal/mocks/domain/league"
	refereemock "github.com/riskibarqy/league-season/internal/mocks/domain/referee"
	teammock "github.com/riskibarqy/league-season/internal/mocks/domain/team"
)

func TestTeamRepository_CachesLookupsUntilUpsert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := teammock.NewRepository(t)
	lions := team.Team{ID: "lions", Name: "Lions", Active: true}
	next.On("GetByID", mock.Anything, "lions").Return(lions, true, nil).Twice()
	next.On("GetByID", mock.Anything, "ghost").Return(team.Team{}, false, nil).Once()
	next.On("Upsert", mock.Anything, lions).Return(nil).Once()

	repo := NewTeamRepository(next, time.Minute)
	for range 3 {
		if got, ok, err := repo.GetByID(ctx, "lions"); err != nil || !ok || got.ID != "lions" {
			t.Fatalf("get lions: %+v %v %v", got, ok, err)
		}
		if _, ok, err := repo.GetByID(ctx, "ghost"); err != nil || ok {
			t.Fatalf("expected cached miss for ghost, got ok=%v err=%v", ok, err)
		}
	}

	if err := repo.Upsert(ctx, lions); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if _, _, err := repo.GetByID(ctx, "lions"); err != nil {
		t.Fatalf("get lions after upsert: %v", err)
	}
}

func TestLeagueRepository_ErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := leaguemock.NewRepository(t)
	boom := errors.New("db down")
	next.On("List", mock.Anything).Return(nil, boom).Once()
	next.On("List", mock.Anything).Return([]league.League{{ID: "premier", Name: "Premier"}}, nil).Once()

	repo := NewLeagueRepository(next, time.Minute)
	if _, err := repo.List(ctx); !errors.Is(err, boom) {
		t.Fatalf("expected db error, got %v", err)
	}
	for range 2 {
		items, err := repo.List(ctx)
		if err != nil || len(items) != 1 {
			t.Fatalf("list: %+v %v", items, err)
		}
	}
}

func TestRefereeRepository_ActivePoolInvalidatedOnUpsert(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := refereemock.NewRepository(t)
	ref := referee.Referee{ID: "ref-1", Name: "One", Qualification: referee.LevelNational, Active: true}
	next.On("ListActive", mock.Anything).Return([]referee.Referee{ref}, nil).Once()
	next.On("Upsert", mock.Anything, mock.Anything).Return(nil).Once()
	next.On("ListActive", mock.Anything).Return(nil, nil).Once()

	repo := NewRefereeRepository(next, time.Minute)
	if got, _ := repo.ListActive(ctx); len(got) != 1 {
		t.Fatalf("expected one active referee, got %d", len(got))
	}
	if got, _ := repo.ListActive(ctx); len(got) != 1 {
		t.Fatalf("expected cached active pool, got %d", len(got))
	}

	ref.Active = false
	if err := repo.Upsert(ctx, ref); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if got, _ := repo.ListActive(ctx); len(got) != 0 {
		t.Fatalf("expected empty active pool after deactivation, got %d", len(got))
	}
}
