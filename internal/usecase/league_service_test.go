package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/league-season/internal/domain/league"
	leaguemock "github.com/riskibarqy/league-season/internal/mocks/domain/league"
	"github.com/stretchr/testify/mock"
)

func TestLeagueService_CreateLeague(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := leaguemock.NewRepository(t)
	service := NewLeagueService(repo, nil)

	repo.On("GetByName", ctx, "Premier Division").Return(league.League{}, false, nil).Once()
	repo.On("GetByID", ctx, "premier-division").Return(league.League{}, false, nil).Once()
	repo.On("Create", ctx, league.League{ID: "premier-division", Name: "Premier Division"}).Return(nil).Once()

	got, err := service.CreateLeague(ctx, "  Premier Division ")
	if err != nil {
		t.Fatalf("create league: %v", err)
	}
	if got.ID != "premier-division" {
		t.Fatalf("unexpected league id: %s", got.ID)
	}
}

func TestLeagueService_CreateLeague_Rejections(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := leaguemock.NewRepository(t)
	service := NewLeagueService(repo, nil)

	if _, err := service.CreateLeague(ctx, "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	repo.On("GetByName", ctx, "Premier").Return(league.League{ID: "premier", Name: "Premier"}, true, nil).Once()
	if _, err := service.CreateLeague(ctx, "Premier"); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestLeagueService_CreateSeason(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := leaguemock.NewRepository(t)
	service := NewLeagueService(repo, nil)

	if _, err := service.CreateSeason(ctx, 1949); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	repo.On("GetSeason", ctx, 2026).Return(league.Season{}, false, nil).Once()
	repo.On("CreateSeason", ctx, league.Season{Year: 2026}).Return(nil).Once()
	if _, err := service.CreateSeason(ctx, 2026); err != nil {
		t.Fatalf("create season: %v", err)
	}

	// existing year is a no-op
	repo.On("GetSeason", ctx, 2025).Return(league.Season{Year: 2025}, true, nil).Once()
	got, err := service.CreateSeason(ctx, 2025)
	if err != nil || got.Year != 2025 {
		t.Fatalf("expected existing season, got %+v %v", got, err)
	}
}

func TestLeagueService_ListLeagues_DependencyFailure(t *testing.T) {
	t.Parallel()

	repo := leaguemock.NewRepository(t)
	service := NewLeagueService(repo, nil)

	repo.On("List", mock.Anything).Return(nil, errors.New("connection refused")).Once()
	if _, err := service.ListLeagues(context.Background()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}
