package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/league-season/internal/config"
	"github.com/riskibarqy/league-season/internal/domain/leagueseason"
	"github.com/riskibarqy/league-season/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-season/internal/platform/logging"
)

func memoryConfig(seed, cache bool) config.Config {
	return config.Config{
		HTTPAddr:      ":0",
		StorageDriver: config.StorageMemory,
		DBSeedOnStart: seed,
		CacheEnabled:  cache,
		CacheTTL:      time.Minute,
	}
}

func TestBuildRepositories_MemorySeeded(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos, err := buildRepositories(ctx, memoryConfig(true, true), logging.NewNop())
	if err != nil {
		t.Fatalf("buildRepositories: %v", err)
	}

	leagues, err := repos.league.List(ctx)
	if err != nil {
		t.Fatalf("list leagues: %v", err)
	}
	if len(leagues) != 2 {
		t.Fatalf("expected 2 seeded leagues, got %d", len(leagues))
	}

	_, exists, err := repos.leagueSeason.GetByKey(ctx, leagueseason.Key{LeagueID: memory.LeagueIDPremierLeague, Year: memory.SeedYear})
	if err != nil || !exists {
		t.Fatalf("expected seeded league season, exists=%v err=%v", exists, err)
	}
	if err := repos.close(); err != nil {
		t.Fatalf("close memory repositories: %v", err)
	}
}

func TestBuildRepositories_MemoryEmpty(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repos, err := buildRepositories(ctx, memoryConfig(false, false), logging.NewNop())
	if err != nil {
		t.Fatalf("buildRepositories: %v", err)
	}

	teams, err := repos.team.List(ctx)
	if err != nil {
		t.Fatalf("list teams: %v", err)
	}
	if len(teams) != 0 {
		t.Fatalf("expected no teams, got %d", len(teams))
	}
}

func TestBuildRepositories_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{name: "unknown driver", cfg: config.Config{StorageDriver: "mysql"}, want: "unsupported storage driver"},
		{name: "postgres without url", cfg: config.Config{StorageDriver: config.StoragePostgres}, want: "DB_URL is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildRepositories(context.Background(), tt.cfg, logging.NewNop())
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestNewHTTPServer(t *testing.T) {
	t.Parallel()

	if _, err := NewHTTPServer(context.Background(), config.Config{StorageDriver: config.StorageMemory}, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty addr")
	}

	srv, err := NewHTTPServer(context.Background(), memoryConfig(true, false), logging.NewNop())
	if err != nil {
		t.Fatalf("NewHTTPServer: %v", err)
	}
	defer srv.Close()

	rec := httptest.NewRecorder()
	srv.HTTP.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/seasons/2026/league-seasons", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), memory.LeagueIDLiga1Indonesia) {
		t.Fatalf("expected seeded season in body: %s", rec.Body.String())
	}
}
