package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/league-season/internal/config"
	"github.com/riskibarqy/league-season/internal/domain/fixture"
	"github.com/riskibarqy/league-season/internal/domain/league"
	"github.com/riskibarqy/league-season/internal/domain/leagueseason"
	"github.com/riskibarqy/league-season/internal/domain/referee"
	"github.com/riskibarqy/league-season/internal/domain/team"
	"github.com/riskibarqy/league-season/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/league-season/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-season/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/league-season/internal/interfaces/httpapi"
	"github.com/riskibarqy/league-season/internal/platform/id"
	"github.com/riskibarqy/league-season/internal/platform/logging"
	"github.com/riskibarqy/league-season/internal/platform/resilience"
	"github.com/riskibarqy/league-season/internal/usecase"
)

type repositories struct {
	league       league.Repository
	team         team.Repository
	referee      referee.Repository
	leagueSeason leagueseason.Repository
	fixture      fixture.Repository
	db           *sqlx.DB
}

func (r repositories) close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Server is the assembled HTTP service and the resources it owns.
type Server struct {
	HTTP  *http.Server
	repos repositories
}

// Close releases storage resources. The HTTP server is shut down by the caller.
func (s *Server) Close() error {
	return s.repos.close()
}

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	leagueSvc := usecase.NewLeagueService(repos.league, logger)
	participantSvc := usecase.NewParticipantService(repos.team, repos.referee, id.NewUUIDGenerator(), logger)
	seasonSvc := usecase.NewSeasonService(usecase.SeasonRepositories{
		League:       repos.league,
		LeagueSeason: repos.leagueSeason,
		Team:         repos.team,
		Referee:      repos.referee,
		Fixture:      repos.fixture,
	}, usecase.SeasonServiceConfig{
		RefereeRules: cfg.RefereeRules,
		HorizonDays:  cfg.ScheduleHorizonDays,
		BulkWorkers:  cfg.BulkScheduleWorkers,
	}, logger)

	handler := httpapi.NewHandler(leagueSvc, participantSvc, seasonSvc, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterOptions{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitRPS:       cfg.RateLimitRPS,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	return &Server{
		HTTP: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		repos: repos,
	}, nil
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	var repos repositories

	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return repositories{}, err
		}
		if cfg.DBSeedOnStart {
			if err := postgres.BootstrapSeed(ctx, db); err != nil {
				_ = db.Close()
				return repositories{}, fmt.Errorf("bootstrap seed: %w", err)
			}
		}

		breaker := resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
			Enabled:          cfg.DBCircuitEnabled,
			FailureThreshold: cfg.DBCircuitFailureCount,
			OpenTimeout:      cfg.DBCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.DBCircuitHalfOpenMaxReq,
		})
		repos = repositories{
			league:       postgres.NewLeagueRepository(db, breaker),
			team:         postgres.NewTeamRepository(db, breaker),
			referee:      postgres.NewRefereeRepository(db, breaker),
			leagueSeason: postgres.NewLeagueSeasonRepository(db, breaker),
			fixture:      postgres.NewFixtureRepository(db, breaker),
			db:           db,
		}
		logger.InfoContext(ctx, "storage ready", "driver", config.StoragePostgres, "db_name", dbNameFromURL(cfg.DBURL), "seeded", cfg.DBSeedOnStart)
	case config.StorageMemory, "":
		var teamRepo *memory.TeamRepository
		var seasons []leagueseason.LeagueSeason
		if cfg.DBSeedOnStart {
			teamRepo = memory.NewTeamRepository(memory.SeedTeams())
			seasons = memory.SeedLeagueSeasons()
			repos.league = memory.NewLeagueRepository(memory.SeedLeagues(), memory.SeedSeasons())
			repos.referee = memory.NewRefereeRepository(memory.SeedReferees())
		} else {
			teamRepo = memory.NewTeamRepository(nil)
			repos.league = memory.NewLeagueRepository(nil, nil)
			repos.referee = memory.NewRefereeRepository(nil)
		}
		repos.team = teamRepo
		repos.leagueSeason = memory.NewLeagueSeasonRepository(seasons, teamRepo)
		repos.fixture = memory.NewFixtureRepository(nil)
		logger.InfoContext(ctx, "storage ready", "driver", config.StorageMemory, "seeded", cfg.DBSeedOnStart)
	default:
		return repositories{}, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}

	if cfg.CacheEnabled {
		repos.league = cache.NewLeagueRepository(repos.league, cfg.CacheTTL)
		repos.team = cache.NewTeamRepository(repos.team, cfg.CacheTTL)
		repos.referee = cache.NewRefereeRepository(repos.referee, cfg.CacheTTL)
	}

	return repos, nil
}
