package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/league-season/internal/domain/league"
	"github.com/riskibarqy/league-season/internal/platform/logging"
)

type LeagueService struct {
	leagueRepo league.Repository
	logger     *logging.Logger
}

func NewLeagueService(leagueRepo league.Repository, logger *logging.Logger) *LeagueService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeagueService{
		leagueRepo: leagueRepo,
		logger:     logger,
	}
}

// CreateLeague registers a league. Names are unique; the league ID is derived
// from the name.
func (s *LeagueService) CreateLeague(ctx context.Context, name string) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.CreateLeague")
	defer span.End()

	name = strings.TrimSpace(name)
	item := league.League{ID: league.Slug(name), Name: name}
	if err := item.Validate(); err != nil {
		return league.League{}, classify("create league", err)
	}

	_, exists, err := s.leagueRepo.GetByName(ctx, name)
	if err != nil {
		return league.League{}, classify("get league by name", err)
	}
	if exists {
		return league.League{}, fmt.Errorf("%w: league name %q already exists", ErrConflict, name)
	}
	_, exists, err = s.leagueRepo.GetByID(ctx, item.ID)
	if err != nil {
		return league.League{}, classify("get league", err)
	}
	if exists {
		return league.League{}, fmt.Errorf("%w: league id %s already exists", ErrConflict, item.ID)
	}

	if err := s.leagueRepo.Create(ctx, item); err != nil {
		return league.League{}, classify("create league", err)
	}

	s.logger.InfoContext(ctx, "league created", "league_id", item.ID)
	return item, nil
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, classify("list leagues", err)
	}

	return leagues, nil
}

func (s *LeagueService) GetLeague(ctx context.Context, leagueID string) (league.League, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return league.League{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	item, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, classify("get league", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	return item, nil
}

// CreateSeason registers a season year. Creating an existing year returns it
// unchanged.
func (s *LeagueService) CreateSeason(ctx context.Context, year int) (league.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.CreateSeason")
	defer span.End()

	item := league.Season{Year: year}
	if err := item.Validate(); err != nil {
		return league.Season{}, classify("create season", err)
	}

	existing, exists, err := s.leagueRepo.GetSeason(ctx, year)
	if err != nil {
		return league.Season{}, classify("get season", err)
	}
	if exists {
		return existing, nil
	}

	if err := s.leagueRepo.CreateSeason(ctx, item); err != nil {
		return league.Season{}, classify("create season", err)
	}

	s.logger.InfoContext(ctx, "season created", "year", year)
	return item, nil
}

func (s *LeagueService) ListSeasons(ctx context.Context) ([]league.Season, error) {
	seasons, err := s.leagueRepo.ListSeasons(ctx)
	if err != nil {
		return nil, classify("list seasons", err)
	}

	return seasons, nil
}
