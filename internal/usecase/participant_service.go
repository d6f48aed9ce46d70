package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/league-season/internal/domain/referee"
	"github.com/riskibarqy/league-season/internal/domain/team"
	"github.com/riskibarqy/league-season/internal/platform/id"
	"github.com/riskibarqy/league-season/internal/platform/logging"
)

type RegisterTeamInput struct {
	ID     string
	Name   string
	Short  string
	Active bool
}

type RegisterRefereeInput struct {
	ID     string
	Name   string
	Level  string
	Active bool
}

// ParticipantService registers the teams and referees that league seasons
// draw from.
type ParticipantService struct {
	teamRepo    team.Repository
	refereeRepo referee.Repository
	ids         id.Generator
	logger      *logging.Logger
}

func NewParticipantService(teamRepo team.Repository, refereeRepo referee.Repository, ids id.Generator, logger *logging.Logger) *ParticipantService {
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ParticipantService{
		teamRepo:    teamRepo,
		refereeRepo: refereeRepo,
		ids:         ids,
		logger:      logger,
	}
}

func (s *ParticipantService) RegisterTeam(ctx context.Context, input RegisterTeamInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ParticipantService.RegisterTeam")
	defer span.End()

	item := team.Team{
		ID:     strings.TrimSpace(input.ID),
		Name:   strings.TrimSpace(input.Name),
		Short:  strings.TrimSpace(input.Short),
		Active: input.Active,
	}
	if item.ID == "" {
		item.ID = s.ids.NewID("team")
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, classify("register team", err)
	}

	if err := s.teamRepo.Upsert(ctx, item); err != nil {
		return team.Team{}, classify("upsert team", err)
	}

	s.logger.InfoContext(ctx, "team registered", "team_id", item.ID, "active", item.Active)
	return item, nil
}

func (s *ParticipantService) ListTeams(ctx context.Context) ([]team.Team, error) {
	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, classify("list teams", err)
	}
	return items, nil
}

func (s *ParticipantService) RegisterReferee(ctx context.Context, input RegisterRefereeInput) (referee.Referee, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ParticipantService.RegisterReferee")
	defer span.End()

	level, err := referee.ParseLevel(input.Level)
	if err != nil {
		return referee.Referee{}, classify("register referee", err)
	}

	item := referee.Referee{
		ID:            strings.TrimSpace(input.ID),
		Name:          strings.TrimSpace(input.Name),
		Qualification: level,
		Active:        input.Active,
	}
	if item.ID == "" {
		item.ID = s.ids.NewID("ref")
	}
	if err := item.Validate(); err != nil {
		return referee.Referee{}, classify("register referee", err)
	}

	if err := s.refereeRepo.Upsert(ctx, item); err != nil {
		return referee.Referee{}, classify("upsert referee", err)
	}

	s.logger.InfoContext(ctx, "referee registered", "referee_id", item.ID, "level", item.Qualification.String())
	return item, nil
}

func (s *ParticipantService) ListActiveReferees(ctx context.Context) ([]referee.Referee, error) {
	items, err := s.refereeRepo.ListActive(ctx)
	if err != nil {
		return nil, classify("list referees", err)
	}
	return items, nil
}

func (s *ParticipantService) GetTeam(ctx context.Context, teamID string) (team.Team, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, classify("get team", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	return item, nil
}
