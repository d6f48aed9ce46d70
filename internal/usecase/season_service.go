package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/league-season/internal/domain/fixture"
	"github.com/riskibarqy/league-season/internal/domain/league"
	"github.com/riskibarqy/league-season/internal/domain/leagueseason"
	"github.com/riskibarqy/league-season/internal/domain/leaguestanding"
	"github.com/riskibarqy/league-season/internal/domain/policy"
	"github.com/riskibarqy/league-season/internal/domain/referee"
	"github.com/riskibarqy/league-season/internal/domain/team"
	"github.com/riskibarqy/league-season/internal/platform/keylock"
	"github.com/riskibarqy/league-season/internal/platform/logging"
)

// SeasonRepositories is the storage boundary of the season orchestrator.
type SeasonRepositories struct {
	League       league.Repository
	LeagueSeason leagueseason.Repository
	Team         team.Repository
	Referee      referee.Repository
	Fixture      fixture.Repository
}

type SeasonServiceConfig struct {
	RefereeRules referee.Rules
	// HorizonDays applies to game policies that do not set their own.
	HorizonDays int
	BulkWorkers int
}

func DefaultSeasonServiceConfig() SeasonServiceConfig {
	return SeasonServiceConfig{
		RefereeRules: referee.DefaultRules(),
		HorizonDays:  policy.DefaultHorizonDays,
		BulkWorkers:  4,
	}
}

// SeasonService runs the league-season lifecycle: roster, policies,
// scheduling, referee assignment, results and standings. Mutations of one
// league season are serialized; reads are not.
type SeasonService struct {
	repos  SeasonRepositories
	cfg    SeasonServiceConfig
	locks  *keylock.Map
	logger *logging.Logger
}

func NewSeasonService(repos SeasonRepositories, cfg SeasonServiceConfig, logger *logging.Logger) *SeasonService {
	defaults := DefaultSeasonServiceConfig()
	if cfg.BulkWorkers <= 0 {
		cfg.BulkWorkers = defaults.BulkWorkers
	}
	if cfg.HorizonDays <= 0 {
		cfg.HorizonDays = defaults.HorizonDays
	}
	if cfg.RefereeRules == (referee.Rules{}) {
		cfg.RefereeRules = defaults.RefereeRules
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &SeasonService{
		repos:  repos,
		cfg:    cfg,
		locks:  keylock.New(),
		logger: logger,
	}
}

type CreateLeagueSeasonInput struct {
	LeagueID              string
	Year                  int
	MeetingsPerPair       int
	MinDaysBetweenMatches int
	HorizonDays           int
	Score                 ScorePolicyInput
	StartDate             time.Time
}

type ScorePolicyInput struct {
	PointsWin   int
	PointsDraw  int
	PointsLoss  int
	TieBreakers []string
}

func (in ScorePolicyInput) build() (policy.ScorePolicy, error) {
	tbs, err := policy.ParseTieBreakers(strings.Join(in.TieBreakers, ","))
	if err != nil {
		return policy.ScorePolicy{}, err
	}
	return policy.NewScorePolicy(in.PointsWin, in.PointsDraw, in.PointsLoss, tbs...)
}

type GamePolicyInput struct {
	MeetingsPerPair       int
	MinDaysBetweenMatches int
	HorizonDays           int
}

func (in GamePolicyInput) build() (policy.GamePolicy, error) {
	gp, err := policy.NewGamePolicy(in.MeetingsPerPair, in.MinDaysBetweenMatches)
	if err != nil {
		return policy.GamePolicy{}, err
	}
	gp = gp.WithHorizon(in.HorizonDays)
	return gp, gp.Validate()
}

func (s *SeasonService) CreateLeagueSeason(ctx context.Context, input CreateLeagueSeasonInput) (leagueseason.LeagueSeason, error) {
	key := leagueseason.Key{LeagueID: strings.TrimSpace(input.LeagueID), Year: input.Year}
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.CreateLeagueSeason", seasonAttrs(key)...)
	defer span.End()

	if err := key.Validate(); err != nil {
		return leagueseason.LeagueSeason{}, classify("create league season", err)
	}
	gp, err := GamePolicyInput{
		MeetingsPerPair:       input.MeetingsPerPair,
		MinDaysBetweenMatches: input.MinDaysBetweenMatches,
		HorizonDays:           input.HorizonDays,
	}.build()
	if err != nil {
		return leagueseason.LeagueSeason{}, classify("create league season", err)
	}
	sp, err := input.Score.build()
	if err != nil {
		return leagueseason.LeagueSeason{}, classify("create league season", err)
	}

	_, exists, err := s.repos.League.GetByID(ctx, key.LeagueID)
	if err != nil {
		return leagueseason.LeagueSeason{}, classify("get league", err)
	}
	if !exists {
		return leagueseason.LeagueSeason{}, fmt.Errorf("%w: league=%s", ErrNotFound, key.LeagueID)
	}
	_, exists, err = s.repos.League.GetSeason(ctx, key.Year)
	if err != nil {
		return leagueseason.LeagueSeason{}, classify("get season", err)
	}
	if !exists {
		return leagueseason.LeagueSeason{}, fmt.Errorf("%w: season=%d", ErrNotFound, key.Year)
	}

	item, err := leagueseason.New(key, gp, sp, input.StartDate)
	if err != nil {
		return leagueseason.LeagueSeason{}, classify("create league season", err)
	}

	unlock, err := s.locks.Lock(ctx, key.String())
	if err != nil {
		return leagueseason.LeagueSeason{}, err
	}
	defer unlock()

	_, exists, err = s.repos.LeagueSeason.GetByKey(ctx, key)
	if err != nil {
		return leagueseason.LeagueSeason{}, classify("get league season", err)
	}
	if exists {
		return leagueseason.LeagueSeason{}, fmt.Errorf("%w: league season %s already exists", ErrConflict, key)
	}
	if err := s.repos.LeagueSeason.Create(ctx, item); err != nil {
		return leagueseason.LeagueSeason{}, classify("create league season", err)
	}

	s.logger.InfoContext(ctx, "league season created", "league_id", key.LeagueID, "year", key.Year)
	return item, nil
}

// GetLeagueSeason returns the season with its fixtures.
func (s *SeasonService) GetLeagueSeason(ctx context.Context, key leagueseason.Key) (leagueseason.LeagueSeason, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.GetLeagueSeason", seasonAttrs(key)...)
	defer span.End()

	return s.load(ctx, key)
}

func (s *SeasonService) ListLeagueSeasons(ctx context.Context, year int) ([]leagueseason.LeagueSeason, error) {
	items, err := s.repos.LeagueSeason.ListByYear(ctx, year)
	if err != nil {
		return nil, classify("list league seasons", err)
	}
	return items, nil
}

func (s *SeasonService) load(ctx context.Context, key leagueseason.Key) (leagueseason.LeagueSeason, error) {
	if err := key.Validate(); err != nil {
		return leagueseason.LeagueSeason{}, classify("load league season", err)
	}

	item, exists, err := s.repos.LeagueSeason.GetByKey(ctx, key)
	if err != nil {
		return leagueseason.LeagueSeason{}, classify("get league season", err)
	}
	if !exists {
		return leagueseason.LeagueSeason{}, fmt.Errorf("%w: league season=%s", ErrNotFound, key)
	}

	fixtures, err := s.repos.Fixture.ListBySeason(ctx, item.ID())
	if err != nil {
		return leagueseason.LeagueSeason{}, classify("list fixtures", err)
	}
	item.Fixtures = fixtures
	return item, nil
}

// mutate loads the season under its key lock and hands it to fn.
func (s *SeasonService) mutate(ctx context.Context, key leagueseason.Key, fn func(item *leagueseason.LeagueSeason) error) error {
	unlock, err := s.locks.Lock(ctx, key.String())
	if err != nil {
		return err
	}
	defer unlock()

	item, err := s.load(ctx, key)
	if err != nil {
		return err
	}
	return fn(&item)
}

// AddTeam enters a registered team into the season roster. It reports false
// for an inactive team.
func (s *SeasonService) AddTeam(ctx context.Context, key leagueseason.Key, teamID string) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.AddTeam", seasonAttrs(key)...)
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return false, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	added := false
	err := s.mutate(ctx, key, func(item *leagueseason.LeagueSeason) error {
		t, exists, err := s.repos.Team.GetByID(ctx, teamID)
		if err != nil {
			return classify("get team", err)
		}
		if !exists {
			return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
		}

		before := len(item.Teams)
		added, err = item.AddTeam(t)
		if err != nil {
			return classify("add team", err)
		}
		if len(item.Teams) == before {
			return nil
		}
		if err := s.repos.LeagueSeason.Save(ctx, *item); err != nil {
			return classify("save league season", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	if !added {
		s.logger.InfoContext(ctx, "inactive team rejected", "league_id", key.LeagueID, "year", key.Year, "team_id", teamID)
	}
	return added, nil
}

// AddReferee makes a registered referee available for assignment in the
// season. It reports false for an inactive referee.
func (s *SeasonService) AddReferee(ctx context.Context, key leagueseason.Key, refereeID string) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.AddReferee", seasonAttrs(key)...)
	defer span.End()

	refereeID = strings.TrimSpace(refereeID)
	if refereeID == "" {
		return false, fmt.Errorf("%w: referee id is required", ErrInvalidInput)
	}

	added := false
	err := s.mutate(ctx, key, func(item *leagueseason.LeagueSeason) error {
		r, exists, err := s.repos.Referee.GetByID(ctx, refereeID)
		if err != nil {
			return classify("get referee", err)
		}
		if !exists {
			return fmt.Errorf("%w: referee=%s", ErrNotFound, refereeID)
		}

		before := len(item.RefereeIDs)
		added, err = item.AddReferee(r)
		if err != nil {
			return classify("add referee", err)
		}
		if len(item.RefereeIDs) == before {
			return nil
		}
		if err := s.repos.LeagueSeason.Save(ctx, *item); err != nil {
			return classify("save league season", err)
		}
		return nil
	})
	return added, err
}

// ChangeScorePolicy replaces the score policy while the season is still being
// configured.
func (s *SeasonService) ChangeScorePolicy(ctx context.Context, key leagueseason.Key, input ScorePolicyInput) (leagueseason.LeagueSeason, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.ChangeScorePolicy", seasonAttrs(key)...)
	defer span.End()

	sp, err := input.build()
	if err != nil {
		return leagueseason.LeagueSeason{}, classify("change score policy", err)
	}

	var out leagueseason.LeagueSeason
	err = s.mutate(ctx, key, func(item *leagueseason.LeagueSeason) error {
		if err := item.ChangeScorePolicy(sp); err != nil {
			return classify("change score policy", err)
		}
		if err := s.repos.LeagueSeason.Save(ctx, *item); err != nil {
			return classify("save league season", err)
		}
		out = *item
		return nil
	})
	return out, err
}

// ChangeGamePolicy replaces the game policy while the season is still being
// configured.
func (s *SeasonService) ChangeGamePolicy(ctx context.Context, key leagueseason.Key, input GamePolicyInput) (leagueseason.LeagueSeason, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.ChangeGamePolicy", seasonAttrs(key)...)
	defer span.End()

	gp, err := input.build()
	if err != nil {
		return leagueseason.LeagueSeason{}, classify("change game policy", err)
	}

	var out leagueseason.LeagueSeason
	err = s.mutate(ctx, key, func(item *leagueseason.LeagueSeason) error {
		if err := item.ChangeGamePolicy(gp); err != nil {
			return classify("change game policy", err)
		}
		if err := s.repos.LeagueSeason.Save(ctx, *item); err != nil {
			return classify("save league season", err)
		}
		out = *item
		return nil
	})
	return out, err
}

type ScheduleResult struct {
	Key      leagueseason.Key
	Fixtures []fixture.Fixture
	Rounds   []fixture.Round
	Failures []referee.Failure
}

// ScheduleMatches generates the round-robin schedule for a configuring season,
// assigns referees and persists the fixtures. Generation is all or nothing;
// referee failures are reported per fixture.
func (s *SeasonService) ScheduleMatches(ctx context.Context, key leagueseason.Key) (ScheduleResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.ScheduleMatches", seasonAttrs(key)...)
	defer span.End()

	var out ScheduleResult
	err := s.mutate(ctx, key, func(item *leagueseason.LeagueSeason) error {
		if state := item.State(); state != leagueseason.StateConfiguring {
			return fmt.Errorf("%w: %w: season=%s state=%s", ErrConflict, leagueseason.ErrScheduleExists, key, state)
		}

		teams, err := s.repos.LeagueSeason.FindTeams(ctx, key)
		if err != nil {
			return classify("find teams", err)
		}

		gp := item.GamePolicy
		if gp.HorizonDays == 0 {
			gp = gp.WithHorizon(s.cfg.HorizonDays)
		}
		schedule, err := fixture.Generate(teams, gp, item.StartDate)
		if err != nil {
			return classify("generate fixtures", err)
		}
		schedule = schedule.ForSeason(item.ID())
		if err := fixture.CheckSchedule(schedule.Fixtures, team.IDs(team.ActiveOnly(teams)), gp.MeetingsPerPair); err != nil {
			return classify("verify schedule", err)
		}

		pool, err := s.refereePool(ctx, *item)
		if err != nil {
			return err
		}
		assignment := referee.Assign(schedule.Fixtures, pool, s.cfg.RefereeRules)
		if err := referee.CheckAssignments(assignment.Fixtures); err != nil {
			return classify("verify assignments", err)
		}

		if err := item.AttachSchedule(assignment.Fixtures); err != nil {
			return classify("attach schedule", err)
		}
		if err := s.repos.Fixture.SaveFixtures(ctx, item.ID(), item.Fixtures); err != nil {
			return classify("save fixtures", err)
		}

		out = ScheduleResult{
			Key:      key,
			Fixtures: item.Fixtures,
			Rounds:   schedule.Rounds,
			Failures: assignment.Failures,
		}
		return nil
	})
	if err != nil {
		return ScheduleResult{}, err
	}

	s.logger.InfoContext(ctx, "league season scheduled",
		"league_id", key.LeagueID,
		"year", key.Year,
		"fixtures", len(out.Fixtures),
		"rounds", len(out.Rounds),
		"referee_failures", len(out.Failures),
	)
	for _, failure := range out.Failures {
		s.logger.WarnContext(ctx, "fixture left without referee", "fixture_id", failure.FixtureID, "date", failure.Date, "error", failure.Err)
	}
	return out, nil
}

// refereePool snapshots the active referees attached to the season.
func (s *SeasonService) refereePool(ctx context.Context, item leagueseason.LeagueSeason) ([]referee.Referee, error) {
	active, err := s.repos.Referee.ListActive(ctx)
	if err != nil {
		return nil, classify("list referees", err)
	}

	attached := make(map[string]struct{}, len(item.RefereeIDs))
	for _, id := range item.RefereeIDs {
		attached[id] = struct{}{}
	}
	out := make([]referee.Referee, 0, len(item.RefereeIDs))
	for _, r := range active {
		if _, ok := attached[r.ID]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

// ResetSchedule discards the fixtures of a season that has not started, so
// the roster can change and the season can be scheduled again.
func (s *SeasonService) ResetSchedule(ctx context.Context, key leagueseason.Key) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.ResetSchedule", seasonAttrs(key)...)
	defer span.End()

	return s.mutate(ctx, key, func(item *leagueseason.LeagueSeason) error {
		if len(item.Fixtures) == 0 {
			return nil
		}
		if err := item.ResetSchedule(); err != nil {
			return classify("reset schedule", err)
		}
		if err := s.repos.Fixture.SaveFixtures(ctx, item.ID(), nil); err != nil {
			return classify("delete fixtures", err)
		}
		s.logger.InfoContext(ctx, "league season schedule reset", "league_id", key.LeagueID, "year", key.Year)
		return nil
	})
}

type AssignmentResult struct {
	Fixtures []fixture.Fixture
	Failures []referee.Failure
	Assigned int
}

// ReassignReferees reruns referee assignment for the fixtures that are still
// scheduled. Other fixtures keep their officials.
func (s *SeasonService) ReassignReferees(ctx context.Context, key leagueseason.Key) (AssignmentResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.ReassignReferees", seasonAttrs(key)...)
	defer span.End()

	var out AssignmentResult
	err := s.mutate(ctx, key, func(item *leagueseason.LeagueSeason) error {
		if len(item.Fixtures) == 0 {
			return fmt.Errorf("%w: season=%s has no fixtures", ErrUnprocessable, key)
		}

		pool, err := s.refereePool(ctx, *item)
		if err != nil {
			return err
		}
		assignment := referee.Assign(item.Fixtures, pool, s.cfg.RefereeRules)

		changed := make([]fixture.Fixture, 0, len(assignment.Fixtures))
		for _, f := range assignment.Fixtures {
			if f.IsScheduled() {
				changed = append(changed, f)
			}
		}
		if len(changed) > 0 {
			if err := s.repos.Fixture.SaveAssignments(ctx, changed); err != nil {
				return classify("save assignments", err)
			}
		}

		out = AssignmentResult{
			Fixtures: assignment.Fixtures,
			Failures: assignment.Failures,
			Assigned: assignment.Assigned,
		}
		return nil
	})
	return out, err
}

// ReportResult records the outcome of a scheduled or postponed fixture and
// marks it played.
func (s *SeasonService) ReportResult(ctx context.Context, key leagueseason.Key, fixtureID string, result fixture.Result) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.ReportResult", seasonAttrs(key)...)
	defer span.End()

	var out fixture.Fixture
	err := s.mutate(ctx, key, func(item *leagueseason.LeagueSeason) error {
		idx := item.FindFixture(fixtureID)
		if idx < 0 {
			return fmt.Errorf("%w: fixture=%s", ErrNotFound, fixtureID)
		}
		f := item.Fixtures[idx].Clone()

		switch fixture.NormalizeStatus(f.Status) {
		case fixture.StatusScheduled, fixture.StatusPostponed:
		default:
			return classify("report result", fmt.Errorf("%w: fixture=%s status=%s", fixture.ErrFixtureLocked, f.ID, f.Status))
		}
		if err := f.ValidateResult(result); err != nil {
			return classify("report result", err)
		}

		r := result
		f.Result = &r
		f.Status = fixture.StatusPlayed
		if err := s.repos.Fixture.UpdateResult(ctx, f); err != nil {
			return classify("update fixture result", err)
		}
		out = f
		return nil
	})
	if err != nil {
		return fixture.Fixture{}, err
	}

	s.logger.InfoContext(ctx, "fixture result reported", "fixture_id", out.ID, "home_goals", result.HomeGoals, "away_goals", result.AwayGoals, "forfeit", result.Forfeit)
	return out, nil
}

// SetFixtureStatus postpones, cancels or reinstates a fixture. Played is only
// reachable through ReportResult.
func (s *SeasonService) SetFixtureStatus(ctx context.Context, key leagueseason.Key, fixtureID, status string) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.SetFixtureStatus", seasonAttrs(key)...)
	defer span.End()

	target := fixture.NormalizeStatus(status)
	if !fixture.ValidStatus(target) || target == fixture.StatusPlayed {
		return fixture.Fixture{}, fmt.Errorf("%w: %w: status %q cannot be set directly", ErrInvalidInput, fixture.ErrInvalidStatus, status)
	}

	var out fixture.Fixture
	err := s.mutate(ctx, key, func(item *leagueseason.LeagueSeason) error {
		idx := item.FindFixture(fixtureID)
		if idx < 0 {
			return fmt.Errorf("%w: fixture=%s", ErrNotFound, fixtureID)
		}
		f := item.Fixtures[idx].Clone()

		current := fixture.NormalizeStatus(f.Status)
		if !statusTransitionAllowed(current, target) {
			return classify("set fixture status", fmt.Errorf("%w: fixture=%s %s -> %s", fixture.ErrFixtureLocked, f.ID, current, target))
		}
		if current == target {
			out = f
			return nil
		}

		f.Status = target
		if err := s.repos.Fixture.UpdateResult(ctx, f); err != nil {
			return classify("update fixture status", err)
		}
		out = f
		return nil
	})
	return out, err
}

func statusTransitionAllowed(from, to string) bool {
	if from == to {
		return true
	}
	switch from {
	case fixture.StatusScheduled:
		return to == fixture.StatusPostponed || to == fixture.StatusCancelled
	case fixture.StatusPostponed:
		return to == fixture.StatusScheduled || to == fixture.StatusCancelled
	default:
		return false
	}
}

// GetStandings computes the table from the played fixtures on every call, so
// a reported result is visible to the next read.
func (s *SeasonService) GetStandings(ctx context.Context, key leagueseason.Key) ([]leaguestanding.Row, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.GetStandings", seasonAttrs(key)...)
	defer span.End()

	if err := key.Validate(); err != nil {
		return nil, classify("get standings", err)
	}

	return s.computeStandings(ctx, key)
}

func (s *SeasonService) computeStandings(ctx context.Context, key leagueseason.Key) ([]leaguestanding.Row, error) {
	item, exists, err := s.repos.LeagueSeason.GetByKey(ctx, key)
	if err != nil {
		return nil, classify("get league season", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: league season=%s", ErrNotFound, key)
	}

	played, err := s.repos.Fixture.ListPlayed(ctx, item.ID())
	if err != nil {
		return nil, classify("list played fixtures", err)
	}

	rows, err := leaguestanding.Compute(played, item.ScorePolicy,
		leaguestanding.WithRoster(team.IDs(item.Teams)),
		leaguestanding.WithTeamNames(team.Names(item.Teams)),
	)
	if err != nil {
		if errors.Is(err, fixture.ErrInvalidResult) {
			s.logger.ErrorContext(ctx, "standings refused: played fixture without valid result", "league_id", key.LeagueID, "year", key.Year, "error", err)
			return nil, fmt.Errorf("%w: compute standings: %w", ErrDataIntegrity, err)
		}
		return nil, classify("compute standings", err)
	}
	return rows, nil
}

func (s *SeasonService) ListFixtures(ctx context.Context, key leagueseason.Key) ([]fixture.Fixture, error) {
	item, err := s.load(ctx, key)
	if err != nil {
		return nil, err
	}
	return item.Fixtures, nil
}

type TeamSchedule struct {
	TeamID   string
	Seasons  []leagueseason.Key
	Fixtures []fixture.Fixture
}

// TeamFixtures lists every season of the year the team plays in and its
// fixtures across them.
func (s *SeasonService) TeamFixtures(ctx context.Context, year int, teamID string) (TeamSchedule, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.TeamFixtures")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return TeamSchedule{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	seasons, err := s.repos.LeagueSeason.ListByYear(ctx, year)
	if err != nil {
		return TeamSchedule{}, classify("list league seasons", err)
	}
	for i := range seasons {
		fixtures, err := s.repos.Fixture.ListBySeason(ctx, seasons[i].ID())
		if err != nil {
			return TeamSchedule{}, classify("list fixtures", err)
		}
		seasons[i].Fixtures = fixtures
	}

	idx := leagueseason.NewIndex(seasons)
	return TeamSchedule{
		TeamID:   teamID,
		Seasons:  idx.SeasonsForTeam(teamID),
		Fixtures: idx.FixturesForTeam(teamID),
	}, nil
}
