package leagueseason

import (
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-season/internal/domain/fixture"
	"github.com/riskibarqy/league-season/internal/domain/league"
	"github.com/riskibarqy/league-season/internal/domain/policy"
	"github.com/riskibarqy/league-season/internal/domain/referee"
	"github.com/riskibarqy/league-season/internal/domain/team"
)

var (
	ErrInvalidLeagueSeason = errors.New("invalid league season")
	ErrAlreadyExists       = errors.New("league season already exists")
	ErrPolicyLocked        = errors.New("policies are locked once the season is scheduled")
	ErrScheduleExists      = errors.New("league season already has fixtures")
	ErrSeasonStarted       = errors.New("league season has started")
	ErrDuplicateTeamName   = errors.New("team name already used in league season")
)

// State is derived from the fixture statuses; it is never stored.
type State string

const (
	StateConfiguring State = "CONFIGURING"
	StateScheduled   State = "SCHEDULED"
	StateInProgress  State = "IN_PROGRESS"
	StateCompleted   State = "COMPLETED"
)

// Key identifies a league season. It is unique across the system.
type Key struct {
	LeagueID string
	Year     int
}

func (k Key) Validate() error {
	if strings.TrimSpace(k.LeagueID) == "" {
		return errors.Wrap(ErrInvalidLeagueSeason, "league id is required")
	}
	if err := (league.Season{Year: k.Year}).Validate(); err != nil {
		return err
	}
	return nil
}

// ID is the storage identity of the league season with this key.
func (k Key) ID() string {
	return fmt.Sprintf("%s-%d", k.LeagueID, k.Year)
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%d", k.LeagueID, k.Year)
}

// LeagueSeason owns its roster, referee pool and fixtures. Policies are
// replaced wholesale through ChangeGamePolicy and ChangeScorePolicy.
type LeagueSeason struct {
	Key         Key
	GamePolicy  policy.GamePolicy
	ScorePolicy policy.ScorePolicy
	StartDate   time.Time
	Teams       []team.Team
	RefereeIDs  []string
	Fixtures    []fixture.Fixture
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func New(key Key, gp policy.GamePolicy, sp policy.ScorePolicy, start time.Time) (LeagueSeason, error) {
	item := LeagueSeason{
		Key:         key,
		GamePolicy:  gp,
		ScorePolicy: sp,
		StartDate:   start,
	}
	if err := item.Validate(); err != nil {
		return LeagueSeason{}, err
	}
	return item, nil
}

func (s LeagueSeason) ID() string {
	return s.Key.ID()
}

func (s LeagueSeason) Validate() error {
	if err := s.Key.Validate(); err != nil {
		return err
	}
	if err := s.GamePolicy.Validate(); err != nil {
		return err
	}
	if err := s.ScorePolicy.Validate(); err != nil {
		return err
	}
	if s.StartDate.IsZero() {
		return errors.Wrap(ErrInvalidLeagueSeason, "start date is required")
	}
	return nil
}

func (s LeagueSeason) State() State {
	if len(s.Fixtures) == 0 {
		return StateConfiguring
	}

	started := false
	completed := true
	for _, f := range s.Fixtures {
		if !f.IsScheduled() {
			started = true
		}
		if !f.IsClosed() {
			completed = false
		}
	}

	switch {
	case completed:
		return StateCompleted
	case started:
		return StateInProgress
	default:
		return StateScheduled
	}
}

// AddTeam enters a team into the roster. An inactive team is a routine
// rejection and returns false without an error. Adding the same team twice is
// a no-op.
func (s *LeagueSeason) AddTeam(t team.Team) (bool, error) {
	if err := t.Validate(); err != nil {
		return false, err
	}
	if !t.Active {
		return false, nil
	}
	for _, existing := range s.Teams {
		if existing.ID == t.ID {
			return true, nil
		}
		if strings.EqualFold(strings.TrimSpace(existing.Name), strings.TrimSpace(t.Name)) {
			return false, errors.Wrapf(ErrDuplicateTeamName, "%q is already team %s", t.Name, existing.ID)
		}
	}
	if len(s.Fixtures) > 0 {
		return false, errors.Wrapf(ErrScheduleExists, "season=%s reset the schedule before adding teams", s.Key)
	}

	s.Teams = append(s.Teams, t)
	return true, nil
}

// AddReferee makes a referee available to this season. Inactive referees are
// rejected with false.
func (s *LeagueSeason) AddReferee(r referee.Referee) (bool, error) {
	if err := r.Validate(); err != nil {
		return false, err
	}
	if !r.Active {
		return false, nil
	}
	for _, id := range s.RefereeIDs {
		if id == r.ID {
			return true, nil
		}
	}
	s.RefereeIDs = append(s.RefereeIDs, r.ID)
	return true, nil
}

func (s *LeagueSeason) ChangeGamePolicy(gp policy.GamePolicy) error {
	if err := s.ensureConfiguring(); err != nil {
		return err
	}
	if err := gp.Validate(); err != nil {
		return err
	}
	s.GamePolicy = gp
	return nil
}

func (s *LeagueSeason) ChangeScorePolicy(sp policy.ScorePolicy) error {
	if err := s.ensureConfiguring(); err != nil {
		return err
	}
	if err := sp.Validate(); err != nil {
		return err
	}
	s.ScorePolicy = sp
	return nil
}

func (s LeagueSeason) ensureConfiguring() error {
	if state := s.State(); state != StateConfiguring {
		return errors.Wrapf(ErrPolicyLocked, "season=%s state=%s", s.Key, state)
	}
	return nil
}

// AttachSchedule sets the generated fixtures. It is the only way fixtures
// enter a season.
func (s *LeagueSeason) AttachSchedule(fixtures []fixture.Fixture) error {
	if len(s.Fixtures) > 0 {
		return errors.Wrapf(ErrScheduleExists, "season=%s", s.Key)
	}
	s.Fixtures = fixture.CloneAll(fixtures)
	return nil
}

// ResetSchedule drops all fixtures while none of them has been played,
// postponed or cancelled.
func (s *LeagueSeason) ResetSchedule() error {
	switch state := s.State(); state {
	case StateConfiguring:
		return nil
	case StateScheduled:
		s.Fixtures = nil
		return nil
	default:
		return errors.Wrapf(ErrSeasonStarted, "season=%s state=%s", s.Key, state)
	}
}

func (s LeagueSeason) ActiveTeams() []team.Team {
	return team.ActiveOnly(s.Teams)
}

// FindFixture returns the index of the fixture with the given ID, or -1.
func (s LeagueSeason) FindFixture(fixtureID string) int {
	for i := range s.Fixtures {
		if s.Fixtures[i].ID == fixtureID {
			return i
		}
	}
	return -1
}

func (s LeagueSeason) Clone() LeagueSeason {
	out := s
	out.Teams = append([]team.Team(nil), s.Teams...)
	out.RefereeIDs = append([]string(nil), s.RefereeIDs...)
	out.Fixtures = fixture.CloneAll(s.Fixtures)
	return out
}
