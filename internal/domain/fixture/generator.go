package fixture

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-season/internal/domain/policy"
	"github.com/riskibarqy/league-season/internal/domain/team"
)

var (
	ErrInsufficientTeams    = errors.New("insufficient active teams")
	ErrSchedulingConstraint = errors.New("scheduling constraint cannot be satisfied")
	ErrInvalidRoster        = errors.New("invalid roster")
	ErrMissingStartDate     = errors.New("start date is required")
	ErrScheduleMismatch     = errors.New("schedule is not a valid round robin")
)

// Round describes one matchday. ByeTeamID is set when the roster is odd.
type Round struct {
	Number       int
	Date         time.Time
	ByeTeamID    string
	FixtureCount int
}

// Schedule is the output of Generate.
type Schedule struct {
	Fixtures []Fixture
	Rounds   []Round
}

// ForSeason stamps the season identity onto every fixture and namespaces the
// fixture IDs with it.
func (s Schedule) ForSeason(seasonID string) Schedule {
	out := Schedule{
		Fixtures: make([]Fixture, 0, len(s.Fixtures)),
		Rounds:   append([]Round(nil), s.Rounds...),
	}
	for _, f := range s.Fixtures {
		f = f.Clone()
		f.SeasonID = seasonID
		f.ID = seasonID + ":" + f.ID
		out.Fixtures = append(out.Fixtures, f)
	}
	return out
}

type pairing struct {
	home string
	away string
}

// Generate builds a round-robin schedule using the circle method. Only active
// teams take part. Teams are ordered by ID first so the output depends on the
// roster's content and never on its order. Either the whole schedule is
// returned or an error; there is no partial result.
func Generate(teams []team.Team, gp policy.GamePolicy, start time.Time) (Schedule, error) {
	if err := gp.Validate(); err != nil {
		return Schedule{}, err
	}
	if start.IsZero() {
		return Schedule{}, ErrMissingStartDate
	}

	ids, err := rosterIDs(teams)
	if err != nil {
		return Schedule{}, err
	}
	if len(ids) < 2 {
		return Schedule{}, errors.Wrapf(ErrInsufficientTeams, "need at least 2, got %d", len(ids))
	}

	slots := ids
	if len(slots)%2 != 0 {
		// empty slot is the bye
		slots = append(slots, "")
	}
	cycle := circlePairings(slots)
	roundsPerCycle := len(cycle)

	totalRounds := roundsPerCycle * gp.MeetingsPerPair
	expected := gp.MeetingsPerPair * len(ids) * (len(ids) - 1) / 2
	out := Schedule{
		Fixtures: make([]Fixture, 0, expected),
		Rounds:   make([]Round, 0, totalRounds),
	}

	limit := start.AddDate(0, 0, gp.Horizon())
	lastPlayed := make(map[string]time.Time, len(ids))
	var prevDate time.Time

	for leg := 0; leg < gp.MeetingsPerPair; leg++ {
		flip := leg%2 == 1
		for r, pairs := range cycle {
			number := leg*roundsPerCycle + r + 1
			round := Round{Number: number}

			playing := make([]pairing, 0, len(pairs))
			for _, p := range pairs {
				if flip {
					p.home, p.away = p.away, p.home
				}
				if p.home == "" || p.away == "" {
					round.ByeTeamID = p.home + p.away
					continue
				}
				playing = append(playing, p)
			}

			date, err := nextRoundDate(start, prevDate, limit, gp.MinDaysBetweenMatches, playing, lastPlayed)
			if err != nil {
				return Schedule{}, errors.Wrapf(err, "round %d", number)
			}
			round.Date = date
			prevDate = date

			for _, p := range playing {
				out.Fixtures = append(out.Fixtures, Fixture{
					ID:          fixtureKey(number, p.home, p.away),
					Round:       number,
					HomeTeamID:  p.home,
					AwayTeamID:  p.away,
					ScheduledAt: date,
					Status:      StatusScheduled,
				})
				lastPlayed[p.home] = date
				lastPlayed[p.away] = date
			}
			round.FixtureCount = len(playing)
			out.Rounds = append(out.Rounds, round)
		}
	}

	return out, nil
}

func rosterIDs(teams []team.Team) ([]string, error) {
	seen := make(map[string]struct{}, len(teams))
	ids := make([]string, 0, len(teams))
	for _, t := range teams {
		id := strings.TrimSpace(t.ID)
		if id == "" {
			return nil, errors.Wrap(ErrInvalidRoster, "team id is required")
		}
		if _, dup := seen[id]; dup {
			return nil, errors.Wrapf(ErrInvalidRoster, "team %s listed twice", id)
		}
		seen[id] = struct{}{}
		if !t.Active {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// circlePairings keeps slot 0 fixed and rotates the rest one step per round.
// The fixed slot alternates venue so it does not always play at home.
func circlePairings(slots []string) [][]pairing {
	n := len(slots)
	rot := append([]string(nil), slots...)
	rounds := make([][]pairing, 0, n-1)
	for r := 0; r < n-1; r++ {
		round := make([]pairing, 0, n/2)
		for i := 0; i < n/2; i++ {
			p := pairing{home: rot[i], away: rot[n-1-i]}
			if i == 0 && r%2 == 1 {
				p.home, p.away = p.away, p.home
			}
			round = append(round, p)
		}
		rounds = append(rounds, round)

		last := rot[n-1]
		copy(rot[2:], rot[1:n-1])
		rot[1] = last
	}
	return rounds
}

// nextRoundDate returns the first day after prev (or start for the first
// round) on which every team in playing has rested at least minDays.
func nextRoundDate(start, prev, limit time.Time, minDays int, playing []pairing, lastPlayed map[string]time.Time) (time.Time, error) {
	candidate := start
	if !prev.IsZero() {
		candidate = prev.AddDate(0, 0, 1)
	}

	for !candidate.After(limit) {
		if restedOn(candidate, minDays, playing, lastPlayed) {
			return candidate, nil
		}
		candidate = candidate.AddDate(0, 0, 1)
	}

	return time.Time{}, errors.Wrapf(ErrSchedulingConstraint, "no date with %d rest days before %s", minDays, DateKey(limit))
}

func restedOn(day time.Time, minDays int, playing []pairing, lastPlayed map[string]time.Time) bool {
	for _, p := range playing {
		for _, id := range [2]string{p.home, p.away} {
			last, ok := lastPlayed[id]
			if !ok {
				continue
			}
			if day.Before(last.AddDate(0, 0, minDays)) {
				return false
			}
		}
	}
	return true
}

func fixtureKey(round int, home, away string) string {
	return fmt.Sprintf("r%03d-%s-vs-%s", round, home, away)
}

// CheckSchedule verifies the round-robin invariants of a fixture set: only
// roster teams, each unordered pair exactly meetingsPerPair times and no team
// twice in one round.
func CheckSchedule(fixtures []Fixture, teamIDs []string, meetingsPerPair int) error {
	roster := make(map[string]struct{}, len(teamIDs))
	for _, id := range teamIDs {
		roster[id] = struct{}{}
	}

	n := len(roster)
	want := meetingsPerPair * n * (n - 1) / 2
	if len(fixtures) != want {
		return errors.Wrapf(ErrScheduleMismatch, "expected %d fixtures, got %d", want, len(fixtures))
	}

	pairs := make(map[string]int, want)
	perRound := make(map[int]map[string]struct{})
	for _, f := range fixtures {
		if f.HomeTeamID == f.AwayTeamID {
			return errors.Wrapf(ErrScheduleMismatch, "fixture %s pairs %s with itself", f.ID, f.HomeTeamID)
		}
		for _, id := range [2]string{f.HomeTeamID, f.AwayTeamID} {
			if _, ok := roster[id]; !ok {
				return errors.Wrapf(ErrScheduleMismatch, "fixture %s uses unknown team %s", f.ID, id)
			}
			seen := perRound[f.Round]
			if seen == nil {
				seen = make(map[string]struct{})
				perRound[f.Round] = seen
			}
			if _, dup := seen[id]; dup {
				return errors.Wrapf(ErrScheduleMismatch, "team %s plays twice in round %d", id, f.Round)
			}
			seen[id] = struct{}{}
		}
		pairs[PairKey(f.HomeTeamID, f.AwayTeamID)]++
	}

	for key, count := range pairs {
		if count != meetingsPerPair {
			return errors.Wrapf(ErrScheduleMismatch, "pair %s meets %d times, want %d", key, count, meetingsPerPair)
		}
	}
	if len(pairs) != n*(n-1)/2 {
		return errors.Wrapf(ErrScheduleMismatch, "expected %d pairs, got %d", n*(n-1)/2, len(pairs))
	}
	return nil
}
