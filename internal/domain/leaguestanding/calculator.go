package leaguestanding

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-season/internal/domain/fixture"
	"github.com/riskibarqy/league-season/internal/domain/policy"
)

type options struct {
	roster []string
	names  map[string]string
}

type Option func(*options)

// WithRoster adds an empty row for every listed team that has not played yet.
func WithRoster(teamIDs []string) Option {
	return func(o *options) {
		o.roster = append(o.roster, teamIDs...)
	}
}

// WithTeamNames supplies the display names the alphabetical tie-breaker
// sorts by. Teams missing from names sort by their ID.
func WithTeamNames(names map[string]string) Option {
	return func(o *options) {
		if o.names == nil {
			o.names = make(map[string]string, len(names))
		}
		for id, name := range names {
			o.names[id] = name
		}
	}
}

// Compute builds the ranked table from the Played fixtures in fixtures; other
// statuses are ignored. A Played fixture without a usable result fails the
// whole computation with fixture.ErrInvalidResult. Compute is pure: it keeps
// no state and does not modify its input.
func Compute(fixtures []fixture.Fixture, sp policy.ScorePolicy, opts ...Option) ([]Row, error) {
	if err := sp.Validate(); err != nil {
		return nil, err
	}
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	played, err := playedFixtures(fixtures)
	if err != nil {
		return nil, err
	}

	rows := make(map[string]*Row)
	row := func(teamID string) *Row {
		r, ok := rows[teamID]
		if !ok {
			r = &Row{TeamID: teamID}
			rows[teamID] = r
		}
		return r
	}
	for _, id := range cfg.roster {
		if id != "" {
			row(id)
		}
	}

	for _, f := range played {
		home, away := outcomes(f)
		row(f.HomeTeamID).record(f.Result.HomeGoals, f.Result.AwayGoals, points(sp, home), home)
		row(f.AwayTeamID).record(f.Result.AwayGoals, f.Result.HomeGoals, points(sp, away), away)
	}

	ids := make([]string, 0, len(rows))
	for id := range rows {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	r := ranker{rows: rows, names: cfg.names, played: played, policy: sp}
	ordered := r.order(ids, sp.TieBreakers())

	out := make([]Row, 0, len(ordered))
	for i, id := range ordered {
		item := *rows[id]
		item.Rank = i + 1
		out = append(out, item)
	}
	return out, nil
}

// playedFixtures validates and orders the Played fixtures chronologically so
// the Form column does not depend on input order.
func playedFixtures(fixtures []fixture.Fixture) ([]fixture.Fixture, error) {
	out := make([]fixture.Fixture, 0, len(fixtures))
	for _, f := range fixtures {
		if !f.IsPlayed() {
			continue
		}
		if f.Result == nil {
			return nil, errors.Wrapf(fixture.ErrInvalidResult, "fixture=%s is played but has no result", f.ID)
		}
		if f.HomeTeamID == "" || f.AwayTeamID == "" || f.HomeTeamID == f.AwayTeamID {
			return nil, errors.Wrapf(fixture.ErrInvalidResult, "fixture=%s has invalid teams", f.ID)
		}
		if err := f.ValidateResult(*f.Result); err != nil {
			return nil, err
		}
		out = append(out, f)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].ScheduledAt.Equal(out[j].ScheduledAt) {
			return out[i].ScheduledAt.Before(out[j].ScheduledAt)
		}
		if out[i].Round != out[j].Round {
			return out[i].Round < out[j].Round
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// outcomes returns the W/D/L letter for home and away.
func outcomes(f fixture.Fixture) (byte, byte) {
	r := f.Result
	switch {
	case r.Forfeit && r.ForfeitWinnerTeamID == f.HomeTeamID:
		return 'W', 'L'
	case r.Forfeit:
		return 'L', 'W'
	case r.HomeGoals > r.AwayGoals:
		return 'W', 'L'
	case r.HomeGoals < r.AwayGoals:
		return 'L', 'W'
	default:
		return 'D', 'D'
	}
}

func points(sp policy.ScorePolicy, outcome byte) int {
	switch outcome {
	case 'W':
		return sp.PointsWin
	case 'D':
		return sp.PointsDraw
	default:
		return sp.PointsLoss
	}
}

type ranker struct {
	rows   map[string]*Row
	names  map[string]string
	played []fixture.Fixture
	policy policy.ScorePolicy
}

// order sorts ids by the first criterion, then recursively breaks every tied
// group with the remaining criteria. Whatever is still level at the end is
// ordered by team ID.
func (r ranker) order(ids []string, criteria []policy.TieBreaker) []string {
	if len(ids) <= 1 {
		return ids
	}
	if len(criteria) == 0 {
		out := append([]string(nil), ids...)
		sort.Strings(out)
		return out
	}

	head, rest := criteria[0], criteria[1:]
	if head == policy.TieBreakAlphabetical {
		return r.alphabetical(ids)
	}

	keys := r.keys(head, ids)
	out := append([]string(nil), ids...)
	sort.SliceStable(out, func(i, j int) bool {
		if keys[out[i]] != keys[out[j]] {
			return keys[out[i]] > keys[out[j]]
		}
		return out[i] < out[j]
	})

	ranked := make([]string, 0, len(out))
	for start := 0; start < len(out); {
		end := start + 1
		for end < len(out) && keys[out[end]] == keys[out[start]] {
			end++
		}
		ranked = append(ranked, r.order(out[start:end], rest)...)
		start = end
	}
	return ranked
}

// alphabetical orders ids by case-folded team name, then by ID.
func (r ranker) alphabetical(ids []string) []string {
	out := append([]string(nil), ids...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := r.sortName(out[i]), r.sortName(out[j])
		if a != b {
			return a < b
		}
		return out[i] < out[j]
	})
	return out
}

func (r ranker) sortName(id string) string {
	if name := strings.TrimSpace(r.names[id]); name != "" {
		return strings.ToLower(name)
	}
	return strings.ToLower(id)
}

// keys scores every team for one criterion; higher ranks first.
func (r ranker) keys(criterion policy.TieBreaker, ids []string) map[string]int {
	out := make(map[string]int, len(ids))
	if criterion == policy.TieBreakHeadToHead {
		return r.headToHead(ids)
	}
	for _, id := range ids {
		row := r.rows[id]
		switch criterion {
		case policy.TieBreakPoints:
			out[id] = row.Points
		case policy.TieBreakGoalDifference:
			out[id] = row.GoalDifference
		case policy.TieBreakGoalsFor:
			out[id] = row.GoalsFor
		case policy.TieBreakWins:
			out[id] = row.Won
		}
	}
	return out
}

// headToHead is the points table of the fixtures played among ids only.
func (r ranker) headToHead(ids []string) map[string]int {
	group := make(map[string]struct{}, len(ids))
	out := make(map[string]int, len(ids))
	for _, id := range ids {
		group[id] = struct{}{}
		out[id] = 0
	}
	for _, f := range r.played {
		_, home := group[f.HomeTeamID]
		_, away := group[f.AwayTeamID]
		if !home || !away {
			continue
		}
		h, a := outcomes(f)
		out[f.HomeTeamID] += points(r.policy, h)
		out[f.AwayTeamID] += points(r.policy, a)
	}
	return out
}
