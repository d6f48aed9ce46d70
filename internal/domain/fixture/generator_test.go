package fixture

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-season/internal/domain/policy"
	"github.com/riskibarqy/league-season/internal/domain/team"
)

var seasonStart = time.Date(2026, 8, 1, 15, 0, 0, 0, time.UTC)

func rosterOf(ids ...string) []team.Team {
	out := make([]team.Team, 0, len(ids))
	for _, id := range ids {
		out = append(out, team.Team{ID: id, Name: "Team " + id, Active: true})
	}
	return out
}

func mustGamePolicy(t *testing.T, meetings, minDays int) policy.GamePolicy {
	t.Helper()
	gp, err := policy.NewGamePolicy(meetings, minDays)
	if err != nil {
		t.Fatalf("new game policy: %v", err)
	}
	return gp
}

func TestGenerate_PairCountsAndRounds(t *testing.T) {
	t.Parallel()

	for n := 2; n <= 9; n++ {
		for k := 1; k <= 3; k++ {
			n, k := n, k
			t.Run(fmt.Sprintf("n=%d/k=%d", n, k), func(t *testing.T) {
				t.Parallel()

				ids := make([]string, 0, n)
				for i := 0; i < n; i++ {
					ids = append(ids, fmt.Sprintf("t%02d", i))
				}

				got, err := Generate(rosterOf(ids...), mustGamePolicy(t, k, 0), seasonStart)
				if err != nil {
					t.Fatalf("generate: %v", err)
				}

				if want := k * n * (n - 1) / 2; len(got.Fixtures) != want {
					t.Fatalf("expected %d fixtures, got %d", want, len(got.Fixtures))
				}
				if err := CheckSchedule(got.Fixtures, ids, k); err != nil {
					t.Fatalf("check schedule: %v", err)
				}

				slots := n
				if n%2 != 0 {
					slots++
				}
				if want := k * (slots - 1); len(got.Rounds) != want {
					t.Fatalf("expected %d rounds, got %d", want, len(got.Rounds))
				}
				for i, r := range got.Rounds {
					if r.Number != i+1 {
						t.Fatalf("round numbers must increase by one: index=%d number=%d", i, r.Number)
					}
				}
			})
		}
	}
}

func TestGenerate_FourTeamsHomeAndAway(t *testing.T) {
	t.Parallel()

	got, err := Generate(rosterOf("A", "B", "C", "D"), mustGamePolicy(t, 2, 0), seasonStart)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(got.Fixtures) != 12 {
		t.Fatalf("expected 12 fixtures, got %d", len(got.Fixtures))
	}
	if len(got.Rounds) != 6 {
		t.Fatalf("expected 6 rounds, got %d", len(got.Rounds))
	}

	venues := make(map[string]int)
	for _, f := range got.Fixtures {
		venues[f.HomeTeamID+">"+f.AwayTeamID]++
	}
	for _, home := range []string{"A", "B", "C", "D"} {
		for _, away := range []string{"A", "B", "C", "D"} {
			if home == away {
				continue
			}
			if venues[home+">"+away] != 1 {
				t.Fatalf("expected %s to host %s exactly once, got %d", home, away, venues[home+">"+away])
			}
		}
	}

	// second cycle starts at round N
	for _, f := range got.Fixtures[6:] {
		if f.Round < 4 {
			t.Fatalf("second cycle fixture in round %d", f.Round)
		}
	}
}

func TestGenerate_OddRosterHasOneByePerRound(t *testing.T) {
	t.Parallel()

	got, err := Generate(rosterOf("A", "B", "C"), mustGamePolicy(t, 1, 0), seasonStart)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(got.Fixtures) != 3 {
		t.Fatalf("expected 3 fixtures, got %d", len(got.Fixtures))
	}
	if len(got.Rounds) != 3 {
		t.Fatalf("expected 3 rounds, got %d", len(got.Rounds))
	}

	byes := make(map[string]int)
	for _, r := range got.Rounds {
		if r.ByeTeamID == "" {
			t.Fatalf("round %d has no bye", r.Number)
		}
		if r.FixtureCount != 1 {
			t.Fatalf("round %d expected 1 fixture, got %d", r.Number, r.FixtureCount)
		}
		byes[r.ByeTeamID]++
	}
	if len(byes) != 3 {
		t.Fatalf("each team should sit out exactly once: %v", byes)
	}
}

func TestGenerate_TwoTeamsAlternateVenue(t *testing.T) {
	t.Parallel()

	got, err := Generate(rosterOf("A", "B"), mustGamePolicy(t, 3, 0), seasonStart)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(got.Fixtures) != 3 {
		t.Fatalf("expected 3 fixtures, got %d", len(got.Fixtures))
	}
	for i := 1; i < len(got.Fixtures); i++ {
		if got.Fixtures[i].HomeTeamID == got.Fixtures[i-1].HomeTeamID {
			t.Fatalf("venue did not alternate between rounds %d and %d", i, i+1)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	gp := mustGamePolicy(t, 2, 3)
	first, err := Generate(rosterOf("D", "B", "A", "C", "E"), gp, seasonStart)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, err := Generate(rosterOf("A", "B", "C", "D", "E"), gp, seasonStart)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same roster produced different schedules")
	}
}

func TestGenerate_RestDaysBetweenRounds(t *testing.T) {
	t.Parallel()

	got, err := Generate(rosterOf("A", "B", "C", "D"), mustGamePolicy(t, 1, 4), seasonStart)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if !got.Rounds[0].Date.Equal(seasonStart) {
		t.Fatalf("first round must be on the start date, got %s", got.Rounds[0].Date)
	}

	last := make(map[string]time.Time)
	for _, f := range got.Fixtures {
		for _, id := range []string{f.HomeTeamID, f.AwayTeamID} {
			if prev, ok := last[id]; ok && f.ScheduledAt.Before(prev.AddDate(0, 0, 4)) {
				t.Fatalf("team %s rests less than 4 days before %s", id, f.ID)
			}
			last[id] = f.ScheduledAt
		}
	}
	if want := seasonStart.AddDate(0, 0, 8); !got.Rounds[2].Date.Equal(want) {
		t.Fatalf("expected round 3 on %s, got %s", want, got.Rounds[2].Date)
	}
}

func TestGenerate_HorizonExceeded(t *testing.T) {
	t.Parallel()

	gp := mustGamePolicy(t, 2, 7).WithHorizon(20)
	_, err := Generate(rosterOf("A", "B", "C", "D"), gp, seasonStart)
	if !errors.Is(err, ErrSchedulingConstraint) {
		t.Fatalf("expected ErrSchedulingConstraint, got %v", err)
	}
}

func TestGenerate_RosterValidation(t *testing.T) {
	t.Parallel()

	gp := mustGamePolicy(t, 1, 0)

	inactive := rosterOf("A", "B")
	inactive[1].Active = false
	if _, err := Generate(inactive, gp, seasonStart); !errors.Is(err, ErrInsufficientTeams) {
		t.Fatalf("expected ErrInsufficientTeams, got %v", err)
	}
	if _, err := Generate(rosterOf("A"), gp, seasonStart); !errors.Is(err, ErrInsufficientTeams) {
		t.Fatalf("expected ErrInsufficientTeams, got %v", err)
	}
	if _, err := Generate(rosterOf("A", "B", "A"), gp, seasonStart); !errors.Is(err, ErrInvalidRoster) {
		t.Fatalf("expected ErrInvalidRoster, got %v", err)
	}
	if _, err := Generate(rosterOf("A", "B"), gp, time.Time{}); !errors.Is(err, ErrMissingStartDate) {
		t.Fatalf("expected ErrMissingStartDate, got %v", err)
	}
	if _, err := Generate(rosterOf("A", "B"), policy.GamePolicy{}, seasonStart); !errors.Is(err, policy.ErrInvalidGamePolicy) {
		t.Fatalf("expected ErrInvalidGamePolicy, got %v", err)
	}
}

func TestSchedule_ForSeason(t *testing.T) {
	t.Parallel()

	got, err := Generate(rosterOf("A", "B"), mustGamePolicy(t, 1, 0), seasonStart)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	stamped := got.ForSeason("ls-1")
	if stamped.Fixtures[0].SeasonID != "ls-1" || stamped.Fixtures[0].ID != "ls-1:"+got.Fixtures[0].ID {
		t.Fatalf("unexpected stamped fixture: %+v", stamped.Fixtures[0])
	}
	if got.Fixtures[0].SeasonID != "" {
		t.Fatalf("ForSeason must not modify the receiver")
	}
}

func TestCheckSchedule_DetectsViolations(t *testing.T) {
	t.Parallel()

	base := []Fixture{
		{ID: "1", Round: 1, HomeTeamID: "A", AwayTeamID: "B"},
		{ID: "2", Round: 1, HomeTeamID: "C", AwayTeamID: "D"},
		{ID: "3", Round: 2, HomeTeamID: "A", AwayTeamID: "C"},
		{ID: "4", Round: 2, HomeTeamID: "B", AwayTeamID: "D"},
		{ID: "5", Round: 3, HomeTeamID: "A", AwayTeamID: "D"},
		{ID: "6", Round: 3, HomeTeamID: "B", AwayTeamID: "C"},
	}
	ids := []string{"A", "B", "C", "D"}
	if err := CheckSchedule(base, ids, 1); err != nil {
		t.Fatalf("valid schedule rejected: %v", err)
	}

	twice := CloneAll(base)
	twice[1].HomeTeamID = "A"
	twice[1].AwayTeamID = "C"
	if err := CheckSchedule(twice, ids, 1); !errors.Is(err, ErrScheduleMismatch) {
		t.Fatalf("expected ErrScheduleMismatch, got %v", err)
	}

	if err := CheckSchedule(base[:5], ids, 1); !errors.Is(err, ErrScheduleMismatch) {
		t.Fatalf("expected ErrScheduleMismatch for short schedule, got %v", err)
	}
}
