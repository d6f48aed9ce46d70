package referee

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/league-season/internal/domain/fixture"
)

// Rules are the eligibility thresholds for officiating a fixture.
type Rules struct {
	MinMainLevel         Level
	MinAssistantLevel    Level
	AssistantsPerFixture int
}

func DefaultRules() Rules {
	return Rules{
		MinMainLevel:         LevelRegional,
		MinAssistantLevel:    LevelTrainee,
		AssistantsPerFixture: 2,
	}
}

func (r Rules) Validate() error {
	if !r.MinMainLevel.Valid() {
		return errors.Wrapf(ErrUnknownLevel, "main level %d", int(r.MinMainLevel))
	}
	if !r.MinAssistantLevel.Valid() {
		return errors.Wrapf(ErrUnknownLevel, "assistant level %d", int(r.MinAssistantLevel))
	}
	if r.AssistantsPerFixture < 0 {
		return errors.Wrapf(ErrInvalidRules, "assistants per fixture must be >= 0, got %d", r.AssistantsPerFixture)
	}
	return nil
}

// Failure records a fixture that could not get a main referee.
type Failure struct {
	FixtureID string
	Date      string
	Err       error
}

// Assignment is the result of Assign. Fixtures has the same order as the
// input.
type Assignment struct {
	Fixtures []fixture.Fixture
	Failures []Failure
	Assigned int
}

// Assign picks a main referee and up to rules.AssistantsPerFixture assistants
// for every scheduled fixture, in round order. Main referees are placed for all
// fixtures before any assistant. Fixtures in any other status keep their
// officials and count as existing bookings. A referee holds at most one role
// per calendar date. The input slice is not modified.
func Assign(fixtures []fixture.Fixture, referees []Referee, rules Rules) Assignment {
	out := Assignment{Fixtures: fixture.CloneAll(fixtures)}
	pool := activePool(referees)

	load := make(map[string]int, len(pool))
	booked := make(map[string]map[string]struct{})
	book := func(date, refereeID string) {
		day := booked[date]
		if day == nil {
			day = make(map[string]struct{})
			booked[date] = day
		}
		day[refereeID] = struct{}{}
		load[refereeID]++
	}

	pending := make([]int, 0, len(out.Fixtures))
	for i := range out.Fixtures {
		f := out.Fixtures[i]
		if f.IsScheduled() {
			pending = append(pending, i)
			continue
		}
		date := fixture.DateKey(f.ScheduledAt)
		for _, id := range f.Officials() {
			book(date, id)
		}
	}

	sort.SliceStable(pending, func(a, b int) bool {
		fa, fb := out.Fixtures[pending[a]], out.Fixtures[pending[b]]
		if fa.Round != fb.Round {
			return fa.Round < fb.Round
		}
		if !fa.ScheduledAt.Equal(fb.ScheduledAt) {
			return fa.ScheduledAt.Before(fb.ScheduledAt)
		}
		return fa.ID < fb.ID
	})

	// mains first so assistants never take a main slot on a busy date
	staffed := make([]int, 0, len(pending))
	for _, idx := range pending {
		f := &out.Fixtures[idx]
		f.ClearOfficials()
		date := fixture.DateKey(f.ScheduledAt)

		main, ok := pick(pool, rules.MinMainLevel, booked[date], load)
		if !ok {
			out.Failures = append(out.Failures, Failure{
				FixtureID: f.ID,
				Date:      date,
				Err:       errors.Wrapf(ErrNoEligibleReferee, "fixture=%s date=%s", f.ID, date),
			})
			continue
		}
		f.MainRefereeID = main
		book(date, main)
		staffed = append(staffed, idx)
	}
	out.Assigned = len(staffed)

	for n := 0; n < rules.AssistantsPerFixture; n++ {
		for _, idx := range staffed {
			f := &out.Fixtures[idx]
			date := fixture.DateKey(f.ScheduledAt)
			assistant, ok := pick(pool, rules.MinAssistantLevel, booked[date], load)
			if !ok {
				continue
			}
			f.AssistantRefereeIDs = append(f.AssistantRefereeIDs, assistant)
			book(date, assistant)
		}
	}

	return out
}

// activePool returns active referees with distinct IDs, sorted by ID so the
// first minimum found is also the lexically smallest.
func activePool(referees []Referee) []Referee {
	seen := make(map[string]struct{}, len(referees))
	out := make([]Referee, 0, len(referees))
	for _, r := range referees {
		if !r.Active || r.ID == "" {
			continue
		}
		if _, dup := seen[r.ID]; dup {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func pick(pool []Referee, minLevel Level, busy map[string]struct{}, load map[string]int) (string, bool) {
	best := ""
	bestLoad := 0
	for _, r := range pool {
		if r.Qualification < minLevel {
			continue
		}
		if _, taken := busy[r.ID]; taken {
			continue
		}
		if best == "" || load[r.ID] < bestLoad {
			best = r.ID
			bestLoad = load[r.ID]
		}
	}
	return best, best != ""
}

// CheckAssignments verifies that no referee holds two roles on one date.
func CheckAssignments(fixtures []fixture.Fixture) error {
	seen := make(map[string]string)
	for _, f := range fixtures {
		date := fixture.DateKey(f.ScheduledAt)
		for _, id := range f.Officials() {
			key := date + "|" + id
			if other, dup := seen[key]; dup {
				return errors.Wrapf(ErrDoubleBooked, "referee %s on %s for %s and %s", id, date, other, f.ID)
			}
			seen[key] = f.ID
		}
	}
	return nil
}
