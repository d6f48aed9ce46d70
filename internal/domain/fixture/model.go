package fixture

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

const (
	StatusScheduled = "SCHEDULED"
	StatusPlayed    = "PLAYED"
	StatusPostponed = "POSTPONED"
	StatusCancelled = "CANCELLED"
)

var (
	ErrInvalidStatus = errors.New("invalid fixture status")
	ErrInvalidResult = errors.New("invalid fixture result")
	ErrFixtureLocked = errors.New("fixture is no longer scheduled")
)

// Result is what the caller reports once a match is over. A forfeit carries
// an explicit winner; the goals are the nominal score the caller recorded.
type Result struct {
	HomeGoals           int
	AwayGoals           int
	Forfeit             bool
	ForfeitWinnerTeamID string
}

// Fixture represents one scheduled match of a league season.
type Fixture struct {
	ID                  string
	SeasonID            string
	Round               int
	HomeTeamID          string
	AwayTeamID          string
	ScheduledAt         time.Time
	MainRefereeID       string
	AssistantRefereeIDs []string
	Result              *Result
	Status              string
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func ValidStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusScheduled, StatusPlayed, StatusPostponed, StatusCancelled:
		return true
	default:
		return false
	}
}

func (f Fixture) IsScheduled() bool {
	return NormalizeStatus(f.Status) == StatusScheduled
}

func (f Fixture) IsPlayed() bool {
	return NormalizeStatus(f.Status) == StatusPlayed
}

// IsClosed reports whether the fixture needs no further action.
func (f Fixture) IsClosed() bool {
	switch NormalizeStatus(f.Status) {
	case StatusPlayed, StatusCancelled:
		return true
	default:
		return false
	}
}

// Involves reports whether teamID plays in the fixture.
func (f Fixture) Involves(teamID string) bool {
	return f.HomeTeamID == teamID || f.AwayTeamID == teamID
}

// Clone deep-copies the slices and pointers so callers can hand the copy out.
func (f Fixture) Clone() Fixture {
	out := f
	if f.AssistantRefereeIDs != nil {
		out.AssistantRefereeIDs = append([]string(nil), f.AssistantRefereeIDs...)
	}
	if f.Result != nil {
		r := *f.Result
		out.Result = &r
	}
	return out
}

func CloneAll(items []Fixture) []Fixture {
	out := make([]Fixture, 0, len(items))
	for _, item := range items {
		out = append(out, item.Clone())
	}
	return out
}

// ClearOfficials removes all referee assignments.
func (f *Fixture) ClearOfficials() {
	f.MainRefereeID = ""
	f.AssistantRefereeIDs = nil
}

// Officials lists every referee on the fixture, main first.
func (f Fixture) Officials() []string {
	out := make([]string, 0, 1+len(f.AssistantRefereeIDs))
	if f.MainRefereeID != "" {
		out = append(out, f.MainRefereeID)
	}
	return append(out, f.AssistantRefereeIDs...)
}

// ValidateResult checks a reported result against the fixture's teams.
func (f Fixture) ValidateResult(r Result) error {
	if r.HomeGoals < 0 || r.AwayGoals < 0 {
		return errors.Wrapf(ErrInvalidResult, "fixture=%s goals must be >= 0", f.ID)
	}
	if !r.Forfeit {
		if r.ForfeitWinnerTeamID != "" {
			return errors.Wrapf(ErrInvalidResult, "fixture=%s forfeit winner set without forfeit", f.ID)
		}
		return nil
	}
	if r.ForfeitWinnerTeamID != f.HomeTeamID && r.ForfeitWinnerTeamID != f.AwayTeamID {
		return errors.Wrapf(ErrInvalidResult, "fixture=%s forfeit winner %q is not a participant", f.ID, r.ForfeitWinnerTeamID)
	}
	return nil
}

// DateKey is the calendar day (UTC) a fixture is played on.
func DateKey(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// PairKey identifies an unordered pair of teams.
func PairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}
