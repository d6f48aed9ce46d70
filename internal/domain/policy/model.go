package policy

import (
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	ErrInvalidGamePolicy  = errors.New("invalid game policy")
	ErrInvalidScorePolicy = errors.New("invalid score policy")
	ErrUnknownTieBreaker  = errors.New("unknown tie breaker")
)

// DefaultHorizonDays bounds how far past the start date a schedule may run
// when a GamePolicy does not set its own horizon.
const DefaultHorizonDays = 365

// GamePolicy controls how often teams meet and how much rest they get.
// It is a value type: replace it wholesale, never mutate a stored copy.
type GamePolicy struct {
	MeetingsPerPair       int
	MinDaysBetweenMatches int
	HorizonDays           int
}

func NewGamePolicy(meetingsPerPair, minDaysBetweenMatches int) (GamePolicy, error) {
	p := GamePolicy{
		MeetingsPerPair:       meetingsPerPair,
		MinDaysBetweenMatches: minDaysBetweenMatches,
	}
	if err := p.Validate(); err != nil {
		return GamePolicy{}, err
	}
	return p, nil
}

func (p GamePolicy) Validate() error {
	if p.MeetingsPerPair < 1 {
		return errors.Wrapf(ErrInvalidGamePolicy, "meetings per pair must be >= 1, got %d", p.MeetingsPerPair)
	}
	if p.MinDaysBetweenMatches < 0 {
		return errors.Wrapf(ErrInvalidGamePolicy, "min days between matches must be >= 0, got %d", p.MinDaysBetweenMatches)
	}
	if p.HorizonDays < 0 {
		return errors.Wrapf(ErrInvalidGamePolicy, "horizon days must be >= 0, got %d", p.HorizonDays)
	}
	return nil
}

// Horizon returns the number of days after the start date a schedule may use.
func (p GamePolicy) Horizon() int {
	if p.HorizonDays > 0 {
		return p.HorizonDays
	}
	return DefaultHorizonDays
}

func (p GamePolicy) WithHorizon(days int) GamePolicy {
	p.HorizonDays = days
	return p
}

// TieBreaker names one ranking criterion applied when teams are level.
type TieBreaker string

const (
	TieBreakPoints         TieBreaker = "points"
	TieBreakGoalDifference TieBreaker = "goal_difference"
	TieBreakGoalsFor       TieBreaker = "goals_for"
	TieBreakWins           TieBreaker = "wins"
	TieBreakHeadToHead     TieBreaker = "head_to_head"
	TieBreakAlphabetical   TieBreaker = "alphabetical"
)

var AllTieBreakers = map[TieBreaker]struct{}{
	TieBreakPoints:         {},
	TieBreakGoalDifference: {},
	TieBreakGoalsFor:       {},
	TieBreakWins:           {},
	TieBreakHeadToHead:     {},
	TieBreakAlphabetical:   {},
}

func DefaultTieBreakers() []TieBreaker {
	return []TieBreaker{
		TieBreakPoints,
		TieBreakGoalDifference,
		TieBreakHeadToHead,
		TieBreakAlphabetical,
	}
}

// ParseTieBreakers reads a comma separated list such as
// "points,goal_difference,head_to_head".
func ParseTieBreakers(raw string) ([]TieBreaker, error) {
	out := make([]TieBreaker, 0, 4)
	for _, part := range strings.Split(raw, ",") {
		item := TieBreaker(strings.ToLower(strings.TrimSpace(part)))
		if item == "" {
			continue
		}
		if _, ok := AllTieBreakers[item]; !ok {
			return nil, errors.Wrapf(ErrUnknownTieBreaker, "%q", string(item))
		}
		out = append(out, item)
	}
	return out, nil
}

// ScorePolicy awards points per outcome and orders level teams.
type ScorePolicy struct {
	PointsWin   int
	PointsDraw  int
	PointsLoss  int
	tieBreakers []TieBreaker
}

// NewScorePolicy builds a validated policy. An empty tie-break list falls back
// to DefaultTieBreakers.
func NewScorePolicy(win, draw, loss int, tieBreakers ...TieBreaker) (ScorePolicy, error) {
	if len(tieBreakers) == 0 {
		tieBreakers = DefaultTieBreakers()
	}
	p := ScorePolicy{
		PointsWin:   win,
		PointsDraw:  draw,
		PointsLoss:  loss,
		tieBreakers: append([]TieBreaker(nil), tieBreakers...),
	}
	if err := p.Validate(); err != nil {
		return ScorePolicy{}, err
	}
	return p, nil
}

func DefaultScorePolicy() ScorePolicy {
	return ScorePolicy{
		PointsWin:   3,
		PointsDraw:  1,
		PointsLoss:  0,
		tieBreakers: DefaultTieBreakers(),
	}
}

func (p ScorePolicy) Validate() error {
	if p.PointsWin < 0 || p.PointsDraw < 0 || p.PointsLoss < 0 {
		return errors.Wrapf(ErrInvalidScorePolicy, "points must be >= 0 (win=%d draw=%d loss=%d)", p.PointsWin, p.PointsDraw, p.PointsLoss)
	}

	seen := make(map[TieBreaker]struct{}, len(p.tieBreakers))
	for _, tb := range p.tieBreakers {
		if _, ok := AllTieBreakers[tb]; !ok {
			return errors.Wrapf(ErrUnknownTieBreaker, "%q", string(tb))
		}
		if _, dup := seen[tb]; dup {
			return errors.Wrapf(ErrInvalidScorePolicy, "tie breaker %q listed twice", string(tb))
		}
		seen[tb] = struct{}{}
	}
	return nil
}

// TieBreakers returns a copy of the configured order.
func (p ScorePolicy) TieBreakers() []TieBreaker {
	if len(p.tieBreakers) == 0 {
		return DefaultTieBreakers()
	}
	return append([]TieBreaker(nil), p.tieBreakers...)
}

func (p ScorePolicy) Equal(other ScorePolicy) bool {
	if p.PointsWin != other.PointsWin || p.PointsDraw != other.PointsDraw || p.PointsLoss != other.PointsLoss {
		return false
	}
	a, b := p.TieBreakers(), other.TieBreakers()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TieBreakerStrings is the storage form of the tie-break order.
func (p ScorePolicy) TieBreakerStrings() []string {
	items := p.TieBreakers()
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, string(item))
	}
	return out
}
