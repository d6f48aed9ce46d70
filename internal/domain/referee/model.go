package referee

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	ErrInvalidReferee    = errors.New("invalid referee")
	ErrUnknownLevel      = errors.New("unknown qualification level")
	ErrNoEligibleReferee = errors.New("no eligible referee")
	ErrInvalidRules      = errors.New("invalid referee rules")
	ErrDoubleBooked      = errors.New("referee double booked")
)

// Level is a referee qualification grade; higher is more senior.
type Level int

const (
	LevelTrainee Level = iota + 1
	LevelRegional
	LevelNational
	LevelInternational
)

var levelNames = map[Level]string{
	LevelTrainee:       "trainee",
	LevelRegional:      "regional",
	LevelNational:      "national",
	LevelInternational: "international",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "level-" + strconv.Itoa(int(l))
}

func (l Level) Valid() bool {
	_, ok := levelNames[l]
	return ok
}

// ParseLevel accepts either a level name or its number.
func ParseLevel(raw string) (Level, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	for level, name := range levelNames {
		if name == value {
			return level, nil
		}
	}
	n, err := strconv.Atoi(value)
	if err == nil && Level(n).Valid() {
		return Level(n), nil
	}
	return 0, errors.Wrapf(ErrUnknownLevel, "%q", raw)
}

// Referee is a match official.
type Referee struct {
	ID            string
	Name          string
	Qualification Level
	Active        bool
}

func (r Referee) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errors.Wrap(ErrInvalidReferee, "referee id is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		return errors.Wrap(ErrInvalidReferee, "referee name is required")
	}
	if !r.Qualification.Valid() {
		return errors.Wrapf(ErrInvalidReferee, "qualification %d is not a known level", int(r.Qualification))
	}
	return nil
}
