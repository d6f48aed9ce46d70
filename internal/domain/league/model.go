package league

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// MinSeasonYear is the earliest season the association accepts.
const MinSeasonYear = 1950

var (
	ErrInvalidLeague = errors.New("invalid league")
	ErrInvalidSeason = errors.New("invalid season")
)

// League is a competition run by the association, independent of any year.
type League struct {
	ID   string
	Name string
}

func (l League) Validate() error {
	if strings.TrimSpace(l.ID) == "" {
		return errors.Wrap(ErrInvalidLeague, "league id is required")
	}
	if strings.TrimSpace(l.Name) == "" {
		return errors.Wrap(ErrInvalidLeague, "league name is required")
	}

	return nil
}

// Season is one calendar year of competition.
type Season struct {
	Year int
}

func (s Season) Validate() error {
	if s.Year < MinSeasonYear {
		return errors.Wrapf(ErrInvalidSeason, "year must be >= %d, got %d", MinSeasonYear, s.Year)
	}
	return nil
}

// Slug turns a league name into a stable identifier.
func Slug(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(strings.TrimSpace(name)), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
	return strings.Join(fields, "-")
}
