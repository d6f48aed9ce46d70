package team

import (
	"strings"

	"github.com/cockroachdb/errors"
)

var ErrInvalidTeam = errors.New("invalid team")

// Team is a club that can be entered into league seasons. The scheduling
// engine only reads it.
type Team struct {
	ID     string
	Name   string
	Short  string
	Active bool
}

func (t Team) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.Wrap(ErrInvalidTeam, "team id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return errors.Wrap(ErrInvalidTeam, "team name is required")
	}

	return nil
}

// IDs returns team identities in input order.
func IDs(teams []Team) []string {
	out := make([]string, 0, len(teams))
	for _, t := range teams {
		out = append(out, t.ID)
	}
	return out
}

// Names maps team ID to display name.
func Names(teams []Team) map[string]string {
	out := make(map[string]string, len(teams))
	for _, t := range teams {
		out[t.ID] = t.Name
	}
	return out
}

// ActiveOnly filters out inactive teams, keeping input order.
func ActiveOnly(teams []Team) []Team {
	out := make([]Team, 0, len(teams))
	for _, t := range teams {
		if t.Active {
			out = append(out, t)
		}
	}
	return out
}
