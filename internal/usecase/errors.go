package usecase

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/league-season/internal/domain/fixture"
	"github.com/riskibarqy/league-season/internal/domain/league"
	"github.com/riskibarqy/league-season/internal/domain/leagueseason"
	"github.com/riskibarqy/league-season/internal/domain/policy"
	"github.com/riskibarqy/league-season/internal/domain/referee"
	"github.com/riskibarqy/league-season/internal/domain/team"
	"github.com/riskibarqy/league-season/internal/platform/resilience"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrConflict              = errors.New("conflict")
	ErrUnprocessable         = errors.New("constraint violated")
	ErrDataIntegrity         = errors.New("data integrity fault")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

var (
	validationErrors = []error{
		policy.ErrInvalidGamePolicy,
		policy.ErrInvalidScorePolicy,
		policy.ErrUnknownTieBreaker,
		team.ErrInvalidTeam,
		league.ErrInvalidLeague,
		league.ErrInvalidSeason,
		referee.ErrInvalidReferee,
		referee.ErrUnknownLevel,
		referee.ErrInvalidRules,
		fixture.ErrInvalidStatus,
		fixture.ErrInvalidResult,
		fixture.ErrInvalidRoster,
		fixture.ErrMissingStartDate,
		leagueseason.ErrInvalidLeagueSeason,
	}
	constraintErrors = []error{
		fixture.ErrInsufficientTeams,
		fixture.ErrSchedulingConstraint,
		fixture.ErrScheduleMismatch,
		referee.ErrNoEligibleReferee,
	}
	conflictErrors = []error{
		leagueseason.ErrAlreadyExists,
		leagueseason.ErrPolicyLocked,
		leagueseason.ErrScheduleExists,
		leagueseason.ErrSeasonStarted,
		leagueseason.ErrDuplicateTeamName,
		fixture.ErrFixtureLocked,
	}
	integrityErrors = []error{
		referee.ErrDoubleBooked,
	}
)

// classify tags a domain error with the use case category the transport
// layer maps on. Errors that already carry a category are returned as is.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	for _, known := range []error{ErrInvalidInput, ErrNotFound, ErrConflict, ErrUnprocessable, ErrDataIntegrity, ErrDependencyUnavailable} {
		if errors.Is(err, known) {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	category := ErrDependencyUnavailable
	switch {
	case errors.Is(err, resilience.ErrCircuitOpen):
		category = ErrDependencyUnavailable
	case matchesAny(err, integrityErrors):
		category = ErrDataIntegrity
	case matchesAny(err, validationErrors):
		category = ErrInvalidInput
	case matchesAny(err, constraintErrors):
		category = ErrUnprocessable
	case matchesAny(err, conflictErrors):
		category = ErrConflict
	}
	return fmt.Errorf("%s: %w: %w", op, category, err)
}

func matchesAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
