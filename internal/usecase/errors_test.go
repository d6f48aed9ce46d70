package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/riskibarqy/league-season/internal/domain/fixture"
	"github.com/riskibarqy/league-season/internal/domain/leagueseason"
	"github.com/riskibarqy/league-season/internal/domain/referee"
	"github.com/riskibarqy/league-season/internal/platform/resilience"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "invalid referee rules", err: referee.Rules{AssistantsPerFixture: -1, MinMainLevel: referee.LevelRegional, MinAssistantLevel: referee.LevelTrainee}.Validate(), want: ErrInvalidInput},
		{name: "double booked referee", err: fmt.Errorf("check: %w", referee.ErrDoubleBooked), want: ErrDataIntegrity},
		{name: "no eligible referee", err: referee.ErrNoEligibleReferee, want: ErrUnprocessable},
		{name: "policy locked", err: leagueseason.ErrPolicyLocked, want: ErrConflict},
		{name: "invalid result", err: fixture.ErrInvalidResult, want: ErrInvalidInput},
		{name: "circuit open", err: resilience.ErrCircuitOpen, want: ErrDependencyUnavailable},
		{name: "already classified", err: fmt.Errorf("%w: x", ErrNotFound), want: ErrNotFound},
		{name: "unknown", err: errors.New("connection reset"), want: ErrDependencyUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify("op", tt.err)
			if !errors.Is(got, tt.want) || !errors.Is(got, tt.err) {
				t.Fatalf("classify(%v)=%v, want category %v", tt.err, got, tt.want)
			}
		})
	}
	if classify("op", nil) != nil {
		t.Fatalf("expected nil for nil error")
	}
}
