package resilience

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
)

var errDatabaseDown = errors.New("database down")

func TestCircuitBreaker_Transitions(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: 5 * time.Second, HalfOpenMaxReq: 1})
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	ctx := context.Background()
	fail := func(context.Context) error { return errDatabaseDown }
	ok := func(context.Context) error { return nil }

	if err := b.Do(ctx, fail); !errors.Is(err, errDatabaseDown) {
		t.Fatalf("expected dependency error, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	_ = b.Do(ctx, fail)
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}
	if err := b.Do(ctx, ok); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	now = now.Add(6 * time.Second)
	if state := b.State(); state != CircuitStateHalfOpen {
		t.Fatalf("expected half-open, got %s", state)
	}
	if err := b.Do(ctx, ok); err != nil {
		t.Fatalf("expected half-open request to pass, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful half-open request, got %s", state)
	}
}

func TestCircuitBreaker_CancellationIsNotAFailure(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreaker(CircuitBreakerConfig{Enabled: true, FailureThreshold: 1})
	cancelled := func(context.Context) error { return errors.Wrap(context.Canceled, "query") }

	for i := 0; i < 3; i++ {
		_ = b.Do(context.Background(), cancelled)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed, got %s", state)
	}
}

func TestCircuitBreaker_NilAndDisabledPassThrough(t *testing.T) {
	t.Parallel()

	var nilBreaker *CircuitBreaker
	if err := nilBreaker.Do(context.Background(), func(context.Context) error { return nil }); err != nil {
		t.Fatalf("nil breaker: %v", err)
	}

	disabled := NewCircuitBreaker(CircuitBreakerConfig{Enabled: false, FailureThreshold: 1})
	for i := 0; i < 3; i++ {
		if err := disabled.Do(context.Background(), func(context.Context) error { return errDatabaseDown }); !errors.Is(err, errDatabaseDown) {
			t.Fatalf("expected passthrough error, got %v", err)
		}
	}
}
