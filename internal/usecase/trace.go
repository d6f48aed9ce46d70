package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/league-season/internal/domain/leagueseason"
)

var (
	usecaseTracer   = otel.Tracer("league-season/internal/usecase")
	usecaseNoopSpan = trace.SpanFromContext(context.Background())
)

// startUsecaseSpan only opens a child span when the caller is already traced,
// so background jobs without a parent do not emit orphan spans.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if name == "" || !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func seasonAttrs(key leagueseason.Key) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("league.id", key.LeagueID),
		attribute.Int("season.year", key.Year),
	}
}
