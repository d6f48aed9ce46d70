package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"go.opentelemetry.io/otel/trace"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var item map[string]any
		if err := sonic.UnmarshalString(line, &item); err != nil {
			t.Fatalf("decode log line %q: %v", line, err)
		}
		out = append(out, item)
	}
	return out
}

func TestNewJSON_WritesServiceAndFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewJSON(Options{Level: LevelInfo, Service: "league-season", Env: "test", Writer: &buf})

	logger.Debug("hidden")
	logger.With("season", "premier/2026").Info("scheduled", "fixtures", 12, "dangling")

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %s", len(lines), buf.String())
	}
	line := lines[0]
	if line["msg"] != "scheduled" || line["service"] != "league-season" || line["env"] != "test" {
		t.Fatalf("unexpected line: %v", line)
	}
	if line["season"] != "premier/2026" || line["fixtures"] != float64(12) {
		t.Fatalf("missing key/value fields: %v", line)
	}
	if _, ok := line["dangling"]; !ok {
		t.Fatalf("dangling key should be kept: %v", line)
	}
}

func TestLogger_ContextAddsTraceFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewJSON(Options{Level: LevelDebug, Writer: &buf})

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.WarnContext(ctx, "slow standings", "ms", 120)
	logger.InfoContext(context.Background(), "no span")

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0]["trace_id"] != traceID.String() || lines[0]["span_id"] != spanID.String() {
		t.Fatalf("missing trace fields: %v", lines[0])
	}
	if _, ok := lines[1]["trace_id"]; ok {
		t.Fatalf("unexpected trace field without span: %v", lines[1])
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]Level{"": LevelInfo, "DEBUG": LevelDebug, "warning": LevelWarn, "error": LevelError}
	for raw, want := range tests {
		got, err := ParseLevel(raw)
		if err != nil || got != want {
			t.Fatalf("%q: expected %v, got %v (%v)", raw, want, got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNilLoggerFallsBackToDefault(t *testing.T) {
	t.Parallel()

	var l *Logger
	l.Info("no panic")
	if l.With("k", "v") == nil {
		t.Fatalf("With on nil logger must return a usable logger")
	}
	if err := l.Sync(); err != nil {
		t.Fatalf("sync nil logger: %v", err)
	}
}
