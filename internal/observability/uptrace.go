package observability

import (
	"context"
	"strings"

	"github.com/uptrace/uptrace-go/uptrace"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/league-season/internal/config"
	"github.com/riskibarqy/league-season/internal/platform/logging"
)

// startTracing installs the Uptrace OpenTelemetry providers and returns the
// flush func, or nil when tracing is off. Spans carry the storage driver and
// the referee rules so traces from differently configured deployments can be
// told apart.
func startTracing(cfg config.Config, logger *logging.Logger) func(context.Context) error {
	dsn := strings.TrimSpace(cfg.UptraceDSN)
	switch {
	case !cfg.UptraceEnabled:
		logger.Info("tracing off", "reason", "UPTRACE_ENABLED=false")
		return nil
	case dsn == "":
		logger.Info("tracing off", "reason", "UPTRACE_DSN empty")
		return nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(dsn),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithResourceAttributes(tracingAttributes(cfg)...),
	)

	logger.Info("tracing on",
		"service", cfg.ServiceName,
		"version", cfg.ServiceVersion,
		"env", cfg.AppEnv,
		"storage", cfg.StorageDriver,
	)
	return uptrace.Shutdown
}

func tracingAttributes(cfg config.Config) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("league_season.storage", cfg.StorageDriver),
		attribute.String("league_season.referee.min_main_level", cfg.RefereeRules.MinMainLevel.String()),
		attribute.Int("league_season.referee.assistants", cfg.RefereeRules.AssistantsPerFixture),
		attribute.Int("league_season.schedule.horizon_days", cfg.ScheduleHorizonDays),
	}
}
