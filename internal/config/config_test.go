package config

import (
	"testing"

	"github.com/riskibarqy/league-season/internal/domain/referee"
	"github.com/riskibarqy/league-season/internal/platform/logging"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("REFEREE_MIN_MAIN_LEVEL", "")
	t.Setenv("REFEREE_ASSISTANTS_PER_FIXTURE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Fatalf("unexpected storage driver: %q", cfg.StorageDriver)
	}
	if cfg.RefereeRules != referee.DefaultRules() {
		t.Fatalf("unexpected referee rules: %+v", cfg.RefereeRules)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected log level: %v", cfg.LogLevel)
	}
	if !cfg.DBSeedOnStart {
		t.Fatalf("expected seeding on start in dev")
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_PostgresRequiresDBURL(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_DRIVER", StoragePostgres)
	t.Setenv("DB_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when STORAGE_DRIVER=postgres without DB_URL")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "uptrace-dsn=https://token@api.uptrace.dev/1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/1" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_SchedulingSettings(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("REFEREE_MIN_MAIN_LEVEL", "national")
	t.Setenv("REFEREE_MIN_ASSISTANT_LEVEL", "2")
	t.Setenv("REFEREE_ASSISTANTS_PER_FIXTURE", "1")
	t.Setenv("SCHEDULE_HORIZON_DAYS", "200")
	t.Setenv("BULK_SCHEDULE_WORKERS", "8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	want := referee.Rules{MinMainLevel: referee.LevelNational, MinAssistantLevel: referee.LevelRegional, AssistantsPerFixture: 1}
	if cfg.RefereeRules != want {
		t.Fatalf("unexpected referee rules: %+v", cfg.RefereeRules)
	}
	if cfg.ScheduleHorizonDays != 200 || cfg.BulkScheduleWorkers != 8 {
		t.Fatalf("unexpected scheduling settings: %+v", cfg)
	}
	if cfg.DBSeedOnStart {
		t.Fatalf("expected no seeding in prod by default")
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"REFEREE_MIN_MAIN_LEVEL":         "grandmaster",
		"REFEREE_ASSISTANTS_PER_FIXTURE": "-1",
		"SCHEDULE_HORIZON_DAYS":          "0",
		"BULK_SCHEDULE_WORKERS":          "zero",
		"CACHE_TTL":                      "-1s",
		"RATE_LIMIT_RPS":                 "fast",
		"STORAGE_DRIVER":                 "sqlite",
		"APP_LOG_LEVEL":                  "loud",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, value)
			}
		})
	}
}

func TestParseUptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Parallel()

	got := parseUptraceDSNFromOTLPHeaders(`foo=bar, uptrace-dsn="https://x@y/1"`)
	if got != "https://x@y/1" {
		t.Fatalf("unexpected dsn: %q", got)
	}
	if parseUptraceDSNFromOTLPHeaders("") != "" {
		t.Fatalf("expected empty dsn")
	}
}
