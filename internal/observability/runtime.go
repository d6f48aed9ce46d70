// Package observability wires tracing, continuous profiling and the pprof
// listener of the league-season service.
package observability

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/riskibarqy/league-season/internal/config"
	"github.com/riskibarqy/league-season/internal/platform/logging"
)

// Runtime owns the telemetry started for one process. Every part is optional
// and a zero Runtime shuts down cleanly.
type Runtime struct {
	tracing  func(context.Context) error
	profiler func() error
	pprof    *http.Server
	logger   *logging.Logger
}

// Start brings up the telemetry enabled in cfg. Parts already started are
// stopped again when a later one fails.
func Start(cfg config.Config, logger *logging.Logger) (*Runtime, error) {
	if logger == nil {
		logger = logging.Default()
	}
	rt := &Runtime{logger: logger}

	rt.tracing = startTracing(cfg, logger)

	profiler, err := startProfiler(cfg, logger)
	if err != nil {
		return nil, errors.CombineErrors(errors.Wrap(err, "start pyroscope"), rt.Shutdown(context.Background()))
	}
	rt.profiler = profiler

	srv, err := startPprof(cfg, logger)
	if err != nil {
		return nil, errors.CombineErrors(errors.Wrap(err, "start pprof"), rt.Shutdown(context.Background()))
	}
	rt.pprof = srv

	return rt, nil
}

// Shutdown stops the pprof listener first, then the profiler, then flushes
// spans. It attempts every step and returns all failures.
func (r *Runtime) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}
	var errs []error
	if r.pprof != nil {
		if err := r.pprof.Shutdown(ctx); err != nil {
			errs = append(errs, errors.Wrap(err, "stop pprof"))
		} else {
			r.log().Info("pprof server stopped")
		}
		r.pprof = nil
	}
	if r.profiler != nil {
		if err := r.profiler(); err != nil {
			errs = append(errs, errors.Wrap(err, "stop pyroscope"))
		}
		r.profiler = nil
	}
	if r.tracing != nil {
		if err := r.tracing(ctx); err != nil {
			errs = append(errs, errors.Wrap(err, "flush traces"))
		}
		r.tracing = nil
	}
	return errors.Join(errs...)
}

func (r *Runtime) log() *logging.Logger {
	if r.logger == nil {
		return logging.Default()
	}
	return r.logger
}
