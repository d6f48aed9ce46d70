package httpapi

import (
	"net/http"

	"github.com/riskibarqy/league-season/internal/platform/logging"
)

type RouterOptions struct {
	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
}

func NewRouter(handler *Handler, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerRegistryRoutes(mux, handler)
	registerLeagueSeasonRoutes(mux, handler)

	limited := RateLimit(opts.RateLimitRPS, opts.RateLimitBurst, recoverPanic(logger, mux))
	return RequestTracing(RequestLogging(logger, CORS(opts.CORSAllowedOrigins, limited)))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
