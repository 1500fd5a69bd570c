// Package server assembles the HTTP handler tree served by cmd/server.
package server

import (
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/pairtime/internal/config"
	"github.com/mmynk/pairtime/internal/middleware"
	"github.com/mmynk/pairtime/pkg/api"
	"github.com/mmynk/pairtime/pkg/api/apiconnect"
)

// NewRouter mounts the AnalysisService, health check and, when enabled, the
// metrics endpoint backed by gatherer.
func NewRouter(cfg *config.Config, svc apiconnect.AnalysisServiceHandler, gatherer prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{
			"Content-Type",
			"Connect-Protocol-Version",
			"Connect-Timeout-Ms",
			middleware.RequestIDHeader,
		},
		ExposedHeaders: []string{
			"Connect-Protocol-Version",
			middleware.RequestIDHeader,
			api.ErrorKindKey,
			api.ErrorLineKey,
			api.ErrorFieldKey,
		},
		MaxAge: 300,
	}))

	interceptors := []connect.Interceptor{middleware.LoggingInterceptor()}
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			BurstSize:         cfg.RateLimit.BurstSize,
			TTL:               3 * time.Minute,
		})
		interceptors = append(interceptors, limiter.Interceptor())
	}

	path, handler := apiconnect.NewAnalysisServiceHandler(svc,
		connect.WithInterceptors(interceptors...),
		connect.WithReadMaxBytes(cfg.Server.MaxUploadBytes),
	)
	r.Handle(path+"*", handler)

	health := NewHealthHandler(cfg.App.Version)
	r.Get("/health/live", health.HandleLiveness)

	if cfg.Metrics.Enabled && gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return r
}
