package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/insurance-admin/internal/transport/middleware"
)

// NewOpsRouter serves /livez, /healthz and /metrics.
func NewOpsRouter(logger *slog.Logger, health *HealthHandler, reg *prometheus.Registry) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger, "/livez", "/healthz", "/metrics"),
		middleware.Recovery(logger),
	)

	r.Get("/livez", health.Live)
	r.Get("/healthz", health.Health)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	return r
}
