package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/meridian-analytics/tradeoff/internal/config"
	"github.com/meridian-analytics/tradeoff/internal/exhibit"
	"github.com/meridian-analytics/tradeoff/internal/scenario"
	"github.com/meridian-analytics/tradeoff/internal/scoring"
)

func NewRouter(table *exhibit.Table, scorer *scoring.Scorer, scenarios scenario.Store, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(cfg.API.RateLimitPerMinute))

	thresholds := NewThresholdsHandler(table, scorer, cfg.Engine.ReferenceThreshold, cfg.Engine.SampleFloor)
	scen := NewScenariosHandler(scenarios, table, scorer)
	admin := NewAdminHandler(table, scorer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/metrics", thresholds.Metrics)
		r.Get("/scores", thresholds.Scores)
		r.Get("/perspectives", thresholds.Perspectives)
		r.Get("/delta", thresholds.Delta)
		r.Get("/curve", thresholds.Curve)
		r.Get("/frontier", thresholds.Frontier)

		r.Post("/scenarios", scen.Create)
		r.Get("/scenarios", scen.List)
		r.Get("/scenarios/{id}", scen.Get)
		r.Delete("/scenarios/{id}", scen.Delete)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(cfg.Server.AdminToken))
			r.Get("/admin/exhibit", admin.Exhibit)
		})
	})

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
