// Package trialtracker собирает HTTP-приложение трекера пробных периодов.
package trialtracker

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	// Регистрация описания API для /docs.
	_ "github.com/magabrotheeeer/trial-tracker/docs"
	"github.com/magabrotheeeer/trial-tracker/internal/config"
	"github.com/magabrotheeeer/trial-tracker/internal/http/handlers/health"
	"github.com/magabrotheeeer/trial-tracker/internal/http/handlers/reminders/bulk"
	"github.com/magabrotheeeer/trial-tracker/internal/http/handlers/reminders/single"
	"github.com/magabrotheeeer/trial-tracker/internal/http/handlers/trials/hidden"
	"github.com/magabrotheeeer/trial-tracker/internal/http/handlers/trials/hide"
	"github.com/magabrotheeeer/trial-tracker/internal/http/handlers/trials/list"
	"github.com/magabrotheeeer/trial-tracker/internal/http/handlers/trials/refresh"
	"github.com/magabrotheeeer/trial-tracker/internal/http/handlers/trials/restore"
	"github.com/magabrotheeeer/trial-tracker/internal/http/handlers/trials/timeline"
	"github.com/magabrotheeeer/trial-tracker/internal/http/middlewarectx"
	"github.com/magabrotheeeer/trial-tracker/internal/lib/metrics"
	"github.com/magabrotheeeer/trial-tracker/internal/services/analytics"
	"github.com/magabrotheeeer/trial-tracker/internal/services/reminder"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(
	r chi.Router,
	logger *slog.Logger,
	limits config.RateLimit,
	analyticsService *analytics.Service,
	reminderService *reminder.Service,
	checks map[string]health.Check,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		metrics.Middleware,
	)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", health.New(logger, checks).ServeHTTP)

		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.RateLimitMiddleware(logger, limits))
			r.Get("/trials", list.New(logger, analyticsService).ServeHTTP)
			r.Post("/trials/refresh", refresh.New(logger, analyticsService).ServeHTTP)
			r.Get("/trials/hidden", hidden.New(logger, analyticsService).ServeHTTP)
			r.Delete("/trials/hidden", restore.New(logger, analyticsService).ServeHTTP)
			r.Post("/trials/remind", bulk.New(logger, reminderService).ServeHTTP)
			r.Get("/trials/{id}/timeline", timeline.New(logger, analyticsService).ServeHTTP)
			r.Post("/trials/{id}/hide", hide.New(logger, analyticsService).ServeHTTP)
			r.Post("/trials/{id}/remind", single.New(logger, reminderService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
