// Package metrics содержит метрики Prometheus трекера пробных периодов.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Результаты операций для меток result.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	// SnapshotBuildDuration время сборки агрегированного списка пользователей.
	SnapshotBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "trial_tracker_snapshot_build_duration_seconds",
			Help:    "Duration of aggregated snapshot builds in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// SnapshotCache попадания и промахи кеша снимка.
	SnapshotCache = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trial_tracker_snapshot_cache_total",
			Help: "Snapshot cache lookups by outcome",
		},
		[]string{"outcome"},
	)

	// RemindersPublished опубликованные в очередь напоминания.
	RemindersPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trial_tracker_reminders_published_total",
			Help: "Reminder messages published to the broker",
		},
		[]string{"kind", "result"},
	)

	// EmailsSent письма, отправленные через SMTP.
	EmailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "trial_tracker_emails_sent_total",
			Help: "Reminder emails sent over SMTP",
		},
		[]string{"kind", "result"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trial_tracker_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "status"},
	)
)

// Result возвращает метку результата по ошибке.
func Result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}

// CacheHit отмечает попадание или промах кеша снимка.
func CacheHit(hit bool) {
	if hit {
		SnapshotCache.WithLabelValues("hit").Inc()
		return
	}
	SnapshotCache.WithLabelValues("miss").Inc()
}

// Middleware считает длительность HTTP-запросов.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		requestDuration.WithLabelValues(r.Method, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
	})
}
