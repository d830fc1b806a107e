package trialtracker

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/trial-tracker/internal/config"
)

func TestRegisterRoutes(t *testing.T) {
	router := chi.NewRouter()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	RegisterRoutes(router, logger, config.RateLimit{RPS: 100, Burst: 100}, nil, nil, nil)

	var routes []string
	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, method+" "+route)
		return nil
	})
	require.NoError(t, err)

	for _, want := range []string{
		"GET /api/v1/health",
		"GET /api/v1/trials",
		"POST /api/v1/trials/refresh",
		"GET /api/v1/trials/hidden",
		"DELETE /api/v1/trials/hidden",
		"POST /api/v1/trials/remind",
		"GET /api/v1/trials/{id}/timeline",
		"POST /api/v1/trials/{id}/hide",
		"POST /api/v1/trials/{id}/remind",
		"GET /metrics",
		"GET /docs/*",
	} {
		assert.Contains(t, routes, want)
	}
}

func TestRegisterRoutes_HealthWithoutChecks(t *testing.T) {
	router := chi.NewRouter()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	RegisterRoutes(router, logger, config.RateLimit{RPS: 100, Burst: 100}, nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"OK","data":{}}`, w.Body.String())
}
