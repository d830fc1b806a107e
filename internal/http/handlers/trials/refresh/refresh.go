// Package refresh реализует HTTP-обработчик принудительной пересборки
// агрегированного списка в обход кеша.
package refresh

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/trial-tracker/internal/http/response"
	"github.com/magabrotheeeer/trial-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/trial-tracker/internal/services/analytics"
)

// Handler обрабатывает запросы на пересборку списка.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс пересборки списка.
type Service interface {
	Refresh(ctx context.Context) (*analytics.Snapshot, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP пересобирает список и возвращает время сборки и число пользователей.
//
// @Summary Пересобрать список
// @Tags Trials
// @Produce json
// @Success 200 {object} response.Response
// @Failure 500 {object} response.ErrorResponse "Ошибка загрузки данных"
// @Router /trials/refresh [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.trials.refresh"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	snap, err := h.service.Refresh(r.Context())
	if err != nil {
		log.Error("failed to refresh snapshot", sl.Err(err))
		response.Fail(w, r, http.StatusInternalServerError, "could not refresh trials")
		return
	}

	log.Info("snapshot refreshed", slog.Int("users", len(snap.Users)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"generated_at": snap.GeneratedAt,
		"users":        len(snap.Users),
	}))
}
