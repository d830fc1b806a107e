// Package timeline реализует HTTP-обработчик ленты активности пользователя.
package timeline

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/trial-tracker/internal/analytics/timeline"
	"github.com/magabrotheeeer/trial-tracker/internal/http/response"
	"github.com/magabrotheeeer/trial-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/trial-tracker/internal/services/analytics"
)

// Handler обрабатывает запросы ленты активности.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс построения ленты.
type Service interface {
	Timeline(ctx context.Context, userID string) (*timeline.Timeline, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP возвращает ленту активности пользователя.
//
// @Summary Лента активности пользователя
// @Tags Trials
// @Produce json
// @Param id path string true "ID пользователя"
// @Success 200 {object} response.Response{data=timeline.Timeline}
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка загрузки данных"
// @Router /trials/{id}/timeline [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.trials.timeline"

	userID := chi.URLParam(r, "id")
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("user_id", userID),
	)

	res, err := h.service.Timeline(r.Context(), userID)
	if err != nil {
		if errors.Is(err, analytics.ErrUserNotFound) {
			response.Fail(w, r, http.StatusNotFound, "user not found")
			return
		}
		log.Error("failed to build timeline", sl.Err(err))
		response.Fail(w, r, http.StatusInternalServerError, "could not load timeline")
		return
	}

	log.Debug("timeline built", slog.Int("items", len(res.Items)))
	render.JSON(w, r, response.StatusOKWithData(res))
}
