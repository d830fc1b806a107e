// Package hide реализует HTTP-обработчик скрытия пользователя из представления.
package hide

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/trial-tracker/internal/http/response"
	"github.com/magabrotheeeer/trial-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/trial-tracker/internal/services/analytics"
)

// Handler обрабатывает запросы на скрытие пользователя.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс скрытия пользователя.
type Service interface {
	Hide(ctx context.Context, userID string) error
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP скрывает пользователя. Повторное скрытие не является ошибкой.
//
// @Summary Скрыть пользователя
// @Tags Trials
// @Produce json
// @Param id path string true "ID пользователя"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /trials/{id}/hide [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.trials.hide"

	userID := chi.URLParam(r, "id")
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("user_id", userID),
	)

	if err := h.service.Hide(r.Context(), userID); err != nil {
		if errors.Is(err, analytics.ErrUserNotFound) {
			response.Fail(w, r, http.StatusNotFound, "user not found")
			return
		}
		log.Error("failed to hide user", sl.Err(err))
		response.Fail(w, r, http.StatusInternalServerError, "could not hide user")
		return
	}

	log.Info("user hidden")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"hidden": userID,
	}))
}
