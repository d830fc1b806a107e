// Package restore реализует HTTP-обработчик возврата всех скрытых пользователей.
package restore

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/trial-tracker/internal/http/response"
	"github.com/magabrotheeeer/trial-tracker/internal/lib/sl"
)

// Handler обрабатывает запросы на очистку скрытого списка.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс очистки скрытого списка.
type Service interface {
	RestoreAll(ctx context.Context) error
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP возвращает всех скрытых пользователей в представление.
//
// @Summary Вернуть скрытых пользователей
// @Tags Trials
// @Produce json
// @Success 200 {object} response.Response
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /trials/hidden [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.trials.restore"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := h.service.RestoreAll(r.Context()); err != nil {
		log.Error("failed to restore hidden users", sl.Err(err))
		response.Fail(w, r, http.StatusInternalServerError, "could not restore hidden users")
		return
	}

	log.Info("hidden users restored")
	render.JSON(w, r, response.Response{Status: response.StatusOK})
}
