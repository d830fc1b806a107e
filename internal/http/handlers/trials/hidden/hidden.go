// Package hidden реализует HTTP-обработчик списка скрытых пользователей.
package hidden

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/trial-tracker/internal/http/response"
	"github.com/magabrotheeeer/trial-tracker/internal/lib/sl"
)

// Handler обрабатывает запросы списка скрытых пользователей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс чтения скрытых пользователей.
type Service interface {
	Hidden(ctx context.Context) ([]string, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP возвращает отсортированный список ID скрытых пользователей.
//
// @Summary Скрытые пользователи
// @Tags Trials
// @Produce json
// @Success 200 {object} response.Response{data=[]string}
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /trials/hidden [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.trials.hidden"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ids, err := h.service.Hidden(r.Context())
	if err != nil {
		log.Error("failed to list hidden users", sl.Err(err))
		response.Fail(w, r, http.StatusInternalServerError, "could not list hidden users")
		return
	}
	if ids == nil {
		ids = []string{}
	}

	render.JSON(w, r, response.StatusOKWithData(ids))
}
