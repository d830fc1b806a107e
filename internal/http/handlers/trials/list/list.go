// Package list реализует HTTP-обработчик админского представления
// пользователей пробного периода, сгруппированных по дате окончания.
package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/trial-tracker/internal/analytics/view"
	"github.com/magabrotheeeer/trial-tracker/internal/http/response"
	"github.com/magabrotheeeer/trial-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/trial-tracker/internal/services/analytics"
)

// Handler обрабатывает запросы на получение представления.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс построения представления.
type Service interface {
	View(ctx context.Context, f view.Filter) (*analytics.ViewResult, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP возвращает пользователей, отобранных по фильтрам из query.
//
// @Summary Список пользователей пробного периода
// @Description Группы по дате окончания пробного периода по возрастанию, внутри группы по engagement_score по убыванию.
// @Tags Trials
// @Produce json
// @Param status query string false "all, subscribed, active, ending_today, ending_tomorrow, expired"
// @Param role query string false "all, apprentice, electrician, employer, none"
// @Param engagement query string false "all, hot, warm, cold"
// @Param search query string false "Подстрока имени или username"
// @Success 200 {object} response.Response{data=analytics.ViewResult}
// @Failure 400 {object} response.ErrorResponse "Неизвестное значение фильтра"
// @Failure 500 {object} response.ErrorResponse "Ошибка загрузки данных"
// @Router /trials [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.trials.list"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	q := r.URL.Query()
	f := view.Filter{
		Status:     q.Get("status"),
		Role:       q.Get("role"),
		Engagement: q.Get("engagement"),
		Search:     q.Get("search"),
	}

	res, err := h.service.View(r.Context(), f)
	if err != nil {
		if errors.Is(err, view.ErrInvalidFilter) {
			log.Info("invalid filter", sl.Err(err))
			response.Fail(w, r, http.StatusBadRequest, "invalid filter")
			return
		}
		log.Error("failed to build view", sl.Err(err))
		response.Fail(w, r, http.StatusInternalServerError, "could not load trials")
		return
	}

	log.Debug("view built", slog.Int("total", res.Total), slog.Int("groups", len(res.Groups)))
	render.JSON(w, r, response.StatusOKWithData(res))
}
