// Package bulk реализует HTTP-обработчик массовой отправки писем.
package bulk

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/trial-tracker/internal/http/response"
	"github.com/magabrotheeeer/trial-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/trial-tracker/internal/models"
	"github.com/magabrotheeeer/trial-tracker/internal/services/reminder"
)

// Request тело запроса на массовую отправку.
type Request struct {
	Kind    string   `json:"kind" validate:"required,oneof=reminder offer" example:"offer"`
	UserIDs []string `json:"user_ids" validate:"required,min=1,max=1000,dive,required"`
}

// Handler обрабатывает запросы на массовую отправку писем.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс массовой отправки.
type Service interface {
	SendBulk(ctx context.Context, userIDs []string, kind models.ReminderKind) (*reminder.BulkResult, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP ставит письма списку пользователей в очередь отправки.
// Ошибки по отдельным пользователям возвращаются в поле failed.
//
// @Summary Массовая отправка писем
// @Tags Reminders
// @Accept json
// @Produce json
// @Param request body Request true "Вид письма и получатели"
// @Success 202 {object} response.Response{data=reminder.BulkResult}
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /trials/remind [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.reminders.bulk"

	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		response.Fail(w, r, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Info("validation failed", sl.Err(err))
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	res, err := h.service.SendBulk(r.Context(), req.UserIDs, models.ReminderKind(req.Kind))
	if err != nil {
		log.Error("failed to send bulk reminders", sl.Err(err))
		response.Fail(w, r, http.StatusInternalServerError, "could not send reminders")
		return
	}

	render.Status(r, http.StatusAccepted)
	render.JSON(w, r, response.StatusOKWithData(res))
}
