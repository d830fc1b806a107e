// Package single реализует HTTP-обработчик отправки письма одному пользователю.
package single

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/trial-tracker/internal/http/response"
	"github.com/magabrotheeeer/trial-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/trial-tracker/internal/models"
	"github.com/magabrotheeeer/trial-tracker/internal/services/analytics"
	"github.com/magabrotheeeer/trial-tracker/internal/services/reminder"
)

// Request тело запроса на отправку письма.
type Request struct {
	Kind string `json:"kind" validate:"required,oneof=reminder offer" example:"reminder"`
}

// Handler обрабатывает запросы на отправку письма одному пользователю.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс отправки одиночного письма.
type Service interface {
	SendOne(ctx context.Context, userID string, kind models.ReminderKind) (*models.ReminderMessage, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP ставит письмо пользователю в очередь отправки.
//
// @Summary Отправить письмо пользователю
// @Tags Reminders
// @Accept json
// @Produce json
// @Param id path string true "ID пользователя"
// @Param request body Request true "Вид письма"
// @Success 202 {object} response.Response{data=models.ReminderMessage}
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 409 {object} response.ErrorResponse "Пользователь уже оформил подписку"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации или нет адреса почты"
// @Failure 500 {object} response.ErrorResponse "Ошибка публикации"
// @Router /trials/{id}/remind [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.reminders.single"

	userID := chi.URLParam(r, "id")
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("user_id", userID),
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

	msg, err := h.service.SendOne(r.Context(), userID, models.ReminderKind(req.Kind))
	if err != nil {
		switch {
		case errors.Is(err, analytics.ErrUserNotFound):
			response.Fail(w, r, http.StatusNotFound, "user not found")
		case errors.Is(err, reminder.ErrSubscribed):
			response.Fail(w, r, http.StatusConflict, "user is already subscribed")
		case errors.Is(err, reminder.ErrNoEmail):
			response.Fail(w, r, http.StatusUnprocessableEntity, "user has no email")
		default:
			log.Error("failed to send reminder", sl.Err(err))
			response.Fail(w, r, http.StatusInternalServerError, "could not send reminder")
		}
		return
	}

	log.Info("reminder queued", slog.String("message_id", msg.MessageID), slog.String("kind", req.Kind))
	render.Status(r, http.StatusAccepted)
	render.JSON(w, r, response.StatusOKWithData(msg))
}
