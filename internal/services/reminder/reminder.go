// Package reminder публикует команды на отправку писем пользователям
// пробного периода: одиночные и массовые, вида reminder или offer.
package reminder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/trial-tracker/internal/lib/metrics"
	"github.com/magabrotheeeer/trial-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/trial-tracker/internal/models"
)

var (
	// ErrUnknownKind неизвестный вид письма.
	ErrUnknownKind = errors.New("unknown reminder kind")
	// ErrNoRecipients пустой список получателей.
	ErrNoRecipients = errors.New("no recipients")
	// ErrNoEmail у пользователя нет адреса почты.
	ErrNoEmail = errors.New("user has no email")
	// ErrSubscribed пользователь уже оформил подписку.
	ErrSubscribed = errors.New("user is already subscribed")
	// ErrUserNotFound пользователя нет в агрегированном списке.
	ErrUserNotFound = errors.New("user not found")
)

// ReminderError ошибка отправки письма конкретному пользователю.
type ReminderError struct {
	UserID  string
	BatchID string
	Err     error
}

func (e *ReminderError) Error() string {
	return fmt.Sprintf("reminder for user %s (batch %s): %v", e.UserID, e.BatchID, e.Err)
}

func (e *ReminderError) Unwrap() error {
	return e.Err
}

// BulkResult итог массовой отправки. Failed содержит причину по каждому
// пользователю, которому отправить не удалось.
type BulkResult struct {
	BatchID string            `json:"batch_id"`
	Kind    string            `json:"kind"`
	Sent    []string          `json:"sent"`
	Failed  map[string]string `json:"failed"`
}

// UserFinder ищет пользователей в агрегированном списке. FindUsers
// возвращает только найденных.
type UserFinder interface {
	FindUser(ctx context.Context, userID string) (*models.TrialUser, error)
	FindUsers(ctx context.Context, userIDs []string) (map[string]models.TrialUser, error)
}

// Publisher публикует сообщение с ключом маршрутизации.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
}

// Service публикует напоминания в очередь писем.
type Service struct {
	users     UserFinder
	publisher Publisher
	log       *slog.Logger
}

// New создает новый экземпляр Service.
func New(users UserFinder, publisher Publisher, log *slog.Logger) *Service {
	return &Service{
		users:     users,
		publisher: publisher,
		log:       log,
	}
}

// SendOne отправляет письмо одному пользователю.
func (s *Service) SendOne(ctx context.Context, userID string, kind models.ReminderKind) (*models.ReminderMessage, error) {
	const op = "reminder.SendOne"

	if !kind.Valid() {
		return nil, fmt.Errorf("%s: %w: %q", op, ErrUnknownKind, kind)
	}
	batchID := uuid.NewString()
	u, err := s.users.FindUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, s.record(kind, userID, batchID, err))
	}
	msg, err := s.send(ctx, batchID, u, kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return msg, nil
}

// SendBulk отправляет письма списку пользователей. Снимок читается один
// раз на вызов. Ошибка по одному пользователю не прерывает отправку остальным.
func (s *Service) SendBulk(ctx context.Context, userIDs []string, kind models.ReminderKind) (*BulkResult, error) {
	const op = "reminder.SendBulk"

	if !kind.Valid() {
		return nil, fmt.Errorf("%s: %w: %q", op, ErrUnknownKind, kind)
	}
	if len(userIDs) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNoRecipients)
	}

	users, err := s.users.FindUsers(ctx, userIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res := &BulkResult{
		BatchID: uuid.NewString(),
		Kind:    string(kind),
		Sent:    make([]string, 0, len(userIDs)),
		Failed:  make(map[string]string),
	}
	seen := make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		u, ok := users[id]
		if !ok {
			res.Failed[id] = s.record(kind, id, res.BatchID, ErrUserNotFound).Error()
			continue
		}
		if _, err := s.send(ctx, res.BatchID, &u, kind); err != nil {
			res.Failed[id] = err.Error()
			continue
		}
		res.Sent = append(res.Sent, id)
	}

	s.log.Info("bulk reminders published",
		slog.String("batch_id", res.BatchID),
		slog.String("kind", res.Kind),
		slog.Int("sent", len(res.Sent)),
		slog.Int("failed", len(res.Failed)),
	)
	return res, nil
}

func (s *Service) send(ctx context.Context, batchID string, u *models.TrialUser, kind models.ReminderKind) (*models.ReminderMessage, error) {
	msg, err := message(batchID, u, kind)
	if err == nil {
		err = s.publisher.Publish(ctx, string(kind), msg)
	}
	if err != nil {
		return nil, s.record(kind, u.ID, batchID, err)
	}
	metrics.RemindersPublished.WithLabelValues(string(kind), metrics.ResultOK).Inc()
	return msg, nil
}

// record учитывает неудачную отправку в метриках и логе.
func (s *Service) record(kind models.ReminderKind, userID, batchID string, err error) *ReminderError {
	metrics.RemindersPublished.WithLabelValues(string(kind), metrics.Result(err)).Inc()
	s.log.Error("failed to publish reminder",
		slog.String("user_id", userID),
		slog.String("batch_id", batchID),
		sl.Err(err),
	)
	return &ReminderError{UserID: userID, BatchID: batchID, Err: err}
}

func message(batchID string, u *models.TrialUser, kind models.ReminderKind) (*models.ReminderMessage, error) {
	if u.Subscribed {
		return nil, ErrSubscribed
	}
	if u.Email == "" {
		return nil, ErrNoEmail
	}
	return &models.ReminderMessage{
		MessageID:     uuid.NewString(),
		BatchID:       batchID,
		Kind:          kind,
		UserID:        u.ID,
		Email:         u.Email,
		FullName:      u.FullName,
		Username:      u.Username,
		TrialStatus:   u.TrialStatus,
		TrialEnd:      u.TrialEnd,
		DaysRemaining: u.DaysRemaining,
	}, nil
}
