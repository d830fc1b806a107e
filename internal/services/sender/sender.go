// Package sender отправляет письма пользователям пробного периода
// по сообщениям из очереди напоминаний.
package sender

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/magabrotheeeer/trial-tracker/internal/lib/calendar"
	"github.com/magabrotheeeer/trial-tracker/internal/lib/metrics"
	"github.com/magabrotheeeer/trial-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/trial-tracker/internal/lib/smtp"
	"github.com/magabrotheeeer/trial-tracker/internal/models"
)

var (
	// ErrUnknownKind сообщение неизвестного вида.
	ErrUnknownKind = errors.New("unknown reminder kind")
	// ErrNoRecipient у пользователя нет адреса почты.
	ErrNoRecipient = errors.New("recipient has no email")
)

// Service собирает и отправляет письма.
type Service struct {
	transport smtp.TransportInterface
	offerURL  string
	log       *slog.Logger
}

// New создает новый экземпляр Service.
func New(transport smtp.TransportInterface, offerURL string, log *slog.Logger) *Service {
	return &Service{
		transport: transport,
		offerURL:  offerURL,
		log:       log,
	}
}

// Handle обрабатывает тело сообщения из очереди в контексте потребителя.
// Ошибка возвращает сообщение в очередь.
func (s *Service) Handle(ctx context.Context, body []byte) error {
	return s.Send(ctx, body)
}

// Send разбирает сообщение и отправляет письмо нужного вида.
func (s *Service) Send(ctx context.Context, body []byte) error {
	const op = "sender.Send"

	var msg models.ReminderMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		s.log.Error("failed to unmarshal message body", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if !msg.Kind.Valid() {
		return fmt.Errorf("%s: %w: %q", op, ErrUnknownKind, msg.Kind)
	}
	if msg.Email == "" {
		return fmt.Errorf("%s: %w: %s", op, ErrNoRecipient, msg.UserID)
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	subject, text := s.compose(msg)
	err := s.sendEmail(ctx, msg.Email, subject, text)
	metrics.EmailsSent.WithLabelValues(string(msg.Kind), metrics.Result(err)).Inc()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("email sent",
		slog.String("kind", string(msg.Kind)),
		slog.String("user_id", msg.UserID),
		slog.String("batch_id", msg.BatchID),
	)
	return nil
}

func (s *Service) compose(msg models.ReminderMessage) (subject, text string) {
	name := msg.FullName
	if name == "" {
		name = msg.Username
	}
	end := calendar.DateKey(msg.TrialEnd)

	if msg.Kind == models.KindOffer {
		subject = "A special offer on your subscription"
		text = fmt.Sprintf("Hello, %s!\n\n"+
			"Thanks for trying the app. We have prepared a special discount for you.\n"+
			"Subscribe here to keep your quotes, certificates and study progress: %s\n",
			name, s.offerURL)
		return subject, text
	}

	switch msg.TrialStatus {
	case models.StatusEndingToday:
		subject = "Your trial ends today"
		text = fmt.Sprintf("Hello, %s!\n\nYour free trial ends today (%s).\n", name, end)
	case models.StatusEndingTomorrow:
		subject = "Your trial ends tomorrow"
		text = fmt.Sprintf("Hello, %s!\n\nYour free trial ends tomorrow (%s).\n", name, end)
	case models.StatusExpired:
		subject = "Your trial has ended"
		text = fmt.Sprintf("Hello, %s!\n\nYour free trial ended on %s.\n", name, end)
	default:
		subject = "Your trial is running"
		text = fmt.Sprintf("Hello, %s!\n\nYou have %d days left in your free trial (until %s).\n",
			name, msg.DaysRemaining, end)
	}
	text += "Subscribe to keep full access: " + s.offerURL + "\n"
	return subject, text
}

func (s *Service) sendEmail(ctx context.Context, to, subject, bodyText string) error {
	from := s.transport.From()
	msg := strings.Join([]string{
		"From: " + from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		bodyText,
	}, "\r\n")

	client, err := s.transport.Connect(ctx)
	if err != nil {
		s.log.Error("failed to connect to SMTP server", sl.Err(err))
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	if err = client.Mail(from); err != nil {
		s.log.Error("failed to set MAIL FROM", slog.String("from", from), sl.Err(err))
		return err
	}
	if err = client.Rcpt(to); err != nil {
		s.log.Error("failed to set RCPT TO", slog.String("recipient", to), sl.Err(err))
		return err
	}

	wc, err := client.Data()
	if err != nil {
		s.log.Error("failed to get Data writer", sl.Err(err))
		return err
	}
	if _, err = wc.Write([]byte(msg)); err != nil {
		s.log.Error("failed to write email body", sl.Err(err))
		return err
	}
	if err = wc.Close(); err != nil {
		s.log.Error("failed to close Data writer", sl.Err(err))
		return err
	}

	if err = client.Quit(); err != nil {
		s.log.Error("failed to quit SMTP client", sl.Err(err))
		return err
	}
	return nil
}
