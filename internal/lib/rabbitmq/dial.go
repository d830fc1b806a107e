// Package rabbitmq содержит помощники для работы с брокером напоминаний:
// подключение с повторами, объявление обменника и очередей, публикацию
// и конкурентное потребление сообщений.
package rabbitmq

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/trial-tracker/internal/lib/sl"
)

// Dial подключается к брокеру напоминаний. Делается не более attempts
// попыток, между ними пауза backoff. Отмена ctx прерывает ожидание.
func Dial(ctx context.Context, log *slog.Logger, url string, attempts int, backoff time.Duration) (*amqp.Connection, error) {
	const op = "rabbitmq.Dial"

	attempts = max(attempts, 1)
	var lastErr error
	for attempt := 1; ; attempt++ {
		conn, err := amqp.Dial(url)
		if err == nil {
			return conn, nil
		}
		lastErr = err
		if attempt == attempts {
			break
		}
		log.Warn("reminder broker unreachable, retrying",
			slog.Int("attempt", attempt),
			slog.Int("attempts", attempts),
			sl.Err(err),
		)

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%s: %w", op, ctx.Err())
		case <-time.After(backoff):
		}
	}
	return nil, fmt.Errorf("%s: broker unreachable after %d attempts: %w", op, attempts, lastErr)
}
