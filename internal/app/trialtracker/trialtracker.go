package trialtracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/redis/go-redis/v9"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/trial-tracker/internal/cache"
	"github.com/magabrotheeeer/trial-tracker/internal/config"
	"github.com/magabrotheeeer/trial-tracker/internal/http/handlers/health"
	"github.com/magabrotheeeer/trial-tracker/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/trial-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/trial-tracker/internal/migrations"
	"github.com/magabrotheeeer/trial-tracker/internal/services/analytics"
	"github.com/magabrotheeeer/trial-tracker/internal/services/refresher"
	"github.com/magabrotheeeer/trial-tracker/internal/services/reminder"
	hiddenstore "github.com/magabrotheeeer/trial-tracker/internal/storage/hidden"
	"github.com/magabrotheeeer/trial-tracker/internal/storage/repository"
)

// App HTTP-сервер трекера вместе с фоновым обновлением списка.
type App struct {
	server    *http.Server
	logger    *slog.Logger
	db        *repository.Storage
	redis     *redis.Client
	conn      *amqp.Connection
	ch        *amqp.Channel
	refresher *refresher.Service
}

// New поднимает зависимости и собирает маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "trialtracker.New"

	loc, err := cfg.Analytics.Location()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if cfg.StorageAutoMigrate {
		version, err := migrations.Up(db.DB, cfg.MigrationsPath)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		logger.Info("source schema ready", slog.Uint64("version", uint64(version)))
	}
	if err = repository.CheckDatabaseReady(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	redisClient, err := cache.NewClient(ctx, cfg.RedisConnection)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	conn, err := rabbitmq.Dial(ctx, logger, cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		_ = redisClient.Close()
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	ch, err := rabbitmq.SetupChannel(conn, rabbitmq.ReminderQueues())
	if err != nil {
		_ = conn.Close()
		_ = redisClient.Close()
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	analyticsService := analytics.New(
		db,
		cache.New(redisClient),
		hiddenstore.NewRedisStore(redisClient),
		analytics.Options{
			TrialDays:      cfg.Analytics.TrialDays,
			Thresholds:     cfg.Analytics.Thresholds(),
			MaxExpiredDays: cfg.Analytics.MaxExpiredDays,
			EventLimit:     cfg.Analytics.TimelineEventLimit,
			SnapshotTTL:    cfg.Analytics.SnapshotTTL,
			Location:       loc,
		},
		logger,
	)
	reminderService := reminder.New(
		analyticsService,
		rabbitmq.NewPublisher(ch, rabbitmq.ExchangeNotifications),
		logger,
	)

	checks := map[string]health.Check{
		"postgres": db.DB.PingContext,
		"redis": func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		},
		"rabbitmq": func(context.Context) error {
			if conn.IsClosed() {
				return amqp.ErrClosed
			}
			return nil
		},
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, cfg.RateLimit, analyticsService, reminderService, checks)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:    srv,
		logger:    logger,
		db:        db,
		redis:     redisClient,
		conn:      conn,
		ch:        ch,
		refresher: refresher.New(analyticsService, cfg.Analytics.RefreshInterval, logger),
	}, nil
}

// Run запускает сервер и фоновое обновление до отмены ctx.
func (a *App) Run(ctx context.Context) error {
	go a.refresher.Run(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	var err error
	select {
	case err = <-errCh:
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err = a.server.Shutdown(timeoutCtx)
	}

	a.close()
	return err
}

func (a *App) close() {
	if err := a.ch.Close(); err != nil {
		a.logger.Error("failed to close channel", sl.Err(err))
	}
	if err := a.conn.Close(); err != nil {
		a.logger.Error("failed to close connection", sl.Err(err))
	}
	if err := a.redis.Close(); err != nil {
		a.logger.Error("failed to close redis", sl.Err(err))
	}
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close database", sl.Err(err))
	}
}
