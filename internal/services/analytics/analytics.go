// Package analytics собирает агрегированный список пользователей пробного
// периода из исходных таблиц, кеширует его и строит на его основе
// админское представление и ленты активности.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/magabrotheeeer/trial-tracker/internal/analytics/aggregator"
	"github.com/magabrotheeeer/trial-tracker/internal/analytics/engagement"
	"github.com/magabrotheeeer/trial-tracker/internal/analytics/hidden"
	"github.com/magabrotheeeer/trial-tracker/internal/analytics/timeline"
	"github.com/magabrotheeeer/trial-tracker/internal/analytics/trial"
	"github.com/magabrotheeeer/trial-tracker/internal/analytics/view"
	"github.com/magabrotheeeer/trial-tracker/internal/lib/metrics"
	"github.com/magabrotheeeer/trial-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/trial-tracker/internal/models"
)

// SnapshotKey ключ кеша агрегированного списка.
const SnapshotKey = "trial_tracker:snapshot"

// DefaultEventLimit сколько последних событий попадает в ленту.
const DefaultEventLimit = 50

// ErrUserNotFound пользователя нет в агрегированном списке.
var ErrUserNotFound = errors.New("user not found")

// SourceRepository исходные коллекции для агрегации.
type SourceRepository interface {
	ListUsers(ctx context.Context) ([]models.UserRow, error)
	ListActivity(ctx context.Context) ([]models.ActivityRow, error)
	CountQuotes(ctx context.Context) ([]models.CountRow, error)
	CountCertificates(ctx context.Context) ([]models.CountRow, error)
	CountStudySessions(ctx context.Context) ([]models.CountRow, error)
	ListEventSummaries(ctx context.Context) ([]models.EventSummaryRow, error)
}

// DetailRepository детальные записи одного пользователя для ленты.
type DetailRepository interface {
	GetActivity(ctx context.Context, userID string) (*models.ActivityRow, error)
	ListQuotes(ctx context.Context, userID string) ([]models.QuoteRow, error)
	ListCertificates(ctx context.Context, userID string) ([]models.CertificateRow, error)
	ListStudySessions(ctx context.Context, userID string) ([]models.StudySessionRow, error)
	ListTimeSessions(ctx context.Context, userID string) ([]models.TimeSessionRow, error)
	ListRecentEvents(ctx context.Context, userID string, limit int) ([]models.EventRow, error)
}

// Repository все чтения, нужные сервису.
type Repository interface {
	SourceRepository
	DetailRepository
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(ctx context.Context, key string, result any) (bool, error)
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

// Options параметры движка аналитики.
type Options struct {
	TrialDays      int
	Thresholds     engagement.Thresholds
	MaxExpiredDays int
	EventLimit     int
	SnapshotTTL    time.Duration
	Location       *time.Location
}

// Snapshot агрегированный список на момент GeneratedAt.
type Snapshot struct {
	GeneratedAt time.Time          `json:"generated_at"`
	Users       []models.TrialUser `json:"users"`
}

// ViewResult сгруппированная выдача вместе со сводкой по всему списку.
type ViewResult struct {
	GeneratedAt time.Time          `json:"generated_at"`
	Filter      view.Filter        `json:"filter"`
	Groups      []view.Group       `json:"groups"`
	Total       int                `json:"total"`
	HiddenCount int                `json:"hidden_count"`
	Summary     aggregator.Summary `json:"summary"`
}

// Service реализует сценарии чтения аналитики и управления скрытыми пользователями.
type Service struct {
	repo       Repository
	cache      Cache
	hidden     hidden.Store
	aggregator *aggregator.Aggregator
	engine     *view.Engine
	thresholds engagement.Thresholds
	eventLimit int
	ttl        time.Duration
	loc        *time.Location
	now        func() time.Time
	log        *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, cache Cache, hiddenStore hidden.Store, opts Options, log *slog.Logger) *Service {
	if opts.EventLimit <= 0 {
		opts.EventLimit = DefaultEventLimit
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Service{
		repo:       repo,
		cache:      cache,
		hidden:     hiddenStore,
		aggregator: aggregator.New(trial.NewClassifier(opts.TrialDays), opts.MaxExpiredDays),
		engine:     view.NewEngine(opts.Thresholds),
		thresholds: opts.Thresholds,
		eventLimit: opts.EventLimit,
		ttl:        opts.SnapshotTTL,
		loc:        opts.Location,
		now:        time.Now,
		log:        log,
	}
}

// Snapshot возвращает агрегированный список из кеша или собирает его заново.
// Ошибки кеша не прерывают запрос.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	const op = "analytics.Snapshot"

	var cached Snapshot
	found, err := s.cache.Get(ctx, SnapshotKey, &cached)
	if err != nil {
		s.log.Warn("failed to read snapshot from cache", sl.Err(err))
	}
	metrics.CacheHit(found)
	if found {
		return &cached, nil
	}

	snap, err := s.build(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return snap, nil
}

// Refresh сбрасывает кеш и собирает список заново.
func (s *Service) Refresh(ctx context.Context) (*Snapshot, error) {
	const op = "analytics.Refresh"

	if err := s.cache.Invalidate(ctx, SnapshotKey); err != nil {
		s.log.Warn("failed to invalidate snapshot", sl.Err(err))
	}
	snap, err := s.build(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return snap, nil
}

// build загружает все исходные коллекции параллельно и объединяет их
// только после того, как загрузились все. Первая ошибка отменяет остальные.
func (s *Service) build(ctx context.Context) (*Snapshot, error) {
	start := time.Now()
	var src aggregator.Sources

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		src.Users, err = s.repo.ListUsers(gctx)
		return err
	})
	g.Go(func() (err error) {
		src.Activity, err = s.repo.ListActivity(gctx)
		return err
	})
	g.Go(func() (err error) {
		src.Quotes, err = s.repo.CountQuotes(gctx)
		return err
	})
	g.Go(func() (err error) {
		src.Certificates, err = s.repo.CountCertificates(gctx)
		return err
	})
	g.Go(func() (err error) {
		src.StudySessions, err = s.repo.CountStudySessions(gctx)
		return err
	})
	g.Go(func() (err error) {
		src.EventSummaries, err = s.repo.ListEventSummaries(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("failed to load sources", sl.Err(err))
		return nil, err
	}

	now := s.now().In(s.loc)
	snap := &Snapshot{
		GeneratedAt: now,
		Users:       s.aggregator.Aggregate(src, now),
	}
	metrics.SnapshotBuildDuration.Observe(time.Since(start).Seconds())

	if err := s.cache.Set(ctx, SnapshotKey, snap, s.ttl); err != nil {
		s.log.Warn("failed to cache snapshot", sl.Err(err))
	}
	s.log.Info("snapshot built",
		slog.Int("users", len(snap.Users)),
		slog.Duration("took", time.Since(start)),
	)
	return snap, nil
}

// View применяет фильтр к агрегированному списку без скрытых пользователей.
// Если скрытых прочитать не удалось, выдача строится без них.
func (s *Service) View(ctx context.Context, f view.Filter) (*ViewResult, error) {
	const op = "analytics.View"

	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	hiddenSet, err := s.hidden.Members(ctx)
	if err != nil {
		s.log.Warn("failed to read hidden users, showing everyone", sl.Err(err))
		hiddenSet = hidden.NewSet()
	}

	res := s.engine.Apply(snap.Users, f, hiddenSet)
	return &ViewResult{
		GeneratedAt: snap.GeneratedAt,
		Filter:      f.Normalize(),
		Groups:      res.Groups,
		Total:       res.Total,
		HiddenCount: hiddenSet.Len(),
		Summary:     aggregator.Summarize(snap.Users, s.thresholds),
	}, nil
}

// FindUser возвращает пользователя из агрегированного списка.
func (s *Service) FindUser(ctx context.Context, userID string) (*models.TrialUser, error) {
	const op = "analytics.FindUser"

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for i := range snap.Users {
		if snap.Users[i].ID == userID {
			u := snap.Users[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
}

// FindUsers возвращает найденных пользователей по id за одно чтение снимка.
// Отсутствующие id в результат не попадают.
func (s *Service) FindUsers(ctx context.Context, userIDs []string) (map[string]models.TrialUser, error) {
	const op = "analytics.FindUsers"

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	wanted := make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		wanted[id] = struct{}{}
	}
	found := make(map[string]models.TrialUser, len(wanted))
	for _, u := range snap.Users {
		if _, ok := wanted[u.ID]; ok {
			found[u.ID] = u
		}
	}
	return found, nil
}

// Timeline строит ленту активности пользователя. Детальные источники
// загружаются параллельно.
func (s *Service) Timeline(ctx context.Context, userID string) (*timeline.Timeline, error) {
	const op = "analytics.Timeline"

	user, err := s.FindUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var src timeline.Sources
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		src.Activity, err = s.repo.GetActivity(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		src.Quotes, err = s.repo.ListQuotes(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		src.Certificates, err = s.repo.ListCertificates(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		src.StudySessions, err = s.repo.ListStudySessions(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		src.TimeSessions, err = s.repo.ListTimeSessions(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		src.Events, err = s.repo.ListRecentEvents(gctx, userID, s.eventLimit)
		return err
	})
	if err = g.Wait(); err != nil {
		s.log.Error("failed to load timeline sources", slog.String("user_id", userID), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	tl := timeline.Build(*user, src)
	return &tl, nil
}

// Hide скрывает пользователя из представления.
func (s *Service) Hide(ctx context.Context, userID string) error {
	const op = "analytics.Hide"

	if _, err := s.FindUser(ctx, userID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.hidden.Add(ctx, userID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("user hidden", slog.String("user_id", userID))
	return nil
}

// RestoreAll возвращает в представление всех скрытых пользователей.
func (s *Service) RestoreAll(ctx context.Context) error {
	const op = "analytics.RestoreAll"

	if err := s.hidden.Clear(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("hidden users restored")
	return nil
}

// Hidden возвращает идентификаторы скрытых пользователей.
func (s *Service) Hidden(ctx context.Context) ([]string, error) {
	const op = "analytics.Hidden"

	set, err := s.hidden.Members(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return set.IDs(), nil
}
