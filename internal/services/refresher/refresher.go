// Package refresher периодически пересобирает агрегированный список,
// чтобы статусы и оценки вовлечённости не устаревали.
package refresher

import (
	"context"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/trial-tracker/internal/lib/sl"
	"github.com/magabrotheeeer/trial-tracker/internal/services/analytics"
)

// DefaultInterval период обновления по умолчанию.
const DefaultInterval = 60 * time.Second

// Refresher пересобирает снимок.
type Refresher interface {
	Refresh(ctx context.Context) (*analytics.Snapshot, error)
}

// Service запускает периодическое обновление.
type Service struct {
	refresher Refresher
	interval  time.Duration
	log       *slog.Logger
}

// New создает новый экземпляр Service. Неположительный interval заменяется DefaultInterval.
func New(refresher Refresher, interval time.Duration, log *slog.Logger) *Service {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Service{
		refresher: refresher,
		interval:  interval,
		log:       log,
	}
}

// Run обновляет снимок сразу и затем каждые interval до отмены ctx.
// Ошибки обновления только логируются.
func (s *Service) Run(ctx context.Context) {
	s.log.Info("starting snapshot refresher", slog.Duration("interval", s.interval))
	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("snapshot refresher stopped")
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Service) runOnce(ctx context.Context) {
	snap, err := s.refresher.Refresh(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		s.log.Error("failed to refresh snapshot", sl.Err(err))
		return
	}
	s.log.Debug("snapshot refreshed", slog.Int("users", len(snap.Users)))
}
