// Package timeline строит единую ленту активности пользователя из разнородных
// источников: синтетических записей по очкам и серии, цитат, сертификатов,
// учебных сессий, сессий учёта времени и поведенческих событий.
package timeline

import (
	"fmt"
	"sort"
	"time"

	"github.com/magabrotheeeer/trial-tracker/internal/analytics/engagement"
	"github.com/magabrotheeeer/trial-tracker/internal/models"
)

// Типы поведенческих событий, попадающие в ленту.
const (
	EventLogin        = "login"
	EventPageView     = "page_view"
	EventFeatureUse   = "feature_use"
	EventSessionStart = "session_start"
)

// Sources исходные записи одного пользователя.
type Sources struct {
	Activity      *models.ActivityRow
	Quotes        []models.QuoteRow
	Certificates  []models.CertificateRow
	StudySessions []models.StudySessionRow
	TimeSessions  []models.TimeSessionRow
	Events        []models.EventRow
}

// Timeline лента активности пользователя.
type Timeline struct {
	UserID string                `json:"user_id"`
	Items  []models.ActivityItem `json:"items"`
	// FirstAction самое раннее несинтетическое действие, nil если таких нет.
	FirstAction *models.ActivityItem  `json:"first_action,omitempty"`
	Breakdown   models.ScoreBreakdown `json:"breakdown"`
	// TimeToFirstValueSeconds время от регистрации до первого действия в секундах.
	TimeToFirstValueSeconds *int64 `json:"time_to_first_value_seconds,omitempty"`
	// TimeToFirstValue то же время в виде "1h 5m".
	TimeToFirstValue string `json:"time_to_first_value,omitempty"`
}

// Build собирает ленту. Элементы упорядочены по created_at по убыванию.
//
// Синтетические записи points и streak датируются updated_at и last_active_date
// сводки активности. Это приближение: относительно настоящих событий того же
// периода они могут оказаться не на своём месте.
func Build(user models.TrialUser, src Sources) Timeline {
	var items []models.ActivityItem

	items = append(items, synthetic(user.ID, src.Activity)...)

	for _, q := range src.Quotes {
		items = append(items, models.ActivityItem{
			ID:         "quote-" + q.ID,
			ActionType: models.ActionQuote,
			Detail:     "Created quote #" + q.QuoteNumber,
			ExtraInfo:  fmt.Sprintf("%.2f, %s", q.Total, q.Status),
			CreatedAt:  q.CreatedAt,
		})
	}

	for _, c := range src.Certificates {
		items = append(items, models.ActivityItem{
			ID:         "cert-" + c.ID,
			ActionType: models.ActionCertificate,
			Detail:     "Created certificate for " + orDefault(c.InstallationAddress, "unknown address"),
			ExtraInfo:  c.Status,
			CreatedAt:  c.CreatedAt,
		})
	}

	for _, s := range src.StudySessions {
		item := models.ActivityItem{
			ID:         "study-" + s.ID,
			ActionType: models.ActionStudy,
			Detail:     "Study session: " + orDefault(s.Topic, "general"),
			CreatedAt:  s.CreatedAt,
		}
		if s.DurationMinutes > 0 {
			item.ExtraInfo = fmt.Sprintf("%d min", s.DurationMinutes)
		}
		items = append(items, item)
	}

	for _, s := range src.TimeSessions {
		items = append(items, models.ActivityItem{
			ID:         "time-" + s.ID,
			ActionType: models.ActionTimeTrack,
			Detail:     "Spent time on " + orDefault(s.PagePath, "app"),
			ExtraInfo:  FormatDuration(time.Duration(s.DurationSeconds) * time.Second),
			CreatedAt:  s.StartedAt,
		})
	}

	for _, e := range src.Events {
		if item, ok := fromEvent(e); ok {
			items = append(items, item)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	tl := Timeline{
		UserID:    user.ID,
		Items:     items,
		Breakdown: engagement.Breakdown(user.Counters),
	}
	if first := FirstAction(items); first != nil {
		tl.FirstAction = first
		if !user.CreatedAt.IsZero() {
			ttfv := max(first.CreatedAt.Sub(user.CreatedAt), 0).Round(time.Second)
			secs := int64(ttfv / time.Second)
			tl.TimeToFirstValueSeconds = &secs
			tl.TimeToFirstValue = FormatDuration(ttfv)
		}
	}
	return tl
}

// FirstAction возвращает копию элемента с минимальным created_at среди
// несинтетических элементов, либо nil.
func FirstAction(items []models.ActivityItem) *models.ActivityItem {
	var first *models.ActivityItem
	for i := range items {
		if items[i].ActionType.IsSynthetic() {
			continue
		}
		if first == nil || items[i].CreatedAt.Before(first.CreatedAt) {
			first = &items[i]
		}
	}
	if first == nil {
		return nil
	}
	cp := *first
	return &cp
}

func synthetic(userID string, a *models.ActivityRow) []models.ActivityItem {
	if a == nil {
		return nil
	}
	var items []models.ActivityItem
	if a.Points > 0 {
		items = append(items, models.ActivityItem{
			ID:         "points-" + userID,
			ActionType: models.ActionPoints,
			Detail:     fmt.Sprintf("Earned %d points", a.Points),
			CreatedAt:  firstSet(a.UpdatedAt, a.LastActiveDate),
			Synthetic:  true,
		})
	}
	if a.Streak > 0 {
		items = append(items, models.ActivityItem{
			ID:         "streak-" + userID,
			ActionType: models.ActionStreak,
			Detail:     fmt.Sprintf("%d day streak", a.Streak),
			CreatedAt:  firstSet(a.LastActiveDate, a.UpdatedAt),
			Synthetic:  true,
		})
	}
	return items
}

func fromEvent(e models.EventRow) (models.ActivityItem, bool) {
	item := models.ActivityItem{
		ID:        "event-" + e.ID,
		CreatedAt: e.CreatedAt,
	}
	switch e.EventType {
	case EventLogin:
		item.ActionType = models.ActionLogin
		item.Detail = "Logged in"
	case EventPageView:
		item.ActionType = models.ActionPageView
		item.Detail = "Viewed " + orDefault(e.PagePath, "page")
		item.ExtraInfo = e.EventName
	case EventFeatureUse:
		item.ActionType = models.ActionFeature
		item.Detail = "Used " + orDefault(e.EventName, "feature")
		item.ExtraInfo = e.PagePath
	case EventSessionStart:
		item.ActionType = models.ActionSession
		item.Detail = "Started session"
		item.ExtraInfo = e.PagePath
	default:
		return models.ActivityItem{}, false
	}
	return item, true
}

// FormatDuration форматирует длительность в виде "1h 5m", "3m 20s" или "45s".
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

func firstSet(ts ...*time.Time) time.Time {
	for _, t := range ts {
		if t != nil {
			return *t
		}
	}
	return time.Time{}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
