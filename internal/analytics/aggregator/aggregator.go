// Package aggregator объединяет независимые источники данных по user_id
// в одну запись models.TrialUser на каждого пользователя основного источника.
package aggregator

import (
	"time"

	"github.com/magabrotheeeer/trial-tracker/internal/analytics/engagement"
	"github.com/magabrotheeeer/trial-tracker/internal/analytics/trial"
	"github.com/magabrotheeeer/trial-tracker/internal/lib/calendar"
	"github.com/magabrotheeeer/trial-tracker/internal/lib/join"
	"github.com/magabrotheeeer/trial-tracker/internal/models"
)

// DefaultMaxExpiredDays через сколько дней после окончания пробного периода
// пользователь без подписки перестаёт попадать в выборку.
const DefaultMaxExpiredDays = 365

// Sources все коллекции, необходимые для агрегации.
// Вызывающий код обязан дождаться загрузки всех коллекций до вызова Aggregate.
type Sources struct {
	Users          []models.UserRow
	Activity       []models.ActivityRow
	Quotes         []models.CountRow
	Certificates   []models.CountRow
	StudySessions  []models.CountRow
	EventSummaries []models.EventSummaryRow
}

// Aggregator собирает объединённые записи пользователей.
type Aggregator struct {
	classifier     trial.Classifier
	maxExpiredDays int
}

// New создаёт Aggregator. Неположительный maxExpiredDays заменяется значением по умолчанию.
func New(classifier trial.Classifier, maxExpiredDays int) *Aggregator {
	if maxExpiredDays <= 0 {
		maxExpiredDays = DefaultMaxExpiredDays
	}
	return &Aggregator{
		classifier:     classifier,
		maxExpiredDays: maxExpiredDays,
	}
}

func countKey(r models.CountRow) string { return r.UserID }

func countValue(r models.CountRow) int { return r.Count }

// Aggregate возвращает по одной записи на каждую строку src.Users в исходном порядке.
// Отсутствие вторичной записи не является ошибкой и даёт нулевые счётчики.
// Пользователи без подписки, чей пробный период закончился более maxExpiredDays
// дней назад, исключаются. Пользователи с подпиской не исключаются никогда.
func (a *Aggregator) Aggregate(src Sources, now time.Time) []models.TrialUser {
	activity := join.Latest(src.Activity, func(r models.ActivityRow) string { return r.UserID })
	events := join.Latest(src.EventSummaries, func(r models.EventSummaryRow) string { return r.UserID })
	quotes := join.Sum(src.Quotes, countKey, countValue)
	certificates := join.Sum(src.Certificates, countKey, countValue)
	study := join.Sum(src.StudySessions, countKey, countValue)

	result := make([]models.TrialUser, 0, len(src.Users))
	for _, u := range src.Users {
		status := a.classifier.Classify(u.CreatedAt, u.Subscribed, now)
		if !u.Subscribed && calendar.DayDiff(now, status.TrialEnd) > a.maxExpiredDays {
			continue
		}

		act := join.Get(activity, u.ID, models.ActivityRow{})
		ev := join.Get(events, u.ID, models.EventSummaryRow{})

		counters := models.Counters{
			Points:              act.Points,
			Streak:              act.Streak,
			StudySessions:       join.Get(study, u.ID, 0),
			QuotesCount:         join.Get(quotes, u.ID, 0),
			CertificateCount:    join.Get(certificates, u.ID, 0),
			LoginCount:          ev.LoginCount,
			UniquePagesVisited:  ev.UniquePagesVisited,
			FeatureUseCount:     ev.FeatureUseCount,
			TotalSecondsTracked: ev.TotalSecondsTracked,
			ActiveDays:          ev.ActiveDays,
			LastActivity:        latest(ev.LastActivity, act.LastActiveDate),
		}

		result = append(result, models.TrialUser{
			ID:              u.ID,
			FullName:        u.FullName,
			Username:        u.Username,
			Email:           u.Email,
			Role:            models.ParseRole(u.Role),
			Subscribed:      u.Subscribed,
			CreatedAt:       u.CreatedAt,
			LastSignIn:      u.LastSignIn,
			TrialEnd:        status.TrialEnd,
			TrialStatus:     status.Status,
			DaysRemaining:   status.DaysRemaining,
			EngagementScore: engagement.Score(counters),
			Counters:        counters,
		})
	}
	return result
}

func latest(a, b *time.Time) *time.Time {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case b.After(*a):
		return b
	default:
		return a
	}
}
