package aggregator

import (
	"github.com/magabrotheeeer/trial-tracker/internal/analytics/engagement"
	"github.com/magabrotheeeer/trial-tracker/internal/models"
)

// Summary сводные показатели воронки пробного периода.
type Summary struct {
	Total          int                        `json:"total"`
	ByStatus       map[models.TrialStatus]int `json:"by_status"`
	ByTier         map[models.Tier]int        `json:"by_tier"`
	ByRole         map[models.Role]int        `json:"by_role"`
	ConversionRate float64                    `json:"conversion_rate"`
}

// Summarize считает распределение пользователей по статусам, уровням и ролям.
// ConversionRate равен доле пользователей с подпиской среди всех записей.
// Уровни вовлечённости считаются только для пользователей без подписки.
func Summarize(users []models.TrialUser, thresholds engagement.Thresholds) Summary {
	s := Summary{
		Total:    len(users),
		ByStatus: make(map[models.TrialStatus]int),
		ByTier:   make(map[models.Tier]int),
		ByRole:   make(map[models.Role]int),
	}
	for _, u := range users {
		s.ByStatus[u.TrialStatus]++
		s.ByRole[u.Role]++
		if !u.Subscribed {
			s.ByTier[thresholds.Tier(u.EngagementScore)]++
		}
	}
	if s.Total > 0 {
		s.ConversionRate = float64(s.ByStatus[models.StatusSubscribed]) / float64(s.Total)
	}
	return s
}
