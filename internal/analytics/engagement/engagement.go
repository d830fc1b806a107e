// Package engagement вычисляет engagement_score пользователя по сырым
// счётчикам активности, раскладку очков по составляющим и уровень вовлечённости.
package engagement

import "github.com/magabrotheeeer/trial-tracker/internal/models"

// Веса и ограничения составляющих. Ограничены только время в приложении,
// просмотры страниц и входы, остальные бонусы не ограничены сверху.
const (
	StreakWeight      = 5
	StudyWeight       = 3
	QuoteWeight       = 8
	CertificateWeight = 10
	FeatureWeight     = 3
	LoginWeight       = 2

	TimeBonusCap     = 30
	PageViewBonusCap = 20
	LoginBonusCap    = 10
)

// Пороги уровней вовлечённости по умолчанию.
const (
	DefaultHotThreshold  = 15
	DefaultWarmThreshold = 5
)

// Thresholds пороги уровней вовлечённости.
// score >= Hot даёт hot, Warm <= score < Hot даёт warm, иначе cold.
type Thresholds struct {
	Hot  int
	Warm int
}

// DefaultThresholds возвращает пороги по умолчанию.
func DefaultThresholds() Thresholds {
	return Thresholds{Hot: DefaultHotThreshold, Warm: DefaultWarmThreshold}
}

// Tier возвращает уровень вовлечённости для score.
func (t Thresholds) Tier(score int) models.Tier {
	switch {
	case score >= t.Hot:
		return models.TierHot
	case score >= t.Warm:
		return models.TierWarm
	default:
		return models.TierCold
	}
}

// Breakdown раскладывает счётчики на составляющие engagement_score.
// Отрицательные значения счётчиков считаются нулём.
func Breakdown(c models.Counters) models.ScoreBreakdown {
	minutes := nonNegative(c.TotalSecondsTracked) / 60

	b := models.ScoreBreakdown{
		BasePoints:       nonNegative(c.Points),
		StreakBonus:      nonNegative(c.Streak) * StreakWeight,
		StudyBonus:       nonNegative(c.StudySessions) * StudyWeight,
		QuoteBonus:       nonNegative(c.QuotesCount) * QuoteWeight,
		CertificateBonus: nonNegative(c.CertificateCount) * CertificateWeight,
		// половина очка за каждую полную минуту, с округлением вниз
		TimeBonus:     min(TimeBonusCap, minutes/2),
		PageViewBonus: min(PageViewBonusCap, nonNegative(c.UniquePagesVisited)),
		LoginBonus:    min(LoginBonusCap, nonNegative(c.LoginCount)*LoginWeight),
		FeatureBonus:  nonNegative(c.FeatureUseCount) * FeatureWeight,
	}
	b.Total = b.BasePoints + b.StreakBonus + b.StudyBonus + b.QuoteBonus +
		b.CertificateBonus + b.TimeBonus + b.PageViewBonus + b.LoginBonus + b.FeatureBonus
	return b
}

// Score возвращает engagement_score. Значение всегда совпадает с Breakdown(c).Total.
func Score(c models.Counters) int {
	return Breakdown(c).Total
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
