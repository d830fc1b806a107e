package engagement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/trial-tracker/internal/models"
)

func TestBreakdown_ReferenceUser(t *testing.T) {
	c := models.Counters{
		Points:              10,
		Streak:              4,
		StudySessions:       2,
		QuotesCount:         1,
		CertificateCount:    0,
		LoginCount:          3,
		UniquePagesVisited:  25,
		FeatureUseCount:     2,
		TotalSecondsTracked: 600,
	}

	got := Breakdown(c)

	assert.Equal(t, models.ScoreBreakdown{
		BasePoints:       10,
		StreakBonus:      20,
		StudyBonus:       6,
		QuoteBonus:       8,
		CertificateBonus: 0,
		TimeBonus:        5,
		PageViewBonus:    20,
		LoginBonus:       6,
		FeatureBonus:     6,
		Total:            81,
	}, got)
	assert.Equal(t, 81, Score(c))
}

func TestBreakdown_Caps(t *testing.T) {
	tests := []struct {
		name     string
		counters models.Counters
		want     models.ScoreBreakdown
	}{
		{
			name:     "time bonus capped at 30",
			counters: models.Counters{TotalSecondsTracked: 10 * 3600},
			want:     models.ScoreBreakdown{TimeBonus: 30, Total: 30},
		},
		{
			name:     "partial minutes are floored",
			counters: models.Counters{TotalSecondsTracked: 179},
			want:     models.ScoreBreakdown{TimeBonus: 1, Total: 1},
		},
		{
			name:     "page view bonus capped at 20",
			counters: models.Counters{UniquePagesVisited: 500},
			want:     models.ScoreBreakdown{PageViewBonus: 20, Total: 20},
		},
		{
			name:     "login bonus capped at 10",
			counters: models.Counters{LoginCount: 6},
			want:     models.ScoreBreakdown{LoginBonus: 10, Total: 10},
		},
		{
			name:     "feature bonus is uncapped",
			counters: models.Counters{FeatureUseCount: 100},
			want:     models.ScoreBreakdown{FeatureBonus: 300, Total: 300},
		},
		{
			name:     "certificates are uncapped",
			counters: models.Counters{CertificateCount: 40},
			want:     models.ScoreBreakdown{CertificateBonus: 400, Total: 400},
		},
		{
			name:     "negative counters are ignored",
			counters: models.Counters{Points: -50, Streak: -1, LoginCount: -4},
			want:     models.ScoreBreakdown{},
		},
		{
			name:     "zero counters",
			counters: models.Counters{},
			want:     models.ScoreBreakdown{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Breakdown(tt.counters))
		})
	}
}

func TestScore_MonotoneInEachCounter(t *testing.T) {
	base := models.Counters{
		Points: 3, Streak: 1, StudySessions: 1, QuotesCount: 1, CertificateCount: 1,
		LoginCount: 2, UniquePagesVisited: 7, FeatureUseCount: 1, TotalSecondsTracked: 300,
	}

	bumps := map[string]func(c *models.Counters){
		"points":       func(c *models.Counters) { c.Points++ },
		"streak":       func(c *models.Counters) { c.Streak++ },
		"study":        func(c *models.Counters) { c.StudySessions++ },
		"quotes":       func(c *models.Counters) { c.QuotesCount++ },
		"certificates": func(c *models.Counters) { c.CertificateCount++ },
		"logins":       func(c *models.Counters) { c.LoginCount++ },
		"pages":        func(c *models.Counters) { c.UniquePagesVisited++ },
		"features":     func(c *models.Counters) { c.FeatureUseCount++ },
		"seconds":      func(c *models.Counters) { c.TotalSecondsTracked += 59 },
	}

	for name, bump := range bumps {
		t.Run(name, func(t *testing.T) {
			c := base
			prev := Score(c)
			for range 200 {
				bump(&c)
				next := Score(c)
				assert.GreaterOrEqual(t, next, prev)
				prev = next
			}
		})
	}
}

func TestThresholds_Tier(t *testing.T) {
	th := DefaultThresholds()

	assert.Equal(t, models.TierHot, th.Tier(15))
	assert.Equal(t, models.TierWarm, th.Tier(14))
	assert.Equal(t, models.TierWarm, th.Tier(5))
	assert.Equal(t, models.TierCold, th.Tier(4))
	assert.Equal(t, models.TierCold, th.Tier(0))

	custom := Thresholds{Hot: 100, Warm: 50}
	assert.Equal(t, models.TierWarm, custom.Tier(99))
	assert.Equal(t, models.TierHot, custom.Tier(100))
}
