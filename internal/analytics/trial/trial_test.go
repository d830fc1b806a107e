package trial

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/trial-tracker/internal/lib/calendar"
	"github.com/magabrotheeeer/trial-tracker/internal/models"
)

func TestClassifier_Classify(t *testing.T) {
	now := time.Date(2024, 6, 20, 15, 0, 0, 0, time.UTC)
	c := NewClassifier(7)

	tests := []struct {
		name       string
		createdAt  time.Time
		subscribed bool
		wantStatus models.TrialStatus
		wantDays   int
		wantRaw    int
	}{
		{
			name:       "created 8 days ago is expired",
			createdAt:  now.AddDate(0, 0, -8),
			wantStatus: models.StatusExpired,
			wantDays:   0,
			wantRaw:    -1,
		},
		{
			name:       "created exactly 7 days ago ends today",
			createdAt:  now.AddDate(0, 0, -7),
			wantStatus: models.StatusEndingToday,
			wantDays:   0,
			wantRaw:    0,
		},
		{
			name:       "created late evening 7 days ago still ends today",
			createdAt:  time.Date(2024, 6, 13, 23, 59, 0, 0, time.UTC),
			wantStatus: models.StatusEndingToday,
			wantDays:   0,
			wantRaw:    0,
		},
		{
			name:       "created 6 days ago ends tomorrow",
			createdAt:  now.AddDate(0, 0, -6),
			wantStatus: models.StatusEndingTomorrow,
			wantDays:   1,
			wantRaw:    1,
		},
		{
			name:       "created today is active",
			createdAt:  now,
			wantStatus: models.StatusActive,
			wantDays:   7,
			wantRaw:    7,
		},
		{
			name:       "subscribed long ago stays subscribed",
			createdAt:  now.AddDate(-2, 0, 0),
			subscribed: true,
			wantStatus: models.StatusSubscribed,
			wantDays:   0,
			wantRaw:    calendar.DayDiff(now.AddDate(-2, 0, 7), now),
		},
		{
			name:       "subscribed during trial stays subscribed",
			createdAt:  now.AddDate(0, 0, -2),
			subscribed: true,
			wantStatus: models.StatusSubscribed,
			wantDays:   5,
			wantRaw:    5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.createdAt, tt.subscribed, now)

			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantDays, got.DaysRemaining)
			assert.Equal(t, tt.wantRaw, got.RawDaysRemaining)
		})
	}
}

func TestClassifier_PartitionIsExhaustive(t *testing.T) {
	now := time.Date(2024, 6, 20, 9, 30, 0, 0, time.UTC)
	c := NewClassifier(7)

	for offset := -30; offset <= 30; offset++ {
		for _, hour := range []int{0, 11, 23} {
			createdAt := time.Date(2024, 6, 20, hour, 0, 0, 0, time.UTC).AddDate(0, 0, offset)

			got := c.Classify(createdAt, false, now)

			wantRaw := calendar.DayDiff(calendar.AddDays(calendar.StartOfDay(createdAt), 7), calendar.StartOfDay(now))
			assert.Equal(t, wantRaw, got.RawDaysRemaining)
			assert.Equal(t, max(0, wantRaw), got.DaysRemaining)

			matches := 0
			for _, ok := range []bool{
				got.Status == models.StatusActive && wantRaw > 1,
				got.Status == models.StatusEndingTomorrow && wantRaw == 1,
				got.Status == models.StatusEndingToday && wantRaw == 0,
				got.Status == models.StatusExpired && wantRaw < 0,
			} {
				if ok {
					matches++
				}
			}
			assert.Equal(t, 1, matches, "offset %d hour %d produced %s", offset, hour, got.Status)

			assert.Equal(t, models.StatusSubscribed, c.Classify(createdAt, true, now).Status)
		}
	}
}

func TestClassifier_UsesNowLocation(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	c := NewClassifier(7)

	// 20:00 UTC 13 июня это уже 14 июня по UTC+5.
	createdAt := time.Date(2024, 6, 13, 20, 0, 0, 0, time.UTC)
	now := time.Date(2024, 6, 21, 10, 0, 0, 0, loc)

	got := c.Classify(createdAt, false, now)

	assert.Equal(t, models.StatusEndingToday, got.Status)
	assert.Equal(t, "2024-06-21", calendar.DateKey(got.TrialEnd))
}

func TestNewClassifier_DefaultWindow(t *testing.T) {
	assert.Equal(t, DefaultWindowDays, NewClassifier(0).WindowDays())
	assert.Equal(t, 14, NewClassifier(14).WindowDays())
}
