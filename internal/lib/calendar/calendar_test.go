package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfDay(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			name: "middle of day utc",
			in:   time.Date(2024, 3, 15, 13, 45, 10, 500, time.UTC),
			want: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "already midnight",
			in:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "keeps location",
			in:   time.Date(2024, 3, 15, 1, 30, 0, 0, loc),
			want: time.Date(2024, 3, 15, 0, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StartOfDay(tt.in)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
			assert.Equal(t, tt.in.Location(), got.Location())
		})
	}
}

func TestAddDays(t *testing.T) {
	base := time.Date(2024, 2, 27, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC), AddDays(base, 7))
	assert.Equal(t, time.Date(2024, 2, 20, 10, 0, 0, 0, time.UTC), AddDays(base, -7))
	assert.Equal(t, base, AddDays(base, 0))
}

func TestDayDiff(t *testing.T) {
	tests := []struct {
		name string
		a    time.Time
		b    time.Time
		want int
	}{
		{
			name: "same day different hours",
			a:    time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC),
			b:    time.Date(2024, 1, 10, 0, 1, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "a after b",
			a:    time.Date(2024, 1, 17, 1, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 1, 10, 23, 0, 0, 0, time.UTC),
			want: 7,
		},
		{
			name: "a before b",
			a:    time.Date(2024, 1, 9, 12, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC),
			want: -1,
		},
		{
			name: "across year boundary",
			a:    time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2024, 12, 30, 0, 0, 0, 0, time.UTC),
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DayDiff(tt.a, tt.b))
		})
	}
}

func TestDayDiff_DaylightSaving(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// 31 марта 2024 в Берлине длится 23 часа.
	before := time.Date(2024, 3, 30, 12, 0, 0, 0, loc)
	after := time.Date(2024, 4, 1, 0, 30, 0, 0, loc)

	assert.Equal(t, 2, DayDiff(after, before))
	assert.Equal(t, -2, DayDiff(before, after))
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2024-03-05", DateKey(time.Date(2024, 3, 5, 22, 0, 0, 0, time.UTC)))
	assert.Less(t, DateKey(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)), DateKey(time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)))
}
