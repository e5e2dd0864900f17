package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
}

func TestCalendarDaysBetween(t *testing.T) {
	tests := []struct {
		name    string
		earlier time.Time
		later   time.Time
		want    int
	}{
		{"same moment", day(2025, time.March, 10, 9), day(2025, time.March, 10, 9), 0},
		{"same day different hours", day(2025, time.March, 10, 1), day(2025, time.March, 10, 23), 0},
		{"midnight boundary counts as one day", day(2025, time.March, 10, 23), day(2025, time.March, 11, 0), 1},
		{"two days apart", day(2025, time.March, 10, 12), day(2025, time.March, 12, 12), 2},
		{"across month end", day(2025, time.March, 31, 20), day(2025, time.April, 1, 6), 1},
		{"across year end", day(2024, time.December, 31, 23), day(2025, time.January, 1, 1), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calendarDaysBetween(tt.earlier, tt.later))
		})
	}
}

func TestContinuedStreak(t *testing.T) {
	last := day(2025, time.March, 10, 14)

	t.Run("same day keeps streak", func(t *testing.T) {
		assert.Equal(t, 5, continuedStreak(last, 5, day(2025, time.March, 10, 22)))
	})

	t.Run("next day extends streak", func(t *testing.T) {
		assert.Equal(t, 6, continuedStreak(last, 5, day(2025, time.March, 11, 8)))
	})

	t.Run("gap resets to one", func(t *testing.T) {
		assert.Equal(t, 1, continuedStreak(last, 5, day(2025, time.March, 12, 8)))
		assert.Equal(t, 1, continuedStreak(last, 5, day(2025, time.April, 10, 8)))
	})
}
