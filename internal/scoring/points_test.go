package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePointsQualityBands(t *testing.T) {
	for score := 0; score <= 100; score++ {
		got := CalculatePoints(score, 600, 0, 0).Quality
		switch {
		case score >= 90:
			assert.Equal(t, 50, got, "score %d", score)
		case score >= 80:
			assert.Equal(t, 25, got, "score %d", score)
		default:
			assert.Equal(t, 0, got, "score %d", score)
		}
	}
}

func TestCalculatePointsStreakBonus(t *testing.T) {
	prev := -1
	for streak := 0; streak <= 12; streak++ {
		got := CalculatePoints(75, 600, 0, streak).Streak

		want := streak * 10
		if want > 70 {
			want = 70
		}
		assert.Equal(t, want, got, "streak %d", streak)

		// monotonically non-decreasing
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestCalculatePointsSpeedBonus(t *testing.T) {
	cases := []struct {
		name          string
		timeSpent     int
		suggestedTime int
		want          int
	}{
		{"under suggested time", 240, 10, 25},
		{"exactly suggested time", 600, 10, 25},
		{"over suggested time", 601, 10, 0},
		{"no suggested time", 60, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculatePoints(75, tc.timeSpent, tc.suggestedTime, 0).Speed
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCalculatePointsTotalIsSumOfParts(t *testing.T) {
	for _, score := range []int{0, 69, 70, 80, 89, 90, 100} {
		for _, streak := range []int{0, 3, 7, 20} {
			p := CalculatePoints(score, 240, 10, streak)
			assert.Equal(t, p.Base+p.Quality+p.Speed+p.Streak, p.Total)
			assert.Equal(t, 100, p.Base)
		}
	}
}

func TestCalculatePointsScenarios(t *testing.T) {
	// 95 score, 4 min spent of 10 suggested, 3-day streak
	a := CalculatePoints(95, 240, 10, 3)
	assert.Equal(t, Points{Base: 100, Quality: 50, Speed: 25, Streak: 30, Total: 205}, a)

	// 75 score, 15 min spent of 10 suggested, no streak
	b := CalculatePoints(75, 900, 10, 0)
	assert.Equal(t, Points{Base: 100, Quality: 0, Speed: 0, Streak: 0, Total: 100}, b)
}
