package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateLevelBoundaries(t *testing.T) {
	cases := []struct {
		points int
		want   int
	}{
		{0, 1},
		{499, 1},
		{500, 2},
		{2499, 5},
		{2500, 6},
		{9499, 19},
		{9500, 20},
		{50000, 20},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CalculateLevel(tc.points), "points %d", tc.points)
	}
}

func TestCalculateLevelMonotonic(t *testing.T) {
	prev := 0
	for points := 0; points <= 12000; points += 50 {
		level := CalculateLevel(points)
		if level < prev {
			t.Fatalf("level decreased at %d points: %d -> %d", points, prev, level)
		}
		if level < 1 || level > 20 {
			t.Fatalf("level out of range at %d points: %d", points, level)
		}
		prev = level
	}

	// stable within a 500-point band
	assert.Equal(t, CalculateLevel(1000), CalculateLevel(1499))
}

func TestCalculateLevelProgress(t *testing.T) {
	p := CalculateLevelProgress(1250)
	assert.Equal(t, LevelProgress{
		CurrentLevel:         3,
		PointsInCurrentLevel: 250,
		PointsNeededForNext:  250,
		ProgressPercentage:   50,
		NextLevel:            4,
	}, p)
}

func TestCalculateLevelProgressCeiling(t *testing.T) {
	// Past 9500 points the needed-for-next figure would go negative;
	// it is clamped and the next level saturates at 20.
	p := CalculateLevelProgress(12000)
	assert.Equal(t, 20, p.CurrentLevel)
	assert.Equal(t, 20, p.NextLevel)
	assert.Equal(t, 0, p.PointsNeededForNext)
	assert.Equal(t, 2500, p.PointsInCurrentLevel)
}
