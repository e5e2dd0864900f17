package scoring

import "math"

const (
	pointsPerLevel = 500
	maxLevel       = 20
)

// CalculateLevel maps cumulative points to a level in [1,20]. Level 1
// spans [0,499]; everything past 9500 points stays at level 20.
func CalculateLevel(totalPoints int) int {
	level := totalPoints/pointsPerLevel + 1
	if level > maxLevel {
		level = maxLevel
	}
	return level
}

// LevelProgress is the progress-toward-next-level view used by clients.
type LevelProgress struct {
	CurrentLevel         int `json:"currentLevel"`
	PointsInCurrentLevel int `json:"pointsInCurrentLevel"`
	PointsNeededForNext  int `json:"pointsNeededForNext"`
	ProgressPercentage   int `json:"progressPercentage"`
	NextLevel            int `json:"nextLevel"`
}

// CalculateLevelProgress derives the level display stats from total
// points. PointsNeededForNext is clamped at 0 once points exceed the
// level-20 ceiling; NextLevel saturates at 20.
func CalculateLevelProgress(totalPoints int) LevelProgress {
	level := CalculateLevel(totalPoints)
	inLevel := totalPoints - (level-1)*pointsPerLevel

	needed := level*pointsPerLevel - totalPoints
	if needed < 0 {
		needed = 0
	}

	next := level + 1
	if level >= maxLevel {
		next = maxLevel
	}

	return LevelProgress{
		CurrentLevel:         level,
		PointsInCurrentLevel: inLevel,
		PointsNeededForNext:  needed,
		ProgressPercentage:   int(math.Round(float64(inLevel) / pointsPerLevel * 100)),
		NextLevel:            next,
	}
}
