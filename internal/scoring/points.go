package scoring

// Points is the award breakdown for one qualifying completion.
type Points struct {
	Base    int `json:"base"`
	Quality int `json:"quality"`
	Speed   int `json:"speed"`
	Streak  int `json:"streak"`
	Total   int `json:"total"`
}

const (
	basePoints       = 100
	speedBonus       = 25
	streakPerDay     = 10
	streakBonusCap   = 70
	secondsPerMinute = 60
)

// qualityBonuses is evaluated top-down; the first threshold met wins.
var qualityBonuses = []struct {
	minScore int
	bonus    int
}{
	{90, 50},
	{80, 25},
}

// CalculatePoints computes the award for one scenario completion. It is
// only meaningful for a qualifying completion (first attempt, score >= 70);
// that gate belongs to the caller. Inputs are assumed pre-validated and
// are not checked here.
func CalculatePoints(score, timeSpentSeconds, suggestedTimeMinutes, currentStreak int) Points {
	p := Points{Base: basePoints}

	for _, q := range qualityBonuses {
		if score >= q.minScore {
			p.Quality = q.bonus
			break
		}
	}

	if suggestedTimeMinutes > 0 && timeSpentSeconds <= suggestedTimeMinutes*secondsPerMinute {
		p.Speed = speedBonus
	}

	p.Streak = currentStreak * streakPerDay
	if p.Streak > streakBonusCap {
		p.Streak = streakBonusCap
	}

	p.Total = p.Base + p.Quality + p.Speed + p.Streak
	return p
}
