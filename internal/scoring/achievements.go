package scoring

import "time"

// The closed set of badge types.
const (
	BadgeFirstSteps     = "first_steps"
	BadgeWeekWarrior    = "week_warrior"
	BadgeQualityMaster  = "quality_master"
	BadgeSpeedDemon     = "speed_demon"
	BadgeModuleChampion = "module_champion"
	BadgePerfectionist  = "perfectionist"
	BadgeLightningRound = "lightning_round"
	BadgeGraduate       = "graduate"
	BadgePromptMaster   = "promptmaster"
)

type checkInput struct {
	stats    UserStats
	progress Progress
	attempts []Attempt
	now      time.Time
}

type badgeRule struct {
	Type        string
	Name        string
	Description string
	Earned      func(checkInput) bool
}

// badgeRules is evaluated in order and the returned slice preserves that
// order. No rule reads another rule's outcome.
var badgeRules = []badgeRule{
	{
		BadgeFirstSteps, "First Steps", "Complete your first scenario",
		func(in checkInput) bool { return in.progress.ScenariosCompleted >= 1 },
	},
	{
		BadgeWeekWarrior, "Week Warrior", "Practice 7 days in a row",
		func(in checkInput) bool { return in.stats.CurrentStreak >= 7 },
	},
	{
		BadgeQualityMaster, "Quality Master", "Score 90 or higher on 10 attempts",
		func(in checkInput) bool {
			count := 0
			for _, a := range in.attempts {
				if a.Score >= 90 {
					count++
				}
			}
			return count >= 10
		},
	},
	{
		BadgeSpeedDemon, "Speed Demon", "Submit 5 attempts within two hours",
		func(in checkInput) bool {
			cutoff := in.now.Add(-2 * time.Hour)
			count := 0
			for _, a := range in.attempts {
				if a.CreatedAt.After(cutoff) {
					count++
				}
			}
			return count >= 5
		},
	},
	{
		BadgeModuleChampion, "Module Champion", "Finish every scenario in a module",
		func(in checkInput) bool {
			for _, mp := range in.progress.ModuleProgress {
				if mp.Total > 0 && mp.Completed == mp.Total {
					return true
				}
			}
			return false
		},
	},
	{
		BadgePerfectionist, "Perfectionist", "Score a perfect 100",
		func(in checkInput) bool {
			for _, a := range in.attempts {
				if a.Score == 100 {
					return true
				}
			}
			return false
		},
	},
	{
		BadgeLightningRound, "Lightning Round", "Finish a scenario in under 5 minutes",
		func(in checkInput) bool {
			for _, a := range in.attempts {
				if a.TimeSpent < 300 {
					return true
				}
			}
			return false
		},
	},
	{
		BadgeGraduate, "Graduate", "Complete 50 scenarios",
		func(in checkInput) bool { return in.progress.ScenariosCompleted >= 50 },
	},
	{
		BadgePromptMaster, "PromptMaster", "Average 90+ across 10 or more scenarios",
		func(in checkInput) bool {
			return in.progress.AverageScore >= 90 && in.progress.ScenariosCompleted >= 10
		},
	},
}

// CheckAchievements returns the badges that became eligible with this
// evaluation and were not already earned. A badge is never re-emitted
// or revoked: calling again with the previous output merged into
// existing yields nothing new. now anchors the Speed Demon window and
// is passed in so the rules stay clock-free.
func CheckAchievements(stats UserStats, progress Progress, attempts []Attempt, existing []Achievement, now time.Time) []Achievement {
	earned := make(map[string]struct{}, len(existing))
	for _, a := range existing {
		earned[a.BadgeType] = struct{}{}
	}

	in := checkInput{stats: stats, progress: progress, attempts: attempts, now: now}

	var unlocked []Achievement
	for _, rule := range badgeRules {
		if _, ok := earned[rule.Type]; ok {
			continue
		}
		if rule.Earned(in) {
			unlocked = append(unlocked, Achievement{
				BadgeType:        rule.Type,
				BadgeName:        rule.Name,
				BadgeDescription: rule.Description,
			})
		}
	}
	return unlocked
}
