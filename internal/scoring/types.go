// Package scoring implements the PromptMaster points, level, skill and
// badge rules. It is purely functional: callers load a consistent
// per-user snapshot, invoke the calculators, and persist the results
// themselves. Nothing in this package performs I/O or mutates its inputs.
package scoring

import "time"

// Attempt is a snapshot of one scored submission. Score is expected to
// be clamped to [0,100] before it reaches this package.
type Attempt struct {
	Score          int
	CriteriaScores map[string]int
	TimeSpent      int // seconds
	CreatedAt      time.Time
	AttemptNumber  int // 1 = first attempt at the scenario
}

// ModuleCompletion is a completed/total pair for one module.
type ModuleCompletion struct {
	Completed int
	Total     int
}

// Progress is the per-user rollup as of the moment of evaluation.
// ModuleProgress may be nil when module tracking is not populated.
type Progress struct {
	ScenariosCompleted int
	AverageScore       float64
	TotalTimeSpent     int // seconds
	CapstoneCompleted  bool
	ModuleProgress     map[string]ModuleCompletion
}

// UserStats carries the aggregate counters badge rules read.
type UserStats struct {
	TotalPoints   int
	CurrentLevel  int
	CurrentStreak int // consecutive-day count
}

// Achievement describes one unlocked badge.
type Achievement struct {
	BadgeType        string
	BadgeName        string
	BadgeDescription string
}
