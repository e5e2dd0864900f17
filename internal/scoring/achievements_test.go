package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var checkNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func badgeTypes(achievements []Achievement) []string {
	types := make([]string, len(achievements))
	for i, a := range achievements {
		types[i] = a.BadgeType
	}
	return types
}

func TestCheckAchievementsFirstCompletion(t *testing.T) {
	attempts := []Attempt{{Score: 100, TimeSpent: 600, CreatedAt: checkNow.Add(-24 * time.Hour), AttemptNumber: 1}}
	progress := Progress{ScenariosCompleted: 1, AverageScore: 100}

	got := CheckAchievements(UserStats{}, progress, attempts, nil, checkNow)
	assert.Equal(t, []string{BadgeFirstSteps, BadgePerfectionist}, badgeTypes(got))
}

func TestCheckAchievementsIdempotent(t *testing.T) {
	attempts := []Attempt{{Score: 100, TimeSpent: 120, CreatedAt: checkNow.Add(-time.Hour)}}
	progress := Progress{ScenariosCompleted: 1, AverageScore: 100}
	stats := UserStats{CurrentStreak: 8}

	first := CheckAchievements(stats, progress, attempts, nil, checkNow)
	require.NotEmpty(t, first)

	// Second call with the first call's output recorded must award nothing.
	second := CheckAchievements(stats, progress, attempts, first, checkNow)
	assert.Empty(t, second)
}

func TestCheckAchievementsPreservesRuleOrder(t *testing.T) {
	attempts := make([]Attempt, 0, 60)
	for i := 0; i < 60; i++ {
		attempts = append(attempts, Attempt{
			Score:     95,
			TimeSpent: 200,
			CreatedAt: checkNow.Add(-time.Duration(i) * time.Minute),
		})
	}
	progress := Progress{
		ScenariosCompleted: 60,
		AverageScore:       95,
		ModuleProgress:     map[string]ModuleCompletion{"foundations": {Completed: 5, Total: 5}},
	}
	stats := UserStats{CurrentStreak: 10}

	got := CheckAchievements(stats, progress, attempts, nil, checkNow)
	assert.Equal(t, []string{
		BadgeFirstSteps,
		BadgeWeekWarrior,
		BadgeQualityMaster,
		BadgeSpeedDemon,
		BadgeModuleChampion,
		BadgeLightningRound,
		BadgeGraduate,
		BadgePromptMaster,
	}, badgeTypes(got))
}

func TestWeekWarriorNeedsSevenDayStreak(t *testing.T) {
	progress := Progress{ScenariosCompleted: 1}

	got := CheckAchievements(UserStats{CurrentStreak: 6}, progress, nil, nil, checkNow)
	assert.NotContains(t, badgeTypes(got), BadgeWeekWarrior)

	got = CheckAchievements(UserStats{CurrentStreak: 7}, progress, nil, nil, checkNow)
	assert.Contains(t, badgeTypes(got), BadgeWeekWarrior)
}

func TestQualityMasterCountsHighScoringAttempts(t *testing.T) {
	attempts := make([]Attempt, 10)
	for i := range attempts {
		attempts[i] = Attempt{Score: 90, CreatedAt: checkNow.Add(-72 * time.Hour)}
	}

	got := CheckAchievements(UserStats{}, Progress{}, attempts[:9], nil, checkNow)
	assert.NotContains(t, badgeTypes(got), BadgeQualityMaster)

	got = CheckAchievements(UserStats{}, Progress{}, attempts, nil, checkNow)
	assert.Contains(t, badgeTypes(got), BadgeQualityMaster)
}

func TestSpeedDemonUsesTwoHourWindow(t *testing.T) {
	recent := make([]Attempt, 5)
	for i := range recent {
		recent[i] = Attempt{Score: 50, CreatedAt: checkNow.Add(-90 * time.Minute)}
	}

	got := CheckAchievements(UserStats{}, Progress{}, recent, nil, checkNow)
	assert.Contains(t, badgeTypes(got), BadgeSpeedDemon)

	// Same five attempts but outside the window.
	stale := make([]Attempt, 5)
	for i := range stale {
		stale[i] = Attempt{Score: 50, CreatedAt: checkNow.Add(-3 * time.Hour)}
	}
	got = CheckAchievements(UserStats{}, Progress{}, stale, nil, checkNow)
	assert.NotContains(t, badgeTypes(got), BadgeSpeedDemon)
}

func TestModuleChampionRequiresFullNonEmptyModule(t *testing.T) {
	cases := []struct {
		name     string
		progress map[string]ModuleCompletion
		want     bool
	}{
		{"nil module progress", nil, false},
		{"incomplete module", map[string]ModuleCompletion{"m1": {Completed: 3, Total: 5}}, false},
		{"empty module", map[string]ModuleCompletion{"m1": {Completed: 0, Total: 0}}, false},
		{"complete module", map[string]ModuleCompletion{"m1": {Completed: 5, Total: 5}}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CheckAchievements(UserStats{}, Progress{ModuleProgress: tc.progress}, nil, nil, checkNow)
			assert.Equal(t, tc.want, containsBadge(got, BadgeModuleChampion))
		})
	}
}

func TestPerfectionistRequiresExactHundred(t *testing.T) {
	got := CheckAchievements(UserStats{}, Progress{}, []Attempt{{Score: 99}}, nil, checkNow)
	assert.NotContains(t, badgeTypes(got), BadgePerfectionist)

	got = CheckAchievements(UserStats{}, Progress{}, []Attempt{{Score: 100}}, nil, checkNow)
	assert.Contains(t, badgeTypes(got), BadgePerfectionist)
}

func TestLightningRoundStrictlyUnderFiveMinutes(t *testing.T) {
	got := CheckAchievements(UserStats{}, Progress{}, []Attempt{{Score: 80, TimeSpent: 300}}, nil, checkNow)
	assert.NotContains(t, badgeTypes(got), BadgeLightningRound)

	got = CheckAchievements(UserStats{}, Progress{}, []Attempt{{Score: 80, TimeSpent: 299}}, nil, checkNow)
	assert.Contains(t, badgeTypes(got), BadgeLightningRound)
}

func TestPromptMasterNeedsVolumeAndAverage(t *testing.T) {
	got := CheckAchievements(UserStats{}, Progress{ScenariosCompleted: 9, AverageScore: 95}, nil, nil, checkNow)
	assert.NotContains(t, badgeTypes(got), BadgePromptMaster)

	got = CheckAchievements(UserStats{}, Progress{ScenariosCompleted: 10, AverageScore: 89.9}, nil, nil, checkNow)
	assert.NotContains(t, badgeTypes(got), BadgePromptMaster)

	got = CheckAchievements(UserStats{}, Progress{ScenariosCompleted: 10, AverageScore: 90}, nil, nil, checkNow)
	assert.Contains(t, badgeTypes(got), BadgePromptMaster)
}

func TestCheckAchievementsDoesNotMutateInputs(t *testing.T) {
	existing := []Achievement{{BadgeType: BadgeFirstSteps}}
	attempts := []Attempt{{Score: 100}}

	CheckAchievements(UserStats{}, Progress{ScenariosCompleted: 1}, attempts, existing, checkNow)

	assert.Len(t, existing, 1)
	assert.Equal(t, 100, attempts[0].Score)
}

func containsBadge(achievements []Achievement, badgeType string) bool {
	for _, a := range achievements {
		if a.BadgeType == badgeType {
			return true
		}
	}
	return false
}
