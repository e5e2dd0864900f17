package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateSkillScoresEmpty(t *testing.T) {
	assert.Equal(t, SkillScores{}, CalculateSkillScores(nil))
	assert.Equal(t, SkillScores{}, CalculateSkillScores([]Attempt{}))
}

func TestCalculateSkillScoresAveragesAndFallbacks(t *testing.T) {
	attempts := []Attempt{
		{CriteriaScores: map[string]int{"clarity": 80, "reasoning": 60}},
		{CriteriaScores: map[string]int{"clarity": 90, "business_value": 70}},
	}

	got := CalculateSkillScores(attempts)
	assert.Equal(t, SkillScores{
		Clarity:             85,
		AdvancedTechniques:  60, // reasoning fallback
		BusinessApplication: 70,
	}, got)
}

func TestCalculateSkillScoresKeyPrecedence(t *testing.T) {
	// When the primary key appears anywhere, the fallback is ignored
	// entirely rather than averaged in.
	attempts := []Attempt{
		{CriteriaScores: map[string]int{"advanced_techniques": 40, "reasoning": 100}},
		{CriteriaScores: map[string]int{"format": 90, "specificity": 10}},
	}

	got := CalculateSkillScores(attempts)
	assert.Equal(t, 40, got.AdvancedTechniques)
	assert.Equal(t, 90, got.OutputQuality)
}

func TestCalculateSkillScoresRounding(t *testing.T) {
	// mean 76.5 rounds half away from zero to 77
	attempts := []Attempt{
		{CriteriaScores: map[string]int{"context": 76}},
		{CriteriaScores: map[string]int{"context": 77}},
	}
	assert.Equal(t, 77, CalculateSkillScores(attempts).Context)
}

func TestCalculateSkillScoresIgnoresUnknownKeys(t *testing.T) {
	attempts := []Attempt{
		{CriteriaScores: map[string]int{"vibes": 99, "clarity": 50}},
		{}, // no criteria at all contributes nothing
	}
	assert.Equal(t, SkillScores{Clarity: 50}, CalculateSkillScores(attempts))
}

func TestCalculateSkillScoresOrderInvariant(t *testing.T) {
	a := []Attempt{
		{CriteriaScores: map[string]int{"clarity": 60, "innovation": 70}},
		{CriteriaScores: map[string]int{"clarity": 80, "creativity": 90}},
		{CriteriaScores: map[string]int{"context": 75}},
	}
	b := []Attempt{a[2], a[0], a[1]}

	assert.Equal(t, CalculateSkillScores(a), CalculateSkillScores(b))
}
