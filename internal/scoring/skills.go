package scoring

import "math"

// SkillScores is the six-dimension skill view rendered as a radar chart
// by clients. Each value is 0-100, 0 when no data exists for it.
type SkillScores struct {
	Clarity             int `json:"clarity"`
	Context             int `json:"context"`
	AdvancedTechniques  int `json:"advancedTechniques"`
	BusinessApplication int `json:"businessApplication"`
	OutputQuality       int `json:"outputQuality"`
	Innovation          int `json:"innovation"`
}

// skillSources maps each output field to its criterion keys in
// precedence order; the first key observed anywhere in the history wins
// and the alternatives are never combined with it.
var skillSources = []struct {
	assign func(*SkillScores, int)
	keys   []string
}{
	{func(s *SkillScores, v int) { s.Clarity = v }, []string{"clarity"}},
	{func(s *SkillScores, v int) { s.Context = v }, []string{"context"}},
	{func(s *SkillScores, v int) { s.AdvancedTechniques = v }, []string{"advanced_techniques", "reasoning"}},
	{func(s *SkillScores, v int) { s.BusinessApplication = v }, []string{"business_value", "impact"}},
	{func(s *SkillScores, v int) { s.OutputQuality = v }, []string{"format", "specificity"}},
	{func(s *SkillScores, v int) { s.Innovation = v }, []string{"innovation", "creativity"}},
}

// CalculateSkillScores reduces a full attempt history into the six skill
// averages. Every criterion value across every attempt is grouped by key
// and averaged, rounding half away from zero. Criterion keys that map to
// no skill are ignored; an empty history yields all zeros.
func CalculateSkillScores(attempts []Attempt) SkillScores {
	observed := map[string][]int{}
	for _, a := range attempts {
		for key, v := range a.CriteriaScores {
			observed[key] = append(observed[key], v)
		}
	}

	var out SkillScores
	for _, src := range skillSources {
		for _, key := range src.keys {
			values := observed[key]
			if len(values) == 0 {
				continue
			}
			src.assign(&out, roundedMean(values))
			break
		}
	}
	return out
}

func roundedMean(values []int) int {
	sum := 0
	for _, v := range values {
		sum += v
	}
	return int(math.Round(float64(sum) / float64(len(values))))
}
