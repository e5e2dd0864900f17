package model

import "encoding/json"

// Attempt is one scored prompt submission for a scenario.
type Attempt struct {
	BaseModel
	UserID         uint   `gorm:"index;not null" json:"userId"`
	ScenarioID     uint   `gorm:"index;not null" json:"scenarioId"`
	AttemptNumber  int    `gorm:"not null" json:"attemptNumber"` // 1 = first attempt at this scenario
	PromptText     string `gorm:"type:text;not null" json:"promptText"`
	Score          int    `gorm:"not null" json:"score"` // clamped to [0,100] before persisting
	CriteriaScores string `gorm:"type:jsonb" json:"criteriaScores"`
	Strengths      string `gorm:"type:text" json:"strengths"`
	Improvements   string `gorm:"type:text" json:"improvements"`
	RewriteExample string `gorm:"type:text" json:"rewriteExample"`
	KeyTakeaway    string `gorm:"type:text" json:"keyTakeaway"`
	TimeSpent      int    `gorm:"default:0" json:"timeSpent"` // seconds
}

func (Attempt) TableName() string {
	return "attempts"
}

// CriteriaScoreMap decodes the stored per-criterion scores. A missing or
// malformed column yields an empty map.
func (a *Attempt) CriteriaScoreMap() map[string]int {
	scores := map[string]int{}
	if a.CriteriaScores != "" {
		json.Unmarshal([]byte(a.CriteriaScores), &scores)
	}
	return scores
}
