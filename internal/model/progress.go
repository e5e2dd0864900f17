package model

import "encoding/json"

// ModuleCompletion is the per-module completed/total pair stored inside
// UserProgress.ModuleProgress.
type ModuleCompletion struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// UserProgress is the per-user rollup updated on every first-time
// scenario completion.
type UserProgress struct {
	BaseModel
	UserID             uint    `gorm:"uniqueIndex;not null" json:"userId"`
	ScenariosCompleted int     `gorm:"default:0" json:"scenariosCompleted"` // first-attempt successes only
	AverageScore       float64 `gorm:"default:0" json:"averageScore"`       // average of first-attempt scores
	TotalTimeSpent     int     `gorm:"default:0" json:"totalTimeSpent"`     // seconds
	CapstoneCompleted  bool    `gorm:"default:false" json:"capstoneCompleted"`
	ModuleProgress     string  `gorm:"type:jsonb" json:"moduleProgress"` // JSON: module code -> {completed, total}
}

func (UserProgress) TableName() string {
	return "user_progress"
}

func (p *UserProgress) ModuleProgressMap() map[string]ModuleCompletion {
	m := map[string]ModuleCompletion{}
	if p.ModuleProgress != "" {
		json.Unmarshal([]byte(p.ModuleProgress), &m)
	}
	return m
}

func (p *UserProgress) SetModuleProgress(m map[string]ModuleCompletion) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	p.ModuleProgress = string(raw)
	return nil
}
