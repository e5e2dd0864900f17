package model

import "encoding/json"

// Scenario is a business writing exercise the user submits a prompt against.
type Scenario struct {
	BaseModel
	Title         string `gorm:"size:200;not null" json:"title"`
	ModuleCode    string `gorm:"size:50;index;not null" json:"moduleCode"`
	Description   string `gorm:"type:text" json:"description"`
	TaskBrief     string `gorm:"type:text" json:"taskBrief"`
	Difficulty    string `gorm:"size:20;default:'beginner'" json:"difficulty"`
	SuggestedTime int    `gorm:"default:0" json:"suggestedTime"` // minutes, 0 means no speed bonus
	Criteria      string `gorm:"type:jsonb" json:"criteria"`     // JSON array of criterion keys the grader scores
	IsCapstone    bool   `gorm:"default:false" json:"isCapstone"`
	Active        bool   `gorm:"default:true" json:"active"`
}

func (Scenario) TableName() string {
	return "scenarios"
}

// CriteriaKeys decodes the stored criteria list. Empty or invalid JSON
// yields a default rubric.
func (s *Scenario) CriteriaKeys() []string {
	var keys []string
	if err := json.Unmarshal([]byte(s.Criteria), &keys); err != nil || len(keys) == 0 {
		return []string{"clarity", "context", "specificity", "business_value", "innovation", "reasoning"}
	}
	return keys
}
