package model

// Achievement is a one-time-per-user unlocked badge. The composite unique
// index makes double awards impossible even under concurrent submissions.
type Achievement struct {
	BaseModel
	UserID           uint   `gorm:"uniqueIndex:idx_user_badge;not null" json:"userId"`
	BadgeType        string `gorm:"uniqueIndex:idx_user_badge;size:50;not null" json:"badgeType"`
	BadgeName        string `gorm:"size:100;not null" json:"badgeName"`
	BadgeDescription string `gorm:"size:255" json:"badgeDescription"`
}

func (Achievement) TableName() string {
	return "achievements"
}
