package model

import (
	"time"
)

// Checkin records one day of learning activity. StreakDays carries the
// consecutive-day count as of that check-in.
type Checkin struct {
	BaseModel
	UserID     uint      `gorm:"index;not null" json:"userId"`
	CheckinAt  time.Time `gorm:"not null;index:idx_user_checkin_date" json:"checkinAt"`
	StreakDays int       `gorm:"default:1" json:"streakDays"`
}

func (Checkin) TableName() string {
	return "checkins"
}
