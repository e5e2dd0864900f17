package model

import (
	"time"
)

type UserRole string

const (
	Student UserRole = "student"
	Admin   UserRole = "admin"
)

type User struct {
	BaseModel
	Name          string    `gorm:"size:100;not null" json:"name"`
	Email         string    `gorm:"size:100;unique;not null" json:"email"`
	Password      string    `gorm:"size:100;not null" json:"-"`
	Role          UserRole  `gorm:"size:20;default:'student'" json:"role"`
	TotalPoints   int       `gorm:"default:0" json:"totalPoints"`
	CurrentLevel  int       `gorm:"default:1" json:"currentLevel"`
	CurrentStreak int       `gorm:"default:0" json:"currentStreak"` // consecutive-day count, maintained from checkins
	Avatar        string    `gorm:"size:255" json:"avatar"`
	Disabled      bool      `gorm:"default:false" json:"disabled"`
	LastLogin     time.Time `json:"lastLogin"`
	LastSeen      time.Time `json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
