package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	UserID    string `gorm:"uniqueIndex;size:64"`
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	FirstName string
	LastName  string
	Username  string
	Avatar    string

	// Gamification. TotalXP is the source of truth; level and tier are
	// recomputed from it on read, never trusted from storage.
	TotalXP     int `gorm:"default:0"`
	Streak      int `gorm:"default:0"`
	LastCheckIn time.Time

	// Launch-gate flags. OnboardingComplete only transitions false -> true.
	OnboardingComplete  bool `gorm:"default:false"`
	FeatureTourComplete bool `gorm:"default:false"`

	Disabled      bool `gorm:"default:false"`
	ResetToken    string
	ResetTokenExp time.Time
}
