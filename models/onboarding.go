package models

import (
	"time"

	"gorm.io/gorm"
)

// OnboardingPreferences is written exactly once, at the celebration step,
// as a single full record. One row per user.
type OnboardingPreferences struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex;not null"`

	DietaryRestrictions string `gorm:"type:text"` // comma-sep enum tags, e.g. "vegan,halal"
	FoodMood            string `gorm:"size:32"`   // comfort|spicy|aesthetic|quick|healthy|indulgent
	FavoriteCategories  string `gorm:"type:text"` // comma-sep, ordered, max 5

	Latitude  float64
	Longitude float64
	City      string
	Country   string

	CompletedAt time.Time
}
