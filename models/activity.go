package models

import (
	"time"

	"gorm.io/gorm"
)

// FeedActivity is one row in the social feed.
type FeedActivity struct {
	gorm.Model
	UserID       uint      `gorm:"index;not null"`
	Type         string    `gorm:"size:32"` // "checkin" | "review" | "level_up" | "collection_add"
	RestaurantID uint      `gorm:"index"`
	Message      string    `gorm:"type:text"`
	OccurredAt   time.Time `gorm:"index;not null"`
}
