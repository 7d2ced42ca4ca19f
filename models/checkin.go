package models

import (
	"time"

	"gorm.io/gorm"
)

type CheckIn struct {
	gorm.Model
	UserID       uint      `gorm:"index;not null"`
	RestaurantID uint      `gorm:"index;not null"`
	CheckedInAt  time.Time `gorm:"index;not null"`
	Note         string    `gorm:"type:text"`
}

type Review struct {
	gorm.Model
	UserID       uint   `gorm:"index:idx_review_user_rest,unique;not null"`
	RestaurantID uint   `gorm:"index:idx_review_user_rest,unique;not null"`
	Rating       int    `gorm:"not null"` // 1..5
	Text         string `gorm:"type:text"`
}
