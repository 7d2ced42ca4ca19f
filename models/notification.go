package models

import "time"

type Notification struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index"`
	Type      string    `gorm:"size:32"` // "level_up" | "tier_up" | "budget_warning" | "budget_over" | "info"
	Message   string    `gorm:"type:text"`
	Read      bool      `gorm:"default:false"`
	CreatedAt time.Time
}
