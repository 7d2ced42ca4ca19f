package models

import (
	"time"

	"gorm.io/gorm"
)

// BudgetLimit holds a user's monthly ceiling for one spend category.
// One row per (user, category), upsert semantics.
type BudgetLimit struct {
	gorm.Model
	UserID   uint    `gorm:"index:idx_budget_user_cat,unique;not null"`
	Category string  `gorm:"index:idx_budget_user_cat,unique;size:32;not null"`
	Limit    float64 `gorm:"column:monthly_limit"` // "limit" is reserved in postgres
}

// Expense is one spend entry; monthly totals are aggregated from these.
type Expense struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null"`
	Category string    `gorm:"index;size:32;not null"`
	Amount   float64   `gorm:"not null"`
	SpentAt  time.Time `gorm:"index;not null"`
	Note     string
}
