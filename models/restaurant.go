package models

import "gorm.io/gorm"

type Restaurant struct {
	gorm.Model
	Name       string `gorm:"not null"`
	Category   string `gorm:"index;size:32"` // e.g. "japanese", "cafe", "dessert"
	PriceLevel int    // 1..4
	City       string `gorm:"index"`
	Latitude   float64
	Longitude  float64
	Photo      string
	AddedByID  uint `gorm:"index"` // user who added it, 0 for seeded entries
}

// Favorite marks a restaurant for a user. MustTry is the high-priority flag
// cleared by a qualifying check-in.
type Favorite struct {
	gorm.Model
	UserID       uint `gorm:"index:idx_fav_user_rest,unique;not null"`
	RestaurantID uint `gorm:"index:idx_fav_user_rest,unique;not null"`
	MustTry      bool `gorm:"default:false"`
}
