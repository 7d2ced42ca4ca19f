package models

import "gorm.io/gorm"

type Collection struct {
	gorm.Model
	UserID     uint   `gorm:"index;not null"`
	Name       string `gorm:"not null"`
	Emoji      string `gorm:"size:8"`
	ShareToken string `gorm:"uniqueIndex;size:36"`
	Items      []CollectionItem
}

type CollectionItem struct {
	gorm.Model
	CollectionID uint `gorm:"index:idx_coll_item,unique;not null"`
	RestaurantID uint `gorm:"index:idx_coll_item,unique;not null"`
}
