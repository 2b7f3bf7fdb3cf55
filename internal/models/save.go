package models

import (
	"time"
)

// Save mirrors Like but carries no denormalized counter on FoodItem.
type Save struct {
	ID         uint      `gorm:"primaryKey" json:"_id"`
	UserID     uint      `gorm:"not null;index;uniqueIndex:idx_save_user_food" json:"user"`
	FoodItemID uint      `gorm:"not null;index;uniqueIndex:idx_save_user_food" json:"food"`
	FoodItem   FoodItem  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
}
