package models

import (
	"time"
)

// Like is the source of truth for "user liked item". FoodItem.LikeCount is
// a derived counter maintained alongside row creation/deletion.
type Like struct {
	ID         uint      `gorm:"primaryKey" json:"_id"`
	UserID     uint      `gorm:"not null;index;uniqueIndex:idx_like_user_food" json:"user"`
	FoodItemID uint      `gorm:"not null;index;uniqueIndex:idx_like_user_food" json:"food"`
	FoodItem   FoodItem  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
}
