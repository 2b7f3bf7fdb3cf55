package models

import (
	"time"
)

type FoodItem struct {
	ID            uint        `gorm:"primaryKey" json:"_id"`
	Name          string      `gorm:"not null" json:"name"`
	Description   string      `gorm:"type:text" json:"description"`
	VideoURL      string      `gorm:"not null" json:"videoUrl"`
	FoodPartnerID uint        `gorm:"not null;index" json:"foodPartnerId"`
	FoodPartner   FoodPartner `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	LikeCount     int         `gorm:"default:0" json:"likeCount"`
	CommentCount  int         `gorm:"default:0" json:"commentCount"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`

	// Filled at query time, not persisted
	IsLiked bool            `gorm:"-" json:"isLiked"`
	IsSaved bool            `gorm:"-" json:"isSaved"`
	Partner *PartnerSummary `gorm:"-" json:"foodPartner,omitempty"`
}
