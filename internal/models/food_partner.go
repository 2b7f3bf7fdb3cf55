package models

import (
	"time"
)

type FoodPartner struct {
	ID             uint      `gorm:"primaryKey" json:"_id"`
	RestaurantName string    `json:"restaurantName"`
	OwnerName      string    `json:"ownerName"`
	Phone          string    `gorm:"size:20;uniqueIndex" json:"phone"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	Address        string    `json:"address"`
	Password       string    `gorm:"not null" json:"-"` // Hash
	LegacyName     string    `gorm:"column:name" json:"-"` // pre-rename schema kept restaurant name here
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// PartnerSummary is the public shape embedded in food item listings and
// auth responses. Password is never included.
type PartnerSummary struct {
	ID             uint   `json:"_id"`
	RestaurantName string `json:"restaurantName"`
	OwnerName      string `json:"ownerName"`
	Email          string `json:"email"`
}

// Normalize folds legacy field layouts into the canonical shape. Older
// partner rows stored the restaurant name in the "name" column; consumers
// must never see the raw fallback logic.
func (p *FoodPartner) Normalize() {
	if p.RestaurantName == "" {
		p.RestaurantName = p.LegacyName
	}
	if p.RestaurantName == "" {
		p.RestaurantName = "Restaurant Name Not Available"
	}
	if p.OwnerName == "" {
		p.OwnerName = "Owner Name Not Available"
	}
	if p.Address == "" {
		p.Address = "Address Not Available"
	}
	if p.Phone == "" {
		p.Phone = "Phone Not Available"
	}
}

func (p *FoodPartner) Summary() PartnerSummary {
	p.Normalize()
	return PartnerSummary{
		ID:             p.ID,
		RestaurantName: p.RestaurantName,
		OwnerName:      p.OwnerName,
		Email:          p.Email,
	}
}
