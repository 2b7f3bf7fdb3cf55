package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"_id"`
	FullName  string    `gorm:"not null" json:"fullName"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone     string    `gorm:"size:20" json:"phoneNumber"`
	Password  string    `gorm:"not null" json:"-"` // Hash
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
