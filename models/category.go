package models

import (
	"time"

	"gorm.io/gorm"
)

type RoomCategory struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:150;uniqueIndex" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	BasePrice   float64 `gorm:"column:base_price" json:"basePrice"`
	TotalRooms  int     `gorm:"column:total_rooms" json:"totalRooms"`

	// Derived by the availability reconciler after a date-range query.
	// Stays 0 until an availability check runs; never persisted.
	AvailableRoomsCount int `gorm:"-" json:"availableRoomsCount"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
