package models

import (
	"gorm.io/gorm"
)

type Room struct {
	gorm.Model

	// Nullable so a room can exist before its category is assigned.
	RoomCategoryID *uint  `json:"categoryId,omitempty" gorm:"column:room_category_id;index"`
	RoomNumber     string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`

	Status       string  `json:"status" gorm:"size:64"`
	Floor        string  `json:"floor" gorm:"type:varchar(10)"`
	Price        float64 `json:"price"`
	MaxOccupancy int     `json:"maxOccupancy" gorm:"column:max_occupancy"`
	Description  string  `json:"description" gorm:"type:text"`

	Category RoomCategory `gorm:"foreignKey:RoomCategoryID" json:"category,omitempty"`
}

const (
	RoomStatusAvailable   = "Available"
	RoomStatusReserved    = "Reserved"
	RoomStatusMaintenance = "Maintenance"
)
