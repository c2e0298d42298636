package models

import (
	"time"

	"gorm.io/gorm"
)

// BookingRoomRate is the per-room snapshot taken when a booking is created.
// RoomNumber is the stable cross-reference key, not the room's database ID.
type BookingRoomRate struct {
	gorm.Model
	BookingID  uint   `gorm:"index;column:booking_id" json:"booking_id"`
	RoomNumber string `gorm:"column:room_number;size:50" json:"roomNumber"`

	CustomRate        float64    `gorm:"column:custom_rate" json:"customRate"`
	ExtraBed          bool       `gorm:"column:extra_bed;default:false" json:"extraBed"`
	ExtraBedStartDate *time.Time `gorm:"column:extra_bed_start_date" json:"extraBedStartDate,omitempty"`
}
