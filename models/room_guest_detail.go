package models

import (
	"gorm.io/gorm"
)

// RoomGuestDetail holds the adult/child split for one room of a booking.
// The booking's aggregate noOfAdults/noOfChildren are always the sums of
// these rows.
type RoomGuestDetail struct {
	gorm.Model
	BookingID  uint   `gorm:"index;column:booking_id" json:"booking_id"`
	RoomNumber string `gorm:"column:room_number;size:50" json:"roomNumber"`
	Adults     int    `gorm:"column:adults;default:1" json:"adults"`
	Children   int    `gorm:"column:children;default:0" json:"children"`
}
