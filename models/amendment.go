package models

import (
	"time"
)

// Amendment is one checkout-date change applied to a booking. The list is
// append-only; its length caps further amendments.
type Amendment struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	BookingID uint `gorm:"index;column:booking_id" json:"booking_id"`

	AmendedOn        time.Time `gorm:"column:amended_on" json:"amendedOn"`
	PreviousCheckOut time.Time `gorm:"column:previous_check_out" json:"previousCheckOut"`
	NewCheckOut      time.Time `gorm:"column:new_check_out" json:"newCheckOut"`
	Reason           string    `gorm:"type:text" json:"reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
