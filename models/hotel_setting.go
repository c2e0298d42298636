package models

import "time"

type HotelSetting struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"size:255" json:"name"`
	Address string `gorm:"type:text" json:"address"`
	Phone   string `gorm:"size:50" json:"phone"`
	Email   string `gorm:"size:150" json:"email"`

	// Defaults applied to new booking drafts.
	ExtraBedCharge float64 `gorm:"column:extra_bed_charge;default:500" json:"extraBedCharge"`
	CGSTRate       float64 `gorm:"column:cgst_rate;default:2.5" json:"cgstRate"`
	SGSTRate       float64 `gorm:"column:sgst_rate;default:2.5" json:"sgstRate"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
