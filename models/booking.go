package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// GRCNo is the human-facing guest registration card number, distinct from ID.
	GRCNo         string `gorm:"column:grc_no;size:32;uniqueIndex" json:"grcNo"`
	ReferenceCode string `gorm:"column:reference_code;size:64" json:"referenceCode,omitempty"`
	Status        string `gorm:"column:status;size:64" json:"status,omitempty"`

	// Guest fields as captured on the registration card.
	Salutation    string `gorm:"size:16" json:"salutation,omitempty"`
	Name          string `gorm:"size:255" json:"name"`
	Age           int    `json:"age,omitempty"`
	Gender        string `gorm:"size:16" json:"gender,omitempty"`
	Address       string `gorm:"type:text" json:"address,omitempty"`
	City          string `gorm:"size:100" json:"city,omitempty"`
	Nationality   string `gorm:"size:100" json:"nationality,omitempty"`
	MobileNo      string `gorm:"column:mobile_no;size:20" json:"mobileNo,omitempty"`
	Email         string `gorm:"size:150" json:"email,omitempty"`
	CompanyName   string `gorm:"column:company_name;size:255" json:"companyName,omitempty"`
	CompanyGSTIN  string `gorm:"column:company_gstin;size:20" json:"companyGSTIN,omitempty"`
	IDProofType   string `gorm:"column:id_proof_type;size:32" json:"idProofType,omitempty"`
	IDProofNumber string `gorm:"column:id_proof_number;size:32" json:"idProofNumber,omitempty"`

	BookingDate  *time.Time `gorm:"column:booking_date" json:"bookingDate,omitempty"`
	CheckInDate  *time.Time `gorm:"column:check_in_date" json:"checkInDate,omitempty"`
	CheckOutDate *time.Time `gorm:"column:check_out_date" json:"checkOutDate,omitempty"`
	Days         int        `gorm:"column:days" json:"days"`

	CategoryID    *uint  `gorm:"column:category_id;index" json:"categoryId,omitempty"`
	RoomNumber    string `gorm:"column:room_number;size:255" json:"roomNumber"` // comma-joined numbers of the selection
	NumberOfRooms int    `gorm:"column:number_of_rooms;default:1" json:"numberOfRooms"`

	NoOfAdults   int `gorm:"column:no_of_adults;default:1" json:"noOfAdults"`
	NoOfChildren int `gorm:"column:no_of_children;default:0" json:"noOfChildren"`

	// Pricing snapshot, stored unrounded. TaxableAmount is always derived,
	// never edited directly.
	ExtraBed       bool           `gorm:"column:extra_bed;default:false" json:"extraBed"`
	ExtraBedCharge float64        `gorm:"column:extra_bed_charge" json:"extraBedCharge"`
	ExtraBedRooms  datatypes.JSON `gorm:"column:extra_bed_rooms" json:"extraBedRooms,omitempty"`
	RoomCost       float64        `gorm:"column:room_cost" json:"roomCost"`
	ExtraBedCost   float64        `gorm:"column:extra_bed_cost" json:"extraBedCost"`
	TaxableAmount  float64        `gorm:"column:taxable_amount" json:"taxableAmount"`
	CGSTRate       float64        `gorm:"column:cgst_rate" json:"cgstRate"`
	SGSTRate       float64        `gorm:"column:sgst_rate" json:"sgstRate"`
	CGSTAmount     float64        `gorm:"column:cgst_amount" json:"cgstAmount"`
	SGSTAmount     float64        `gorm:"column:sgst_amount" json:"sgstAmount"`
	GrandTotal     float64        `gorm:"column:grand_total" json:"grandTotal"`

	PaymentMode   string `gorm:"column:payment_mode;size:32" json:"paymentMode,omitempty"`
	PaymentStatus string `gorm:"column:payment_status;size:32" json:"paymentStatus,omitempty"`
	Remark        string `gorm:"type:text" json:"remark,omitempty"`

	Category     RoomCategory      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	RoomRates    []BookingRoomRate `gorm:"foreignKey:BookingID" json:"roomRates"`
	GuestDetails []RoomGuestDetail `gorm:"foreignKey:BookingID" json:"roomGuestDetails"`
	Amendments   []Amendment       `gorm:"foreignKey:BookingID" json:"amendmentHistory"`
}

const (
	BookingStatusBooked     = "Booked"
	BookingStatusCheckedOut = "Checked-Out"
	BookingStatusCancelled  = "Cancelled"
)
