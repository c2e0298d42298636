// services/booking_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"frontdesk-backend/models"
	"frontdesk-backend/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BookingService wraps *gorm.DB to keep booking logic out of the controllers.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// RoomRateInput is one selected room as submitted by the booking form.
type RoomRateInput struct {
	RoomNumber        string   `json:"roomNumber"`
	CustomRate        *float64 `json:"customRate,omitempty"`
	ExtraBed          bool     `json:"extraBed"`
	ExtraBedStartDate string   `json:"extraBedStartDate,omitempty"`
}

// GuestDetailInput is the per-room adult/child split as submitted.
type GuestDetailInput struct {
	RoomNumber string `json:"roomNumber"`
	Adults     int    `json:"adults"`
	Children   int    `json:"children"`
}

// CreateBookingInput carries everything the submit endpoint collects. Dates
// arrive as strings because that is what the form sends; parsing is
// best-effort across the two formats the clients use.
type CreateBookingInput struct {
	Salutation    string
	Name          string
	Age           int
	Gender        string
	Address       string
	City          string
	Nationality   string
	MobileNo      string
	Email         string
	CompanyName   string
	CompanyGSTIN  string
	IDProofType   string
	IDProofNumber string

	CheckInDate  string
	CheckOutDate string
	CategoryID   *uint

	RoomRates      []RoomRateInput
	GuestDetails   []GuestDetailInput
	ExtraBedCharge float64
	CGSTRate       float64
	SGSTRate       float64

	PaymentMode   string
	PaymentStatus string
	Remark        string
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// CreateBooking validates the submitted record, re-checks room availability
// inside the transaction and persists the booking with its per-room rate and
// guest snapshots. The pricing breakdown is recomputed server-side; client
// totals are never trusted.
func (s *BookingService) CreateBooking(input CreateBookingInput) (models.Booking, error) {
	var result models.Booking

	if strings.TrimSpace(input.Name) == "" {
		return result, fmt.Errorf("validation: guest name is required")
	}
	if len(input.RoomRates) == 0 {
		return result, fmt.Errorf("validation: no rooms selected")
	}

	checkIn, err := parseDate(input.CheckInDate)
	if err != nil {
		return result, fmt.Errorf("validation: invalid check_in format: %v", err)
	}
	checkOut, err := parseDate(input.CheckOutDate)
	if err != nil {
		return result, fmt.Errorf("validation: invalid check_out format: %v", err)
	}
	if !checkOut.After(checkIn) {
		return result, fmt.Errorf("validation: check-out must be after check-in")
	}

	engine := PricingEngine{DefaultExtraBedStart: checkIn}
	nights := Nights(checkIn, checkOut)

	var bookingID uint

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		selection := make([]SelectedRoom, 0, len(input.RoomRates))
		rateRows := make([]models.BookingRoomRate, 0, len(input.RoomRates))
		extraBedRooms := []string{}
		roomIDs := make([]uint, 0, len(input.RoomRates))

		for _, rr := range input.RoomRates {
			var room models.Room
			if err := tx.Where("room_number = ?", rr.RoomNumber).First(&room).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("validation: room %s not found", rr.RoomNumber)
				}
				return fmt.Errorf("db error checking room %s: %w", rr.RoomNumber, err)
			}

			var overlapping int64
			if err := tx.
				Table("booking_room_rates").
				Joins("JOIN bookings ON bookings.id = booking_room_rates.booking_id").
				Where("bookings.deleted_at IS NULL AND booking_room_rates.deleted_at IS NULL").
				Where("bookings.status = ?", models.BookingStatusBooked).
				Where("booking_room_rates.room_number = ?", rr.RoomNumber).
				Where("bookings.check_in_date < ? AND bookings.check_out_date > ?", checkOut, checkIn).
				Count(&overlapping).Error; err != nil {
				return fmt.Errorf("db error checking availability for room %s: %w", rr.RoomNumber, err)
			}
			if overlapping > 0 {
				// The "available rooms" wording is load-bearing: clients match
				// on it to clear their selection and force a fresh check.
				return fmt.Errorf("Not enough available rooms: room %s is no longer free for the selected dates", rr.RoomNumber)
			}

			sel := SelectedRoom{
				RoomID:     room.ID,
				RoomNumber: room.RoomNumber,
				Price:      room.Price,
				ExtraBed:   rr.ExtraBed,
			}
			if room.RoomCategoryID != nil {
				sel.CategoryID = *room.RoomCategoryID
			}
			if rr.CustomRate != nil {
				sel.CustomPrice = rr.CustomRate
			}

			row := models.BookingRoomRate{
				RoomNumber: room.RoomNumber,
				CustomRate: engine.NightlyRate(sel),
				ExtraBed:   rr.ExtraBed,
			}
			if rr.ExtraBed {
				extraBedRooms = append(extraBedRooms, room.RoomNumber)
				if rr.ExtraBedStartDate != "" {
					if start, err := parseDate(rr.ExtraBedStartDate); err == nil {
						row.ExtraBedStartDate = &start
						sel.ExtraBedStartDate = &start
					}
				}
			}

			selection = append(selection, sel)
			rateRows = append(rateRows, row)
			roomIDs = append(roomIDs, room.ID)
		}

		breakdown := engine.ComputeBreakdown(
			selection, nights, input.ExtraBedCharge, input.CGSTRate, input.SGSTRate, checkOut,
		)

		guestRows := make([]models.RoomGuestDetail, 0, len(selection))
		if len(input.GuestDetails) > 0 {
			for _, gd := range input.GuestDetails {
				adults := gd.Adults
				if adults < 0 {
					adults = 0
				}
				children := gd.Children
				if children < 0 {
					children = 0
				}
				guestRows = append(guestRows, models.RoomGuestDetail{
					RoomNumber: gd.RoomNumber,
					Adults:     adults,
					Children:   children,
				})
			}
		} else {
			for _, sel := range selection {
				guestRows = append(guestRows, models.RoomGuestDetail{
					RoomNumber: sel.RoomNumber,
					Adults:     1,
					Children:   0,
				})
			}
		}

		noOfAdults, noOfChildren := 0, 0
		for _, g := range guestRows {
			noOfAdults += g.Adults
			noOfChildren += g.Children
		}

		roomNumbers := make([]string, 0, len(selection))
		for _, sel := range selection {
			roomNumbers = append(roomNumbers, sel.RoomNumber)
		}

		extraBedJSON, _ := json.Marshal(extraBedRooms) // best-effort

		now := time.Now()
		booking := models.Booking{
			GRCNo:         utils.NewGRCNo(),
			ReferenceCode: utils.NewReferenceCode(),
			Status:        models.BookingStatusBooked,

			Salutation:    input.Salutation,
			Name:          strings.TrimSpace(input.Name),
			Age:           input.Age,
			Gender:        input.Gender,
			Address:       input.Address,
			City:          input.City,
			Nationality:   input.Nationality,
			MobileNo:      input.MobileNo,
			Email:         input.Email,
			CompanyName:   input.CompanyName,
			CompanyGSTIN:  input.CompanyGSTIN,
			IDProofType:   input.IDProofType,
			IDProofNumber: input.IDProofNumber,

			BookingDate:  &now,
			CheckInDate:  &checkIn,
			CheckOutDate: &checkOut,
			Days:         nights,
			CategoryID:   input.CategoryID,

			RoomNumber:    strings.Join(roomNumbers, ","),
			NumberOfRooms: len(selection),
			NoOfAdults:    noOfAdults,
			NoOfChildren:  noOfChildren,

			ExtraBed:       len(extraBedRooms) > 0,
			ExtraBedCharge: input.ExtraBedCharge,
			ExtraBedRooms:  datatypes.JSON(extraBedJSON),
			RoomCost:       breakdown.RoomCost,
			ExtraBedCost:   breakdown.ExtraBedCost,
			TaxableAmount:  breakdown.TaxableAmount,
			CGSTRate:       input.CGSTRate,
			SGSTRate:       input.SGSTRate,
			CGSTAmount:     breakdown.CGSTAmount,
			SGSTAmount:     breakdown.SGSTAmount,
			GrandTotal:     breakdown.GrandTotal,

			PaymentMode:   input.PaymentMode,
			PaymentStatus: input.PaymentStatus,
			Remark:        input.Remark,

			RoomRates:    rateRows,
			GuestDetails: guestRows,
		}

		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		bookingID = booking.ID

		for _, rid := range roomIDs {
			if err := tx.Model(&models.Room{}).
				Where("id = ?", rid).
				Update("status", models.RoomStatusReserved).Error; err != nil {
				return fmt.Errorf("failed to update room %d status: %w", rid, err)
			}
		}

		return nil
	})
	if txErr != nil {
		return result, txErr
	}

	if err := s.DB.
		Preload("Category").
		Preload("RoomRates").
		Preload("GuestDetails").
		Preload("Amendments").
		First(&result, bookingID).Error; err != nil {
		return result, err
	}
	return result, nil
}

// GetAllWithRelations returns every booking with its snapshots preloaded,
// newest first.
func (s *BookingService) GetAllWithRelations() ([]models.Booking, error) {
	var list []models.Booking

	if err := s.DB.
		Preload("Category").
		Preload("RoomRates").
		Preload("GuestDetails").
		Preload("Amendments").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}

	for i := range list {
		if list[i].RoomRates == nil {
			list[i].RoomRates = []models.BookingRoomRate{}
		}
		if list[i].GuestDetails == nil {
			list[i].GuestDetails = []models.RoomGuestDetail{}
		}
	}
	return list, nil
}

// GetDetails loads one booking by primary key.
func (s *BookingService) GetDetails(bookingID uint) (*models.Booking, error) {
	var bk models.Booking
	if err := s.DB.
		Preload("Category").
		Preload("RoomRates").
		Preload("GuestDetails").
		Preload("Amendments").
		First(&bk, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("booking_not_found")
		}
		return nil, fmt.Errorf("failed to retrieve booking details: %w", err)
	}
	return &bk, nil
}

// GetByGRC looks a booking up by its guest registration card number.
func (s *BookingService) GetByGRC(grcNo string) (*models.Booking, error) {
	var bk models.Booking
	if err := s.DB.
		Preload("Category").
		Preload("RoomRates").
		Preload("GuestDetails").
		Preload("Amendments").
		Where("grc_no = ?", strings.TrimSpace(grcNo)).
		First(&bk).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("booking_not_found")
		}
		return nil, fmt.Errorf("failed to retrieve booking by GRC: %w", err)
	}
	return &bk, nil
}

// DeleteByID soft-deletes a booking and releases its rooms.
func (s *BookingService) DeleteByID(bookingID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Preload("RoomRates").First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("booking_not_found")
			}
			return err
		}

		if err := tx.Delete(&booking).Error; err != nil {
			return fmt.Errorf("failed to delete booking: %w", err)
		}
		return s.releaseRooms(tx, booking.RoomRates)
	})
}

// CheckoutBooking marks a booking checked out and frees its rooms.
func (s *BookingService) CheckoutBooking(bookingID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.Preload("RoomRates").First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("booking_not_found")
			}
			return err
		}

		if booking.Status != models.BookingStatusBooked {
			return errors.New("not_active")
		}

		if err := tx.Model(&booking).Update("status", models.BookingStatusCheckedOut).Error; err != nil {
			return err
		}
		return s.releaseRooms(tx, booking.RoomRates)
	})
}

func (s *BookingService) releaseRooms(tx *gorm.DB, rates []models.BookingRoomRate) error {
	for _, rr := range rates {
		if err := tx.Model(&models.Room{}).
			Where("room_number = ?", rr.RoomNumber).
			Update("status", models.RoomStatusAvailable).Error; err != nil {
			return err
		}
	}
	return nil
}

// AmendmentFee is the flat charge applied from the second amendment onward.
const AmendmentFee = 500.0

// AmendBooking applies a checkout-date amendment: policy-gated, duration and
// totals recomputed from the stored per-room snapshots, one history row
// appended.
func (s *BookingService) AmendBooking(bookingID uint, newCheckOutRaw, reason string, now time.Time) (*models.Booking, AmendmentResult, error) {
	var result AmendmentResult

	var booking models.Booking
	if err := s.DB.
		Preload("RoomRates").
		Preload("Amendments").
		First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, result, errors.New("booking_not_found")
		}
		return nil, result, fmt.Errorf("failed to load booking: %w", err)
	}

	if booking.CheckInDate == nil || booking.CheckOutDate == nil {
		return nil, result, errors.New("booking_missing_dates")
	}

	if len(booking.Amendments) >= MaxAmendments {
		return nil, result, errors.New("amendment_limit_reached")
	}
	if !CanAmend(len(booking.Amendments), *booking.CheckOutDate, now) {
		return nil, result, errors.New("amendment_window_closed")
	}

	newCheckOut, err := parseDate(newCheckOutRaw)
	if err != nil {
		return nil, result, fmt.Errorf("validation: invalid new checkout format: %v", err)
	}

	result, err = ApplyAmendment(*booking.CheckInDate, booking.Days, newCheckOut)
	if err != nil {
		return nil, result, fmt.Errorf("validation: %v", err)
	}

	engine := PricingEngine{DefaultExtraBedStart: *booking.CheckInDate}
	selection := make([]SelectedRoom, 0, len(booking.RoomRates))
	for _, rr := range booking.RoomRates {
		rate := rr.CustomRate
		selection = append(selection, SelectedRoom{
			RoomNumber:        rr.RoomNumber,
			Price:             rate,
			CustomPrice:       &rate,
			ExtraBed:          rr.ExtraBed,
			ExtraBedStartDate: rr.ExtraBedStartDate,
		})
	}
	breakdown := engine.ComputeBreakdown(
		selection, result.NewDays, booking.ExtraBedCharge, booking.CGSTRate, booking.SGSTRate, newCheckOut,
	)

	grandTotal := breakdown.GrandTotal
	if len(booking.Amendments) > 0 {
		grandTotal += AmendmentFee
	}

	previousCheckOut := *booking.CheckOutDate

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		record := models.Amendment{
			BookingID:        booking.ID,
			AmendedOn:        now,
			PreviousCheckOut: previousCheckOut,
			NewCheckOut:      newCheckOut,
			Reason:           reason,
		}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("failed to record amendment: %w", err)
		}

		return tx.Model(&booking).Updates(map[string]interface{}{
			"check_out_date": newCheckOut,
			"days":           result.NewDays,
			"room_cost":      breakdown.RoomCost,
			"extra_bed_cost": breakdown.ExtraBedCost,
			"taxable_amount": breakdown.TaxableAmount,
			"cgst_amount":    breakdown.CGSTAmount,
			"sgst_amount":    breakdown.SGSTAmount,
			"grand_total":    grandTotal,
		}).Error
	})
	if txErr != nil {
		return nil, result, txErr
	}

	updated, err := s.GetDetails(booking.ID)
	if err != nil {
		return nil, result, err
	}
	log.Printf("booking %d amended: checkout %s -> %s (%d amendments used)",
		booking.ID, previousCheckOut.Format("2006-01-02"), newCheckOut.Format("2006-01-02"), len(updated.Amendments))
	return updated, result, nil
}
