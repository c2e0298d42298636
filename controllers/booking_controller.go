package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
)

// BookingController exposes the booking endpoints on top of BookingService.
type BookingController struct {
	Svc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Svc: svc}
}

// ---------------------------
// Payloads
// ---------------------------

type bookingPayload struct {
	Salutation    string `json:"salutation"`
	Name          string `json:"name" binding:"required"`
	Age           int    `json:"age"`
	Gender        string `json:"gender"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Nationality   string `json:"nationality"`
	MobileNo      string `json:"mobileNo"`
	Email         string `json:"email"`
	CompanyName   string `json:"companyName"`
	CompanyGSTIN  string `json:"companyGSTIN"`
	IDProofType   string `json:"idProofType"`
	IDProofNumber string `json:"idProofNumber"`

	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	CategoryID   *uint  `json:"categoryId"`

	RoomRates      []services.RoomRateInput   `json:"roomRates" binding:"required"`
	GuestDetails   []services.GuestDetailInput `json:"guestDetails"`
	ExtraBedCharge float64                    `json:"extraBedCharge"`
	CGSTRate       float64                    `json:"cgstRate"`
	SGSTRate       float64                    `json:"sgstRate"`

	PaymentMode   string `json:"paymentMode"`
	PaymentStatus string `json:"paymentStatus"`
	Remark        string `json:"remark"`
}

type quotePayload struct {
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`

	Rooms []struct {
		RoomNumber        string   `json:"roomNumber"`
		Price             float64  `json:"price"`
		CustomPrice       *float64 `json:"customPrice,omitempty"`
		ExtraBed          bool     `json:"extraBed"`
		ExtraBedStartDate string   `json:"extraBedStartDate,omitempty"`
	} `json:"rooms" binding:"required"`

	ExtraBedCharge float64 `json:"extraBedCharge"`
	CGSTRate       float64 `json:"cgstRate"`
	SGSTRate       float64 `json:"sgstRate"`
}

type amendPayload struct {
	NewCheckOutDate string `json:"newCheckOutDate" binding:"required"`
	Reason          string `json:"reason"`
}

func (p *bookingPayload) validate() error {
	if p.Email != "" && !utils.ValidEmail(p.Email) {
		return errors.New("invalid email address")
	}
	if p.MobileNo != "" && !utils.ValidPhone(p.MobileNo) {
		return errors.New("invalid mobile number")
	}
	if p.CompanyGSTIN != "" && !utils.ValidGSTIN(p.CompanyGSTIN) {
		return errors.New("invalid GSTIN")
	}
	switch strings.ToLower(p.IDProofType) {
	case "pan":
		if p.IDProofNumber != "" && !utils.ValidPAN(p.IDProofNumber) {
			return errors.New("invalid PAN number")
		}
	case "aadhaar":
		if p.IDProofNumber != "" && !utils.ValidAadhaar(p.IDProofNumber) {
			return errors.New("invalid Aadhaar number")
		}
	}
	return nil
}

func isForeignKeyError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1452
	}
	return false
}

// ---------------------------
// Handlers
// ---------------------------

// GetBookings lists every booking with its room and guest snapshots.
func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.Svc.GetAllWithRelations()
	if err != nil {
		log.Printf("GetBookings error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// CreateBooking validates and submits a new booking.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var payload bookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload: " + err.Error()})
		return
	}
	if err := payload.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.CreateBookingInput{
		Salutation:    payload.Salutation,
		Name:          payload.Name,
		Age:           payload.Age,
		Gender:        payload.Gender,
		Address:       payload.Address,
		City:          payload.City,
		Nationality:   payload.Nationality,
		MobileNo:      payload.MobileNo,
		Email:         payload.Email,
		CompanyName:   payload.CompanyName,
		CompanyGSTIN:  payload.CompanyGSTIN,
		IDProofType:   payload.IDProofType,
		IDProofNumber: payload.IDProofNumber,

		CheckInDate:  payload.CheckInDate,
		CheckOutDate: payload.CheckOutDate,
		CategoryID:   payload.CategoryID,

		RoomRates:      payload.RoomRates,
		GuestDetails:   payload.GuestDetails,
		ExtraBedCharge: payload.ExtraBedCharge,
		CGSTRate:       payload.CGSTRate,
		SGSTRate:       payload.SGSTRate,

		PaymentMode:   payload.PaymentMode,
		PaymentStatus: payload.PaymentStatus,
		Remark:        payload.Remark,
	}

	booking, err := bc.Svc.CreateBooking(input)
	if err != nil {
		msg := err.Error()
		switch {
		case strings.HasPrefix(msg, "validation:"):
			c.JSON(http.StatusBadRequest, gin.H{"error": strings.TrimSpace(strings.TrimPrefix(msg, "validation:"))})
		case strings.Contains(msg, "available rooms"):
			// Kept verbatim so clients can detect the conflict and rerun
			// their availability check.
			c.JSON(http.StatusConflict, gin.H{"error": msg})
		case isForeignKeyError(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category reference"})
		default:
			log.Printf("CreateBooking error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

// QuoteBooking prices a draft selection without persisting anything. It is
// the same computation CreateBooking runs at submit time.
func (bc *BookingController) QuoteBooking(c *gin.Context) {
	var payload quotePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload: " + err.Error()})
		return
	}

	checkIn, err := time.Parse("2006-01-02", payload.CheckInDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkInDate, expected YYYY-MM-DD"})
		return
	}
	checkOut, err := time.Parse("2006-01-02", payload.CheckOutDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid checkOutDate, expected YYYY-MM-DD"})
		return
	}

	engine := services.PricingEngine{DefaultExtraBedStart: checkIn}
	selection := make([]services.SelectedRoom, 0, len(payload.Rooms))
	for _, r := range payload.Rooms {
		sel := services.SelectedRoom{
			RoomNumber:  r.RoomNumber,
			Price:       r.Price,
			CustomPrice: r.CustomPrice,
			ExtraBed:    r.ExtraBed,
		}
		if r.ExtraBedStartDate != "" {
			if start, err := time.Parse("2006-01-02", r.ExtraBedStartDate); err == nil {
				sel.ExtraBedStartDate = &start
			}
		}
		selection = append(selection, sel)
	}

	breakdown := engine.ComputeBreakdown(
		selection,
		services.Nights(checkIn, checkOut),
		payload.ExtraBedCharge,
		payload.CGSTRate,
		payload.SGSTRate,
		checkOut,
	)
	c.JSON(http.StatusOK, gin.H{"breakdown": breakdown})
}

// GetBookingDetails returns one booking by ID.
func (bc *BookingController) GetBookingDetails(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	booking, err := bc.Svc.GetDetails(uint(id))
	if err != nil {
		if err.Error() == "booking_not_found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		log.Printf("GetBookingDetails error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// GetBookingByGRC returns one booking by its GRC number.
func (bc *BookingController) GetBookingByGRC(c *gin.Context) {
	grcNo := c.Param("grcNo")
	booking, err := bc.Svc.GetByGRC(grcNo)
	if err != nil {
		if err.Error() == "booking_not_found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		log.Printf("GetBookingByGRC error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// DeleteBooking soft-deletes a booking and releases its rooms.
func (bc *BookingController) DeleteBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	if err := bc.Svc.DeleteByID(uint(id)); err != nil {
		if err.Error() == "booking_not_found" {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		log.Printf("DeleteBooking error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted"})
}

// CheckoutBooking marks a booking checked out and frees its rooms.
func (bc *BookingController) CheckoutBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	if err := bc.Svc.CheckoutBooking(uint(id)); err != nil {
		switch err.Error() {
		case "booking_not_found":
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		case "not_active":
			c.JSON(http.StatusConflict, gin.H{"error": "booking is not active"})
		default:
			log.Printf("CheckoutBooking error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to checkout booking"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking checked out"})
}

// AmendBooking changes a booking's checkout date under the amendment policy.
func (bc *BookingController) AmendBooking(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return
	}

	var payload amendPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload: " + err.Error()})
		return
	}

	booking, result, err := bc.Svc.AmendBooking(uint(id), payload.NewCheckOutDate, payload.Reason, time.Now())
	if err != nil {
		msg := err.Error()
		switch {
		case msg == "booking_not_found":
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		case msg == "booking_missing_dates":
			c.JSON(http.StatusConflict, gin.H{"error": "booking has no stored dates"})
		case msg == "amendment_limit_reached":
			c.JSON(http.StatusConflict, gin.H{"error": "amendment limit reached, no further changes allowed"})
		case msg == "amendment_window_closed":
			c.JSON(http.StatusConflict, gin.H{"error": "amendments are closed within 24 hours of checkout"})
		case strings.HasPrefix(msg, "validation:"):
			c.JSON(http.StatusBadRequest, gin.H{"error": strings.TrimSpace(strings.TrimPrefix(msg, "validation:"))})
		default:
			log.Printf("AmendBooking error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to amend booking"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"booking": booking,
		"amendment": gin.H{
			"newDays": result.NewDays,
			"delta":   result.Delta,
		},
	})
}
