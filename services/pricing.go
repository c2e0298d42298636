package services

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// SelectedRoom is one member of the current room selection. CustomPrice and
// the extra-bed fields only exist while the room is selected; the catalog
// room carries neither.
type SelectedRoom struct {
	RoomID     uint   `json:"roomId"`
	RoomNumber string `json:"roomNumber"`
	CategoryID uint   `json:"categoryId"`

	Price             float64    `json:"price"`
	CustomPrice       *float64   `json:"customPrice,omitempty"`
	ExtraBed          bool       `json:"extraBed"`
	ExtraBedStartDate *time.Time `json:"extraBedStartDate,omitempty"`
}

// PricingBreakdown is recomputed on demand, never stored independently of the
// booking it was computed for.
type PricingBreakdown struct {
	Nights        int     `json:"nights"`
	RoomCost      float64 `json:"roomCost"`
	ExtraBedCost  float64 `json:"extraBedCost"`
	TaxableAmount float64 `json:"taxableAmount"`
	CGSTAmount    float64 `json:"cgstAmount"`
	SGSTAmount    float64 `json:"sgstAmount"`
	GrandTotal    float64 `json:"grandTotal"`
}

// PricingEngine computes booking totals. It is a total function over its
// inputs: there is no error path, malformed numbers have already been coerced
// to 0 by the time they get here.
type PricingEngine struct {
	// DefaultExtraBedStart is used when a room has the extra bed enabled but
	// no start date. Callers seed it with the draft's check-in date; left
	// zero, the engine falls back to today.
	DefaultExtraBedStart time.Time
}

func NewPricingEngine() *PricingEngine {
	return &PricingEngine{}
}

// Nights returns ceil((checkOut - checkIn) / 1 day), or 0 when checkOut is
// not after checkIn.
func Nights(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn)
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(diff.Hours() / 24))
}

// NightlyRate resolves the rate charged for one room per night: the custom
// price when one is set, otherwise the catalog price.
func (e *PricingEngine) NightlyRate(room SelectedRoom) float64 {
	if room.CustomPrice != nil {
		return *room.CustomPrice
	}
	return room.Price
}

// extraBedDays returns the chargeable extra-bed days for one room:
// ceil(checkOut - start), floored at 0. A start on or after checkout
// contributes nothing.
func (e *PricingEngine) extraBedDays(room SelectedRoom, checkOut time.Time) int {
	start := e.DefaultExtraBedStart
	if room.ExtraBedStartDate != nil {
		start = *room.ExtraBedStartDate
	}
	if start.IsZero() {
		now := time.Now()
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}
	if !start.Before(checkOut) {
		return 0
	}
	days := int(math.Ceil(checkOut.Sub(start).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// ComputeBreakdown derives the full pricing breakdown for a selection.
// roomCost multiplies nights by the sum of per-room rates; every room with
// the extra bed enabled contributes chargePerDay times its prorated days.
func (e *PricingEngine) ComputeBreakdown(
	rooms []SelectedRoom,
	nights int,
	extraBedChargePerDay float64,
	cgstRatePct float64,
	sgstRatePct float64,
	checkOut time.Time,
) PricingBreakdown {
	if nights < 0 {
		nights = 0
	}

	var totalRate float64
	for _, room := range rooms {
		totalRate += e.NightlyRate(room)
	}
	roomCost := totalRate * float64(nights)

	var extraBedCost float64
	for _, room := range rooms {
		if !room.ExtraBed {
			continue
		}
		extraBedCost += extraBedChargePerDay * float64(e.extraBedDays(room, checkOut))
	}

	taxable := roomCost + extraBedCost
	cgst := taxable * cgstRatePct / 100
	sgst := taxable * sgstRatePct / 100

	return PricingBreakdown{
		Nights:        nights,
		RoomCost:      roomCost,
		ExtraBedCost:  extraBedCost,
		TaxableAmount: taxable,
		CGSTAmount:    cgst,
		SGSTAmount:    sgst,
		GrandTotal:    taxable + cgst + sgst,
	}
}

// CoerceNumber parses a user-entered numeric string, returning 0 for
// anything malformed. Pricing inputs never fail, they degrade.
func CoerceNumber(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}
