package services

import (
	"strings"
	"time"

	"frontdesk-backend/models"
)

// BookingDraft is the in-progress booking state the front desk edits before
// submit. Every mutation below re-runs the pricing engine synchronously, so
// the derived fields are never stale.
type BookingDraft struct {
	CheckInDate  time.Time
	CheckOutDate time.Time

	ExtraBedChargePerDay float64
	CGSTRatePct          float64
	SGSTRatePct          float64

	CategoryID uint
	Selection  RoomSelectionSet
	Occupancy  GuestOccupancy

	// Availability state, owned by ApplyAvailability.
	Categories []models.RoomCategory
	Candidates []models.Room

	// Derived, rewritten on every mutation.
	RoomNumber    string
	NumberOfRooms int
	Breakdown     PricingBreakdown

	engine     PricingEngine
	issuedSeq  uint64
	appliedSeq uint64
}

// NewBookingDraft seeds a draft with the hotel's default charges and the
// current catalog categories (counts zeroed until an availability check).
func NewBookingDraft(categories []models.RoomCategory, extraBedCharge, cgstRate, sgstRate float64) *BookingDraft {
	d := &BookingDraft{
		ExtraBedChargePerDay: extraBedCharge,
		CGSTRatePct:          cgstRate,
		SGSTRatePct:          sgstRate,
	}
	d.Categories, d.Candidates = Reconcile(categories, nil)
	d.recompute()
	return d
}

// Nights is the current stay length.
func (d *BookingDraft) Nights() int {
	return Nights(d.CheckInDate, d.CheckOutDate)
}

func (d *BookingDraft) SetDates(checkIn, checkOut time.Time) {
	d.CheckInDate = checkIn
	d.CheckOutDate = checkOut
	d.recompute()
}

// SelectCategory switches the active category and clears the selection:
// there is no cross-category multi-select.
func (d *BookingDraft) SelectCategory(categoryID uint) {
	if d.CategoryID == categoryID {
		return
	}
	d.CategoryID = categoryID
	d.Selection.Clear()
	d.Occupancy.Clear()
	d.recompute()
}

// ToggleRoom adds or removes a candidate room and keeps the per-room guest
// entries in step with the selection.
func (d *BookingDraft) ToggleRoom(room models.Room) {
	selected := SelectedRoom{
		RoomID:     room.ID,
		RoomNumber: room.RoomNumber,
		Price:      room.Price,
	}
	if room.RoomCategoryID != nil {
		selected.CategoryID = *room.RoomCategoryID
	}

	wasSelected := d.Selection.Contains(room.ID)
	d.Selection.Toggle(selected)
	if wasSelected {
		d.Occupancy.OnRoomRemoved(room.RoomNumber)
	} else {
		d.Occupancy.OnRoomAdded(room.RoomNumber)
	}
	d.recompute()
}

// SetCustomPrice takes the raw field value; an empty string reverts to the
// catalog price, anything malformed becomes 0.
func (d *BookingDraft) SetCustomPrice(roomID uint, raw string) {
	if strings.TrimSpace(raw) == "" {
		d.Selection.SetCustomPrice(roomID, nil)
	} else {
		price := CoerceNumber(raw)
		d.Selection.SetCustomPrice(roomID, &price)
	}
	d.recompute()
}

func (d *BookingDraft) SetExtraBed(roomID uint, on bool, start *time.Time) {
	d.Selection.SetExtraBed(roomID, on, start)
	d.recompute()
}

func (d *BookingDraft) SetExtraBedCharge(raw string) {
	d.ExtraBedChargePerDay = CoerceNumber(raw)
	d.recompute()
}

func (d *BookingDraft) SetTaxRates(cgstRaw, sgstRaw string) {
	d.CGSTRatePct = CoerceNumber(cgstRaw)
	d.SGSTRatePct = CoerceNumber(sgstRaw)
	d.recompute()
}

// SetGuestField edits one room's adults/children count. Totals only ever
// change through here and through selection membership.
func (d *BookingDraft) SetGuestField(roomNumber, field, raw string) {
	d.Occupancy.SetField(roomNumber, field, raw)
}

// BeginAvailabilityCheck issues a sequence number for a new availability
// request. A double-clicked check issues two numbers; only the latest one
// may apply its response.
func (d *BookingDraft) BeginAvailabilityCheck() uint64 {
	d.issuedSeq++
	return d.issuedSeq
}

// ApplyAvailability installs an availability response unless a newer request
// has been issued since, in which case the stale response is discarded and
// false returned. A failed check resets candidates and zeroes every count;
// the draft stays usable.
func (d *BookingDraft) ApplyAvailability(seq uint64, groups []AvailabilityGroup, err error) bool {
	if seq != d.issuedSeq || seq <= d.appliedSeq {
		return false
	}
	d.appliedSeq = seq

	if err != nil {
		groups = nil
	}
	d.Categories, d.Candidates = Reconcile(d.Categories, groups)
	return true
}

// recompute rewrites every derived field. It runs after room add/remove,
// custom rate edits, extra-bed changes, date edits, extra-bed charge edits
// and tax-rate edits.
func (d *BookingDraft) recompute() {
	d.engine.DefaultExtraBedStart = d.CheckInDate
	d.RoomNumber = d.Selection.JoinedRoomNumbers()
	d.NumberOfRooms = d.Selection.NumberOfRooms()
	d.Breakdown = d.engine.ComputeBreakdown(
		d.Selection.Rooms(),
		d.Nights(),
		d.ExtraBedChargePerDay,
		d.CGSTRatePct,
		d.SGSTRatePct,
		d.CheckOutDate,
	)
}
