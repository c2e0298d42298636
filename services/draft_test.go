package services

import (
	"testing"

	"frontdesk-backend/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func deluxeRoom(id uint, number string, price float64) models.Room {
	catID := uint(2)
	return models.Room{
		Model:          gorm.Model{ID: id},
		RoomCategoryID: &catID,
		RoomNumber:     number,
		Price:          price,
	}
}

func TestDraftToggleRoomSyncsEverything(t *testing.T) {
	d := NewBookingDraft(catalog(), 500, 2.5, 2.5)
	d.SetDates(date(2026, 3, 10), date(2026, 3, 13))

	room := deluxeRoom(7, "201", 3000)
	d.ToggleRoom(room)

	assert.Equal(t, "201", d.RoomNumber)
	assert.Equal(t, 1, d.NumberOfRooms)
	assert.Equal(t, 9000.0, d.Breakdown.RoomCost)
	assert.Equal(t, 1, d.Occupancy.TotalAdults())

	// toggling again deselects and restores the empty-form defaults
	d.ToggleRoom(room)
	assert.Equal(t, "", d.RoomNumber)
	assert.Equal(t, 1, d.NumberOfRooms)
	assert.Equal(t, 0.0, d.Breakdown.RoomCost)
	assert.Equal(t, 0, d.Occupancy.TotalAdults())
	assert.Empty(t, d.Occupancy.Entries())
}

func TestDraftCustomPriceEdits(t *testing.T) {
	d := NewBookingDraft(catalog(), 500, 2.5, 2.5)
	d.SetDates(date(2026, 3, 10), date(2026, 3, 13))
	d.ToggleRoom(deluxeRoom(7, "201", 3000))

	d.SetCustomPrice(7, "1500")
	assert.Equal(t, 4500.0, d.Breakdown.RoomCost)

	// empty reverts to the catalog rate
	d.SetCustomPrice(7, "")
	assert.Equal(t, 9000.0, d.Breakdown.RoomCost)

	// malformed coerces to zero
	d.SetCustomPrice(7, "12abc")
	assert.Equal(t, 0.0, d.Breakdown.RoomCost)
}

func TestDraftExtraBedDefaultsToCheckIn(t *testing.T) {
	d := NewBookingDraft(catalog(), 500, 0, 0)
	d.SetDates(date(2026, 3, 10), date(2026, 3, 13))
	d.ToggleRoom(deluxeRoom(7, "201", 3000))

	d.SetExtraBed(7, true, nil)
	assert.Equal(t, 1500.0, d.Breakdown.ExtraBedCost)

	start := date(2026, 3, 12)
	d.SetExtraBed(7, true, &start)
	assert.Equal(t, 500.0, d.Breakdown.ExtraBedCost)

	d.SetExtraBed(7, false, nil)
	assert.Equal(t, 0.0, d.Breakdown.ExtraBedCost)
}

func TestDraftChargeAndTaxEdits(t *testing.T) {
	d := NewBookingDraft(catalog(), 500, 2.5, 2.5)
	d.SetDates(date(2026, 3, 10), date(2026, 3, 13))
	d.ToggleRoom(deluxeRoom(7, "201", 3000))

	d.SetTaxRates("6", "6")
	assert.Equal(t, 9000.0*0.06, d.Breakdown.CGSTAmount)
	assert.Equal(t, 9000.0*0.06, d.Breakdown.SGSTAmount)

	d.SetExtraBed(7, true, nil)
	d.SetExtraBedCharge("250")
	assert.Equal(t, 750.0, d.Breakdown.ExtraBedCost)
}

func TestDraftSelectCategoryClearsSelection(t *testing.T) {
	d := NewBookingDraft(catalog(), 500, 2.5, 2.5)
	d.SetDates(date(2026, 3, 10), date(2026, 3, 13))
	d.SelectCategory(2)
	d.ToggleRoom(deluxeRoom(7, "201", 3000))
	assert.Equal(t, 1, d.Selection.Size())

	// re-selecting the same category keeps the selection
	d.SelectCategory(2)
	assert.Equal(t, 1, d.Selection.Size())

	d.SelectCategory(1)
	assert.Equal(t, 0, d.Selection.Size())
	assert.Empty(t, d.Occupancy.Entries())
	assert.Equal(t, "", d.RoomNumber)
}

func TestDraftDateEditsRecompute(t *testing.T) {
	d := NewBookingDraft(catalog(), 500, 2.5, 2.5)
	d.ToggleRoom(deluxeRoom(7, "201", 3000))

	assert.Equal(t, 0, d.Nights())
	assert.Equal(t, 0.0, d.Breakdown.RoomCost)

	d.SetDates(date(2026, 3, 10), date(2026, 3, 12))
	assert.Equal(t, 2, d.Nights())
	assert.Equal(t, 6000.0, d.Breakdown.RoomCost)
}
