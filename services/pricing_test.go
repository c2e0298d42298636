package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	assert.Equal(t, 3, Nights(date(2026, 3, 10), date(2026, 3, 13)))
	assert.Equal(t, 1, Nights(date(2026, 3, 10), date(2026, 3, 11)))

	// partial days round up
	in := date(2026, 3, 10)
	out := in.Add(36 * time.Hour)
	assert.Equal(t, 2, Nights(in, out))

	// checkout not after checkin
	assert.Equal(t, 0, Nights(date(2026, 3, 10), date(2026, 3, 10)))
	assert.Equal(t, 0, Nights(date(2026, 3, 13), date(2026, 3, 10)))
}

func TestNightlyRatePrefersCustomPrice(t *testing.T) {
	e := PricingEngine{}
	custom := 1500.0
	assert.Equal(t, 1500.0, e.NightlyRate(SelectedRoom{Price: 2000, CustomPrice: &custom}))
	assert.Equal(t, 2000.0, e.NightlyRate(SelectedRoom{Price: 2000}))
}

func TestComputeBreakdownTwoRoomsThreeNights(t *testing.T) {
	checkIn := date(2026, 3, 10)
	checkOut := date(2026, 3, 13)
	e := PricingEngine{DefaultExtraBedStart: checkIn}

	rooms := []SelectedRoom{
		{RoomNumber: "101", Price: 2000},
		{RoomNumber: "201", Price: 3000},
	}

	b := e.ComputeBreakdown(rooms, Nights(checkIn, checkOut), 500, 2.5, 2.5, checkOut)

	assert.Equal(t, 3, b.Nights)
	assert.Equal(t, 15000.0, b.RoomCost)
	assert.Equal(t, 0.0, b.ExtraBedCost)
	assert.Equal(t, 15000.0, b.TaxableAmount)
	assert.Equal(t, 375.0, b.CGSTAmount)
	assert.Equal(t, 375.0, b.SGSTAmount)
	assert.Equal(t, 15750.0, b.GrandTotal)
}

func TestComputeBreakdownCustomRateAndProratedExtraBed(t *testing.T) {
	checkIn := date(2026, 3, 10)
	checkOut := date(2026, 3, 13)
	e := PricingEngine{DefaultExtraBedStart: checkIn}

	custom := 1500.0
	start := checkOut.AddDate(0, 0, -1)
	rooms := []SelectedRoom{
		{RoomNumber: "101", Price: 2000, CustomPrice: &custom, ExtraBed: true, ExtraBedStartDate: &start},
		{RoomNumber: "201", Price: 3000},
	}

	b := e.ComputeBreakdown(rooms, Nights(checkIn, checkOut), 500, 2.5, 2.5, checkOut)

	// 1500 + 3000 per night over 3 nights
	assert.Equal(t, 13500.0, b.RoomCost)
	// extra bed only for the final day
	assert.Equal(t, 500.0, b.ExtraBedCost)
	assert.Equal(t, 14000.0, b.TaxableAmount)
	assert.Equal(t, b.TaxableAmount+b.CGSTAmount+b.SGSTAmount, b.GrandTotal)
}

func TestComputeBreakdownExtraBedDefaultsToCheckIn(t *testing.T) {
	checkIn := date(2026, 3, 10)
	checkOut := date(2026, 3, 13)
	e := PricingEngine{DefaultExtraBedStart: checkIn}

	rooms := []SelectedRoom{
		{RoomNumber: "101", Price: 2000, ExtraBed: true},
	}

	b := e.ComputeBreakdown(rooms, 3, 500, 0, 0, checkOut)
	// no explicit start: charged for the whole stay
	assert.Equal(t, 1500.0, b.ExtraBedCost)
}

func TestComputeBreakdownExtraBedStartAfterCheckout(t *testing.T) {
	checkIn := date(2026, 3, 10)
	checkOut := date(2026, 3, 13)
	e := PricingEngine{DefaultExtraBedStart: checkIn}

	start := checkOut.AddDate(0, 0, 2)
	rooms := []SelectedRoom{
		{RoomNumber: "101", Price: 2000, ExtraBed: true, ExtraBedStartDate: &start},
	}

	b := e.ComputeBreakdown(rooms, 3, 500, 0, 0, checkOut)
	assert.Equal(t, 0.0, b.ExtraBedCost)
}

func TestComputeBreakdownZeroNights(t *testing.T) {
	e := PricingEngine{}
	rooms := []SelectedRoom{{RoomNumber: "101", Price: 2000}}

	b := e.ComputeBreakdown(rooms, 0, 500, 2.5, 2.5, time.Time{})
	assert.Equal(t, 0.0, b.RoomCost)
	assert.Equal(t, 0.0, b.GrandTotal)
}

func TestComputeBreakdownIdentities(t *testing.T) {
	checkIn := date(2026, 5, 1)
	checkOut := date(2026, 5, 6)
	e := PricingEngine{DefaultExtraBedStart: checkIn}

	custom := 2750.0
	rooms := []SelectedRoom{
		{RoomNumber: "101", Price: 2000, ExtraBed: true},
		{RoomNumber: "102", Price: 2200, CustomPrice: &custom},
	}

	b := e.ComputeBreakdown(rooms, Nights(checkIn, checkOut), 350, 6, 6, checkOut)

	assert.Equal(t, b.RoomCost+b.ExtraBedCost, b.TaxableAmount)
	assert.Equal(t, b.TaxableAmount*6/100, b.CGSTAmount)
	assert.Equal(t, b.TaxableAmount*6/100, b.SGSTAmount)
	assert.Equal(t, b.TaxableAmount+b.CGSTAmount+b.SGSTAmount, b.GrandTotal)
}

func TestCoerceNumber(t *testing.T) {
	assert.Equal(t, 1500.5, CoerceNumber("1500.5"))
	assert.Equal(t, 1500.0, CoerceNumber("  1500 "))
	assert.Equal(t, 0.0, CoerceNumber(""))
	assert.Equal(t, 0.0, CoerceNumber("abc"))
	assert.Equal(t, 0.0, CoerceNumber("12,00"))
	assert.Equal(t, -3.0, CoerceNumber("-3"))
}
