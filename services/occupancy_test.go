package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOccupancyDefaultsPerRoom(t *testing.T) {
	var o GuestOccupancy
	o.OnRoomAdded("101")

	entries := o.Entries()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, 1, entries[0].Adults)
		assert.Equal(t, 0, entries[0].Children)
	}
	assert.Equal(t, 1, o.TotalAdults())
	assert.Equal(t, 0, o.TotalChildren())
}

func TestOccupancyTotalsTrackMembershipAndEdits(t *testing.T) {
	var o GuestOccupancy
	o.OnRoomAdded("101")
	o.OnRoomAdded("102")
	assert.Equal(t, 2, o.TotalAdults())

	o.SetField("101", "adults", "3")
	o.SetField("102", "children", "2")
	assert.Equal(t, 4, o.TotalAdults())
	assert.Equal(t, 2, o.TotalChildren())

	o.OnRoomRemoved("101")
	assert.Equal(t, 1, o.TotalAdults())
	assert.Equal(t, 2, o.TotalChildren())
}

func TestOccupancySetFieldClamps(t *testing.T) {
	var o GuestOccupancy
	o.OnRoomAdded("101")

	o.SetField("101", "adults", "-5")
	assert.Equal(t, 0, o.TotalAdults())

	o.SetField("101", "adults", "2.9")
	assert.Equal(t, 2, o.TotalAdults())

	o.SetField("101", "children", "abc")
	assert.Equal(t, 0, o.TotalChildren())
}

func TestOccupancySetFieldUnknownRoomNoOp(t *testing.T) {
	var o GuestOccupancy
	o.OnRoomAdded("101")

	o.SetField("999", "adults", "7")
	assert.Equal(t, 1, o.TotalAdults())
	assert.Len(t, o.Entries(), 1)
}
