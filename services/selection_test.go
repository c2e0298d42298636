package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToggleAddsAndRemoves(t *testing.T) {
	var s RoomSelectionSet
	room := SelectedRoom{RoomID: 1, RoomNumber: "101", Price: 2000}

	s.Toggle(room)
	assert.True(t, s.Contains(1))
	assert.Equal(t, 1, s.Size())

	s.Toggle(room)
	assert.False(t, s.Contains(1))
	assert.Equal(t, 0, s.Size())
}

func TestToggleInitializesCustomPrice(t *testing.T) {
	var s RoomSelectionSet
	s.Toggle(SelectedRoom{RoomID: 1, RoomNumber: "101", Price: 2000})

	rooms := s.Rooms()
	if assert.Len(t, rooms, 1) && assert.NotNil(t, rooms[0].CustomPrice) {
		assert.Equal(t, 2000.0, *rooms[0].CustomPrice)
	}
}

func TestSetCustomPriceFallbackAndUnknownRoom(t *testing.T) {
	var s RoomSelectionSet
	s.Toggle(SelectedRoom{RoomID: 1, RoomNumber: "101", Price: 2000})

	price := 1500.0
	s.SetCustomPrice(1, &price)
	assert.Equal(t, 1500.0, *s.Rooms()[0].CustomPrice)

	s.SetCustomPrice(1, nil)
	assert.Nil(t, s.Rooms()[0].CustomPrice)

	// unknown room is a no-op
	s.SetCustomPrice(99, &price)
	assert.Equal(t, 1, s.Size())
}

func TestSetExtraBedDropsStartWhenDisabled(t *testing.T) {
	var s RoomSelectionSet
	s.Toggle(SelectedRoom{RoomID: 1, RoomNumber: "101", Price: 2000})

	start := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	s.SetExtraBed(1, true, &start)
	assert.True(t, s.Rooms()[0].ExtraBed)
	assert.NotNil(t, s.Rooms()[0].ExtraBedStartDate)

	s.SetExtraBed(1, false, nil)
	assert.False(t, s.Rooms()[0].ExtraBed)
	assert.Nil(t, s.Rooms()[0].ExtraBedStartDate)
}

func TestNumberOfRoomsFloorsAtOne(t *testing.T) {
	var s RoomSelectionSet
	assert.Equal(t, 1, s.NumberOfRooms())

	s.Toggle(SelectedRoom{RoomID: 1, RoomNumber: "101"})
	s.Toggle(SelectedRoom{RoomID: 2, RoomNumber: "102"})
	assert.Equal(t, 2, s.NumberOfRooms())
}

func TestJoinedRoomNumbersKeepsInsertionOrder(t *testing.T) {
	var s RoomSelectionSet
	s.Toggle(SelectedRoom{RoomID: 2, RoomNumber: "201"})
	s.Toggle(SelectedRoom{RoomID: 1, RoomNumber: "101"})
	assert.Equal(t, "201,101", s.JoinedRoomNumbers())

	s.Toggle(SelectedRoom{RoomID: 2, RoomNumber: "201"})
	assert.Equal(t, "101", s.JoinedRoomNumbers())

	s.Clear()
	assert.Equal(t, "", s.JoinedRoomNumbers())
}
