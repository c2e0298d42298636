package services

import (
	"strings"
	"time"
)

// RoomSelectionSet is the ordered set of rooms picked for the booking being
// drafted, deduplicated by room ID.
type RoomSelectionSet struct {
	rooms []SelectedRoom
}

// Toggle removes the room if it is already selected, otherwise appends it.
// On add the custom price is initialized to the catalog price so later
// pricing math always has a defined rate.
func (s *RoomSelectionSet) Toggle(room SelectedRoom) {
	for i, r := range s.rooms {
		if r.RoomID == room.RoomID {
			s.rooms = append(s.rooms[:i], s.rooms[i+1:]...)
			return
		}
	}
	if room.CustomPrice == nil {
		price := room.Price
		room.CustomPrice = &price
	}
	s.rooms = append(s.rooms, room)
}

func (s *RoomSelectionSet) Contains(roomID uint) bool {
	for _, r := range s.rooms {
		if r.RoomID == roomID {
			return true
		}
	}
	return false
}

// SetCustomPrice overrides the nightly rate for a selected room. A nil price
// falls back to the catalog price. Unknown rooms are ignored.
func (s *RoomSelectionSet) SetCustomPrice(roomID uint, price *float64) {
	for i := range s.rooms {
		if s.rooms[i].RoomID == roomID {
			s.rooms[i].CustomPrice = price
			return
		}
	}
}

// SetExtraBed toggles the extra bed for a selected room. The start date is
// only meaningful while the flag is on and is dropped when it is turned off.
func (s *RoomSelectionSet) SetExtraBed(roomID uint, on bool, start *time.Time) {
	for i := range s.rooms {
		if s.rooms[i].RoomID == roomID {
			s.rooms[i].ExtraBed = on
			if on {
				s.rooms[i].ExtraBedStartDate = start
			} else {
				s.rooms[i].ExtraBedStartDate = nil
			}
			return
		}
	}
}

// Rooms returns the selection in insertion order.
func (s *RoomSelectionSet) Rooms() []SelectedRoom {
	out := make([]SelectedRoom, len(s.rooms))
	copy(out, s.rooms)
	return out
}

func (s *RoomSelectionSet) Size() int {
	return len(s.rooms)
}

// NumberOfRooms is the value written to the booking record: the set size,
// floored at 1 when the set is empty (the form default).
func (s *RoomSelectionSet) NumberOfRooms() int {
	if len(s.rooms) == 0 {
		return 1
	}
	return len(s.rooms)
}

// JoinedRoomNumbers is the comma-joined room numbers in set order, recomputed
// on every mutation by the draft.
func (s *RoomSelectionSet) JoinedRoomNumbers() string {
	numbers := make([]string, 0, len(s.rooms))
	for _, r := range s.rooms {
		numbers = append(numbers, r.RoomNumber)
	}
	return strings.Join(numbers, ",")
}

// Clear drops the whole selection, used when the selected category changes.
func (s *RoomSelectionSet) Clear() {
	s.rooms = nil
}
