package services

import (
	"math"
)

// RoomGuestEntry is the adult/child split for one selected room.
type RoomGuestEntry struct {
	RoomNumber string `json:"roomNumber"`
	Adults     int    `json:"adults"`
	Children   int    `json:"children"`
}

// GuestOccupancy keeps one entry per selected room and the aggregate totals
// in sync. The aggregates are never edited directly, only through per-room
// fields.
type GuestOccupancy struct {
	entries []RoomGuestEntry
}

// OnRoomAdded appends the default entry for a newly selected room:
// one adult, no children.
func (o *GuestOccupancy) OnRoomAdded(roomNumber string) {
	o.entries = append(o.entries, RoomGuestEntry{
		RoomNumber: roomNumber,
		Adults:     1,
		Children:   0,
	})
}

// OnRoomRemoved drops the entry for a deselected room.
func (o *GuestOccupancy) OnRoomRemoved(roomNumber string) {
	kept := o.entries[:0]
	for _, e := range o.entries {
		if e.RoomNumber != roomNumber {
			kept = append(kept, e)
		}
	}
	o.entries = kept
}

// SetField updates the adults or children count for a room, clamping the raw
// value to max(0, floor(numeric(value))). Editing a room that is not present
// is a no-op.
func (o *GuestOccupancy) SetField(roomNumber, field, raw string) {
	value := int(math.Floor(CoerceNumber(raw)))
	if value < 0 {
		value = 0
	}
	for i := range o.entries {
		if o.entries[i].RoomNumber != roomNumber {
			continue
		}
		switch field {
		case "adults":
			o.entries[i].Adults = value
		case "children":
			o.entries[i].Children = value
		}
		return
	}
}

func (o *GuestOccupancy) Entries() []RoomGuestEntry {
	out := make([]RoomGuestEntry, len(o.entries))
	copy(out, o.entries)
	return out
}

func (o *GuestOccupancy) TotalAdults() int {
	sum := 0
	for _, e := range o.entries {
		sum += e.Adults
	}
	return sum
}

func (o *GuestOccupancy) TotalChildren() int {
	sum := 0
	for _, e := range o.entries {
		sum += e.Children
	}
	return sum
}

func (o *GuestOccupancy) Clear() {
	o.entries = nil
}
