package services

import (
	"fmt"
	"time"

	"frontdesk-backend/models"

	"gorm.io/gorm"
)

// AvailabilityGroup is one category's worth of rooms free for a requested
// date range, as reported by the availability query.
type AvailabilityGroup struct {
	CategoryID   uint          `json:"category"`
	CategoryName string        `json:"categoryName"`
	Rooms        []models.Room `json:"rooms"`
}

// Reconcile merges an availability response into the catalog. The response is
// authoritative: a category absent from it gets availableRoomsCount 0, local
// room status is never consulted. The second result is the flattened
// candidate list, each room tagged with its resolved category.
func Reconcile(categories []models.RoomCategory, groups []AvailabilityGroup) ([]models.RoomCategory, []models.Room) {
	counts := make(map[uint]int, len(groups))
	for _, g := range groups {
		counts[g.CategoryID] = len(g.Rooms)
	}

	annotated := make([]models.RoomCategory, len(categories))
	for i, cat := range categories {
		cat.AvailableRoomsCount = counts[cat.ID]
		annotated[i] = cat
	}

	var candidates []models.Room
	for _, g := range groups {
		for _, room := range g.Rooms {
			catID := g.CategoryID
			room.RoomCategoryID = &catID
			room.Category = models.RoomCategory{ID: g.CategoryID, Name: g.CategoryName}
			candidates = append(candidates, room)
		}
	}
	return annotated, candidates
}

// AvailabilityService answers date-range availability queries from the
// bookings table.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// AvailableRooms returns, grouped by category, the rooms with no overlapping
// active booking for [checkIn, checkOut). Callers validate the range first;
// checkOut must be after checkIn.
func (s *AvailabilityService) AvailableRooms(checkIn, checkOut time.Time) ([]AvailabilityGroup, error) {
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("invalid date range: check-out must be after check-in")
	}

	booked := s.DB.
		Table("booking_room_rates").
		Select("booking_room_rates.room_number").
		Joins("JOIN bookings ON bookings.id = booking_room_rates.booking_id").
		Where("bookings.deleted_at IS NULL AND booking_room_rates.deleted_at IS NULL").
		Where("bookings.status = ?", models.BookingStatusBooked).
		Where("bookings.check_in_date < ? AND bookings.check_out_date > ?", checkOut, checkIn)

	var rooms []models.Room
	if err := s.DB.
		Preload("Category").
		Where("status <> ?", models.RoomStatusMaintenance).
		Where("room_number NOT IN (?)", booked).
		Order("room_number").
		Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to query available rooms: %w", err)
	}

	grouped := map[uint]*AvailabilityGroup{}
	order := []uint{}
	for _, room := range rooms {
		if room.RoomCategoryID == nil {
			continue
		}
		id := *room.RoomCategoryID
		g, ok := grouped[id]
		if !ok {
			g = &AvailabilityGroup{CategoryID: id, CategoryName: room.Category.Name}
			grouped[id] = g
			order = append(order, id)
		}
		g.Rooms = append(g.Rooms, room)
	}

	groups := make([]AvailabilityGroup, 0, len(order))
	for _, id := range order {
		groups = append(groups, *grouped[id])
	}
	return groups, nil
}
