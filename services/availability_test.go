package services

import (
	"errors"
	"testing"

	"frontdesk-backend/models"

	"github.com/stretchr/testify/assert"
)

func catalog() []models.RoomCategory {
	return []models.RoomCategory{
		{ID: 1, Name: "Standard"},
		{ID: 2, Name: "Deluxe"},
		{ID: 3, Name: "Suite"},
	}
}

func TestReconcileCountsAreAuthoritative(t *testing.T) {
	groups := []AvailabilityGroup{
		{CategoryID: 1, CategoryName: "Standard", Rooms: []models.Room{
			{RoomNumber: "101"}, {RoomNumber: "102"},
		}},
		{CategoryID: 3, CategoryName: "Suite", Rooms: []models.Room{
			{RoomNumber: "301"},
		}},
	}

	categories, candidates := Reconcile(catalog(), groups)

	assert.Equal(t, 2, categories[0].AvailableRoomsCount)
	// absent from the response means zero, whatever the local state said
	assert.Equal(t, 0, categories[1].AvailableRoomsCount)
	assert.Equal(t, 1, categories[2].AvailableRoomsCount)
	assert.Len(t, candidates, 3)
}

func TestReconcileTagsCandidatesWithCategory(t *testing.T) {
	groups := []AvailabilityGroup{
		{CategoryID: 2, CategoryName: "Deluxe", Rooms: []models.Room{
			{RoomNumber: "201"},
		}},
	}

	_, candidates := Reconcile(catalog(), groups)

	if assert.Len(t, candidates, 1) {
		if assert.NotNil(t, candidates[0].RoomCategoryID) {
			assert.Equal(t, uint(2), *candidates[0].RoomCategoryID)
		}
		assert.Equal(t, "Deluxe", candidates[0].Category.Name)
	}
}

func TestReconcileEmptyResponseZeroesEverything(t *testing.T) {
	categories, candidates := Reconcile(catalog(), nil)

	for _, cat := range categories {
		assert.Equal(t, 0, cat.AvailableRoomsCount)
	}
	assert.Empty(t, candidates)
}

func TestDraftFailedAvailabilityCheckResets(t *testing.T) {
	d := NewBookingDraft(catalog(), 500, 2.5, 2.5)

	seq := d.BeginAvailabilityCheck()
	applied := d.ApplyAvailability(seq, []AvailabilityGroup{
		{CategoryID: 1, CategoryName: "Standard", Rooms: []models.Room{{RoomNumber: "101"}}},
	}, nil)
	assert.True(t, applied)
	assert.Equal(t, 1, d.Categories[0].AvailableRoomsCount)
	assert.Len(t, d.Candidates, 1)

	seq = d.BeginAvailabilityCheck()
	applied = d.ApplyAvailability(seq, nil, errors.New("upstream down"))
	assert.True(t, applied)
	assert.Equal(t, 0, d.Categories[0].AvailableRoomsCount)
	assert.Empty(t, d.Candidates)
}

func TestDraftStaleAvailabilityResponseDiscarded(t *testing.T) {
	d := NewBookingDraft(catalog(), 500, 2.5, 2.5)

	first := d.BeginAvailabilityCheck()
	second := d.BeginAvailabilityCheck()

	applied := d.ApplyAvailability(second, []AvailabilityGroup{
		{CategoryID: 2, CategoryName: "Deluxe", Rooms: []models.Room{{RoomNumber: "201"}}},
	}, nil)
	assert.True(t, applied)

	// the older response arrives late and must not clobber the newer one
	applied = d.ApplyAvailability(first, []AvailabilityGroup{
		{CategoryID: 1, CategoryName: "Standard", Rooms: []models.Room{{RoomNumber: "101"}}},
	}, nil)
	assert.False(t, applied)
	assert.Equal(t, 0, d.Categories[0].AvailableRoomsCount)
	assert.Equal(t, 1, d.Categories[1].AvailableRoomsCount)
}
