package services

import (
	"frontdesk-backend/config"
	"frontdesk-backend/models"
)

type CategoryService struct{}

// GetAll returns the catalog categories with totalRooms refreshed from the
// rooms table. availableRoomsCount stays 0 here; only an availability check
// fills it in.
func (s CategoryService) GetAll() ([]models.RoomCategory, error) {
	var categories []models.RoomCategory
	if err := config.DB.Order("name").Find(&categories).Error; err != nil {
		return nil, err
	}
	for i := range categories {
		var count int64
		config.DB.Model(&models.Room{}).Where("room_category_id = ?", categories[i].ID).Count(&count)
		categories[i].TotalRooms = int(count)
	}
	return categories, nil
}

func (s CategoryService) Create(category models.RoomCategory) error {
	return config.DB.Create(&category).Error
}

func (s CategoryService) Update(category models.RoomCategory) error {
	return config.DB.Model(&models.RoomCategory{}).Where("id = ?", category.ID).Updates(category).Error
}

func (s CategoryService) Delete(id int) error {
	return config.DB.Delete(&models.RoomCategory{}, id).Error
}
