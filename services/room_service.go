package services

import (
	"frontdesk-backend/config"
	"frontdesk-backend/models"
)

type RoomService struct{}

func (s RoomService) Create(room models.Room) error {
	if room.Status == "" {
		room.Status = models.RoomStatusAvailable
	}
	return config.DB.Create(&room).Error
}

func (s RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := config.DB.Preload("Category").Order("room_number").Find(&rooms).Error
	return rooms, err
}

func (s RoomService) GetByID(id int) (models.Room, error) {
	var room models.Room
	err := config.DB.Preload("Category").First(&room, id).Error
	return room, err
}

func (s RoomService) Update(room models.Room) error {
	return config.DB.Model(&models.Room{}).Where("id = ?", room.ID).Updates(room).Error
}

func (s RoomService) Delete(id int) error {
	return config.DB.Delete(&models.Room{}, id).Error
}
