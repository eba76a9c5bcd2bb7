package services

import (
	"errors"
	"fmt"

	"hotel-see-view/models"

	"gorm.io/gorm"
)

// RoomService wraps *gorm.DB for the room directory.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// ListRooms returns every room ordered by ascending room number.
func (s *RoomService) ListRooms() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetRoom(id uint) (models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, ErrRoomNotFound
		}
		return models.Room{}, fmt.Errorf("failed to look up room: %w", err)
	}
	return room, nil
}

// Reseed wipes the directory and installs a fresh sample catalog. The
// delete is unscoped: soft-deleted rows would otherwise keep their spot
// in the room_number unique index. Bookings keep their history via the
// SET NULL room constraint.
func (s *RoomService) Reseed(rooms []models.Room) ([]models.Room, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("1 = 1").Delete(&models.Room{}).Error; err != nil {
			return fmt.Errorf("failed to clear rooms: %w", err)
		}
		if err := tx.Create(&rooms).Error; err != nil {
			return fmt.Errorf("failed to insert sample rooms: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rooms, nil
}
