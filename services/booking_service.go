package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"hotel-see-view/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingService wraps *gorm.DB for reservation handling.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// StayNights is ceil((checkOut - checkIn) / 24h); minimum 1 for a valid stay.
func StayNights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// CreateBooking reserves a room for the user. The availability flip and the
// booking insert share a transaction; the flip is conditional on the room
// still being available, so two concurrent requests cannot both book it.
func (s *BookingService) CreateBooking(userID, roomID uint, checkIn, checkOut time.Time) (models.Booking, error) {
	var booking models.Booking

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to look up room: %w", err)
		}

		if !room.IsAvailable {
			return ErrRoomUnavailable
		}

		nights := StayNights(checkIn, checkOut)
		if nights <= 0 {
			return ErrInvalidStay
		}

		// Reserve only if still available; zero rows means somebody else won.
		res := tx.Model(&models.Room{}).
			Where("id = ? AND is_available = ?", room.ID, true).
			Update("is_available", false)
		if res.Error != nil {
			return fmt.Errorf("failed to reserve room: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrRoomUnavailable
		}

		booking = models.Booking{
			UserID:        userID,
			RoomID:        &room.ID,
			ReferenceCode: uuid.NewString(),
			CheckIn:       checkIn,
			CheckOut:      checkOut,
			Nights:        nights,
			TotalPrice:    float64(nights) * room.PricePerNight,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		return nil
	})
	if err != nil {
		return models.Booking{}, err
	}

	return booking, nil
}

// ListUserBookings returns the user's bookings with room data attached.
func (s *BookingService) ListUserBookings(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.DB.Preload("Room").Where("user_id = ?", userID).Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}
