package services

import (
	"errors"
	"fmt"
	"math"

	"hotel-see-view/models"

	"gorm.io/gorm"
)

// ReviewService wraps *gorm.DB for reviews and the room rating aggregate.
type ReviewService struct {
	DB *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

// CreateReview inserts the review and refreshes the room's aggregate rating
// in one transaction. The rating is recomputed from all reviews of the room
// (including the new one) and rounded to one decimal place.
func (s *ReviewService) CreateReview(userID, roomID uint, rating int, comment string) (models.Review, error) {
	var review models.Review

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to look up room: %w", err)
		}

		review = models.Review{
			UserID:  userID,
			RoomID:  roomID,
			Rating:  rating,
			Comment: comment,
		}
		if err := tx.Create(&review).Error; err != nil {
			return fmt.Errorf("failed to create review: %w", err)
		}

		var reviews []models.Review
		if err := tx.Where("room_id = ?", roomID).Find(&reviews).Error; err != nil {
			return fmt.Errorf("failed to load reviews: %w", err)
		}

		sum := 0
		for _, r := range reviews {
			sum += r.Rating
		}
		avg := float64(sum) / float64(len(reviews))
		rounded := math.Round(avg*10) / 10

		if err := tx.Model(&room).Update("rating", rounded).Error; err != nil {
			return fmt.Errorf("failed to update room rating: %w", err)
		}

		return nil
	})
	if err != nil {
		return models.Review{}, err
	}

	return review, nil
}

// ListRoomReviews returns a room's reviews newest first with the author attached.
func (s *ReviewService) ListRoomReviews(roomID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := s.DB.Preload("User").
		Where("room_id = ?", roomID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}
