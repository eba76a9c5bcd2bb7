package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"hotel-see-view/middleware"
	"hotel-see-view/services"

	"github.com/gin-gonic/gin"
)

type CreateReviewRequest struct {
	RoomID  uint   `json:"roomId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type ReviewController struct {
	Reviews *services.ReviewService
}

func NewReviewController(svc *services.ReviewService) *ReviewController {
	return &ReviewController{Reviews: svc}
}

// CreateReview handles POST /api/reviews.
func (rc *ReviewController) CreateReview(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token"})
		return
	}

	var payload CreateReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
		return
	}

	if payload.RoomID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Room ID is required"})
		return
	}
	if payload.Rating < 1 || payload.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Rating must be between 1 and 5"})
		return
	}
	if len(strings.TrimSpace(payload.Comment)) < 5 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Comment must be at least 5 characters"})
		return
	}
	if len(payload.Comment) > 500 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Comment must be less than 500 characters"})
		return
	}

	review, err := rc.Reviews.CreateReview(user.ID, payload.RoomID, payload.Rating, payload.Comment)
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}

	c.JSON(http.StatusCreated, review)
}

// GetRoomReviews handles GET /api/reviews/:roomId, newest first.
func (rc *ReviewController) GetRoomReviews(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("roomId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Room ID is required"})
		return
	}

	reviews, err := rc.Reviews.ListRoomReviews(uint(roomID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}

	c.JSON(http.StatusOK, reviews)
}
