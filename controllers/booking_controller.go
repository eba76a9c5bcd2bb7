package controllers

import (
	"errors"
	"net/http"
	"time"

	"hotel-see-view/middleware"
	"hotel-see-view/services"

	"github.com/gin-gonic/gin"
)

type CreateBookingRequest struct {
	RoomID   uint   `json:"roomId"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

type BookingController struct {
	Bookings *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Bookings: svc}
}

// parseStayDate accepts the date-only form the booking page sends, plus
// full RFC3339 timestamps.
func parseStayDate(raw string) (time.Time, bool) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// CreateBooking handles POST /api/bookings.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token"})
		return
	}

	var payload CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
		return
	}

	if payload.RoomID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Room ID is required"})
		return
	}
	if payload.CheckIn == "" || payload.CheckOut == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Check-in and check-out dates are required"})
		return
	}

	checkIn, okIn := parseStayDate(payload.CheckIn)
	checkOut, okOut := parseStayDate(payload.CheckOut)
	if !okIn || !okOut {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Check-in and check-out dates are required"})
		return
	}

	if !checkOut.After(checkIn) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Check-out must be after check-in"})
		return
	}

	// Date granularity: a check-in on the current date is still valid.
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, checkIn.Location())
	if checkIn.Before(today) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Check-in date cannot be in the past"})
		return
	}

	booking, err := bc.Bookings.CreateBooking(user.ID, payload.RoomID, checkIn, checkOut)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Room not found"})
		case errors.Is(err, services.ErrRoomUnavailable):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Room is not available"})
		case errors.Is(err, services.ErrInvalidStay):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid check-in/check-out"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		}
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetMyBookings handles GET /api/bookings/my-bookings.
func (bc *BookingController) GetMyBookings(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token"})
		return
	}

	bookings, err := bc.Bookings.ListUserBookings(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}
