package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"hotel-see-view/config"
	"hotel-see-view/services"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{Rooms: svc}
}

// GetRooms handles GET /api/rooms, sorted ascending by room number.
func (rc *RoomController) GetRooms(c *gin.Context) {
	rooms, err := rc.Rooms.ListRooms()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(rooms),
		"data":    rooms,
	})
}

// GetRoomByID handles GET /api/rooms/:id.
func (rc *RoomController) GetRoomByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Room not found"})
		return
	}

	room, err := rc.Rooms.GetRoom(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Room not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": room})
}

// SeedRooms handles POST /api/rooms/seed, resetting the directory to the
// sample catalog. Development convenience, kept unauthenticated.
func (rc *RoomController) SeedRooms(c *gin.Context) {
	rooms, err := rc.Rooms.Reseed(config.SampleRooms()[:3])
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Rooms seeded successfully",
		"data":    rooms,
	})
}
