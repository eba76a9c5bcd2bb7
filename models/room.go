package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Room types accepted by the API.
const (
	RoomTypeSingle = "single"
	RoomTypeDouble = "double"
	RoomTypeSuite  = "suite"
)

type Room struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RoomNumber    int     `gorm:"column:room_number;uniqueIndex" json:"roomNumber"`
	Type          string  `gorm:"size:20" json:"type"`
	PricePerNight float64 `gorm:"column:price_per_night" json:"pricePerNight"`
	IsAvailable   bool    `gorm:"column:is_available;default:true" json:"isAvailable"`
	Image         string  `gorm:"size:500" json:"image,omitempty"`

	// Mean of all review ratings for this room, rounded to one decimal.
	Rating float64 `gorm:"default:0" json:"rating"`

	Amenities datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`
}
