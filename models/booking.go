package models

import (
	"time"

	"gorm.io/gorm"
)

type Booking struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID uint `gorm:"index;column:user_id" json:"userId"`
	// Nullable so a hard room reseed leaves historical bookings intact.
	RoomID *uint `gorm:"index;column:room_id" json:"roomId,omitempty"`

	ReferenceCode string    `gorm:"column:reference_code;size:64" json:"referenceCode,omitempty"`
	CheckIn       time.Time `gorm:"column:check_in" json:"checkIn"`
	CheckOut      time.Time `gorm:"column:check_out" json:"checkOut"`
	Nights        int       `json:"nights"`
	TotalPrice    float64   `gorm:"column:total_price" json:"totalPrice"`

	Room *Room `gorm:"foreignKey:RoomID;constraint:OnDelete:SET NULL" json:"room,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"-"`
}
