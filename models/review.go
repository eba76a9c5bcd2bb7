package models

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID uint `gorm:"index;column:user_id" json:"userId"`
	RoomID uint `gorm:"index;column:room_id" json:"roomId"`

	Rating  int    `json:"rating"`
	Comment string `gorm:"size:500" json:"comment"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
