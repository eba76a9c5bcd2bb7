package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name  string `gorm:"size:50" json:"name"`
	Email string `gorm:"uniqueIndex;size:100" json:"email"`
	// bcrypt hash, never serialized
	Password string `gorm:"size:100" json:"-"`
	Phone    string `gorm:"size:30" json:"phone,omitempty"`
	Address  string `gorm:"size:255" json:"address,omitempty"`
}
