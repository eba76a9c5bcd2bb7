package services

import (
	"testing"

	"hotel-see-view/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	// A single connection keeps every session on the same in-memory database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("raw db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Booking{},
		&models.Review{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{Name: "Test User", Email: email, Password: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return user
}

func createTestRoom(t *testing.T, db *gorm.DB, number int, price float64, available bool) models.Room {
	t.Helper()
	room := models.Room{
		RoomNumber:    number,
		Type:          models.RoomTypeDouble,
		PricePerNight: price,
		IsAvailable:   available,
	}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("create test room: %v", err)
	}
	return room
}
