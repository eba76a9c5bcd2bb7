package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hotel-see-view/models"
	"hotel-see-view/utils"

	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := utils.EnvOrDefault("DB_USER", "root")
	pass := utils.EnvOrDefault("DB_PASS", "")
	host := utils.EnvOrDefault("DB_HOST", "127.0.0.1")
	port := utils.EnvOrDefault("DB_PORT", "3306")
	dbName := utils.EnvOrDefault("DB_NAME", "hotel_see_view")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SampleRooms is the catalog SeedDatabase installs into an empty room
// directory. POST /api/rooms/seed reuses a shorter cut of it.
func SampleRooms() []models.Room {
	amenities := func(items ...string) datatypes.JSON {
		raw := `["` + strings.Join(items, `","`) + `"]`
		return datatypes.JSON(raw)
	}

	return []models.Room{
		{RoomNumber: 101, Type: models.RoomTypeSingle, PricePerNight: 50, IsAvailable: true, Image: "https://images.unsplash.com/photo-1631049307264-da0ec9d70304?w=800&q=80", Amenities: amenities("wifi", "tv")},
		{RoomNumber: 102, Type: models.RoomTypeDouble, PricePerNight: 80, IsAvailable: true, Image: "https://images.unsplash.com/photo-1611892440504-42a792e24d32?w=800&q=80", Amenities: amenities("wifi", "tv", "minibar")},
		{RoomNumber: 201, Type: models.RoomTypeSuite, PricePerNight: 150, IsAvailable: true, Image: "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=800&q=80", Amenities: amenities("wifi", "tv", "minibar", "balcony")},
		{RoomNumber: 202, Type: models.RoomTypeDouble, PricePerNight: 90, IsAvailable: true, Image: "https://images.unsplash.com/photo-1611892440504-42a792e24d32?w=800&q=80", Amenities: amenities("wifi", "tv", "minibar")},
		{RoomNumber: 301, Type: models.RoomTypeSuite, PricePerNight: 200, IsAvailable: true, Image: "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=800&q=80", Amenities: amenities("wifi", "tv", "minibar", "balcony", "jacuzzi")},
		{RoomNumber: 103, Type: models.RoomTypeSingle, PricePerNight: 55, IsAvailable: true, Image: "https://images.unsplash.com/photo-1631049307264-da0ec9d70304?w=800&q=80", Amenities: amenities("wifi", "tv")},
	}
}

// SeedDatabase installs the sample room catalog when the directory is empty.
func SeedDatabase() {
	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount > 0 {
		return
	}

	rooms := SampleRooms()
	if err := DB.Create(&rooms).Error; err != nil {
		log.Printf("warning: failed to seed rooms: %v", err)
		return
	}
	log.Println("Rooms seeded")
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.Booking{},
		&models.Review{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
