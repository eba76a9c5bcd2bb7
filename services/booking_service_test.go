package services

import (
	"errors"
	"testing"
	"time"

	"hotel-see-view/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStayNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{"three full days", date(2025, 6, 1), date(2025, 6, 4), 3},
		{"single night", date(2025, 6, 1), date(2025, 6, 2), 1},
		{"partial day rounds up", date(2025, 6, 1), date(2025, 6, 2).Add(6 * time.Hour), 2},
		{"same day", date(2025, 6, 1), date(2025, 6, 1), 0},
		{"inverted", date(2025, 6, 4), date(2025, 6, 1), -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StayNights(tt.checkIn, tt.checkOut); got != tt.want {
				t.Errorf("StayNights() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCreateBookingComputesTotalPrice(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	user := createTestUser(t, db, "guest@example.com")
	room := createTestRoom(t, db, 102, 80, true)

	booking, err := svc.CreateBooking(user.ID, room.ID, date(2025, 6, 1), date(2025, 6, 4))
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	if booking.Nights != 3 {
		t.Errorf("Nights = %d, want 3", booking.Nights)
	}
	if booking.TotalPrice != 240 {
		t.Errorf("TotalPrice = %v, want 240", booking.TotalPrice)
	}
	if booking.ReferenceCode == "" {
		t.Error("ReferenceCode is empty")
	}
	if booking.RoomID == nil || *booking.RoomID != room.ID {
		t.Errorf("RoomID = %v, want %d", booking.RoomID, room.ID)
	}

	var updated models.Room
	if err := db.First(&updated, room.ID).Error; err != nil {
		t.Fatalf("reload room: %v", err)
	}
	if updated.IsAvailable {
		t.Error("room still available after booking")
	}
}

func TestCreateBookingRoomNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	user := createTestUser(t, db, "guest@example.com")

	_, err := svc.CreateBooking(user.ID, 9999, date(2025, 6, 1), date(2025, 6, 2))
	if !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("err = %v, want ErrRoomNotFound", err)
	}
}

func TestCreateBookingUnavailableRoom(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	user := createTestUser(t, db, "guest@example.com")
	room := createTestRoom(t, db, 103, 55, false)

	_, err := svc.CreateBooking(user.ID, room.ID, date(2025, 6, 1), date(2025, 6, 4))
	if !errors.Is(err, ErrRoomUnavailable) {
		t.Fatalf("err = %v, want ErrRoomUnavailable", err)
	}

	var count int64
	db.Model(&models.Booking{}).Count(&count)
	if count != 0 {
		t.Errorf("bookings persisted for unavailable room: %d", count)
	}
}

func TestCreateBookingTwiceFails(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	user := createTestUser(t, db, "guest@example.com")
	other := createTestUser(t, db, "other@example.com")
	room := createTestRoom(t, db, 201, 150, true)

	if _, err := svc.CreateBooking(user.ID, room.ID, date(2025, 6, 1), date(2025, 6, 4)); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	_, err := svc.CreateBooking(other.ID, room.ID, date(2025, 7, 1), date(2025, 7, 2))
	if !errors.Is(err, ErrRoomUnavailable) {
		t.Fatalf("second booking err = %v, want ErrRoomUnavailable", err)
	}
}

func TestCreateBookingZeroNights(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	user := createTestUser(t, db, "guest@example.com")
	room := createTestRoom(t, db, 101, 50, true)

	_, err := svc.CreateBooking(user.ID, room.ID, date(2025, 6, 1), date(2025, 6, 1))
	if !errors.Is(err, ErrInvalidStay) {
		t.Fatalf("err = %v, want ErrInvalidStay", err)
	}

	// A rejected stay must not consume the room.
	var room2 models.Room
	if err := db.First(&room2, room.ID).Error; err != nil {
		t.Fatalf("reload room: %v", err)
	}
	if !room2.IsAvailable {
		t.Error("room marked unavailable after rejected booking")
	}
}

func TestListUserBookingsPopulatesRoom(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	user := createTestUser(t, db, "guest@example.com")
	other := createTestUser(t, db, "other@example.com")
	roomA := createTestRoom(t, db, 101, 50, true)
	roomB := createTestRoom(t, db, 102, 80, true)

	if _, err := svc.CreateBooking(user.ID, roomA.ID, date(2025, 6, 1), date(2025, 6, 4)); err != nil {
		t.Fatalf("booking: %v", err)
	}
	if _, err := svc.CreateBooking(other.ID, roomB.ID, date(2025, 6, 1), date(2025, 6, 2)); err != nil {
		t.Fatalf("booking: %v", err)
	}

	bookings, err := svc.ListUserBookings(user.ID)
	if err != nil {
		t.Fatalf("ListUserBookings: %v", err)
	}
	if len(bookings) != 1 {
		t.Fatalf("len(bookings) = %d, want 1", len(bookings))
	}
	if bookings[0].Room == nil {
		t.Fatal("Room not populated")
	}
	if bookings[0].Room.RoomNumber != 101 {
		t.Errorf("Room.RoomNumber = %d, want 101", bookings[0].Room.RoomNumber)
	}
}
