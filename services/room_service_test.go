package services

import (
	"errors"
	"testing"

	"hotel-see-view/models"
)

func TestListRoomsSortedByRoomNumber(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)
	createTestRoom(t, db, 301, 200, true)
	createTestRoom(t, db, 101, 50, true)
	createTestRoom(t, db, 202, 90, false)

	rooms, err := svc.ListRooms()
	if err != nil {
		t.Fatalf("ListRooms: %v", err)
	}
	if len(rooms) != 3 {
		t.Fatalf("len(rooms) = %d, want 3", len(rooms))
	}

	want := []int{101, 202, 301}
	for i, room := range rooms {
		if room.RoomNumber != want[i] {
			t.Errorf("rooms[%d].RoomNumber = %d, want %d", i, room.RoomNumber, want[i])
		}
	}
}

func TestGetRoomNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)

	_, err := svc.GetRoom(42)
	if !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("err = %v, want ErrRoomNotFound", err)
	}
}

func TestReseedReplacesDirectory(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)
	createTestRoom(t, db, 901, 999, false)

	samples := []models.Room{
		{RoomNumber: 101, Type: models.RoomTypeSingle, PricePerNight: 50, IsAvailable: true},
		{RoomNumber: 102, Type: models.RoomTypeDouble, PricePerNight: 80, IsAvailable: true},
		{RoomNumber: 201, Type: models.RoomTypeSuite, PricePerNight: 150, IsAvailable: true},
	}

	created, err := svc.Reseed(samples)
	if err != nil {
		t.Fatalf("Reseed: %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("len(created) = %d, want 3", len(created))
	}

	rooms, err := svc.ListRooms()
	if err != nil {
		t.Fatalf("ListRooms: %v", err)
	}
	if len(rooms) != 3 {
		t.Fatalf("directory has %d rooms after reseed, want 3", len(rooms))
	}
	for _, room := range rooms {
		if room.RoomNumber == 901 {
			t.Error("old room survived reseed")
		}
		if !room.IsAvailable {
			t.Errorf("room %d not available after reseed", room.RoomNumber)
		}
	}
}

// Reseeding twice must not trip the room_number unique index on
// soft-deleted rows.
func TestReseedTwice(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomService(db)

	samples := func() []models.Room {
		return []models.Room{
			{RoomNumber: 101, Type: models.RoomTypeSingle, PricePerNight: 50, IsAvailable: true},
		}
	}

	if _, err := svc.Reseed(samples()); err != nil {
		t.Fatalf("first reseed: %v", err)
	}
	if _, err := svc.Reseed(samples()); err != nil {
		t.Fatalf("second reseed: %v", err)
	}
}
