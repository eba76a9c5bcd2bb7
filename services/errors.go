package services

import "errors"

var (
	ErrRoomNotFound       = errors.New("room_not_found")
	ErrRoomUnavailable    = errors.New("room_not_available")
	ErrInvalidStay        = errors.New("invalid_stay")
	ErrEmailTaken         = errors.New("email_taken")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrUserNotFound       = errors.New("user_not_found")
)
