package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-see-view/models"
	"hotel-see-view/utils"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// UserService wraps *gorm.DB for account management.
type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

func isDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	// SQLite wording, so tests hit the same path
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// Register hashes the password and creates the account. The email unique
// index backstops the existence pre-check under concurrent registration.
func (s *UserService) Register(name, email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var count int64
	s.DB.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return models.User{}, ErrEmailTaken
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: hash,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		if isDuplicateEntry(err) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate returns the user matching email+password. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *UserService) Authenticate(email, password string) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPassword(user.Password, password) {
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserService) GetByID(id uint) (models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("failed to look up user: %w", err)
	}
	return user, nil
}

// ProfileUpdate carries the optional fields of PUT /api/auth/profile.
type ProfileUpdate struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

func (s *UserService) UpdateProfile(id uint, upd ProfileUpdate) (models.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return models.User{}, err
	}

	changes := map[string]interface{}{}
	if upd.Name != nil {
		changes["name"] = strings.TrimSpace(*upd.Name)
	}
	if upd.Email != nil {
		changes["email"] = strings.ToLower(strings.TrimSpace(*upd.Email))
	}
	if upd.Phone != nil {
		changes["phone"] = strings.TrimSpace(*upd.Phone)
	}
	if upd.Address != nil {
		changes["address"] = strings.TrimSpace(*upd.Address)
	}
	if len(changes) == 0 {
		return user, nil
	}

	if err := s.DB.Model(&user).Updates(changes).Error; err != nil {
		if isDuplicateEntry(err) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, fmt.Errorf("failed to update profile: %w", err)
	}

	return user, nil
}
