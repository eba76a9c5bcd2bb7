package controllers

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"hotel-see-view/middleware"
	"hotel-see-view/services"
	"hotel-see-view/utils"

	"github.com/gin-gonic/gin"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type registerPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profilePayload struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

type AuthController struct {
	Users *services.UserService
}

func NewAuthController(svc *services.UserService) *AuthController {
	return &AuthController{Users: svc}
}

func secureCookies() bool {
	return gin.Mode() == gin.ReleaseMode
}

// Register handles POST /api/auth/register.
func (ac *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
		return
	}

	name := strings.TrimSpace(payload.Name)
	if len(name) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name must be at least 2 characters"})
		return
	}
	if len(name) > 50 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name must be less than 50 characters"})
		return
	}
	if !emailRegex.MatchString(payload.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide a valid email"})
		return
	}
	if len(payload.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Password must be at least 6 characters"})
		return
	}
	if len(payload.Password) > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Password must be less than 100 characters"})
		return
	}

	user, err := ac.Users.Register(name, payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  gin.H{"id": user.ID, "name": user.Name, "email": user.Email},
	})
}

// Login handles POST /api/auth/login. The token travels both in the body
// and in an httpOnly SameSite=Strict cookie.
func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide email and password"})
		return
	}
	if payload.Email == "" || payload.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide email and password"})
		return
	}

	user, err := ac.Users.Authenticate(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}

	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("token", token, int(utils.TokenTTL.Seconds()), "/", "", secureCookies(), true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"token": token,
		},
	})
}

// Logout handles POST /api/auth/logout by expiring the token cookie.
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("token", "", -1, "/", "", secureCookies(), true)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User logged out successfully",
	})
}

// GetProfile handles GET /api/auth/profile.
func (ac *AuthController) GetProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PUT /api/auth/profile.
func (ac *AuthController) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token"})
		return
	}

	var payload profilePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request payload"})
		return
	}

	if payload.Email != nil && !emailRegex.MatchString(*payload.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email format"})
		return
	}
	if payload.Name != nil {
		name := strings.TrimSpace(*payload.Name)
		if len(name) < 2 || len(name) > 50 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Name must be 2-50 characters"})
			return
		}
	}

	_, err := ac.Users.UpdateProfile(user.ID, services.ProfileUpdate{
		Name:    payload.Name,
		Email:   payload.Email,
		Phone:   payload.Phone,
		Address: payload.Address,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already in use"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}
