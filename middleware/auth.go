package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"hotel-see-view/config"
	"hotel-see-view/models"
	"hotel-see-view/utils"

	"github.com/gin-gonic/gin"
)

const CtxUser = "currentUser"

func tokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	// Login also sets an httpOnly cookie carrying the same token.
	if cookie, err := c.Cookie("token"); err == nil {
		return cookie
	}
	return ""
}

// AuthRequired validates the bearer credential, loads the user and injects
// it into the request context. Protected handlers run only past this point.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		rawToken := tokenFromRequest(c)
		if rawToken == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, no token"})
			return
		}

		claims, err := utils.VerifyToken(rawToken)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed"})
			return
		}

		uid, err := strconv.ParseUint(claims.UserID, 10, 64)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed"})
			return
		}

		var user models.User
		if err := config.DB.First(&user, uid).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed"})
			return
		}

		c.Set(CtxUser, user)
		c.Next()
	}
}

// CurrentUser returns the user injected by AuthRequired.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(CtxUser)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
