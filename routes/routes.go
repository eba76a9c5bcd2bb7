package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-see-view/controllers"
	"hotel-see-view/middleware"
	"hotel-see-view/utils"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(utils.EnvOrDefault("CORS_ORIGINS", ""))
	if raw == "" {
		return []string{"http://localhost:5173", "http://localhost:3000"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controller instances onto the REST surface.
func SetupRouter(
	ac *controllers.AuthController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	rvc *controllers.ReviewController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hotel See View API is running")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", ac.Register)
			auth.POST("/login", ac.Login)
			auth.POST("/logout", middleware.AuthRequired(), ac.Logout)
			auth.GET("/profile", middleware.AuthRequired(), ac.GetProfile)
			auth.PUT("/profile", middleware.AuthRequired(), ac.UpdateProfile)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.POST("/seed", rc.SeedRooms)
			rooms.GET("/:id", rc.GetRoomByID)
		}

		bookings := api.Group("/bookings", middleware.AuthRequired())
		{
			bookings.POST("", bc.CreateBooking)
			bookings.GET("/my-bookings", bc.GetMyBookings)
		}

		reviews := api.Group("/reviews")
		{
			reviews.POST("", middleware.AuthRequired(), rvc.CreateReview)
			reviews.GET("/:roomId", rvc.GetRoomReviews)
		}
	}

	return r
}
