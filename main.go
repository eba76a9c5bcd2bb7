package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-see-view/config"
	"hotel-see-view/controllers"
	"hotel-see-view/routes"
	"hotel-see-view/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	// Tokens cannot be issued or verified without a secret; refuse to start.
	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("ERROR: JWT_SECRET environment variable is not set")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("Database connection established and migrations applied")

	// Initialize services
	userService := services.NewUserService(db)
	roomService := services.NewRoomService(db)
	bookingService := services.NewBookingService(db)
	reviewService := services.NewReviewService(db)

	// Initialize controllers
	authController := controllers.NewAuthController(userService)
	roomController := controllers.NewRoomController(roomService)
	bookingController := controllers.NewBookingController(bookingService)
	reviewController := controllers.NewReviewController(reviewService)

	router := routes.SetupRouter(authController, roomController, bookingController, reviewController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Graceful shutdown on interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
