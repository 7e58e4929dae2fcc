// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "travely/swagger" // Import generated swagger docs

	"travely/internal/handler"
	"travely/internal/middleware"
	"travely/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	TrainHandler   *handler.TrainHandler
	BookingHandler *handler.BookingHandler
	JWTManager     *auth.JWTManager
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Auth routes (public)
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", cfg.AuthHandler.Register)
			authRoutes.POST("/login", cfg.AuthHandler.Login)
			authRoutes.POST("/logout", cfg.AuthHandler.Logout)
			authRoutes.POST("/forgot-password", cfg.AuthHandler.ForgotPassword)
			authRoutes.POST("/reset-password", cfg.AuthHandler.ResetPassword)
			authRoutes.GET("/check-email", cfg.AuthHandler.CheckEmail)
			authRoutes.GET("/google", cfg.AuthHandler.GoogleLogin)
			authRoutes.GET("/google/callback", cfg.AuthHandler.GoogleCallback)
			authRoutes.GET("/login/failed", cfg.AuthHandler.LoginFailed)
		}

		// Auth routes (protected)
		authProtected := api.Group("/auth")
		authProtected.Use(middleware.Auth(cfg.JWTManager))
		{
			authProtected.GET("/login/success", cfg.AuthHandler.LoginSuccess)
		}

		// Train routes: reads are public, mutations are admin-only
		trains := api.Group("/trains")
		{
			trains.GET("", cfg.TrainHandler.GetAllTrains)
			trains.GET("/:id", cfg.TrainHandler.GetTrain)
			trains.GET("/search/:from/:to", cfg.TrainHandler.SearchTrains)
		}
		trainAdmin := api.Group("/trains")
		trainAdmin.Use(middleware.Auth(cfg.JWTManager), middleware.AdminOnly())
		{
			trainAdmin.POST("", cfg.TrainHandler.CreateTrain)
			trainAdmin.PUT("/:id", cfg.TrainHandler.UpdateTrain)
			trainAdmin.DELETE("/:id", cfg.TrainHandler.DeleteTrain)
		}

		// Booking routes (protected)
		bookings := api.Group("/bookings")
		bookings.Use(middleware.Auth(cfg.JWTManager))
		{
			bookings.POST("", cfg.BookingHandler.CreateBooking)
			bookings.GET("", cfg.BookingHandler.ListMyBookings)
			bookings.GET("/:id", cfg.BookingHandler.GetBooking)
			bookings.PUT("/:id/cancel", cfg.BookingHandler.CancelBooking)
			bookings.DELETE("/:id", cfg.BookingHandler.DeleteBooking)
		}

		// User routes (protected; list and delete are admin-only)
		users := api.Group("/users")
		users.Use(middleware.Auth(cfg.JWTManager))
		{
			users.GET("", middleware.AdminOnly(), cfg.UserHandler.GetAllUsers)
			users.GET("/:id", cfg.UserHandler.GetUser)
			users.PUT("/:id", cfg.UserHandler.UpdateUser)
			users.DELETE("/:id", middleware.AdminOnly(), cfg.UserHandler.DeleteUser)
		}
	}

	return r
}
