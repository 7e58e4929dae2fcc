package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"travely/internal/cache"
	"travely/internal/config"
	"travely/internal/database"
	"travely/internal/handler"
	"travely/internal/repository"
	"travely/internal/router"
	"travely/internal/service"
	"travely/internal/storage"
	"travely/internal/upload"
	"travely/internal/validator"
	"travely/pkg/auth"
)

// @title           Travely API
// @version         1.0
// @description     Travel booking backend: trains, bookings, users and auth.

// @host            localhost:8080
// @BasePath        /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	cfg := config.Load()
	logrus.Info("Configuration loaded")

	validator.RegisterCustomValidators()

	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// S3 storage
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)
	uploader := upload.NewImageUploader(s3Client, cfg.AllowedImageExts)

	// JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Repository layer
	userRepo := repository.NewUserRepository(mongoDB.Database)
	trainRepo := repository.NewTrainRepository(mongoDB.Database)
	bookingRepo := repository.NewBookingRepository(mongoDB.Database)

	// Service layer
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:      userRepo,
		ResetTokens:   cache.NewResetTokenStore(redisCache),
		JWTManager:    jwtManager,
		Google:        service.NewGoogleVerifier(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleCallbackURL),
		ResetTokenTTL: cfg.ResetTokenExpiry,
	})
	userService := service.NewUserService(userRepo, uploader)
	trainService := service.NewTrainService(trainRepo, uploader, redisCache)
	bookingService := service.NewBookingService(bookingRepo, trainRepo)

	// Handler layer
	authHandler := handler.NewAuthHandler(handler.AuthHandlerConfig{
		Service:     authService,
		Users:       userService,
		FrontendURL: cfg.FrontendURL,
		TokenTTL:    cfg.JWTExpiry,
	})
	userHandler := handler.NewUserHandler(userService)
	trainHandler := handler.NewTrainHandler(trainService)
	bookingHandler := handler.NewBookingHandler(bookingService)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:    authHandler,
		UserHandler:    userHandler,
		TrainHandler:   trainHandler,
		BookingHandler: bookingHandler,
		JWTManager:     jwtManager,
	})

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		logrus.WithField("addr", addr).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logrus.WithField("signal", sig.String()).Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Forced shutdown: %v", err)
	}
	logrus.Info("Server stopped")
}
