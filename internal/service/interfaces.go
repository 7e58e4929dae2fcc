// Package service contains business logic for the application.
package service

import (
	"context"
	"mime/multipart"

	"travely/internal/models"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error
	CheckEmail(ctx context.Context, email string) (bool, error)
	GoogleLoginURL(state string) string
	GoogleCallback(ctx context.Context, code string) (*models.AuthResponse, error)
}

// UserServicer defines the interface for user operations.
type UserServicer interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest, image *multipart.FileHeader) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// TrainServicer defines the interface for train operations.
type TrainServicer interface {
	CreateTrain(ctx context.Context, req *models.CreateTrainRequest, image *multipart.FileHeader) (*models.Train, error)
	GetTrain(ctx context.Context, id string) (*models.Train, error)
	GetAllTrains(ctx context.Context) ([]models.Train, error)
	SearchTrains(ctx context.Context, from, to string) ([]models.Train, error)
	UpdateTrain(ctx context.Context, id string, req *models.UpdateTrainRequest) (*models.Train, error)
	DeleteTrain(ctx context.Context, id string) error
}

// BookingServicer defines the interface for booking operations.
type BookingServicer interface {
	CreateBooking(ctx context.Context, userID string, req *models.CreateBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, id, userID string) (*models.Booking, error)
	ListMyBookings(ctx context.Context, userID string) ([]models.Booking, error)
	CancelBooking(ctx context.Context, id, userID string) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id, userID string) error
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer    = (*AuthService)(nil)
	_ UserServicer    = (*UserService)(nil)
	_ TrainServicer   = (*TrainService)(nil)
	_ BookingServicer = (*BookingService)(nil)
)
