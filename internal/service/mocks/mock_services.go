// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"
	"mime/multipart"

	"travely/internal/models"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	RegisterFunc       func(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	LoginFunc          func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	ForgotPasswordFunc func(ctx context.Context, email string) (string, error)
	ResetPasswordFunc  func(ctx context.Context, req *models.ResetPasswordRequest) error
	CheckEmailFunc     func(ctx context.Context, email string) (bool, error)
	GoogleLoginURLFunc func(state string) string
	GoogleCallbackFunc func(ctx context.Context, code string) (*models.AuthResponse, error)
}

func (m *MockAuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, email)
	}
	return "", nil
}

func (m *MockAuthService) ResetPassword(ctx context.Context, req *models.ResetPasswordRequest) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, req)
	}
	return nil
}

func (m *MockAuthService) CheckEmail(ctx context.Context, email string) (bool, error) {
	if m.CheckEmailFunc != nil {
		return m.CheckEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *MockAuthService) GoogleLoginURL(state string) string {
	if m.GoogleLoginURLFunc != nil {
		return m.GoogleLoginURLFunc(state)
	}
	return ""
}

func (m *MockAuthService) GoogleCallback(ctx context.Context, code string) (*models.AuthResponse, error) {
	if m.GoogleCallbackFunc != nil {
		return m.GoogleCallbackFunc(ctx, code)
	}
	return nil, nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	GetUserFunc     func(ctx context.Context, id string) (*models.User, error)
	GetAllUsersFunc func(ctx context.Context) ([]models.User, error)
	UpdateUserFunc  func(ctx context.Context, id string, req *models.UpdateUserRequest, image *multipart.FileHeader) (*models.User, error)
	DeleteUserFunc  func(ctx context.Context, id string) error
}

func (m *MockUserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	if m.GetAllUsersFunc != nil {
		return m.GetAllUsersFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserService) UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest, image *multipart.FileHeader) (*models.User, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, id, req, image)
	}
	return nil, nil
}

func (m *MockUserService) DeleteUser(ctx context.Context, id string) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, id)
	}
	return nil
}

// MockTrainService is a mock implementation of TrainServicer.
type MockTrainService struct {
	CreateTrainFunc  func(ctx context.Context, req *models.CreateTrainRequest, image *multipart.FileHeader) (*models.Train, error)
	GetTrainFunc     func(ctx context.Context, id string) (*models.Train, error)
	GetAllTrainsFunc func(ctx context.Context) ([]models.Train, error)
	SearchTrainsFunc func(ctx context.Context, from, to string) ([]models.Train, error)
	UpdateTrainFunc  func(ctx context.Context, id string, req *models.UpdateTrainRequest) (*models.Train, error)
	DeleteTrainFunc  func(ctx context.Context, id string) error
}

func (m *MockTrainService) CreateTrain(ctx context.Context, req *models.CreateTrainRequest, image *multipart.FileHeader) (*models.Train, error) {
	if m.CreateTrainFunc != nil {
		return m.CreateTrainFunc(ctx, req, image)
	}
	return nil, nil
}

func (m *MockTrainService) GetTrain(ctx context.Context, id string) (*models.Train, error) {
	if m.GetTrainFunc != nil {
		return m.GetTrainFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTrainService) GetAllTrains(ctx context.Context) ([]models.Train, error) {
	if m.GetAllTrainsFunc != nil {
		return m.GetAllTrainsFunc(ctx)
	}
	return nil, nil
}

func (m *MockTrainService) SearchTrains(ctx context.Context, from, to string) ([]models.Train, error) {
	if m.SearchTrainsFunc != nil {
		return m.SearchTrainsFunc(ctx, from, to)
	}
	return nil, nil
}

func (m *MockTrainService) UpdateTrain(ctx context.Context, id string, req *models.UpdateTrainRequest) (*models.Train, error) {
	if m.UpdateTrainFunc != nil {
		return m.UpdateTrainFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockTrainService) DeleteTrain(ctx context.Context, id string) error {
	if m.DeleteTrainFunc != nil {
		return m.DeleteTrainFunc(ctx, id)
	}
	return nil
}

// MockBookingService is a mock implementation of BookingServicer.
type MockBookingService struct {
	CreateBookingFunc  func(ctx context.Context, userID string, req *models.CreateBookingRequest) (*models.Booking, error)
	GetBookingFunc     func(ctx context.Context, id, userID string) (*models.Booking, error)
	ListMyBookingsFunc func(ctx context.Context, userID string) ([]models.Booking, error)
	CancelBookingFunc  func(ctx context.Context, id, userID string) (*models.Booking, error)
	DeleteBookingFunc  func(ctx context.Context, id, userID string) error
}

func (m *MockBookingService) CreateBooking(ctx context.Context, userID string, req *models.CreateBookingRequest) (*models.Booking, error) {
	if m.CreateBookingFunc != nil {
		return m.CreateBookingFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockBookingService) GetBooking(ctx context.Context, id, userID string) (*models.Booking, error) {
	if m.GetBookingFunc != nil {
		return m.GetBookingFunc(ctx, id, userID)
	}
	return nil, nil
}

func (m *MockBookingService) ListMyBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	if m.ListMyBookingsFunc != nil {
		return m.ListMyBookingsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockBookingService) CancelBooking(ctx context.Context, id, userID string) (*models.Booking, error) {
	if m.CancelBookingFunc != nil {
		return m.CancelBookingFunc(ctx, id, userID)
	}
	return nil, nil
}

func (m *MockBookingService) DeleteBooking(ctx context.Context, id, userID string) error {
	if m.DeleteBookingFunc != nil {
		return m.DeleteBookingFunc(ctx, id, userID)
	}
	return nil
}
