// Package mocks provides mock implementations of repository interfaces for testing.
package mocks

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"travely/internal/models"
	"travely/internal/repository"
)

// Ensure mocks implement repository interfaces
var (
	_ repository.UserRepository    = (*MockUserRepository)(nil)
	_ repository.TrainRepository   = (*MockTrainRepository)(nil)
	_ repository.BookingRepository = (*MockBookingRepository)(nil)
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	CreateFunc         func(ctx context.Context, user *models.User) error
	FindByIDFunc       func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmailFunc    func(ctx context.Context, email string) (*models.User, error)
	FindByGoogleIDFunc func(ctx context.Context, googleID string) (*models.User, error)
	FindAllFunc        func(ctx context.Context) ([]models.User, error)
	UpdateProfileFunc  func(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest, profileImageKey *string) (*models.User, error)
	SetPasswordFunc    func(ctx context.Context, id primitive.ObjectID, passwordHash string) error
	LinkGoogleIDFunc   func(ctx context.Context, id primitive.ObjectID, googleID string) error
	DeleteFunc         func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	if m.FindByGoogleIDFunc != nil {
		return m.FindByGoogleIDFunc(ctx, googleID)
	}
	return nil, nil
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest, profileImageKey *string) (*models.User, error) {
	if m.UpdateProfileFunc != nil {
		return m.UpdateProfileFunc(ctx, id, update, profileImageKey)
	}
	return nil, nil
}

func (m *MockUserRepository) SetPassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	if m.SetPasswordFunc != nil {
		return m.SetPasswordFunc(ctx, id, passwordHash)
	}
	return nil
}

func (m *MockUserRepository) LinkGoogleID(ctx context.Context, id primitive.ObjectID, googleID string) error {
	if m.LinkGoogleIDFunc != nil {
		return m.LinkGoogleIDFunc(ctx, id, googleID)
	}
	return nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockTrainRepository is a mock implementation of TrainRepository.
type MockTrainRepository struct {
	CreateFunc      func(ctx context.Context, train *models.Train) error
	FindByIDFunc    func(ctx context.Context, id primitive.ObjectID) (*models.Train, error)
	FindAllFunc     func(ctx context.Context) ([]models.Train, error)
	FindByRouteFunc func(ctx context.Context, from, to string) ([]models.Train, error)
	ReplaceFunc     func(ctx context.Context, id primitive.ObjectID, train *models.Train) error
	DeleteFunc      func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockTrainRepository) Create(ctx context.Context, train *models.Train) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, train)
	}
	return nil
}

func (m *MockTrainRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Train, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockTrainRepository) FindAll(ctx context.Context) ([]models.Train, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockTrainRepository) FindByRoute(ctx context.Context, from, to string) ([]models.Train, error) {
	if m.FindByRouteFunc != nil {
		return m.FindByRouteFunc(ctx, from, to)
	}
	return nil, nil
}

func (m *MockTrainRepository) Replace(ctx context.Context, id primitive.ObjectID, train *models.Train) error {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, id, train)
	}
	return nil
}

func (m *MockTrainRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockBookingRepository is a mock implementation of BookingRepository.
type MockBookingRepository struct {
	CreateFunc            func(ctx context.Context, booking *models.Booking) error
	FindByIDFunc          func(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	FindByUserIDFunc      func(ctx context.Context, userID primitive.ObjectID) ([]models.Booking, error)
	CountSeatsByTrainFunc func(ctx context.Context, trainID primitive.ObjectID) (int, error)
	UpdateStatusFunc      func(ctx context.Context, id primitive.ObjectID, status string) error
	DeleteFunc            func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, booking)
	}
	return nil
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockBookingRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Booking, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockBookingRepository) CountSeatsByTrain(ctx context.Context, trainID primitive.ObjectID) (int, error) {
	if m.CountSeatsByTrainFunc != nil {
		return m.CountSeatsByTrainFunc(ctx, trainID)
	}
	return 0, nil
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *MockBookingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
