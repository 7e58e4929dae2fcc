package service

import (
	"context"
	"errors"
	"mime/multipart"

	"github.com/sirupsen/logrus"

	apperrors "travely/internal/errors"
	"travely/internal/models"
	"travely/internal/repository"
	"travely/internal/upload"
	"travely/internal/validator"
)

// UserService handles user business logic.
type UserService struct {
	repo     repository.UserRepository
	uploader *upload.ImageUploader
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository, uploader *upload.ImageUploader) *UserService {
	return &UserService{repo: repo, uploader: uploader}
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	user, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	s.attachImageURL(ctx, user)

	return user, nil
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		s.attachImageURL(ctx, &users[i])
	}
	return users, nil
}

// attachImageURL resolves the stored profile image key to a time-limited
// download URL for the response. A presign failure degrades to a key-only
// record rather than failing the read.
func (s *UserService) attachImageURL(ctx context.Context, user *models.User) {
	if user == nil || user.ProfileImageKey == nil {
		return
	}
	url, err := s.uploader.URL(ctx, *user.ProfileImageKey)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   *user.ProfileImageKey,
			"error": err,
		}).Warn("Failed to presign profile image")
		return
	}
	user.ProfileImageURL = &url
}

// UpdateUser replaces a user's editable profile fields. The image, when
// present, is stored before the profile is written.
func (s *UserService) UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest, image *multipart.FileHeader) (*models.User, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	key, err := s.uploader.Save(ctx, "users", image)
	if err != nil {
		return nil, err
	}

	req.Name = validator.SanitizeText(req.Name)
	req.Country = validator.SanitizeText(req.Country)

	var imageKey *string
	if key != "" {
		imageKey = &key
	}

	return s.repo.UpdateProfile(ctx, objectID, req, imageKey)
}

// DeleteUser removes a user account and its profile image. Deleting a missing
// user is not an error.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	objectID, err := parseObjectID(id)
	if err != nil {
		return apperrors.ErrUserNotFound
	}

	user, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil
		}
		return err
	}

	if err := s.repo.Delete(ctx, objectID); err != nil {
		return err
	}

	if user != nil && user.ProfileImageKey != nil {
		if err := s.uploader.Remove(ctx, *user.ProfileImageKey); err != nil {
			logrus.WithFields(logrus.Fields{
				"userId": id,
				"key":    *user.ProfileImageKey,
				"error":  err,
			}).Warn("Failed to delete profile image")
		}
	}

	return nil
}
