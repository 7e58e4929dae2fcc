package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "travely/internal/errors"
	"travely/internal/models"
	repomocks "travely/internal/repository/mocks"
	"travely/internal/upload"
)

func newTestUserService(repo *repomocks.MockUserRepository, store *fakeStorage) *UserService {
	return NewUserService(repo, upload.NewImageUploader(store, []string{"jpg", "jpeg", "png"}))
}

func TestUserService_GetUser(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Email: "john@example.com"}

	t.Run("found", func(t *testing.T) {
		repo := &repomocks.MockUserRepository{
			FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
				assert.Equal(t, user.ID, id)
				return user, nil
			},
		}
		svc := newTestUserService(repo, &fakeStorage{})

		got, err := svc.GetUser(context.Background(), user.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, user.Email, got.Email)
	})

	t.Run("malformed id reads as not found", func(t *testing.T) {
		svc := newTestUserService(&repomocks.MockUserRepository{}, &fakeStorage{})

		_, err := svc.GetUser(context.Background(), "not-an-id")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("profile image key resolves to a download URL", func(t *testing.T) {
		imageKey := "users/42.jpg"
		repo := &repomocks.MockUserRepository{
			FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
				return &models.User{ID: id, ProfileImageKey: &imageKey}, nil
			},
		}
		svc := newTestUserService(repo, &fakeStorage{})

		got, err := svc.GetUser(context.Background(), primitive.NewObjectID().Hex())
		require.NoError(t, err)
		require.NotNil(t, got.ProfileImageURL)
		assert.Equal(t, "https://storage.example.com/"+imageKey, *got.ProfileImageURL)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	userID := primitive.NewObjectID()
	req := func() *models.UpdateUserRequest {
		return &models.UpdateUserRequest{
			Name:    "John Doe",
			Mobile:  "0771234567",
			Country: "Sri Lanka",
			Type:    models.TypeTraveler,
		}
	}

	t.Run("updates profile without image", func(t *testing.T) {
		repo := &repomocks.MockUserRepository{
			UpdateProfileFunc: func(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest, profileImageKey *string) (*models.User, error) {
				assert.Equal(t, userID, id)
				assert.Nil(t, profileImageKey, "no upload means the stored key is untouched")
				return &models.User{ID: id, Name: update.Name}, nil
			},
		}
		svc := newTestUserService(repo, &fakeStorage{})

		user, err := svc.UpdateUser(context.Background(), userID.Hex(), req(), nil)
		require.NoError(t, err)
		assert.Equal(t, "John Doe", user.Name)
	})

	t.Run("stores profile image and passes its key", func(t *testing.T) {
		store := &fakeStorage{}
		repo := &repomocks.MockUserRepository{
			UpdateProfileFunc: func(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest, profileImageKey *string) (*models.User, error) {
				require.NotNil(t, profileImageKey)
				assert.Equal(t, store.keys[0], *profileImageKey)
				return &models.User{ID: id, ProfileImageKey: profileImageKey}, nil
			},
		}
		svc := newTestUserService(repo, store)

		fh := newFileHeader(t, "profileImg", "avatar.png", []byte("pngdata"))
		user, err := svc.UpdateUser(context.Background(), userID.Hex(), req(), fh)
		require.NoError(t, err)
		assert.NotNil(t, user.ProfileImageKey)
	})

	t.Run("rejected image type aborts the update", func(t *testing.T) {
		var updateCalls int
		repo := &repomocks.MockUserRepository{
			UpdateProfileFunc: func(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest, profileImageKey *string) (*models.User, error) {
				updateCalls++
				return nil, nil
			},
		}
		svc := newTestUserService(repo, &fakeStorage{})

		fh := newFileHeader(t, "profileImg", "avatar.bmp", []byte("bmpdata"))
		_, err := svc.UpdateUser(context.Background(), userID.Hex(), req(), fh)
		assert.ErrorIs(t, err, apperrors.ErrUnsupportedImageType)
		assert.Equal(t, 0, updateCalls)
	})

	t.Run("escapes markup in free-text fields", func(t *testing.T) {
		repo := &repomocks.MockUserRepository{
			UpdateProfileFunc: func(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest, profileImageKey *string) (*models.User, error) {
				assert.Equal(t, "&lt;i&gt;John&lt;/i&gt;", update.Name)
				return &models.User{ID: id}, nil
			},
		}
		svc := newTestUserService(repo, &fakeStorage{})

		r := req()
		r.Name = "<i>John</i>"
		_, err := svc.UpdateUser(context.Background(), userID.Hex(), r, nil)
		require.NoError(t, err)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("deleting a missing user succeeds", func(t *testing.T) {
		repo := &repomocks.MockUserRepository{
			FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}
		svc := newTestUserService(repo, &fakeStorage{})

		assert.NoError(t, svc.DeleteUser(context.Background(), primitive.NewObjectID().Hex()))
	})

	t.Run("stored profile image is removed with the account", func(t *testing.T) {
		imageKey := "users/42.jpg"
		repo := &repomocks.MockUserRepository{
			FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
				return &models.User{ID: id, ProfileImageKey: &imageKey}, nil
			},
			DeleteFunc: func(ctx context.Context, id primitive.ObjectID) error {
				return nil
			},
		}
		store := &fakeStorage{}
		svc := newTestUserService(repo, store)

		require.NoError(t, svc.DeleteUser(context.Background(), primitive.NewObjectID().Hex()))
		assert.Equal(t, []string{imageKey}, store.deleted)
	})

	t.Run("malformed id reads as not found", func(t *testing.T) {
		svc := newTestUserService(&repomocks.MockUserRepository{}, &fakeStorage{})

		err := svc.DeleteUser(context.Background(), "not-an-id")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserService_GetAllUsers(t *testing.T) {
	repo := &repomocks.MockUserRepository{
		FindAllFunc: func(ctx context.Context) ([]models.User, error) {
			return []models.User{{Email: "a@example.com"}, {Email: "b@example.com"}}, nil
		},
	}
	svc := newTestUserService(repo, &fakeStorage{})

	users, err := svc.GetAllUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
