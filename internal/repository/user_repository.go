package repository

import (
	"context"
	"errors"
	"time"

	apperrors "travely/internal/errors"
	"travely/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest, profileImageKey *string) (*models.User, error)
	SetPassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
	LinkGoogleID(ctx context.Context, id primitive.ObjectID, googleID string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// userRepository implements UserRepository using MongoDB
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		collection: db.Collection("users"),
	}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	// Check if user with email already exists
	existing, _ := r.FindByEmail(ctx, user.Email)
	if existing != nil {
		return apperrors.ErrUserAlreadyExists
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		// Unique index on email catches the race the pre-check misses
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrUserAlreadyExists
		}
		return err
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// FindByEmail finds a user by their email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// FindByGoogleID finds a user by their linked external identity
func (r *userRepository) FindByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"googleId": googleID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// FindAll returns all users
func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	if users == nil {
		users = []models.User{}
	}

	return users, nil
}

// UpdateProfile replaces a user's profile fields. A non-nil profileImageKey
// also replaces the stored image reference.
func (r *userRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest, profileImageKey *string) (*models.User, error) {
	updateDoc := bson.M{
		"name":      update.Name,
		"mobile":    update.Mobile,
		"country":   update.Country,
		"type":      update.Type,
		"updatedAt": time.Now(),
	}
	if profileImageKey != nil {
		updateDoc["profileImg"] = *profileImageKey
	}

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updateDoc},
	)

	if result.Err() != nil {
		if errors.Is(result.Err(), mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, result.Err()
	}

	return r.FindByID(ctx, id)
}

// SetPassword overwrites a user's credential hash
func (r *userRepository) SetPassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"password": passwordHash, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// LinkGoogleID attaches an external identity to an existing user
func (r *userRepository) LinkGoogleID(ctx context.Context, id primitive.ObjectID, googleID string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"googleId": googleID, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// Delete removes a user from the database. Idempotent: deleting an absent ID
// reports success.
func (r *userRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
