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

// BookingRepository defines the interface for booking data operations
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Booking, error)
	CountSeatsByTrain(ctx context.Context, trainID primitive.ObjectID) (int, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// bookingRepository implements BookingRepository using MongoDB
type bookingRepository struct {
	collection *mongo.Collection
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db *mongo.Database) BookingRepository {
	return &bookingRepository{
		collection: db.Collection("bookings"),
	}
}

// Create inserts a new booking into the database
func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		return err
	}

	booking.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a booking by its ID
func (r *bookingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	var booking models.Booking

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, err
	}

	return &booking, nil
}

// FindByUserID returns all bookings made by a user
func (r *bookingRepository) FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Booking, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}

	if bookings == nil {
		bookings = []models.Booking{}
	}

	return bookings, nil
}

// CountSeatsByTrain sums the confirmed seats already booked on a train
func (r *bookingRepository) CountSeatsByTrain(ctx context.Context, trainID primitive.ObjectID) (int, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"trainId": trainID, "status": models.BookingConfirmed}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$seats"}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}

	if len(results) == 0 {
		return 0, nil
	}

	return results[0].Total, nil
}

// UpdateStatus sets the status of a booking
func (r *bookingRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrBookingNotFound
	}

	return nil
}

// Delete removes a booking. Idempotent: deleting an absent ID reports success.
func (r *bookingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
