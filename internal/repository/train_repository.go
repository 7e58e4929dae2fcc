// Package repository provides data access operations for the application.
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

// TrainRepository defines the interface for train data operations
type TrainRepository interface {
	Create(ctx context.Context, train *models.Train) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Train, error)
	FindAll(ctx context.Context) ([]models.Train, error)
	FindByRoute(ctx context.Context, from, to string) ([]models.Train, error)
	Replace(ctx context.Context, id primitive.ObjectID, train *models.Train) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// trainRepository implements TrainRepository using MongoDB
type trainRepository struct {
	collection *mongo.Collection
}

// NewTrainRepository creates a new TrainRepository
func NewTrainRepository(db *mongo.Database) TrainRepository {
	return &trainRepository{
		collection: db.Collection("trains"),
	}
}

// Create inserts a new train into the database
func (r *trainRepository) Create(ctx context.Context, train *models.Train) error {
	now := time.Now()
	train.CreatedAt = now
	train.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, train)
	if err != nil {
		return err
	}

	// Set the generated ID back on the record
	train.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a train by its ID
func (r *trainRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Train, error) {
	var train models.Train

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&train)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTrainNotFound
		}
		return nil, err
	}

	return &train, nil
}

// FindAll returns all trains in natural return order
func (r *trainRepository) FindAll(ctx context.Context) ([]models.Train, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var trains []models.Train
	if err := cursor.All(ctx, &trains); err != nil {
		return nil, err
	}

	// Return empty slice instead of nil
	if trains == nil {
		trains = []models.Train{}
	}

	return trains, nil
}

// FindByRoute returns all trains between an origin and a destination.
// An empty result is a valid outcome, not an error.
func (r *trainRepository) FindByRoute(ctx context.Context, from, to string) ([]models.Train, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"from": from, "to": to})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var trains []models.Train
	if err := cursor.All(ctx, &trains); err != nil {
		return nil, err
	}

	if trains == nil {
		trains = []models.Train{}
	}

	return trains, nil
}

// Replace overwrites the full train record by ID
func (r *trainRepository) Replace(ctx context.Context, id primitive.ObjectID, train *models.Train) error {
	train.ID = id
	train.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": id}, train)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrTrainNotFound
	}

	return nil
}

// Delete removes a train from the database. Deleting an absent ID is not an
// error, so the operation is idempotent at the interface level.
func (r *trainRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
