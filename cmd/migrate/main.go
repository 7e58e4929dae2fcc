package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"travely/internal/config"
	"travely/internal/database"
)

func main() {
	logrus.Info("Starting migration...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	createIndexes(ctx, mongoDB.Database)

	logrus.Info("Migration completed successfully!")
}

func createIndexes(ctx context.Context, db *mongo.Database) {
	// Users indexes
	createIndex(ctx, db, "users", bson.D{{Key: "email", Value: 1}}, &options.IndexOptions{
		Unique: ptrBool(true),
	})
	createIndex(ctx, db, "users", bson.D{{Key: "googleId", Value: 1}}, &options.IndexOptions{
		Sparse: ptrBool(true),
	})

	// Trains indexes
	createIndex(ctx, db, "trains", bson.D{
		{Key: "from", Value: 1},
		{Key: "to", Value: 1},
	}, nil)
	createIndex(ctx, db, "trains", bson.D{{Key: "date", Value: 1}}, nil)

	// Bookings indexes
	createIndex(ctx, db, "bookings", bson.D{{Key: "userId", Value: 1}}, nil)
	createIndex(ctx, db, "bookings", bson.D{
		{Key: "trainId", Value: 1},
		{Key: "status", Value: 1},
	}, nil)
}

func createIndex(ctx context.Context, db *mongo.Database, collection string, keys bson.D, opts *options.IndexOptions) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: opts,
	}

	name, err := db.Collection(collection).Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		logrus.Warnf("Failed to create index on %s: %v", collection, err)
		return
	}

	logrus.Infof("Created index %s on %s", name, collection)
}

func ptrBool(b bool) *bool {
	return &b
}
