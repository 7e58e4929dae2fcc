package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"travely/internal/config"
	"travely/internal/database"
	"travely/internal/models"
	"travely/pkg/auth"
)

func main() {
	logrus.Info("Starting seed...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx := context.Background()

	seedUsers(ctx, mongoDB.Database)
	seedTrains(ctx, mongoDB.Database)

	logrus.Info("Seed completed successfully!")
}

func seedUsers(ctx context.Context, db *mongo.Database) {
	collection := db.Collection("users")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		logrus.Fatalf("Failed to clear users: %v", err)
	}

	// Development credentials for local use only
	adminPassword, _ := auth.HashPassword("admin123")
	travelerPassword, _ := auth.HashPassword("password123")

	now := time.Now()

	users := []interface{}{
		models.User{
			Name:      "Admin",
			Email:     "admin@travely.local",
			Password:  adminPassword,
			Mobile:    "0770000000",
			Country:   "Sri Lanka",
			Type:      models.TypeTraveler,
			IsAdmin:   true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		models.User{
			Name:      "Alice Johnson",
			Email:     "alice@example.com",
			Password:  travelerPassword,
			Mobile:    "0771234567",
			Country:   "Sri Lanka",
			Type:      models.TypeTraveler,
			CreatedAt: now,
			UpdatedAt: now,
		},
		models.User{
			Name:      "Bob Smith",
			Email:     "bob@example.com",
			Password:  travelerPassword,
			Mobile:    "0777654321",
			Country:   "Sri Lanka",
			Type:      models.TypeHotelOwner,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	result, err := collection.InsertMany(ctx, users)
	if err != nil {
		logrus.Fatalf("Failed to seed users: %v", err)
	}

	logrus.Infof("Seeded %d users", len(result.InsertedIDs))
}

func seedTrains(ctx context.Context, db *mongo.Database) {
	collection := db.Collection("trains")

	if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
		logrus.Fatalf("Failed to clear trains: %v", err)
	}

	now := time.Now()
	date := now.AddDate(0, 0, 7).Format("2006-01-02")

	trains := []interface{}{
		models.Train{
			ID:            primitive.NewObjectID(),
			TrainName:     "Udarata Menike",
			From:          "Colombo",
			To:            "Kandy",
			ArrivalTime:   "11:30",
			DepartureTime: "08:30",
			Date:          date,
			Price:         650,
			NoOfSeats:     80,
			Description:   "Daily intercity service through the hill country",
			MaxBaggage:    20,
			ClassType:     models.ClassEconomy,
			CancelCharges: "10% within 24 hours of departure",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		models.Train{
			ID:            primitive.NewObjectID(),
			TrainName:     "Ruhunu Kumari",
			From:          "Colombo",
			To:            "Galle",
			ArrivalTime:   "10:15",
			DepartureTime: "07:55",
			Date:          date,
			Price:         480,
			NoOfSeats:     100,
			Description:   "Coastal line express with ocean views",
			MaxBaggage:    25,
			ClassType:     models.ClassBusiness,
			CancelCharges: "No refund within 12 hours of departure",
			CreatedAt:     now,
			UpdatedAt:     now,
		},
		models.Train{
			ID:            primitive.NewObjectID(),
			TrainName:     "Yal Devi",
			From:          "Colombo",
			To:            "Jaffna",
			ArrivalTime:   "16:00",
			DepartureTime: "06:45",
			Date:          date,
			Price:         1200,
			NoOfSeats:     60,
			Description:   "Northern line long-distance service",
			MaxBaggage:    30,
			ClassType:     models.ClassFirst,
			CreatedAt:     now,
			UpdatedAt:     now,
		},
	}

	result, err := collection.InsertMany(ctx, trains)
	if err != nil {
		logrus.Fatalf("Failed to seed trains: %v", err)
	}

	logrus.Infof("Seeded %d trains", len(result.InsertedIDs))
}
