package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking statuses.
const (
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// Booking represents a seat reservation on a train.
type Booking struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	UserID     primitive.ObjectID `json:"userId" bson:"userId"`
	TrainID    primitive.ObjectID `json:"trainId" bson:"trainId"`
	Seats      int                `json:"seats" bson:"seats" example:"2"`
	TotalPrice float64            `json:"totalPrice" bson:"totalPrice" example:"100"`
	Status     string             `json:"status" bson:"status" example:"confirmed"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CreateBookingRequest is the payload for booking seats on a train.
type CreateBookingRequest struct {
	TrainID string `json:"trainId" binding:"required"`
	Seats   int    `json:"seats" binding:"required,min=1"`
}
