// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Train class types.
const (
	ClassEconomy  = "economy"
	ClassBusiness = "business"
	ClassFirst    = "first"
)

// Train represents a scheduled train in the system.
type Train struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	TrainName     string             `json:"trainName" bson:"trainName" example:"Express1"`
	From          string             `json:"from" bson:"from" example:"Colombo"`
	To            string             `json:"to" bson:"to" example:"Kandy"`
	ArrivalTime   string             `json:"arrivalTime" bson:"arrivalTime" example:"10:00"`
	DepartureTime string             `json:"departureTime" bson:"departureTime" example:"09:00"`
	Date          string             `json:"date" bson:"date" example:"2025-01-01"`
	Price         float64            `json:"price" bson:"price" example:"50"`
	NoOfSeats     int                `json:"noOfSeats" bson:"noOfSeats" example:"40"`
	Description   string             `json:"description" bson:"description" example:"Intercity express"`
	MaxBaggage    int                `json:"maxBaggage" bson:"maxBaggage" example:"20"`
	ClassType     string             `json:"classType" bson:"classType" example:"economy"`
	CancelCharges string             `json:"cancelCharges,omitempty" bson:"cancelCharges,omitempty"`
	MainImageKey  *string            `json:"trainMainImg" bson:"trainMainImg"` // nil when no image was uploaded
	MainImageURL  *string            `json:"trainMainImgUrl,omitempty" bson:"-"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// CreateTrainRequest is the multipart form payload for adding a train.
// MaxBagage keeps the field name established by existing clients. Numeric
// fields ride as strings so a non-numeric value is reported as a named field
// error alongside every other failing rule instead of aborting the bind;
// they are parsed explicitly once validation has passed.
type CreateTrainRequest struct {
	TrainName     string `form:"trainName" binding:"required"`
	From          string `form:"from" binding:"required"`
	To            string `form:"to" binding:"required"`
	ArrivalTime   string `form:"arrivalTime" binding:"required,hhmm"`
	DepartureTime string `form:"departureTime" binding:"required,hhmm"`
	Date          string `form:"date" binding:"required,datetime=2006-01-02"`
	Price         string `form:"price" binding:"required,floatmin=0"`
	NoOfSeats     string `form:"noOfSeats" binding:"required,intmin=1,intmax=100"`
	Description   string `form:"description" binding:"required"`
	MaxBaggage    string `form:"MaxBagage" binding:"required,intmin=0"`
	ClassType     string `form:"classType" binding:"required,oneof=economy business first"`
	CancelCharges string `form:"cancelCharges"`
}

// UpdateTrainRequest is the payload for replacing a train record. Updates are
// full-record replaces, not partial patches; every field is re-validated under
// the same rules as create, numeric fields as strings included.
type UpdateTrainRequest struct {
	TrainName     string  `json:"trainName" binding:"required"`
	From          string  `json:"from" binding:"required"`
	To            string  `json:"to" binding:"required"`
	ArrivalTime   string  `json:"arrivalTime" binding:"required,hhmm"`
	DepartureTime string  `json:"departureTime" binding:"required,hhmm"`
	Date          string  `json:"date" binding:"required,datetime=2006-01-02"`
	Price         string  `json:"price" binding:"required,floatmin=0"`
	NoOfSeats     string  `json:"noOfSeats" binding:"required,intmin=1,intmax=100"`
	Description   string  `json:"description" binding:"required"`
	MaxBaggage    string  `json:"MaxBagage" binding:"required,intmin=0"`
	ClassType     string  `json:"classType" binding:"required,oneof=economy business first"`
	CancelCharges string  `json:"cancelCharges"`
	MainImageKey  *string `json:"trainMainImg"`
}

// UpdateTrainResponse is returned from a train update.
type UpdateTrainResponse struct {
	Status string `json:"status" example:"Updated"`
	Train  Train  `json:"train"`
}
