package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User account types.
const (
	TypeTraveler        = "traveler"
	TypeHotelOwner      = "hotel-owner"
	TypeVehicleOwner    = "vehicle-owner"
	TypeRestaurantOwner = "restaurant-owner"
	TypeTourGuide       = "tour-guide"
	TypeEventOrganizer  = "event-organizer"
)

// User represents a user in the system.
type User struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name            string             `json:"name" bson:"name" example:"John Doe"`
	Email           string             `json:"email" bson:"email" example:"user@example.com"`
	Password        string             `json:"-" bson:"password"` // "-" = never include in JSON response
	Mobile          string             `json:"mobile" bson:"mobile" example:"0771234567"`
	Country         string             `json:"country" bson:"country" example:"Sri Lanka"`
	Type            string             `json:"type" bson:"type" example:"traveler"`
	IsAdmin         bool               `json:"isAdmin" bson:"isAdmin" example:"false"`
	ProfileImageKey *string            `json:"profileImg" bson:"profileImg"` // nil when no image was uploaded
	ProfileImageURL *string            `json:"profileImgUrl,omitempty" bson:"-"`
	GoogleID        string             `json:"-" bson:"googleId,omitempty"` // linked external identity
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// RegisterRequest is the payload for creating a user account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2" example:"John Doe"`
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"secret123"`
	Mobile   string `json:"mobile" binding:"required,len=10,numeric" example:"0771234567"`
	Country  string `json:"country" binding:"required" example:"Sri Lanka"`
	Type     string `json:"type" binding:"required,usertype" example:"traveler"`
}

// UpdateUserRequest is the multipart form payload for replacing a user's
// profile. The optional profileImg file slot is handled separately.
type UpdateUserRequest struct {
	Name    string `form:"name" binding:"required,min=2"`
	Mobile  string `form:"mobile" binding:"required,len=10,numeric"`
	Country string `form:"country" binding:"required"`
	Type    string `form:"type" binding:"required,usertype"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// AuthResponse is returned after a successful register or login.
type AuthResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	User  User   `json:"user"`
}

// ForgotPasswordRequest asks for a password reset token.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email" example:"user@example.com"`
}

// ResetPasswordRequest redeems a reset token for a new password.
type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// CheckEmailResponse reports whether an email is already registered.
type CheckEmailResponse struct {
	Exists bool `json:"exists"`
}

// GoogleProfile is the identity returned by the OAuth provider.
type GoogleProfile struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}
