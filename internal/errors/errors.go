// Package errors provides custom error types for the application.
package errors

import "errors"

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Auth errors
var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidToken      = errors.New("invalid token")
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
	ErrOAuthExchange     = errors.New("failed to complete provider login")
)

// Train errors
var (
	ErrTrainNotFound = errors.New("train not found")
)

// Booking errors
var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrBookingUnauthorized = errors.New("you can only manage your own bookings")
	ErrNotEnoughSeats      = errors.New("not enough seats available on this train")
	ErrBookingCancelled    = errors.New("booking is already cancelled")
)

// Upload errors
var (
	ErrUnsupportedImageType = errors.New("only jpg, jpeg and png image files are allowed")
	ErrUploadFailed         = errors.New("error in uploading")
)
