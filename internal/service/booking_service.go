package service

import (
	"context"
	"errors"

	apperrors "travely/internal/errors"
	"travely/internal/models"
	"travely/internal/repository"
)

// BookingService handles booking business logic.
type BookingService struct {
	repo      repository.BookingRepository
	trainRepo repository.TrainRepository
}

// NewBookingService creates a new BookingService.
func NewBookingService(repo repository.BookingRepository, trainRepo repository.TrainRepository) *BookingService {
	return &BookingService{repo: repo, trainRepo: trainRepo}
}

// CreateBooking reserves seats on a train for the user. The requested seats
// must fit within the train's remaining capacity; cancelled bookings do not
// count against it.
func (s *BookingService) CreateBooking(ctx context.Context, userID string, req *models.CreateBookingRequest) (*models.Booking, error) {
	uid, err := parseObjectID(userID)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	trainID, err := parseObjectID(req.TrainID)
	if err != nil {
		return nil, apperrors.ErrTrainNotFound
	}

	train, err := s.trainRepo.FindByID(ctx, trainID)
	if err != nil {
		return nil, err
	}

	booked, err := s.repo.CountSeatsByTrain(ctx, trainID)
	if err != nil {
		return nil, err
	}
	if booked+req.Seats > train.NoOfSeats {
		return nil, apperrors.ErrNotEnoughSeats
	}

	booking := &models.Booking{
		UserID:     uid,
		TrainID:    trainID,
		Seats:      req.Seats,
		TotalPrice: train.Price * float64(req.Seats),
		Status:     models.BookingConfirmed,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}

	return booking, nil
}

// GetBooking retrieves a booking. Users can only read their own bookings.
func (s *BookingService) GetBooking(ctx context.Context, id, userID string) (*models.Booking, error) {
	booking, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// ListMyBookings retrieves all bookings made by the user.
func (s *BookingService) ListMyBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	uid, err := parseObjectID(userID)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	return s.repo.FindByUserID(ctx, uid)
}

// CancelBooking marks a confirmed booking as cancelled, releasing its seats.
// A booking can only be cancelled once.
func (s *BookingService) CancelBooking(ctx context.Context, id, userID string) (*models.Booking, error) {
	booking, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if booking.Status == models.BookingCancelled {
		return nil, apperrors.ErrBookingCancelled
	}

	if err := s.repo.UpdateStatus(ctx, booking.ID, models.BookingCancelled); err != nil {
		return nil, err
	}
	booking.Status = models.BookingCancelled

	return booking, nil
}

// DeleteBooking removes a booking record. Deleting a missing booking is not
// an error.
func (s *BookingService) DeleteBooking(ctx context.Context, id, userID string) error {
	booking, err := s.findOwned(ctx, id, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrBookingNotFound) {
			return nil
		}
		return err
	}

	return s.repo.Delete(ctx, booking.ID)
}

// findOwned loads a booking and checks it belongs to the user.
func (s *BookingService) findOwned(ctx context.Context, id, userID string) (*models.Booking, error) {
	bookingID, err := parseObjectID(id)
	if err != nil {
		return nil, apperrors.ErrBookingNotFound
	}

	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.UserID.Hex() != userID {
		return nil, apperrors.ErrBookingUnauthorized
	}

	return booking, nil
}
