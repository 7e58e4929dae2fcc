package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"travely/internal/cache"
	apperrors "travely/internal/errors"
	"travely/internal/models"
	"travely/internal/repository"
	"travely/internal/upload"
	"travely/internal/validator"
)

const trainCacheTTL = 10 * time.Minute

// TrainService handles train business logic.
type TrainService struct {
	repo     repository.TrainRepository
	uploader *upload.ImageUploader
	cache    cache.Cache
}

// NewTrainService creates a new TrainService.
func NewTrainService(repo repository.TrainRepository, uploader *upload.ImageUploader, c cache.Cache) *TrainService {
	return &TrainService{repo: repo, uploader: uploader, cache: c}
}

// CreateTrain stores the train image first, then persists the record, so a
// rejected or failed upload never leaves a train behind.
func (s *TrainService) CreateTrain(ctx context.Context, req *models.CreateTrainRequest, image *multipart.FileHeader) (*models.Train, error) {
	price, seats, baggage, err := trainNumbers(req.Price, req.NoOfSeats, req.MaxBaggage)
	if err != nil {
		return nil, err
	}

	key, err := s.uploader.Save(ctx, "trains", image)
	if err != nil {
		return nil, err
	}

	train := &models.Train{
		TrainName:     validator.SanitizeText(req.TrainName),
		From:          validator.SanitizeText(req.From),
		To:            validator.SanitizeText(req.To),
		ArrivalTime:   req.ArrivalTime,
		DepartureTime: req.DepartureTime,
		Date:          req.Date,
		Price:         price,
		NoOfSeats:     seats,
		Description:   validator.SanitizeText(req.Description),
		MaxBaggage:    baggage,
		ClassType:     req.ClassType,
		CancelCharges: validator.SanitizeText(req.CancelCharges),
	}
	if key != "" {
		train.MainImageKey = &key
	}

	if err := s.repo.Create(ctx, train); err != nil {
		return nil, err
	}

	return train, nil
}

// GetTrain retrieves a train by ID, using cache when available.
func (s *TrainService) GetTrain(ctx context.Context, id string) (*models.Train, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, apperrors.ErrTrainNotFound
	}

	cacheKey := cache.TrainCacheKey(id)
	var cached models.Train
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		s.attachImageURL(ctx, &cached)
		return &cached, nil
	}

	train, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, train, trainCacheTTL); err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   cacheKey,
			"error": err,
		}).Warn("Failed to cache train")
	}

	s.attachImageURL(ctx, train)

	return train, nil
}

// GetAllTrains retrieves all trains.
func (s *TrainService) GetAllTrains(ctx context.Context) ([]models.Train, error) {
	trains, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range trains {
		s.attachImageURL(ctx, &trains[i])
	}
	return trains, nil
}

// SearchTrains retrieves trains running between two stations. No match is an
// empty result, not an error.
func (s *TrainService) SearchTrains(ctx context.Context, from, to string) ([]models.Train, error) {
	trains, err := s.repo.FindByRoute(ctx, validator.SanitizeText(from), validator.SanitizeText(to))
	if err != nil {
		return nil, err
	}
	for i := range trains {
		s.attachImageURL(ctx, &trains[i])
	}
	return trains, nil
}

// attachImageURL resolves the stored image key to a time-limited download URL
// for the response. Records without an image are left untouched, and a presign
// failure degrades to a key-only record rather than failing the read.
func (s *TrainService) attachImageURL(ctx context.Context, train *models.Train) {
	if train == nil || train.MainImageKey == nil {
		return
	}
	url, err := s.uploader.URL(ctx, *train.MainImageKey)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"key":   *train.MainImageKey,
			"error": err,
		}).Warn("Failed to presign train image")
		return
	}
	train.MainImageURL = &url
}

// UpdateTrain replaces a train record in full. The creation timestamp of the
// existing record is preserved.
func (s *TrainService) UpdateTrain(ctx context.Context, id string, req *models.UpdateTrainRequest) (*models.Train, error) {
	objectID, err := parseObjectID(id)
	if err != nil {
		return nil, apperrors.ErrTrainNotFound
	}

	price, seats, baggage, err := trainNumbers(req.Price, req.NoOfSeats, req.MaxBaggage)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	train := &models.Train{
		ID:            objectID,
		TrainName:     validator.SanitizeText(req.TrainName),
		From:          validator.SanitizeText(req.From),
		To:            validator.SanitizeText(req.To),
		ArrivalTime:   req.ArrivalTime,
		DepartureTime: req.DepartureTime,
		Date:          req.Date,
		Price:         price,
		NoOfSeats:     seats,
		Description:   validator.SanitizeText(req.Description),
		MaxBaggage:    baggage,
		ClassType:     req.ClassType,
		CancelCharges: validator.SanitizeText(req.CancelCharges),
		MainImageKey:  req.MainImageKey,
		CreatedAt:     existing.CreatedAt,
	}

	if err := s.repo.Replace(ctx, objectID, train); err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)

	return train, nil
}

// DeleteTrain removes a train and its stored image. Deleting a missing train
// is not an error.
func (s *TrainService) DeleteTrain(ctx context.Context, id string) error {
	objectID, err := parseObjectID(id)
	if err != nil {
		return apperrors.ErrTrainNotFound
	}

	train, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTrainNotFound) {
			return nil
		}
		return err
	}

	if err := s.repo.Delete(ctx, objectID); err != nil {
		return err
	}

	if train != nil && train.MainImageKey != nil {
		if err := s.uploader.Remove(ctx, *train.MainImageKey); err != nil {
			logrus.WithFields(logrus.Fields{
				"trainId": id,
				"key":     *train.MainImageKey,
				"error":   err,
			}).Warn("Failed to delete train image")
		}
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *TrainService) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, cache.TrainCacheKey(id)); err != nil {
		logrus.WithFields(logrus.Fields{
			"trainId": id,
			"error":   err,
		}).Warn("Failed to invalidate train cache")
	}
}

// parseObjectID converts a hex string to an ObjectID.
func parseObjectID(id string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(id)
}

// trainNumbers parses the numeric request fields, which travel as strings so
// binding can report a bad value per field. Validation has already checked
// they parse; a failure here means the request bypassed binding.
func trainNumbers(price, seats, baggage string) (float64, int, int, error) {
	p, err := strconv.ParseFloat(price, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid price %q: %w", price, err)
	}
	s, err := strconv.Atoi(seats)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid seat count %q: %w", seats, err)
	}
	b, err := strconv.Atoi(baggage)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid baggage allowance %q: %w", baggage, err)
	}
	return p, s, b, nil
}
