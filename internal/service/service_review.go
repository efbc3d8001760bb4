package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/MKhiriev/scholarship-portal/internal/store"
	"github.com/MKhiriev/scholarship-portal/internal/validators"
	"github.com/MKhiriev/scholarship-portal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type reviewService struct {
	reviewRepository store.ReviewRepository
	validator        validators.Validator

	logger *logger.Logger
}

func NewReviewService(reviewRepository store.ReviewRepository, validator validators.Validator, logger *logger.Logger) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		validator:        validator,
		logger:           logger,
	}
}

func (s *reviewService) List(ctx context.Context, filter models.ListFilter) ([]models.Review, error) {
	reviews, err := s.reviewRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing reviews failed: %w", err)
	}

	return reviews, nil
}

func (s *reviewService) Create(ctx context.Context, review models.Review) (models.InsertResult, error) {
	if err := s.validator.Validate(ctx, review); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reviewService.Create").Msg("invalid review data provided")
		return models.InsertResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	result, err := s.reviewRepository.Create(ctx, review)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("review creation failed: %w", err)
	}

	return result, nil
}

func (s *reviewService) Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	result, err := s.reviewRepository.Delete(ctx, id)
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("review deletion failed: %w", err)
	}

	return result, nil
}
