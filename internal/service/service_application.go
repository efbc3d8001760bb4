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

type applicationService struct {
	applicationRepository store.ApplicationRepository
	validator             validators.Validator

	logger *logger.Logger
}

func NewApplicationService(applicationRepository store.ApplicationRepository, validator validators.Validator, logger *logger.Logger) ApplicationService {
	return &applicationService{
		applicationRepository: applicationRepository,
		validator:             validator,
		logger:                logger,
	}
}

func (s *applicationService) List(ctx context.Context, filter models.ListFilter) ([]models.Application, error) {
	applications, err := s.applicationRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing applications failed: %w", err)
	}

	return applications, nil
}

// Create stores application as pending, whatever status the caller sent.
func (s *applicationService) Create(ctx context.Context, application models.Application) (models.InsertResult, error) {
	if err := s.validator.Validate(ctx, application); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*applicationService.Create").Msg("invalid application data provided")
		return models.InsertResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	application.Status = models.ApplicationStatusPending
	result, err := s.applicationRepository.Create(ctx, application)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("application creation failed: %w", err)
	}

	return result, nil
}

func (s *applicationService) Approve(ctx context.Context, id primitive.ObjectID) (models.UpdateResult, error) {
	result, err := s.applicationRepository.UpdateStatus(ctx, id, models.ApplicationStatusSuccess)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("application status update failed: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "*applicationService.Approve").
		Str("id", id.Hex()).
		Int64("matched", result.MatchedCount).
		Msg("application approved")

	return result, nil
}

func (s *applicationService) Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	result, err := s.applicationRepository.Delete(ctx, id)
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("application deletion failed: %w", err)
	}

	return result, nil
}
