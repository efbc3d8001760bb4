package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/MKhiriev/scholarship-portal/internal/store"
	"github.com/MKhiriev/scholarship-portal/internal/validators"
	"github.com/MKhiriev/scholarship-portal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Fields of an update body that are checked before the write. The update
// overwrites every descriptive field, so the name may legitimately be empty.
var scholarshipUpdateFields = []string{"ApplicationFees", "ServiceCharge"}

type scholarshipService struct {
	scholarshipRepository store.ScholarshipRepository
	validator             validators.Validator

	logger *logger.Logger
}

func NewScholarshipService(scholarshipRepository store.ScholarshipRepository, validator validators.Validator, logger *logger.Logger) ScholarshipService {
	return &scholarshipService{
		scholarshipRepository: scholarshipRepository,
		validator:             validator,
		logger:                logger,
	}
}

func (s *scholarshipService) List(ctx context.Context) ([]models.Scholarship, error) {
	scholarships, err := s.scholarshipRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing scholarships failed: %w", err)
	}

	return scholarships, nil
}

func (s *scholarshipService) Get(ctx context.Context, id primitive.ObjectID) (*models.Scholarship, error) {
	scholarship, err := s.scholarshipRepository.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scholarship search by id failed: %w", err)
	}

	return &scholarship, nil
}

func (s *scholarshipService) Create(ctx context.Context, scholarship models.Scholarship) (models.InsertResult, error) {
	if err := s.validator.Validate(ctx, scholarship); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*scholarshipService.Create").Msg("invalid scholarship data provided")
		return models.InsertResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	result, err := s.scholarshipRepository.Create(ctx, scholarship)
	if err != nil {
		return models.InsertResult{}, fmt.Errorf("scholarship creation failed: %w", err)
	}

	return result, nil
}

func (s *scholarshipService) Update(ctx context.Context, id primitive.ObjectID, scholarship models.Scholarship) (models.UpdateResult, error) {
	if err := s.validator.Validate(ctx, scholarship, scholarshipUpdateFields...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*scholarshipService.Update").Msg("invalid scholarship data provided")
		return models.UpdateResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	result, err := s.scholarshipRepository.Update(ctx, id, scholarship)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("scholarship update failed: %w", err)
	}

	return result, nil
}

func (s *scholarshipService) Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	result, err := s.scholarshipRepository.Delete(ctx, id)
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("scholarship deletion failed: %w", err)
	}

	return result, nil
}
