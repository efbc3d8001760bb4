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

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

func (s *userService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}

func (s *userService) CheckRole(ctx context.Context, email, role string) (bool, error) {
	user, err := s.userRepository.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("user search by email failed: %w", err)
	}

	return user.HasRole(role), nil
}

// Create stores the user as given, role included, unless one with the same
// email exists. The check and the insert are not atomic.
func (s *userService) Create(ctx context.Context, user models.User) (models.InsertResult, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, user); err != nil {
		log.Err(err).Str("func", "*userService.Create").Msg("invalid user data provided")
		return models.InsertResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	_, err := s.userRepository.FindByEmail(ctx, user.Email)
	switch {
	case err == nil:
		log.Info().Str("func", "*userService.Create").Str("email", user.Email).Msg("user already exists")
		return models.InsertResult{}, ErrUserAlreadyExists
	case !errors.Is(err, store.ErrNotFound):
		return models.InsertResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	result, err := s.userRepository.Create(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userService.Create").Msg("user creation ended with error")
		return models.InsertResult{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return result, nil
}

// UpdateRole persists role verbatim; any string is accepted.
func (s *userService) UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (models.UpdateResult, error) {
	result, err := s.userRepository.UpdateRole(ctx, id, role)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("role update failed: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "*userService.UpdateRole").
		Str("id", id.Hex()).
		Str("role", role).
		Int64("matched", result.MatchedCount).
		Msg("user role updated")

	return result, nil
}

func (s *userService) Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	result, err := s.userRepository.Delete(ctx, id)
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("user deletion failed: %w", err)
	}

	return result, nil
}
