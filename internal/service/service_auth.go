// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/scholarship-portal/internal/config"
	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/MKhiriev/scholarship-portal/internal/utils"
	"github.com/MKhiriev/scholarship-portal/internal/validators"
	"github.com/MKhiriev/scholarship-portal/models"
	"github.com/golang-jwt/jwt/v5"
)

// authService is the concrete implementation of AuthService.
// It issues and verifies HS256 access tokens; it never touches the store.
type authService struct {
	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// When empty, the issuer is neither set nor checked.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	validator validators.Validator
	logger    *logger.Logger
}

// NewAuthService constructs a new AuthService populated with token parameters
// from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(cfg config.App, validator validators.Validator, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		validator:     validator,
		logger:        logger,
	}
}

// CreateToken issues a signed JWT for the email in req.
//
// Returns ErrInvalidDataProvided when the email is missing or malformed and
// ErrTokenCreationFailed when signing fails.
func (a *authService) CreateToken(ctx context.Context, req models.TokenRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("func", "*authService.CreateToken").Msg("invalid token request")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	token, err := utils.GenerateJWTToken(req.Email, a.tokenIssuer, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.CreateToken").Msg("token signing failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// An expired token yields ErrTokenIsExpired; every other validation failure
// (bad signature, wrong algorithm, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	claims, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Claims{}, ErrTokenIsExpired
		}
		return models.Claims{}, ErrTokenIsExpiredOrInvalid
	}

	return claims, nil
}
