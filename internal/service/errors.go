package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidPrice        = errors.New("price must be a positive number")

	// ErrUserAlreadyExists is returned by UserService.Create when a user with
	// the same email is already stored. Nothing is inserted in that case.
	ErrUserAlreadyExists = errors.New("user already exists")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
