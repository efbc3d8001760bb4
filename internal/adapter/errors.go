package adapter

import "errors"

var (
	// ErrPaymentNotConfigured is returned when no processor secret key is set.
	ErrPaymentNotConfigured = errors.New("payment processor is not configured")

	// ErrPaymentFailed wraps every failed processor call, whether the request
	// never reached the processor or was rejected by it.
	ErrPaymentFailed = errors.New("payment processor request failed")
)

var (
	ErrBadRequest    = errors.New("processor rejected request")
	ErrUnauthorized  = errors.New("processor rejected secret key")
	ErrCardDeclined  = errors.New("card declined")
	ErrRateLimited   = errors.New("processor rate limit exceeded")
	ErrProcessorDown = errors.New("processor unavailable")
)
