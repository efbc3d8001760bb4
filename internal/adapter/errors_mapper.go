package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// processorError is the error envelope returned by the processor's API.
type processorError struct {
	Error struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(resp)

	switch {
	case resp.StatusCode() == http.StatusBadRequest:
		return fmt.Errorf("%w: %w: %s", ErrPaymentFailed, ErrBadRequest, message)
	case resp.StatusCode() == http.StatusUnauthorized:
		return fmt.Errorf("%w: %w: %s", ErrPaymentFailed, ErrUnauthorized, message)
	case resp.StatusCode() == http.StatusPaymentRequired:
		return fmt.Errorf("%w: %w: %s", ErrPaymentFailed, ErrCardDeclined, message)
	case resp.StatusCode() == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w: %s", ErrPaymentFailed, ErrRateLimited, message)
	case resp.StatusCode() >= http.StatusInternalServerError:
		return fmt.Errorf("%w: %w: %s", ErrPaymentFailed, ErrProcessorDown, message)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrPaymentFailed, resp.StatusCode(), message)
	}
}

// errorMessage extracts the processor's error message, falling back to the
// raw body and then to the status text.
func errorMessage(resp *resty.Response) string {
	var envelope processorError
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Error.Message != "" {
		if envelope.Error.Code != "" {
			return envelope.Error.Code + ": " + envelope.Error.Message
		}
		return envelope.Error.Message
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}

	return body
}
