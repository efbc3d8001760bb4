// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the external services the portal
// depends on.
//
// The primary abstraction is [PaymentProcessor], which decouples the service
// layer from the card processor's REST API. The package ships an HTTP
// implementation ([NewHTTPPaymentProcessor]).
//
// Error values defined in errors.go are mapped from processor responses by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrPaymentFailed]
// for any rejected request).
package adapter

import (
	"context"

	"github.com/MKhiriev/scholarship-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// PaymentProcessor creates payment intents at the card processor.
type PaymentProcessor interface {
	// CreatePaymentIntent asks the processor for a card payment intent of
	// amount minor units in currency. The returned intent carries the client
	// secret the browser needs to confirm the payment.
	CreatePaymentIntent(ctx context.Context, amount int64, currency string) (models.PaymentIntent, error)
}
