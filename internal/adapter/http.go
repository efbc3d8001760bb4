// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/MKhiriev/scholarship-portal/internal/config"
	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/MKhiriev/scholarship-portal/internal/utils"
	"github.com/MKhiriev/scholarship-portal/models"
)

const paymentIntentsPath = "/v1/payment_intents"

type keyGenerator interface {
	Generate() string
}

type httpPaymentProcessor struct {
	client    *utils.HTTPClient
	secretKey string
	keys      keyGenerator

	logger *logger.Logger
}

// NewHTTPPaymentProcessor constructs a REST implementation of
// [PaymentProcessor] talking to cfg.BaseURL with cfg.Timeout per request.
//
// An empty cfg.SecretKey is not an error here: the processor is built and
// every call fails with [ErrPaymentNotConfigured], so the rest of the server
// keeps working without payment credentials.
func NewHTTPPaymentProcessor(cfg config.Payment, logger *logger.Logger) PaymentProcessor {
	if cfg.SecretKey == "" {
		logger.Warn().Str("func", "NewHTTPPaymentProcessor").Msg("payment secret key is empty, payment intents are disabled")
	}

	return &httpPaymentProcessor{
		client:    utils.NewHTTPClient(cfg.BaseURL, cfg.Timeout),
		secretKey: cfg.SecretKey,
		keys:      utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

// CreatePaymentIntent implements [PaymentProcessor]. It POSTs a form encoded
// request to /v1/payment_intents authenticated with the secret key. The
// request is sent once. Its Idempotency-Key is new per call and is logged
// on rejection so the attempt can be found in the processor's logs.
func (p *httpPaymentProcessor) CreatePaymentIntent(ctx context.Context, amount int64, currency string) (models.PaymentIntent, error) {
	if p.secretKey == "" {
		return models.PaymentIntent{}, ErrPaymentNotConfigured
	}

	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amount, 10))
	form.Set("currency", currency)
	form.Add("payment_method_types[]", "card")

	idempotencyKey := p.keys.Generate()

	var intent models.PaymentIntent
	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(p.secretKey).
		SetHeader("Idempotency-Key", idempotencyKey).
		SetFormDataFromValues(form).
		SetResult(&intent).
		Post(paymentIntentsPath)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*httpPaymentProcessor.CreatePaymentIntent").Msg("payment intent request failed")
		return models.PaymentIntent{}, fmt.Errorf("%w: %w", ErrPaymentFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*httpPaymentProcessor.CreatePaymentIntent").
			Int("status", resp.StatusCode()).
			Str("idempotency_key", idempotencyKey).
			Msg("payment intent rejected")
		return models.PaymentIntent{}, err
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*httpPaymentProcessor.CreatePaymentIntent").
		Str("intent_id", intent.ID).
		Int64("amount", amount).
		Str("currency", currency).
		Msg("payment intent created")

	return intent, nil
}
