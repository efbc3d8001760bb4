// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/scholarship-portal/internal/adapter"
	"github.com/MKhiriev/scholarship-portal/internal/config"
	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/MKhiriev/scholarship-portal/models"
)

type paymentService struct {
	processor adapter.PaymentProcessor
	currency  string

	logger *logger.Logger
}

func NewPaymentService(processor adapter.PaymentProcessor, cfg config.Payment, logger *logger.Logger) PaymentService {
	return &paymentService{
		processor: processor,
		currency:  cfg.Currency,
		logger:    logger,
	}
}

// CreatePaymentIntent converts req.Price into minor units and requests a card
// payment intent for that amount. A price that does not amount to at least
// one minor unit is rejected with ErrInvalidPrice before the processor is
// called.
func (s *paymentService) CreatePaymentIntent(ctx context.Context, req models.PaymentIntentRequest) (models.PaymentIntentResponse, error) {
	amount := req.MinorUnits()
	if amount <= 0 {
		logger.FromContext(ctx).Error().
			Str("func", "*paymentService.CreatePaymentIntent").
			Str("price", req.Price.String()).
			Msg("invalid price")
		return models.PaymentIntentResponse{}, ErrInvalidPrice
	}

	intent, err := s.processor.CreatePaymentIntent(ctx, amount, s.currency)
	if err != nil {
		return models.PaymentIntentResponse{}, fmt.Errorf("payment intent creation failed: %w", err)
	}

	return models.PaymentIntentResponse{ClientSecret: intent.ClientSecret}, nil
}
