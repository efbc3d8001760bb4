// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/shopspring/decimal"

// PaymentIntentRequest carries the price a client wants to pay.
// Price accepts both JSON numbers and numeric strings.
type PaymentIntentRequest struct {
	Price decimal.Decimal `json:"price"`
}

// MinorUnits converts the price into the smallest currency denomination,
// truncating anything below one minor unit (19.999 -> 1999).
func (r PaymentIntentRequest) MinorUnits() int64 {
	return r.Price.Shift(2).IntPart()
}

// PaymentIntent is the subset of the processor's payment intent object
// that the server cares about.
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

// PaymentIntentResponse is returned to the client after an intent was created.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
