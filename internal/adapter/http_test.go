// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/scholarship-portal/internal/config"
	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedKey string

func (k fixedKey) Generate() string { return string(k) }

func newTestProcessor(t *testing.T, serverURL, secret string) *httpPaymentProcessor {
	t.Helper()
	cfg := config.Payment{SecretKey: secret, BaseURL: serverURL, Timeout: 5 * time.Second}

	p := NewHTTPPaymentProcessor(cfg, logger.Nop()).(*httpPaymentProcessor)
	p.keys = fixedKey("key-1")
	return p
}

func TestCreatePaymentIntent_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))
		assert.Equal(t, "key-1", r.Header.Get("Idempotency-Key"))
		assert.Contains(t, r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "1999", r.PostForm.Get("amount"))
		assert.Equal(t, "usd", r.PostForm.Get("currency"))
		assert.Equal(t, []string{"card"}, r.PostForm["payment_method_types[]"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_1","client_secret":"pi_1_secret_abc","amount":1999,"currency":"usd","status":"requires_payment_method"}`))
	}))
	defer srv.Close()

	p := newTestProcessor(t, srv.URL, "sk_test_123")
	intent, err := p.CreatePaymentIntent(context.Background(), 1999, "usd")

	require.NoError(t, err)
	assert.Equal(t, "pi_1", intent.ID)
	assert.Equal(t, "pi_1_secret_abc", intent.ClientSecret)
	assert.Equal(t, int64(1999), intent.Amount)
}

func TestCreatePaymentIntent_NotConfigured(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	p := newTestProcessor(t, srv.URL, "")
	_, err := p.CreatePaymentIntent(context.Background(), 100, "usd")

	assert.ErrorIs(t, err, ErrPaymentNotConfigured)
	assert.False(t, called)
}

func TestCreatePaymentIntent_Rejected(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     error
		wantMessage string
	}{
		{
			name:        "invalid amount",
			status:      http.StatusBadRequest,
			body:        `{"error":{"type":"invalid_request_error","code":"amount_too_small","message":"Amount must be at least 50 cents"}}`,
			wantErr:     ErrBadRequest,
			wantMessage: "amount_too_small: Amount must be at least 50 cents",
		},
		{
			name:        "wrong key",
			status:      http.StatusUnauthorized,
			body:        `{"error":{"type":"invalid_request_error","message":"Invalid API Key provided"}}`,
			wantErr:     ErrUnauthorized,
			wantMessage: "Invalid API Key provided",
		},
		{
			name:        "declined",
			status:      http.StatusPaymentRequired,
			body:        `{"error":{"type":"card_error","code":"card_declined","message":"Your card was declined."}}`,
			wantErr:     ErrCardDeclined,
			wantMessage: "card_declined",
		},
		{
			name:    "rate limited",
			status:  http.StatusTooManyRequests,
			wantErr: ErrRateLimited,
		},
		{
			name:        "processor down",
			status:      http.StatusBadGateway,
			body:        "upstream error",
			wantErr:     ErrProcessorDown,
			wantMessage: "upstream error",
		},
		{
			name:        "other status",
			status:      http.StatusNotFound,
			wantErr:     ErrPaymentFailed,
			wantMessage: "http 404",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			p := newTestProcessor(t, srv.URL, "sk_test_123")
			_, err := p.CreatePaymentIntent(context.Background(), 10, "usd")

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrPaymentFailed)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMessage != "" {
				assert.Contains(t, err.Error(), tt.wantMessage)
			}
		})
	}
}

func TestCreatePaymentIntent_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	p := newTestProcessor(t, url, "sk_test_123")
	_, err := p.CreatePaymentIntent(context.Background(), 10, "usd")

	assert.ErrorIs(t, err, ErrPaymentFailed)
}

func TestCreatePaymentIntent_SingleAttemptWithFreshKeys(t *testing.T) {
	var (
		mu   sync.Mutex
		keys []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		keys = append(keys, r.Header.Get("Idempotency-Key"))
		mu.Unlock()
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	cfg := config.Payment{SecretKey: "sk_test_123", BaseURL: srv.URL, Timeout: 5 * time.Second}
	p := NewHTTPPaymentProcessor(cfg, logger.Nop())

	_, err := p.CreatePaymentIntent(context.Background(), 10, "usd")
	require.ErrorIs(t, err, ErrProcessorDown)
	_, err = p.CreatePaymentIntent(context.Background(), 10, "usd")
	require.ErrorIs(t, err, ErrProcessorDown)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, keys, 2, "a failed call must not be retried")
	assert.NotEmpty(t, keys[0])
	assert.NotEqual(t, keys[0], keys[1])
}
