// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultHTTPAddress    = ":5000"
	defaultTokenDuration  = time.Hour
	defaultLogLevel       = "debug"
	defaultMongoDatabase  = "scholarshipsDB"
	defaultPaymentBaseURL = "https://api.stripe.com"
	defaultCurrency       = "usd"
	defaultPaymentTimeout = 15 * time.Second
	defaultEnvFile        = ".env"
)

var defaultAllowedOrigins = []string{
	"https://rayhan-scholarship.web.app",
	"http://localhost:5173",
}

// defaultConfig holds the values used for every field no other source set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenDuration: defaultTokenDuration,
			LogLevel:      defaultLogLevel,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			AllowedOrigins: append([]string(nil), defaultAllowedOrigins...),
		},
		Storage: Storage{
			Driver: DriverMongo,
			Mongo: Mongo{
				Database: defaultMongoDatabase,
			},
		},
		Payment: Payment{
			BaseURL:  defaultPaymentBaseURL,
			Currency: defaultCurrency,
			Timeout:  defaultPaymentTimeout,
		},
	}
}
