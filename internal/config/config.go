// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"os"
	"time"
)

// Storage drivers understood by [Storage.Driver].
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// StructuredConfig is the top-level configuration container for the
// scholarship portal server. It aggregates all sub-configurations and is
// populated by merging values from a .env file, environment variables,
// command-line flags, an optional JSON file and finally built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters and logging settings.
	App App `envPrefix:"APP_"`

	// Server holds network address, timeout and CORS settings for the HTTP
	// and gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Storage selects the persistence driver and holds its connection
	// settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Payment holds the payment processor credentials and endpoint.
	Payment Payment `envPrefix:"PAYMENT_"`

	// Port is the bare listening port (e.g. "5000"). It is used only when
	// Server.HTTPAddress is not set.
	// Env: PORT
	Port string `env:"PORT"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// EnvFile is the path of the .env file loaded before environment
	// variables are read. Only the process environment can set it.
	// Env: ENV_FILE
	EnvFile string `env:"ENV_FILE"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the optional "iss" claim. When empty the claim is
	// neither issued nor checked.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server. Empty
	// disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request. Zero means no bound.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins lists the origins accepted by the CORS middleware.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// Driver is one of "mongo", "postgres" or "sqlite".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// Mongo holds the document store connection settings.
	Mongo Mongo `envPrefix:"MONGO_"`

	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// Mongo holds connection settings for the MongoDB backend.
type Mongo struct {
	// URI is a complete connection string. When empty it is assembled from
	// User, Password, Host and AppName.
	URI      string `env:"URI"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	Host     string `env:"HOST"`
	AppName  string `env:"APP_NAME"`

	// Database is the logical database holding all collections.
	Database string `env:"DATABASE"`
}

// ConnectionURI returns URI when set, otherwise an SRV connection string
// built from the individual credentials.
func (m Mongo) ConnectionURI() string {
	if m.URI != "" {
		return m.URI
	}
	if m.Host == "" {
		return ""
	}

	u := url.URL{
		Scheme: "mongodb+srv",
		Host:   m.Host,
		Path:   "/",
	}
	if m.User != "" {
		u.User = url.UserPassword(m.User, m.Password)
	}

	q := url.Values{}
	q.Set("retryWrites", "true")
	q.Set("w", "majority")
	if m.AppName != "" {
		q.Set("appName", m.AppName)
	}
	u.RawQuery = q.Encode()

	return u.String()
}

// DB holds connection settings for the relational database backends.
type DB struct {
	// DSN is a PostgreSQL connection string or an SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Payment holds the payment processor settings.
type Payment struct {
	// SecretKey authenticates against the processor. Empty disables
	// payment intent creation.
	// Env: PAYMENT_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// BaseURL is the processor REST API root.
	// Env: PAYMENT_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Currency is the ISO currency code used for every intent.
	// Env: PAYMENT_CURRENCY
	Currency string `env:"CURRENCY"`

	// Timeout bounds a single processor call.
	// Env: PAYMENT_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration. For every field the first source that sets it wins:
//  1. Environment variables (after loading the .env file)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
