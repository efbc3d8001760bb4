package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 5000}, expected: ":5000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		wantHost    string
		wantPort    int
	}{
		{name: "localhost", input: "localhost:8080", wantHost: "localhost", wantPort: 8080},
		{name: "ipv4", input: "0.0.0.0:5000", wantHost: "0.0.0.0", wantPort: 5000},
		{name: "all interfaces", input: ":5000", wantHost: "", wantPort: 5000},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non-numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "hostname", input: "example.com:80", expectError: true},
		{name: "too many colons", input: "a:b:c", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, addr.Host)
			assert.Equal(t, tt.wantPort, addr.Port)
		})
	}
}

func TestParseFlags(t *testing.T) {
	args := []string{
		"-a", "localhost:8080",
		"-grpc-address", "127.0.0.1:9090",
		"-request-timeout", "30s",
		"-allowed-origins", "https://a.example, https://b.example",
		"-token-sign-key", "sign",
		"-token-issuer", "issuer",
		"-token-duration", "45m",
		"-log-level", "warn",
		"-storage", "sqlite",
		"-mongo-uri", "mongodb://localhost",
		"-mongo-db", "db",
		"-d", "/tmp/portal.db",
		"-payment-secret-key", "sk_test",
		"-config", "/etc/portal.json",
	}

	cfg, err := parseFlags(args)
	require.NoError(t, err)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "sign", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 45*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "mongodb://localhost", cfg.Storage.Mongo.URI)
	assert.Equal(t, "db", cfg.Storage.Mongo.Database)
	assert.Equal(t, "/tmp/portal.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "sk_test", cfg.Payment.SecretKey)
	assert.Equal(t, "/etc/portal.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "not-an-address"})
	assert.Error(t, err)
}
