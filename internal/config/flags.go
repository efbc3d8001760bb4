package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// originList is a comma separated flag.Value.
type originList []string

func (o *originList) String() string {
	return strings.Join(*o, ",")
}

func (o *originList) Set(s string) error {
	for _, origin := range strings.Split(s, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			*o = append(*o, origin)
		}
	}
	return nil
}

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-allowed-origins comma separated CORS origins
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-log-level log level
//	-storage storage driver (mongo, postgres, sqlite)
//	-mongo-uri mongodb connection string
//	-mongo-db mongodb database name
//	-d database DSN for postgres or sqlite
//	-payment-secret-key payment processor secret key
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var origins originList
	var (
		requestTimeout   time.Duration
		tokenSignKey     string
		tokenIssuer      string
		tokenDuration    time.Duration
		logLevel         string
		storageDriver    string
		mongoURI         string
		mongoDatabase    string
		databaseDSN      string
		paymentSecretKey string
		jsonConfigPath   string
	)

	fs := flag.NewFlagSet("scholarship-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.Var(&origins, "allowed-origins", "Comma separated CORS origins")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&storageDriver, "storage", "", "Storage driver: mongo, postgres or sqlite")
	fs.StringVar(&mongoURI, "mongo-uri", "", "MongoDB connection string")
	fs.StringVar(&mongoDatabase, "mongo-db", "", "MongoDB database name")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&paymentSecretKey, "payment-secret-key", "", "Payment processor secret key")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			LogLevel:      logLevel,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
			AllowedOrigins: origins,
		},
		Storage: Storage{
			Driver: storageDriver,
			Mongo: Mongo{
				URI:      mongoURI,
				Database: mongoDatabase,
			},
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Payment: Payment{
			SecretKey: paymentSecretKey,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. Any other host must be "localhost" or
// a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "" && host != "localhost" {
		if net.ParseIP(host) == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
