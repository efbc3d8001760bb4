// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/scholarship-portal/internal/config"
	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"
)

// MongoDB is the document store handle shared by all mongo repositories.
// It is created once at startup and closed on shutdown.
type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *logger.Logger
}

// NewConnectMongo creates a client for the configured deployment using the
// Stable API v1 in strict mode. The deployment is not pinged: a broken
// connection surfaces as [ErrStorageUnavailable] on the first operation.
func NewConnectMongo(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*MongoDB, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(cfg.ConnectionURI()).
		SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error creating mongo client")
		return nil, fmt.Errorf("error creating mongo client: %w", err)
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", cfg.Database).Msg("mongo client created")

	return &MongoDB{
		client:   client,
		database: client.Database(cfg.Database),
		logger:   log,
	}, nil
}

// Collection returns the named collection of the configured database.
func (db *MongoDB) Collection(name string) *mongo.Collection {
	return db.database.Collection(name)
}

// Close disconnects the client.
func (db *MongoDB) Close(ctx context.Context) error {
	if err := db.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("error disconnecting mongo client: %w", err)
	}

	db.logger.Info().Str("func", "*MongoDB.Close").Msg("mongo client disconnected")
	return nil
}

// mongoError maps driver errors onto the package sentinels, keeping the
// original error in the chain.
func mongoError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	}

	var selectionErr topology.ServerSelectionError
	if mongo.IsNetworkError(err) ||
		mongo.IsTimeout(err) ||
		errors.Is(err, mongo.ErrClientDisconnected) ||
		errors.As(err, &selectionErr) {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return err
}
