// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/scholarship-portal/internal/config"
	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/MKhiriev/scholarship-portal/models"
)

// Storages is the repository set built over one store handle. The handle is
// opened once by [NewStorages] and released by Close.
type Storages struct {
	UserRepository        UserRepository
	ScholarshipRepository ScholarshipRepository
	ApplicationRepository ApplicationRepository
	ReviewRepository      ReviewRepository

	closer func(ctx context.Context) error
}

// NewStorages opens the store selected by cfg.Driver and builds every
// repository over it. SQL stores are migrated before use.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		db, err := NewConnectMongo(ctx, cfg.Mongo, log)
		if err != nil {
			return nil, err
		}
		return NewMongoStorages(db, log), nil

	case config.DriverPostgres, config.DriverSQLite:
		var (
			db  *DB
			err error
		)
		if cfg.Driver == config.DriverPostgres {
			db, err = NewConnectPostgres(ctx, cfg.DB, log)
		} else {
			db, err = NewConnectSQLite(ctx, cfg.DB, log)
		}
		if err != nil {
			return nil, err
		}

		if err := db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Str("driver", cfg.Driver).Msg("error migrating database")
			_ = db.Close(ctx)
			return nil, err
		}
		return NewSQLStorages(db, log), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// NewMongoStorages builds the repository set over the collections of db.
func NewMongoStorages(db *MongoDB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewMongoUserRepository(db.Collection(models.User{}.TableName()), log),
		ScholarshipRepository: NewMongoScholarshipRepository(db.Collection(models.Scholarship{}.TableName()), log),
		ApplicationRepository: NewMongoApplicationRepository(db.Collection(models.Application{}.TableName()), log),
		ReviewRepository:      NewMongoReviewRepository(db.Collection(models.Review{}.TableName()), log),
		closer:                db.Close,
	}
}

// NewSQLStorages builds the repository set over the tables of db.
func NewSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:        NewUserRepository(db, log),
		ScholarshipRepository: NewScholarshipRepository(db, log),
		ApplicationRepository: NewApplicationRepository(db, log),
		ReviewRepository:      NewReviewRepository(db, log),
		closer:                db.Close,
	}
}

// Close releases the underlying store handle.
func (s *Storages) Close(ctx context.Context) error {
	if s.closer == nil {
		return nil
	}

	return s.closer(ctx)
}
