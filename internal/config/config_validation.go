// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] can start the
// server: a token sign key exists and the selected storage driver is known
// and has its connection settings.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	switch cfg.Storage.Driver {
	case DriverMongo:
		if cfg.Storage.Mongo.ConnectionURI() == "" {
			return fmt.Errorf("%w: mongo uri or host is required", ErrInvalidStorageConfigs)
		}
		if cfg.Storage.Mongo.Database == "" {
			return fmt.Errorf("%w: mongo database is required", ErrInvalidStorageConfigs)
		}
	case DriverPostgres, DriverSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: database DSN is required for %s", ErrInvalidStorageConfigs, cfg.Storage.Driver)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorageDriver, cfg.Storage.Driver)
	}

	return nil
}
