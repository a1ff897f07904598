// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of
// the ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	app := cfg.App
	switch {
	case app.SecretKey == "":
		return fmt.Errorf("%w: secret key is required", ErrInvalidAppConfigs)
	case app.TokenIssuer == "":
		return fmt.Errorf("%w: token issuer is required", ErrInvalidAppConfigs)
	case app.SessionDuration <= 0 || app.RememberDuration <= 0 || app.ResetTokenDuration <= 0:
		return fmt.Errorf("%w: token durations must be positive", ErrInvalidAppConfigs)
	case app.PageSize < 1:
		return fmt.Errorf("%w: page size must be positive", ErrInvalidAppConfigs)
	}

	db := cfg.Storage.DB
	if db.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if db.Driver != DriverSQLite && db.Driver != DriverPostgres {
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, db.Driver)
	}

	switch cfg.Storage.Avatars.Backend {
	case AvatarBackendFile:
		if cfg.Storage.Avatars.Dir == "" {
			return fmt.Errorf("%w: avatar directory is required", ErrInvalidStorageConfigs)
		}
	case AvatarBackendS3:
		if cfg.Storage.Avatars.S3.Bucket == "" {
			return fmt.Errorf("%w: s3 bucket is required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unsupported avatar backend %q", ErrInvalidStorageConfigs, cfg.Storage.Avatars.Backend)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	return nil
}
