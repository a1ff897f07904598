// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads a [StructuredConfig] from the process environment.
// Sections are addressed through their envPrefix tags, so APP_SECRET_KEY
// lands in App.SecretKey and STORAGE_DB_DRIVER in Storage.DB.Driver.
// Unset variables take their envDefault.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}
	return &cfg, nil
}
