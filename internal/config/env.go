// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using caarlos0/env.
// Struct fields are mapped via the `env` and `envPrefix` tags on
// [StructuredConfig], so ADAPTER_STORE_ADDRESS lands in
// cfg.Adapter.StoreAddress and LOG_LEVEL in cfg.Log.Level.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
