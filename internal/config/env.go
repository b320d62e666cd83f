// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Mapping follows the
// `env` / `envPrefix` tags on [StructuredConfig] and its nested sections,
// so APP_LOG_FILE lands in App.LogFile, STORAGE_BACKEND in Storage.Backend
// and so on. A value that cannot be converted to the field type makes
// env.Parse fail and the error is returned wrapped.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
