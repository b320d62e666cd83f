// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_LOG_FILE": "/var/log/keeper.log",
		"APP_VERSION":  "1.2.3",

		"STORAGE_BACKEND": "sqlite",

		// Storage has nested prefixes: STORAGE_ + DB_ / FILES_
		"STORAGE_DB_DATABASE_URI": "keeper.db",
		"STORAGE_FILES_DATA_DIR":  "/var/lib/keeper",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "/var/log/keeper.log", cfg.App.LogFile)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "keeper.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/lib/keeper", cfg.Storage.Files.DataDir)
}

func TestParseEnv_EmptyEnvironment(t *testing.T) {
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}
