// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that a later non-zero field overrides
// an earlier one while zero fields keep the earlier value.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{StoreAddress: "http://env:3000", RequestTimeout: time.Second}},
		&StructuredConfig{Adapter: Adapter{StoreAddress: "http://flag:3000"}},
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "http://flag:3000", cfg.Adapter.StoreAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

// TestBuild_RejectsNegativeTimeout verifies structured validation.
func TestBuild_RejectsNegativeTimeout(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Adapter: Adapter{RequestTimeout: -time.Second}})

	_, err := b.build()

	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPath verifies that no JSON layer is added without a path.
func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_OverridesEarlierSources verifies that the JSON file is merged
// last.
func TestWithJSON_OverridesEarlierSources(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"adapter": map[string]any{"store_address": "http://json:3000"},
		"log":     map[string]any{"level": "warn"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Adapter:      Adapter{StoreAddress: "http://env:3000"},
		JSONFilePath: path,
	})

	cfg, err := b.withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, "http://json:3000", cfg.Adapter.StoreAddress)
	assert.Equal(t, "warn", cfg.Log.Level)
}

// TestWithJSON_MissingFile verifies that an unreadable file is recorded as a
// builder error.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/definitely/missing.json"})

	_, err := b.withJSON().build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

// ── full pipeline ─────────────────────────────────────────────────────────────

// TestGetClientConfig_Defaults verifies that defaults fill every setting no
// source provided.
func TestGetClientConfig_Defaults(t *testing.T) {
	withArgs(t)

	cfg, err := GetClientConfig()

	require.NoError(t, err)
	assert.Equal(t, DefaultStoreAddress, cfg.Adapter.StoreAddress)
	assert.Equal(t, DefaultIdentityAddress, cfg.Adapter.IdentityAddress)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultNoticeTTL, cfg.App.NoticeTTL)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
}

// TestGetClientConfig_EnvThenFlags verifies the env < flags priority.
func TestGetClientConfig_EnvThenFlags(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_STORE_ADDRESS":   "http://env:3000",
		"ADAPTER_REQUEST_TIMEOUT": "7s",
	})
	withArgs(t, "-a", "http://flag:3000")

	cfg, err := GetClientConfig()

	require.NoError(t, err)
	assert.Equal(t, "http://flag:3000", cfg.Adapter.StoreAddress)
	assert.Equal(t, 7*time.Second, cfg.Adapter.RequestTimeout)
}

// TestGetClientConfig_InvalidLevel verifies client validation.
func TestGetClientConfig_InvalidLevel(t *testing.T) {
	withArgs(t, "-log-level", "loud")

	_, err := GetClientConfig()

	assert.ErrorIs(t, err, ErrInvalidLogConfigs)
}

// TestGetClientConfig_InvalidStoreAddress verifies client validation.
func TestGetClientConfig_InvalidStoreAddress(t *testing.T) {
	withArgs(t, "-a", "ftp://files.local")

	_, err := GetClientConfig()

	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

func TestIsHTTPURL(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"http://localhost:3000", true},
		{"https://randomuser.me/api/", true},
		{"localhost:3000", true},
		{"", false},
		{"   ", false},
		{"ftp://host", false},
		{"http://", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, isHTTPURL(tt.raw))
		})
	}
}
