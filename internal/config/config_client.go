// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds UI settings derived from the structured config.
type ClientApp struct {
	// NoticeTTL is how long a notice stays visible.
	NoticeTTL time.Duration
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// StoreAddress is the base URL of the user store.
	StoreAddress string
	// IdentityAddress is the URL of the random identity generator.
	IdentityAddress string
	// RequestTimeout is the timeout for outbound requests; zero means none.
	RequestTimeout time.Duration
}

// ClientLog holds logging settings for the client.
type ClientLog struct {
	// File is the log destination; empty selects the default file.
	File string
	// Level is the zerolog level name.
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains UI settings.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Log contains logging settings.
	Log ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], fills defaults for
// settings no source provided, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			NoticeTTL: cfg.App.NoticeTTL,
		},
		Adapter: ClientAdapter{
			StoreAddress:    cfg.Adapter.StoreAddress,
			IdentityAddress: cfg.Adapter.IdentityAddress,
			RequestTimeout:  cfg.Adapter.RequestTimeout,
		},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
	}

	if clientCfg.Adapter.StoreAddress == "" {
		clientCfg.Adapter.StoreAddress = DefaultStoreAddress
	}
	if clientCfg.Adapter.IdentityAddress == "" {
		clientCfg.Adapter.IdentityAddress = DefaultIdentityAddress
	}
	if clientCfg.Log.Level == "" {
		clientCfg.Log.Level = DefaultLogLevel
	}
	if clientCfg.App.NoticeTTL == 0 {
		clientCfg.App.NoticeTTL = DefaultNoticeTTL
	}

	return clientCfg
}
