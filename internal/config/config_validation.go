// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the merged [StructuredConfig] is internally
// consistent. Empty values are allowed here; defaults are applied when the
// client view is built.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}
	if cfg.App.NoticeTTL < 0 {
		return fmt.Errorf("%w: negative notice ttl", ErrInvalidAppConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if !isHTTPURL(cfg.Adapter.StoreAddress) {
		return fmt.Errorf("%w: store address %q", ErrInvalidAdapterConfigs, cfg.Adapter.StoreAddress)
	}
	if !isHTTPURL(cfg.Adapter.IdentityAddress) {
		return fmt.Errorf("%w: identity address %q", ErrInvalidAdapterConfigs, cfg.Adapter.IdentityAddress)
	}
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLogConfigs, err)
	}

	if cfg.App.NoticeTTL <= 0 {
		return ErrInvalidAppConfigs
	}

	return nil
}

// isHTTPURL accepts "host:port" shorthands as well as full URLs; the
// adapter adds the scheme when it is missing.
func isHTTPURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
