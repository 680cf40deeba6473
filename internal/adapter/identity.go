// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/utils"
	"github.com/MKhiriev/go-user-directory/models"
)

type httpIdentityAdapter struct {
	client   *utils.HTTPClient
	endpoint string
	logger   *logger.Logger
}

// NewHTTPIdentityAdapter constructs an [IdentityAdapter] that GETs
// cfg.IdentityAddress (e.g. "https://randomuser.me/api/") with no parameters.
func NewHTTPIdentityAdapter(cfg config.ClientAdapter, log *logger.Logger) (IdentityAdapter, error) {
	normalized, err := normalizeBaseURL(cfg.IdentityAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid identity address: %w", err)
	}

	if strings.HasSuffix(strings.TrimSpace(cfg.IdentityAddress), "/") {
		normalized += "/"
	}

	client := utils.NewHTTPClient().
		WithTimeout(cfg.RequestTimeout).
		WithRequestID(utils.NewUUIDGenerator())

	return &httpIdentityAdapter{client: client, endpoint: normalized, logger: log}, nil
}

// FetchRandom implements [IdentityAdapter].
func (h *httpIdentityAdapter) FetchRandom(ctx context.Context) (models.User, error) {
	var out models.RandomIdentityResponse

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(&out)
	resp, err := req.Get(h.endpoint)
	if err != nil {
		err = fmt.Errorf("fetch random identity request: %w", err)
		logFailure(h.logger, req, resp, err, "fetch random identity failed")
		return models.User{}, err
	}
	if err = mapHTTPError(resp); err != nil {
		logFailure(h.logger, req, resp, err, "fetch random identity failed")
		return models.User{}, err
	}

	if len(out.Results) == 0 {
		logFailure(h.logger, req, resp, ErrEmptyIdentity, "fetch random identity failed")
		return models.User{}, ErrEmptyIdentity
	}

	return out.Results[0].ToUser(), nil
}
