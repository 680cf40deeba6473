// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/utils"
	"github.com/go-resty/resty/v2"
)

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidAddress)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// logFailure writes the diagnostic for a failed call. The request id is read
// back from the executed request where the client middleware stamped it.
func logFailure(log *logger.Logger, req *resty.Request, resp *resty.Response, err error, msg string) {
	event := log.Error().Err(err).
		Str("method", req.Method).
		Str("url", req.URL).
		Str("request_id", req.Header.Get(utils.RequestIDHeader))
	if resp != nil && resp.RawResponse != nil {
		event = event.Int("status", resp.StatusCode())
	}
	event.Msg(msg)
}
