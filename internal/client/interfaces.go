// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-user-directory/internal/service"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the front end that presents a mounted directory until the operator
// leaves it.
type UI interface {
	Run(ctx context.Context, dir service.DirectoryService) error
}
