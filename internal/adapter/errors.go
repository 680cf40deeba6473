// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel errors returned by the adapters. HTTP statuses without a
// dedicated sentinel are reported as "http <code>: <body>".
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrEmptyIdentity is returned when the generator answers with no
	// results.
	ErrEmptyIdentity = errors.New("identity generator returned no results")
	// ErrEmptyID is returned when an update or delete is attempted without
	// an identifier.
	ErrEmptyID = errors.New("empty user id")
	// ErrMissingID is returned when the store acknowledges a create without
	// assigning an identifier.
	ErrMissingID = errors.New("store response carries no user id")
	// ErrInvalidAddress is returned by constructors for unusable base URLs.
	ErrInvalidAddress = errors.New("invalid address")
)
