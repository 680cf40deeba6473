// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for the two remote
// services the directory client talks to.
//
// [StoreAdapter] covers the JSON collection service that holds the
// authoritative user records, and [IdentityAdapter] covers the third-party
// random identity generator used to auto-fill the create form. Both ship
// HTTP/REST implementations built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404). Every failure is logged at
// this boundary before it is returned.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-directory/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// StoreAdapter defines the four verbs supported by the remote user
// collection. A non-nil error always means the remote state is unknown and
// the caller must not apply any local change.
type StoreAdapter interface {
	// List fetches every record in the collection (GET /users).
	List(ctx context.Context) ([]models.User, error)

	// Create posts user as a JSON body (POST /users) and returns the record
	// as stored, including the store-assigned identifier.
	Create(ctx context.Context, user models.User) (models.User, error)

	// Update replaces the record identified by id with user
	// (PUT /users/:id) and returns the record as stored.
	Update(ctx context.Context, id models.UserID, user models.User) (models.User, error)

	// Delete removes the record identified by id (DELETE /users/:id). No
	// request body is sent.
	Delete(ctx context.Context, id models.UserID) error
}

// IdentityAdapter fetches generated identities used to pre-fill the create
// form.
type IdentityAdapter interface {
	// FetchRandom issues one GET to the generator and returns the first
	// result shape-adapted into a [models.User] without an identifier.
	FetchRandom(ctx context.Context) (models.User, error)
}
