// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-user-directory/models"
)

// DirectoryService is the single controller that owns a [DirectoryState] and
// performs every directory operation against the remote store.
//
// Every mutating method returns the notice the UI should show (a zero
// [models.Notice] means "show nothing") together with an error. A non-nil
// error guarantees that the local sequences were left unchanged.
type DirectoryService interface {
	// Load replaces the full set with the store's collection and re-derives
	// the view.
	Load(ctx context.Context) (models.Notice, error)

	// ToggleFilter flips the favorites-only flag and re-derives the view from
	// the full set.
	ToggleFilter()

	// RequestEdit selects id for editing and returns the selected record.
	// Returns ErrUserNotFound when id is not in the view.
	RequestEdit(id models.UserID) (models.User, error)

	// CancelEdit clears the editing slot.
	CancelEdit()

	// SaveEdit validates the three editable fields and replaces the selected
	// record remotely. Local state changes only after the store confirms.
	SaveEdit(ctx context.Context, fullName, email, phone string) (models.Notice, error)

	// RequestDelete selects id for deletion and returns the selected record.
	// Returns ErrUserNotFound when id is not in the view.
	RequestDelete(id models.UserID) (models.User, error)

	// CancelDelete clears the pending-delete slot.
	CancelDelete()

	// ConfirmDelete removes the pending record remotely and, once the store
	// confirms, from both sequences.
	ConfirmDelete(ctx context.Context) (models.Notice, error)

	// ToggleFavorite flips the favorite flag of id remotely and, once the
	// store confirms, locally.
	ToggleFavorite(ctx context.Context, id models.UserID) (models.Notice, error)

	// Create validates form and posts it to the store. The stored record is
	// appended to the full set and, when it passes the filter, to the view.
	Create(ctx context.Context, form models.User) (models.User, models.Notice, error)

	// AutoFill fetches a generated identity for the create form.
	AutoFill(ctx context.Context) (models.User, models.Notice, error)

	// View returns a copy of the rendered sequence.
	View() []models.User
	// All returns a copy of the full set.
	All() []models.User
	// Editing returns the id in the editing slot, if any.
	Editing() (models.UserID, bool)
	// PendingDelete returns the id in the pending-delete slot, if any.
	PendingDelete() (models.UserID, bool)
	// FavoritesOnly reports whether the view is the favorites subset.
	FavoritesOnly() bool
}

// ActionHandlers receives the per-card actions routed by [Dispatcher].
type ActionHandlers interface {
	OnEdit(id models.UserID)
	OnDelete(id models.UserID)
	OnToggleFavorite(id models.UserID)
}
