// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-user-directory/internal/adapter"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/validators"
	"github.com/MKhiriev/go-user-directory/models"
)

// Notice texts shown by the UI.
const (
	MsgLoadFailed      = "could not load users"
	MsgCreated         = "user created successfully"
	MsgCreateFailed    = "could not create user"
	MsgUpdated         = "user updated successfully"
	MsgInvalidEdit     = "invalid data"
	MsgUpdateFailed    = "could not update user"
	MsgDeleted         = "user deleted"
	MsgDeleteFailed    = "could not delete user"
	MsgFavoriteFailed  = "could not update favorite"
	MsgAutoFilled      = "form auto-filled with a generated identity"
	MsgAutoFillFailed  = "could not fetch a generated identity"
	MsgInvalidUserData = "invalid user data"
)

type directoryService struct {
	state     *DirectoryState
	store     adapter.StoreAdapter
	identity  adapter.IdentityAdapter
	validator validators.Validator

	logger *logger.Logger
}

// NewDirectoryService creates a controller over a fresh [DirectoryState].
// The state lives as long as the returned service.
func NewDirectoryService(
	store adapter.StoreAdapter,
	identity adapter.IdentityAdapter,
	validator validators.Validator,
	log *logger.Logger,
) DirectoryService {
	return &directoryService{
		state:     NewDirectoryState(),
		store:     store,
		identity:  identity,
		validator: validator,
		logger:    log,
	}
}

func danger(msg string) models.Notice {
	return models.Notice{Message: msg, Severity: models.SeverityDanger}
}

func success(msg string) models.Notice {
	return models.Notice{Message: msg, Severity: models.SeveritySuccess}
}

// Load implements DirectoryService.
func (d *directoryService) Load(ctx context.Context) (models.Notice, error) {
	users, err := d.store.List(ctx)
	if err != nil {
		return danger(MsgLoadFailed), fmt.Errorf("list users: %w", err)
	}

	d.state.mu.Lock()
	d.state.replaceAll(users)
	d.state.mu.Unlock()

	d.logger.Debug().Int("count", len(users)).Msg("directory loaded")
	return models.Notice{}, nil
}

// ToggleFilter implements DirectoryService.
func (d *directoryService) ToggleFilter() {
	d.state.mu.Lock()
	defer d.state.mu.Unlock()

	d.state.toggleFilter()
}

// RequestEdit implements DirectoryService.
func (d *directoryService) RequestEdit(id models.UserID) (models.User, error) {
	d.state.mu.Lock()
	defer d.state.mu.Unlock()

	u, ok := find(d.state.view, id)
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	d.state.editingID = id
	return u, nil
}

// CancelEdit implements DirectoryService.
func (d *directoryService) CancelEdit() {
	d.state.mu.Lock()
	defer d.state.mu.Unlock()

	d.state.editingID = ""
}

// SaveEdit implements DirectoryService. The selected record is merged with
// the trimmed fields and sent whole; the store response replaces the record
// in both sequences only after the call succeeds. On a remote failure the
// editing slot is kept so the operator can retry or cancel.
func (d *directoryService) SaveEdit(ctx context.Context, fullName, email, phone string) (models.Notice, error) {
	d.state.mu.RLock()
	id := d.state.editingID
	current, ok := find(d.state.all, id)
	d.state.mu.RUnlock()

	if id == "" {
		return models.Notice{}, ErrNoSelection
	}

	candidate := models.User{
		FullName: strings.TrimSpace(fullName),
		Email:    strings.TrimSpace(email),
		Phone:    strings.TrimSpace(phone),
	}
	err := d.validator.Validate(ctx, candidate,
		validators.FieldEmail, validators.FieldPhone, validators.FieldNameRequired)
	if err != nil {
		return danger(MsgInvalidEdit), fmt.Errorf("validate edit: %w", err)
	}

	if !ok {
		return models.Notice{}, ErrUserNotFound
	}

	merged := current
	merged.FullName = candidate.FullName
	merged.Email = candidate.Email
	merged.Phone = candidate.Phone

	updated, err := d.store.Update(ctx, id, merged)
	if err != nil {
		return danger(MsgUpdateFailed), fmt.Errorf("update user %s: %w", id, err)
	}
	// the slot id is authoritative; a reshaped echo (7 vs "7") must still
	// land on the selected record
	updated.ID = id

	d.state.mu.Lock()
	d.state.replace(updated)
	if d.state.editingID == id {
		d.state.editingID = ""
	}
	d.state.mu.Unlock()

	return success(MsgUpdated), nil
}

// RequestDelete implements DirectoryService.
func (d *directoryService) RequestDelete(id models.UserID) (models.User, error) {
	d.state.mu.Lock()
	defer d.state.mu.Unlock()

	u, ok := find(d.state.view, id)
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	d.state.deletingID = id
	return u, nil
}

// CancelDelete implements DirectoryService.
func (d *directoryService) CancelDelete() {
	d.state.mu.Lock()
	defer d.state.mu.Unlock()

	d.state.deletingID = ""
}

// ConfirmDelete implements DirectoryService. The pending slot is cleared
// whatever the outcome; the sequences change only after the store confirms.
func (d *directoryService) ConfirmDelete(ctx context.Context) (models.Notice, error) {
	d.state.mu.RLock()
	id := d.state.deletingID
	d.state.mu.RUnlock()

	if id == "" {
		return models.Notice{}, ErrNoSelection
	}

	err := d.store.Delete(ctx, id)

	d.state.mu.Lock()
	defer d.state.mu.Unlock()

	if d.state.deletingID == id {
		d.state.deletingID = ""
	}
	if err != nil {
		return danger(MsgDeleteFailed), fmt.Errorf("delete user %s: %w", id, err)
	}

	d.state.remove(id)
	if d.state.editingID == id {
		d.state.editingID = ""
	}

	return models.Notice{Message: MsgDeleted, Severity: models.SeverityWarning}, nil
}

// ToggleFavorite implements DirectoryService. When the favorites filter is
// active and the record is no longer a favorite the view is re-derived so
// the record disappears at once.
func (d *directoryService) ToggleFavorite(ctx context.Context, id models.UserID) (models.Notice, error) {
	d.state.mu.RLock()
	current, ok := find(d.state.all, id)
	d.state.mu.RUnlock()

	if !ok {
		return models.Notice{}, ErrUserNotFound
	}

	flipped := current.Favorited()
	if _, err := d.store.Update(ctx, id, flipped); err != nil {
		return danger(MsgFavoriteFailed), fmt.Errorf("toggle favorite %s: %w", id, err)
	}

	d.state.mu.Lock()
	defer d.state.mu.Unlock()

	d.state.replace(flipped)
	if d.state.favoritesOnly && !flipped.IsFavorite {
		d.state.rederive()
	}

	return models.Notice{}, nil
}

// Create implements DirectoryService. Fields are trimmed, the favorite flag
// defaults to false and a missing image falls back to
// [models.DefaultProfileImage]. Validation stops at the first failing field
// and no request is sent.
func (d *directoryService) Create(ctx context.Context, form models.User) (models.User, models.Notice, error) {
	u := models.User{
		FullName:     strings.TrimSpace(form.FullName),
		Email:        strings.TrimSpace(form.Email),
		Phone:        strings.TrimSpace(form.Phone),
		ProfileImage: strings.TrimSpace(form.ProfileImage),
		IsFavorite:   form.IsFavorite,
	}
	if u.ProfileImage == "" {
		u.ProfileImage = models.DefaultProfileImage
	}

	if err := d.validator.Validate(ctx, u); err != nil {
		return models.User{}, danger(validationMessage(err)), fmt.Errorf("validate user: %w", err)
	}

	created, err := d.store.Create(ctx, u)
	if err != nil {
		return models.User{}, danger(MsgCreateFailed), fmt.Errorf("create user: %w", err)
	}
	if created.ID == "" {
		return models.User{}, danger(MsgCreateFailed), fmt.Errorf("create user: %w", ErrUnassignedID)
	}

	d.state.mu.Lock()
	d.state.append(created)
	d.state.mu.Unlock()

	d.logger.Debug().Str("id", created.ID.String()).Msg("user appended to directory")
	return created, success(MsgCreated), nil
}

// AutoFill implements DirectoryService.
func (d *directoryService) AutoFill(ctx context.Context) (models.User, models.Notice, error) {
	u, err := d.identity.FetchRandom(ctx)
	if err != nil {
		return models.User{}, danger(MsgAutoFillFailed), fmt.Errorf("fetch random identity: %w", err)
	}
	if u.ProfileImage == "" {
		u.ProfileImage = models.DefaultProfileImage
	}

	return u, success(MsgAutoFilled), nil
}

func (d *directoryService) View() []models.User {
	d.state.mu.RLock()
	defer d.state.mu.RUnlock()
	return slices.Clone(d.state.view)
}

func (d *directoryService) All() []models.User {
	d.state.mu.RLock()
	defer d.state.mu.RUnlock()
	return slices.Clone(d.state.all)
}

func (d *directoryService) Editing() (models.UserID, bool) {
	d.state.mu.RLock()
	defer d.state.mu.RUnlock()
	return d.state.editingID, d.state.editingID != ""
}

func (d *directoryService) PendingDelete() (models.UserID, bool) {
	d.state.mu.RLock()
	defer d.state.mu.RUnlock()
	return d.state.deletingID, d.state.deletingID != ""
}

func (d *directoryService) FavoritesOnly() bool {
	d.state.mu.RLock()
	defer d.state.mu.RUnlock()
	return d.state.favoritesOnly
}

// validationMessage names the failing field for the create notice.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, validators.ErrInvalidName),
		errors.Is(err, validators.ErrInvalidEmail),
		errors.Is(err, validators.ErrInvalidPhone):
		return err.Error()
	default:
		return MsgInvalidUserData
	}
}
