// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-directory/internal/config"
	"github.com/MKhiriev/go-user-directory/internal/logger"
	"github.com/MKhiriev/go-user-directory/internal/utils"
	"github.com/MKhiriev/go-user-directory/models"
)

const (
	usersPath = "/users"
	userPath  = "/users/{id}"

	jsonContentType = "application/json"
)

type httpStoreAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPStoreAdapter constructs an HTTP/REST implementation of
// [StoreAdapter] rooted at cfg.StoreAddress (e.g. "http://localhost:3000").
// A missing scheme defaults to http. cfg.RequestTimeout bounds each request;
// zero leaves requests unbounded.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPStoreAdapter(cfg config.ClientAdapter, log *logger.Logger) (StoreAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.StoreAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid store address: %w", err)
	}

	client := utils.NewHTTPClient().
		WithTimeout(cfg.RequestTimeout).
		WithRequestID(utils.NewUUIDGenerator())
	client.SetBaseURL(baseURL)

	return &httpStoreAdapter{client: client, logger: log}, nil
}

// List implements [StoreAdapter]. It GETs /users and decodes the JSON array.
func (h *httpStoreAdapter) List(ctx context.Context) ([]models.User, error) {
	var users []models.User

	req := h.client.R().
		SetContext(ctx).
		ForceContentType(jsonContentType).
		SetResult(&users)
	resp, err := req.Get(usersPath)
	if err != nil {
		err = fmt.Errorf("list users request: %w", err)
		logFailure(h.logger, req, resp, err, "list users failed")
		return nil, err
	}
	if err = mapHTTPError(resp); err != nil {
		logFailure(h.logger, req, resp, err, "list users failed")
		return nil, err
	}

	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// Create implements [StoreAdapter]. It POSTs user to /users and returns the
// stored record with its store-assigned identifier. Responses are decoded as
// JSON whatever their content type; a reply without an id is ErrMissingID.
func (h *httpStoreAdapter) Create(ctx context.Context, user models.User) (models.User, error) {
	var created models.User

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", jsonContentType).
		ForceContentType(jsonContentType).
		SetBody(user).
		SetResult(&created)
	resp, err := req.Post(usersPath)
	if err != nil {
		err = fmt.Errorf("create user request: %w", err)
		logFailure(h.logger, req, resp, err, "create user failed")
		return models.User{}, err
	}
	if err = mapHTTPError(resp); err != nil {
		logFailure(h.logger, req, resp, err, "create user failed")
		return models.User{}, err
	}
	if created.ID == "" {
		err = ErrMissingID
		logFailure(h.logger, req, resp, err, "create user failed")
		return models.User{}, err
	}

	h.logger.Debug().Str("id", created.ID.String()).Msg("user created")
	return created, nil
}

// Update implements [StoreAdapter]. It PUTs the whole record to /users/:id
// and returns the stored record, which callers trust verbatim.
func (h *httpStoreAdapter) Update(ctx context.Context, id models.UserID, user models.User) (models.User, error) {
	if id == "" {
		return models.User{}, ErrEmptyID
	}

	var updated models.User

	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", jsonContentType).
		ForceContentType(jsonContentType).
		SetPathParam("id", id.String()).
		SetBody(user).
		SetResult(&updated)
	resp, err := req.Put(userPath)
	if err != nil {
		err = fmt.Errorf("update user request: %w", err)
		logFailure(h.logger, req, resp, err, "update user failed")
		return models.User{}, err
	}
	if err = mapHTTPError(resp); err != nil {
		logFailure(h.logger, req, resp, err, "update user failed")
		return models.User{}, err
	}

	return updated, nil
}

// Delete implements [StoreAdapter]. It sends DELETE /users/:id without a
// body.
func (h *httpStoreAdapter) Delete(ctx context.Context, id models.UserID) error {
	if id == "" {
		return ErrEmptyID
	}

	req := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id.String())
	resp, err := req.Delete(userPath)
	if err != nil {
		err = fmt.Errorf("delete user request: %w", err)
		logFailure(h.logger, req, resp, err, "delete user failed")
		return err
	}
	if err = mapHTTPError(resp); err != nil {
		logFailure(h.logger, req, resp, err, "delete user failed")
		return err
	}

	return nil
}
