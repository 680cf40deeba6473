// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// DefaultProfileImage is the placeholder picture shown in an empty create
// form and for records that carry no image reference.
const DefaultProfileImage = "https://via.placeholder.com/100x100/6c757d/ffffff?text=Photo"

// User is a single directory record as stored by the remote collection
// service. The identifier is always assigned by the store; the client never
// generates one.
type User struct {
	// ID is the store-assigned identifier. Empty until the record has been
	// created remotely.
	ID UserID `json:"id,omitempty"`

	// FullName is the display name of the person.
	FullName string `json:"fullName"`

	// Email is the contact address, validated only superficially.
	Email string `json:"email"`

	// Phone is the contact number, validated only superficially.
	Phone string `json:"phone"`

	// ProfileImage is a URL pointing to the avatar picture.
	ProfileImage string `json:"profileImage"`

	// IsFavorite marks the record for the favorites-only view.
	IsFavorite bool `json:"isFavorite"`
}

// UserID is the identifier assigned by the remote store. Some store
// implementations emit numeric ids and others emit strings, so both JSON forms
// are accepted and normalised to a string.
type UserID string

// String returns the identifier as a plain string.
func (id UserID) String() string {
	return string(id)
}

// UnmarshalJSON accepts a JSON string, a JSON number or null.
func (id *UserID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decode user id: %w", err)
		}
		*id = UserID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("decode user id: %w", err)
	}
	if _, err := strconv.ParseFloat(n.String(), 64); err != nil {
		return fmt.Errorf("decode user id: %w", err)
	}
	*id = UserID(n.String())
	return nil
}

// Favorited returns a copy of u with IsFavorite flipped.
func (u User) Favorited() User {
	u.IsFavorite = !u.IsFavorite
	return u
}
