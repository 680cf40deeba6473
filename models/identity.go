// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// RandomIdentityResponse is the envelope returned by the random identity
// generator (randomuser.me compatible). Only the fields mapped onto a [User]
// are decoded.
type RandomIdentityResponse struct {
	Results []RandomIdentity `json:"results"`
}

// RandomIdentity is one generated person.
type RandomIdentity struct {
	Name struct {
		Title string `json:"title"`
		First string `json:"first"`
		Last  string `json:"last"`
	} `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Cell    string `json:"cell"`
	Picture struct {
		Large     string `json:"large"`
		Medium    string `json:"medium"`
		Thumbnail string `json:"thumbnail"`
	} `json:"picture"`
}

// ToUser shape-adapts the generated identity into the local record layout.
// The result carries no identifier and is never a favorite.
func (r RandomIdentity) ToUser() User {
	picture := r.Picture.Large
	if picture == "" {
		picture = r.Picture.Medium
	}

	phone := r.Phone
	if phone == "" {
		phone = r.Cell
	}

	return User{
		FullName:     strings.TrimSpace(r.Name.First + " " + r.Name.Last),
		Email:        r.Email,
		Phone:        phone,
		ProfileImage: picture,
	}
}
