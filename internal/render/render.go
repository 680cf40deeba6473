// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render turns the directory view into a presentational page.
//
// Render is pure: it knows nothing about styling or input handling. Every
// card exposes exactly three actions tagged with the record identifier, and
// the UI routes a selected action through one dispatcher instead of wiring a
// handler per card.
package render

import (
	"fmt"

	"github.com/MKhiriev/go-user-directory/models"
)

// ActionTag identifies what an action affordance does.
type ActionTag string

const (
	ActionEdit     ActionTag = "edit"
	ActionDelete   ActionTag = "delete"
	ActionFavorite ActionTag = "favorite"
)

// Placeholder is shown instead of cards when the view is empty.
const Placeholder = "no users"

// Action is one affordance on a card.
type Action struct {
	Tag    ActionTag
	UserID models.UserID
}

// Card is the presentational fragment of one record.
type Card struct {
	UserID       models.UserID
	FullName     string
	Email        string
	Phone        string
	ProfileImage string
	Favorite     bool
	// FavoriteLabel reads "★ favorite" or "☆ favorite".
	FavoriteLabel string
	Actions       [3]Action
}

// Action returns the card's affordance for tag.
func (c Card) Action(tag ActionTag) (Action, bool) {
	for _, a := range c.Actions {
		if a.Tag == tag {
			return a, true
		}
	}
	return Action{}, false
}

// Page is the rendered view.
type Page struct {
	CountLabel string
	Cards      []Card
	// Placeholder is non-empty only when Cards is empty.
	Placeholder string
}

// Empty reports whether the page has no cards.
func (p Page) Empty() bool {
	return len(p.Cards) == 0
}

// Render builds the page for users in the given order.
func Render(users []models.User) Page {
	page := Page{
		CountLabel: CountLabel(len(users)),
		Cards:      make([]Card, 0, len(users)),
	}

	for _, u := range users {
		page.Cards = append(page.Cards, cardOf(u))
	}
	if len(page.Cards) == 0 {
		page.Placeholder = Placeholder
	}

	return page
}

// CountLabel formats the record count shown above the list.
func CountLabel(n int) string {
	return fmt.Sprintf("%d users", n)
}

func cardOf(u models.User) Card {
	label := "☆ favorite"
	if u.IsFavorite {
		label = "★ favorite"
	}

	return Card{
		UserID:        u.ID,
		FullName:      u.FullName,
		Email:         u.Email,
		Phone:         u.Phone,
		ProfileImage:  u.ProfileImage,
		Favorite:      u.IsFavorite,
		FavoriteLabel: label,
		Actions: [3]Action{
			{Tag: ActionEdit, UserID: u.ID},
			{Tag: ActionDelete, UserID: u.ID},
			{Tag: ActionFavorite, UserID: u.ID},
		},
	}
}
