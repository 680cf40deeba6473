// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"slices"
	"sync"

	"github.com/MKhiriev/go-user-directory/models"
)

// DirectoryState holds the in-memory directory: the full set in store
// insertion order, the rendered view, the two selection slots and the
// favorites filter flag.
//
// The view is always either a copy of all or its favorites subset in the
// same order. Both slots may be occupied at once.
type DirectoryState struct {
	mu sync.RWMutex

	all           []models.User
	view          []models.User
	editingID     models.UserID
	deletingID    models.UserID
	favoritesOnly bool
}

// NewDirectoryState returns an empty state showing all records.
func NewDirectoryState() *DirectoryState {
	return &DirectoryState{
		all:  []models.User{},
		view: []models.User{},
	}
}

// replaceAll must be called with mu held.
func (s *DirectoryState) replaceAll(users []models.User) {
	s.all = slices.Clone(users)
	if s.all == nil {
		s.all = []models.User{}
	}
	s.rederive()
}

// rederive must be called with mu held.
func (s *DirectoryState) rederive() {
	if !s.favoritesOnly {
		s.view = slices.Clone(s.all)
		return
	}

	s.view = make([]models.User, 0, len(s.all))
	for _, u := range s.all {
		if u.IsFavorite {
			s.view = append(s.view, u)
		}
	}
}

// toggleFilter must be called with mu held.
func (s *DirectoryState) toggleFilter() {
	s.favoritesOnly = !s.favoritesOnly
	s.rederive()
}

// passesFilter must be called with mu held.
func (s *DirectoryState) passesFilter(u models.User) bool {
	return !s.favoritesOnly || u.IsFavorite
}

// append must be called with mu held.
func (s *DirectoryState) append(u models.User) {
	s.all = append(s.all, u)
	if s.passesFilter(u) {
		s.view = append(s.view, u)
	}
}

// replace overwrites the record with u.ID in both sequences. Must be called
// with mu held.
func (s *DirectoryState) replace(u models.User) {
	if i := indexOf(s.all, u.ID); i != -1 {
		s.all[i] = u
	}
	if i := indexOf(s.view, u.ID); i != -1 {
		s.view[i] = u
	}
}

// remove drops id from both sequences. Must be called with mu held.
func (s *DirectoryState) remove(id models.UserID) {
	drop := func(u models.User) bool { return u.ID == id }
	s.all = slices.DeleteFunc(s.all, drop)
	s.view = slices.DeleteFunc(s.view, drop)
}

func indexOf(users []models.User, id models.UserID) int {
	return slices.IndexFunc(users, func(u models.User) bool { return u.ID == id })
}

func find(users []models.User, id models.UserID) (models.User, bool) {
	i := indexOf(users, id)
	if i == -1 {
		return models.User{}, false
	}
	return users[i], true
}
