// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-user-directory/internal/render"
	"github.com/MKhiriev/go-user-directory/models"
)

// Dispatcher routes card actions to [ActionHandlers] through a table keyed by
// [render.ActionTag].
type Dispatcher struct {
	routes map[render.ActionTag]func(models.UserID)
}

// NewDispatcher builds the dispatch table for h.
func NewDispatcher(h ActionHandlers) *Dispatcher {
	return &Dispatcher{
		routes: map[render.ActionTag]func(models.UserID){
			render.ActionEdit:     h.OnEdit,
			render.ActionDelete:   h.OnDelete,
			render.ActionFavorite: h.OnToggleFavorite,
		},
	}
}

// Dispatch invokes the handler registered for a.Tag. Unknown tags and empty
// identifiers are ignored; the return value reports whether a handler ran.
func (d *Dispatcher) Dispatch(a render.Action) bool {
	if a.UserID == "" {
		return false
	}

	route, ok := d.routes[a.Tag]
	if !ok {
		return false
	}

	route(a.UserID)
	return true
}
