package service

import "errors"

var (
	// ErrUserNotFound is returned when a selection refers to a record that is
	// no longer present. Callers ignore it silently.
	ErrUserNotFound = errors.New("user not found")
	// ErrNoSelection is returned when save or confirm runs with an empty slot.
	ErrNoSelection = errors.New("no user selected")
	// ErrUnassignedID is returned when the store accepts a create without
	// assigning an identifier. Nothing is appended in that case.
	ErrUnassignedID = errors.New("store assigned no user id")
)
