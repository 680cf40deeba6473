// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the superficial format checks applied to
// directory records before they are sent to the remote store.
//
// Core concepts:
//   - Predicates: ValidateName, ValidateEmail and ValidatePhone are pure
//     functions on strings.
//   - Validator: generic interface to validate a value, optionally scoped to
//     a subset of named fields.
//
// The predicates are also registered as go-playground/validator tags so the
// record struct can be checked declaratively.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
