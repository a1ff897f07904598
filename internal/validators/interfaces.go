// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user-submitted forms before they reach the
// service layer.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - FieldError: a failure bound to one form field. Several field errors
//     are combined with errors.Join, and every one of them matches
//     [ErrInvalidInput] through errors.Is.
//
// Uniqueness of usernames and emails needs the database and is checked by
// the services, not here.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
