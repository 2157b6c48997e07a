// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation and sanitizing for the photo
// album API.
//
// Core concepts:
//   - Validator: generic interface to validate request values. Supports
//     optional field-level scoping for targeted validation.
//   - Sanitizer: strips markup from user supplied text before it is stored.
//
// Validation errors are sentinels from errors.go; services wrap them into
// their own validation errors.
package validators

import "context"


// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
