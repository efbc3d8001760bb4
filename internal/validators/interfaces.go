// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for records entering the
// service layer.
//
// Services receive a Validator and call Validate with the decoded record and,
// optionally, the names of the fields that must be checked. Rules are
// declared with `validate` struct tags on the models.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
