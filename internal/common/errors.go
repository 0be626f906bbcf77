// Package common contains shared constants and sentinel errors used across
// the SpicesLink client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Precondition errors: raised before any network call is made.
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrMissingProductID       = errors.New("missing product id")

	// Validation errors surfaced by the interactive layer.
	ErrNameRequired  = errors.New("product name is required")
	ErrDuplicateName = errors.New("product with this name already exists")

	ErrNotFound = errors.New("not found")
)
