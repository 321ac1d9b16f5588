// Package common defines sentinel errors and small helpers shared by the
// onetap client packages. Callers should use errors.Is to match the errors.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Token input errors.
	ErrEmptyToken     = errors.New("empty token")
	ErrMalformedToken = errors.New("malformed token")
)
