package domain

import "errors"

var (
	// ErrNotFound is returned by single-item lookups that matched zero rows.
	ErrNotFound = errors.New("not found")

	ErrInvalidParams = errors.New("invalid params")
)
