package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidParameters = errors.New("invalid recipe parameters")
	ErrNoSnapshot        = errors.New("no timer snapshot")
)
