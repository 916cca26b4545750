package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates a malformed payload or parameter.
	ErrInvalidInput = errors.New("invalid input")
)
