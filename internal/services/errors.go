package services

import "errors"

var (
	// ErrNotFound reports that a slug did not resolve to a stored row.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput reports missing or malformed request input. Callers can
	// tell "request was malformed" apart from "nothing to do".
	ErrInvalidInput = errors.New("invalid input")
)
