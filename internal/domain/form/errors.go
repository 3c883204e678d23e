package form

import "errors"

// Sentinel kinds for validation errors. Callers match with errors.Is.
var (
	ErrMissingField = errors.New("missing required field")
	ErrOutOfRange   = errors.New("value out of range")
	ErrInvalidEnum  = errors.New("unrecognized value")
)
