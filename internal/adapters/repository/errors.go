package repository

import "errors"

// Sentinel errors for store operations.
var (
	ErrClosed       = errors.New("store closed")
	ErrInvalidLimit = errors.New("invalid limit")
)
