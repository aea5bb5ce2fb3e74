package domain

import "errors"

var (
	// ErrItemNotFound signals a missing catalog item.
	ErrItemNotFound = errors.New("catalog item not found")
	// ErrInvalidArgument signals malformed ingest input.
	ErrInvalidArgument = errors.New("invalid argument")
)
