package shelfwise

import "github.com/shelfwise/shelfwise/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrItemNotFound    = domain.ErrItemNotFound
	ErrInvalidArgument = domain.ErrInvalidArgument
)
