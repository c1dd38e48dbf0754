package event

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidCount   = errors.New("invalid day count")
	ErrUnknownSegment = errors.New("unknown segment")
)
