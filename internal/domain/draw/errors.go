package draw

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrBadWeights = errors.New("invalid categorical weights")
)
