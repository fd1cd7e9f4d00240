package ndrand

import "errors"

var (
	// ErrInvalidShape indicates a shape with a non-positive extent.
	ErrInvalidShape = errors.New("ndrand: shape extents must be positive")
	// ErrInvalidInterval indicates an integer interval with upper <= lower.
	ErrInvalidInterval = errors.New("ndrand: interval upper bound must be greater than lower bound")
	// ErrInvalidStdDev indicates a non-positive standard deviation.
	ErrInvalidStdDev = errors.New("ndrand: standard deviation must be positive")
)
