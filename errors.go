package fract

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the engine's only error kind. It is returned,
// wrapped with details, for a non-positive size and for invalid options.
var ErrInvalidArgument = errors.New("fract: invalid argument")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidArgument}, args...)...)
}

func checkSize(size int) error {
	if size <= 0 {
		return invalidf("size must be positive, got %d", size)
	}
	return nil
}
