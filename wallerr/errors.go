// Package wallerr defines the error kinds shared by the wall layout packages.
//
// Every failure returned by this module wraps exactly one of the sentinels
// below, so callers can dispatch with errors.Is without parsing messages.
package wallerr

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFormat        = errors.New("invalid format")
	ErrInvalidColumn        = errors.New("invalid column")
	ErrUnknownRoute         = errors.New("unknown route")
	ErrUnknownHoldType      = errors.New("unknown hold type")
	ErrHoldLabelNotFound    = errors.New("hold label not found")
	ErrHoldRangeOutOfBounds = errors.New("hold range out of bounds")
	ErrMissingDimensions    = errors.New("missing dimensions")
	ErrMissingAnchor        = errors.New("missing anchor")
)

// New returns an error wrapping kind, with a formatted detail message.
func New(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}

var kinds = [...]error{
	ErrInvalidFormat, ErrInvalidColumn, ErrUnknownRoute, ErrUnknownHoldType,
	ErrHoldLabelNotFound, ErrHoldRangeOutOfBounds, ErrMissingDimensions, ErrMissingAnchor,
}

// KindOf returns the sentinel wrapped by err, or nil.
func KindOf(err error) error {
	for _, k := range kinds {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
