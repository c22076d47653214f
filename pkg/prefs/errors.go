package prefs

import "errors"

// Predefined errors for the prefs package.
var (
	// ErrUnsupportedType indicates a write of a value outside the supported
	// set (string, int, float, bool, slices, string-keyed maps). The store
	// is not mutated and nothing is published.
	ErrUnsupportedType = errors.New("unsupported preference value type")

	// ErrTypeMismatch indicates a stored value could not be converted to a
	// descriptor's declared scalar type.
	ErrTypeMismatch = errors.New("preference value does not match descriptor type")

	// ErrClosed is returned by operations on a facade that was closed before
	// ever acquiring a store handle.
	ErrClosed = errors.New("preferences facade is closed")
)
