package kv

import "errors"

// Predefined errors for the kv package.
var (
	// ErrKindMismatch indicates a typed getter was used on a key that holds
	// a value of a different scalar kind.
	ErrKindMismatch = errors.New("stored value kind mismatch")

	// ErrUnknownKind indicates a persisted kind tag that no known scalar
	// kind maps to, usually a sign of data written by an incompatible version.
	ErrUnknownKind = errors.New("unknown stored value kind")
)
