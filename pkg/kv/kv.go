package kv

import (
	"context"
	"fmt"
)

// Store is an abstraction over a key-value persistence backend that holds
// scalar values (string, int64, float64, bool) under string keys.
//
// Raw Get returns the stored value with its original Go type, or (nil, nil)
// when the key is absent. Typed getters return (zero, false, nil) for absent
// keys and ErrKindMismatch when the key holds a value of a different kind.
// Backend I/O errors are returned unchanged.
type Store interface {
	// Get returns the raw typed value stored under key, or (nil, nil) if
	// the key is not set.
	Get(ctx context.Context, key string) (any, error)

	GetString(ctx context.Context, key string) (string, bool, error)
	GetInt(ctx context.Context, key string) (int64, bool, error)
	GetFloat(ctx context.Context, key string) (float64, bool, error)
	GetBool(ctx context.Context, key string) (bool, bool, error)

	SetString(ctx context.Context, key, value string) error
	SetInt(ctx context.Context, key string, value int64) error
	SetFloat(ctx context.Context, key string, value float64) error
	SetBool(ctx context.Context, key string, value bool) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error

	// Keys lists all stored keys. Order is unspecified.
	Keys(ctx context.Context) ([]string, error)

	// Close releases backend resources.
	Close() error
}

// Scalar constrains the value types a Store can persist directly.
type Scalar interface {
	string | int64 | float64 | bool
}

// GetTyped reads key through s.Get and asserts the scalar type T.
// It returns (zero, false, nil) when the key is absent and ErrKindMismatch
// when the stored value has a different type. Store adapters use it to
// implement the typed getters of the Store interface.
func GetTyped[T Scalar](ctx context.Context, s Store, key string) (T, bool, error) {
	var zero T

	v, err := s.Get(ctx, key)
	if err != nil {
		return zero, false, err
	}
	if v == nil {
		return zero, false, nil
	}

	t, ok := v.(T)
	if !ok {
		return zero, false, fmt.Errorf("%w: key %q holds %T", ErrKindMismatch, key, v)
	}
	return t, true, nil
}
