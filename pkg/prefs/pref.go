package prefs

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cast"
)

// Scalar constrains descriptor types to the four supported scalar kinds.
type Scalar interface {
	string | int64 | float64 | bool
}

// Pref declares a preference: a store key paired with a default value and a
// scalar type. Descriptors are plain immutable values; copying them is cheap.
// Nothing prevents two descriptors from sharing a key — keeping them
// type-consistent is the caller's responsibility.
type Pref[T Scalar] struct {
	Key     string
	Default T
}

// NewString declares a string preference.
func NewString(key, def string) Pref[string] {
	return Pref[string]{Key: key, Default: def}
}

// NewInt declares an integer preference.
func NewInt(key string, def int64) Pref[int64] {
	return Pref[int64]{Key: key, Default: def}
}

// NewFloat declares a float preference.
func NewFloat(key string, def float64) Pref[float64] {
	return Pref[float64]{Key: key, Default: def}
}

// NewBool declares a boolean preference.
func NewBool(key string, def bool) Pref[bool] {
	return Pref[bool]{Key: key, Default: def}
}

// Get reads the descriptor's key through the facade. Absence is reported as
// ok=false with the zero value, not as Default — callers that want the
// default apply it themselves:
//
//	v, ok, err := theme.Get(ctx, p)
//	if err == nil && !ok {
//		v = theme.Default
//	}
func (d Pref[T]) Get(ctx context.Context, p *Prefs) (T, bool, error) {
	var zero T

	v, err := p.Read(ctx, d.Key)
	if err != nil {
		return zero, false, err
	}
	if v == nil {
		return zero, false, nil
	}

	t, err := coerce[T](v)
	if err != nil {
		return zero, false, errors.Join(ErrTypeMismatch, err)
	}
	return t, true, nil
}

// Set writes value under the descriptor's key.
func (d Pref[T]) Set(ctx context.Context, p *Prefs, value T) error {
	return p.Write(ctx, d.Key, value)
}

// coerce converts a value read back from the store to the descriptor type.
// JSON decoding can shift numeric representations (an int written inside a
// composite comes back differently than a scalar int), so conversion goes
// through cast rather than a bare type assertion.
func coerce[T Scalar](v any) (T, error) {
	var zero T

	switch any(zero).(type) {
	case string:
		s, err := cast.ToStringE(v)
		return any(s).(T), err
	case int64:
		i, err := cast.ToInt64E(v)
		return any(i).(T), err
	case float64:
		f, err := cast.ToFloat64E(v)
		return any(f).(T), err
	case bool:
		b, err := cast.ToBoolE(v)
		return any(b).(T), err
	default:
		return zero, fmt.Errorf("unsupported descriptor type %T", zero)
	}
}
