package kv

import (
	"fmt"
	"strconv"
)

// Kind tags the scalar type of a persisted value. Backends that can only
// store text (Redis, SQL text columns, document stores) persist the kind
// alongside the textual form so that reads restore the original Go type.
type Kind uint8

const (
	KindString Kind = iota + 1
	KindInt
	KindFloat
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Code returns a single-byte tag for compact storage formats.
func (k Kind) Code() byte {
	switch k {
	case KindString:
		return 's'
	case KindInt:
		return 'i'
	case KindFloat:
		return 'f'
	case KindBool:
		return 'b'
	default:
		return '?'
	}
}

// KindFromCode is the inverse of Kind.Code.
func KindFromCode(c byte) (Kind, error) {
	switch c {
	case 's':
		return KindString, nil
	case 'i':
		return KindInt, nil
	case 'f':
		return KindFloat, nil
	case 'b':
		return KindBool, nil
	default:
		return 0, fmt.Errorf("%w: code %q", ErrUnknownKind, string(c))
	}
}

// FormatScalar renders a scalar value to its textual storage form.
func FormatScalar(k Kind, v any) (string, error) {
	switch k {
	case KindString:
		s, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("%w: expected string, got %T", ErrKindMismatch, v)
		}
		return s, nil
	case KindInt:
		i, ok := v.(int64)
		if !ok {
			return "", fmt.Errorf("%w: expected int64, got %T", ErrKindMismatch, v)
		}
		return strconv.FormatInt(i, 10), nil
	case KindFloat:
		f, ok := v.(float64)
		if !ok {
			return "", fmt.Errorf("%w: expected float64, got %T", ErrKindMismatch, v)
		}
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	case KindBool:
		b, ok := v.(bool)
		if !ok {
			return "", fmt.Errorf("%w: expected bool, got %T", ErrKindMismatch, v)
		}
		return strconv.FormatBool(b), nil
	default:
		return "", fmt.Errorf("%w: kind %d", ErrUnknownKind, k)
	}
}

// ParseScalar restores a scalar value from its kind tag and textual form.
func ParseScalar(k Kind, text string) (any, error) {
	switch k {
	case KindString:
		return text, nil
	case KindInt:
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an int", ErrKindMismatch, text)
		}
		return i, nil
	case KindFloat:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a float", ErrKindMismatch, text)
		}
		return f, nil
	case KindBool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a bool", ErrKindMismatch, text)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("%w: kind %d", ErrUnknownKind, k)
	}
}
