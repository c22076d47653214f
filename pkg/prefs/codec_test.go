package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTryDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      string
		want    any
		decoded bool
	}{
		{"integer literal", "42", int64(42), true},
		{"negative integer", "-7", int64(-7), true},
		{"float literal", "3.5", 3.5, true},
		{"bool literal", "true", true, true},
		{"quoted string", `"quoted"`, "quoted", true},
		{"array", "[1,2,3]", []any{int64(1), int64(2), int64(3)}, true},
		{"nested object", `{"a":1,"b":[true,"x"]}`, map[string]any{"a": int64(1), "b": []any{true, "x"}}, true},
		{"plain word", "dark", "dark", false},
		{"empty string", "", "", false},
		{"trailing garbage", "42abc", "42abc", false},
		{"two values", "42 43", "42 43", false},
		{"truncated object", `{"a":`, `{"a":`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := tryDecode(tt.in)
			assert.Equal(t, tt.decoded, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeCompositeRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want any
	}{
		{
			name: "flat sequence",
			in:   []any{int64(1), "two", 3.5, false},
			want: []any{int64(1), "two", 3.5, false},
		},
		{
			name: "typed slice",
			in:   []string{"a", "b"},
			want: []any{"a", "b"},
		},
		{
			name: "nested mapping",
			in:   map[string]any{"n": int64(1), "inner": map[string]any{"ok": true}},
			want: map[string]any{"n": int64(1), "inner": map[string]any{"ok": true}},
		},
		{
			name: "sequence of mappings",
			in:   []any{map[string]any{"id": int64(1)}, map[string]any{"id": int64(2)}},
			want: []any{map[string]any{"id": int64(1)}, map[string]any{"id": int64(2)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, err := encodeComposite(tt.in)
			require.NoError(t, err)

			got, ok := tryDecode(s)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRestoreNumbers(t *testing.T) {
	t.Parallel()

	// Integral numbers come back as int64, fractional as float64, even
	// when mixed inside the same structure.
	got, ok := tryDecode(`{"count":10,"ratio":0.25,"items":[1,2.5]}`)
	require.True(t, ok)
	assert.Equal(t, map[string]any{
		"count": int64(10),
		"ratio": 0.25,
		"items": []any{int64(1), 2.5},
	}, got)
}
