package kv_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/prefskit/pkg/kv"
)

func TestMemory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("absent key", func(t *testing.T) {
		t.Parallel()
		store := kv.NewMemory()

		v, err := store.Get(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, v)

		s, ok, err := store.GetString(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, s)
	})

	t.Run("scalar round-trips", func(t *testing.T) {
		t.Parallel()
		store := kv.NewMemory()

		require.NoError(t, store.SetString(ctx, "name", "alice"))
		require.NoError(t, store.SetInt(ctx, "count", 42))
		require.NoError(t, store.SetFloat(ctx, "ratio", 0.5))
		require.NoError(t, store.SetBool(ctx, "enabled", true))

		s, ok, err := store.GetString(ctx, "name")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "alice", s)

		i, ok, err := store.GetInt(ctx, "count")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, int64(42), i)

		f, ok, err := store.GetFloat(ctx, "ratio")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 0.5, f)

		b, ok, err := store.GetBool(ctx, "enabled")
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, b)
	})

	t.Run("raw get preserves type", func(t *testing.T) {
		t.Parallel()
		store := kv.NewMemory()

		require.NoError(t, store.SetInt(ctx, "count", 7))
		v, err := store.Get(ctx, "count")
		require.NoError(t, err)
		assert.Equal(t, int64(7), v)
	})

	t.Run("kind mismatch", func(t *testing.T) {
		t.Parallel()
		store := kv.NewMemory()

		require.NoError(t, store.SetString(ctx, "name", "alice"))
		_, _, err := store.GetInt(ctx, "name")
		require.Error(t, err)
		assert.ErrorIs(t, err, kv.ErrKindMismatch)
	})

	t.Run("overwrite changes kind", func(t *testing.T) {
		t.Parallel()
		store := kv.NewMemory()

		require.NoError(t, store.SetString(ctx, "k", "old"))
		require.NoError(t, store.SetBool(ctx, "k", true))

		v, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, true, v)
	})

	t.Run("remove", func(t *testing.T) {
		t.Parallel()
		store := kv.NewMemory()

		require.NoError(t, store.SetString(ctx, "k", "v"))
		require.NoError(t, store.Remove(ctx, "k"))

		v, err := store.Get(ctx, "k")
		require.NoError(t, err)
		assert.Nil(t, v)

		// Removing an absent key is not an error.
		require.NoError(t, store.Remove(ctx, "k"))
	})

	t.Run("keys", func(t *testing.T) {
		t.Parallel()
		store := kv.NewMemoryWithValues(map[string]any{
			"a": "1",
			"b": int64(2),
		})

		keys, err := store.Keys(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"a", "b"}, keys)
	})

	t.Run("concurrent access", func(t *testing.T) {
		t.Parallel()
		store := kv.NewMemory()
		done := make(chan struct{})

		go func() {
			defer close(done)
			for i := range 100 {
				_ = store.SetInt(ctx, "counter", int64(i))
			}
		}()
		for range 100 {
			_, _ = store.Get(ctx, "counter")
		}
		<-done

		v, err := store.Get(ctx, "counter")
		require.NoError(t, err)
		assert.Equal(t, int64(99), v)
	})
}

func TestScalarKindCodec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kind kv.Kind
		val  any
		text string
	}{
		{"string", kv.KindString, "hello", "hello"},
		{"int", kv.KindInt, int64(-12), "-12"},
		{"float", kv.KindFloat, 2.5, "2.5"},
		{"bool", kv.KindBool, true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			text, err := kv.FormatScalar(tt.kind, tt.val)
			require.NoError(t, err)
			assert.Equal(t, tt.text, text)

			v, err := kv.ParseScalar(tt.kind, text)
			require.NoError(t, err)
			assert.Equal(t, tt.val, v)
		})
	}

	t.Run("kind codes round-trip", func(t *testing.T) {
		t.Parallel()
		for _, k := range []kv.Kind{kv.KindString, kv.KindInt, kv.KindFloat, kv.KindBool} {
			got, err := kv.KindFromCode(k.Code())
			require.NoError(t, err)
			assert.Equal(t, k, got)
		}

		_, err := kv.KindFromCode('x')
		assert.ErrorIs(t, err, kv.ErrUnknownKind)
	})

	t.Run("format rejects wrong go type", func(t *testing.T) {
		t.Parallel()
		_, err := kv.FormatScalar(kv.KindInt, "not an int")
		assert.ErrorIs(t, err, kv.ErrKindMismatch)
	})

	t.Run("parse rejects malformed text", func(t *testing.T) {
		t.Parallel()
		_, err := kv.ParseScalar(kv.KindInt, "abc")
		assert.ErrorIs(t, err, kv.ErrKindMismatch)
	})
}
