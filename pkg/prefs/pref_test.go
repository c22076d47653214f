package prefs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/prefskit/pkg/kv"
	"github.com/dmitrymomot/prefskit/pkg/prefs"
)

func TestPrefDescriptors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("set and get per variant", func(t *testing.T) {
		t.Parallel()
		p := prefs.New(prefs.WithStore(kv.NewMemory()))

		theme := prefs.NewString("theme", "light")
		volume := prefs.NewInt("volume", 5)
		ratio := prefs.NewFloat("ratio", 1.0)
		enabled := prefs.NewBool("enabled", false)

		require.NoError(t, theme.Set(ctx, p, "dark"))
		require.NoError(t, volume.Set(ctx, p, 11))
		require.NoError(t, ratio.Set(ctx, p, 0.75))
		require.NoError(t, enabled.Set(ctx, p, true))

		s, ok, err := theme.Get(ctx, p)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "dark", s)

		i, ok, err := volume.Get(ctx, p)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, int64(11), i)

		f, ok, err := ratio.Get(ctx, p)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 0.75, f)

		b, ok, err := enabled.Get(ctx, p)
		require.NoError(t, err)
		require.True(t, ok)
		assert.True(t, b)
	})

	t.Run("absence yields zero and ok=false, not the default", func(t *testing.T) {
		t.Parallel()
		p := prefs.New(prefs.WithStore(kv.NewMemory()))

		volume := prefs.NewInt("volume", 5)
		v, ok, err := volume.Get(ctx, p)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Zero(t, v)

		// Applying the default is the caller's move.
		if !ok {
			v = volume.Default
		}
		assert.Equal(t, int64(5), v)
	})

	t.Run("incompatible stored value", func(t *testing.T) {
		t.Parallel()
		p := prefs.New(prefs.WithStore(kv.NewMemory()))

		require.NoError(t, p.Write(ctx, "volume", "loud"))

		volume := prefs.NewInt("volume", 0)
		_, _, err := volume.Get(ctx, p)
		require.Error(t, err)
		assert.ErrorIs(t, err, prefs.ErrTypeMismatch)
	})

	t.Run("two descriptors may share a key", func(t *testing.T) {
		t.Parallel()
		p := prefs.New(prefs.WithStore(kv.NewMemory()))

		a := prefs.NewString("shared", "a")
		b := prefs.NewString("shared", "b")

		require.NoError(t, a.Set(ctx, p, "written-via-a"))
		v, ok, err := b.Get(ctx, p)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "written-via-a", v)
	})
}
