package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/prefskit/pkg/config"
)

func TestLoad(t *testing.T) {
	// No t.Parallel: tests mutate process environment via t.Setenv.

	t.Run("defaults and overrides", func(t *testing.T) {
		type loaderTestConfig struct {
			Host string `env:"LOADER_TEST_HOST" envDefault:"localhost"`
			Port int    `env:"LOADER_TEST_PORT" envDefault:"6379"`
		}

		t.Setenv("LOADER_TEST_PORT", "7000")

		var cfg loaderTestConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 7000, cfg.Port)
	})

	t.Run("cached per type", func(t *testing.T) {
		type cachedTestConfig struct {
			Value string `env:"CACHED_TEST_VALUE" envDefault:"first"`
		}

		var first cachedTestConfig
		require.NoError(t, config.Load(&first))
		assert.Equal(t, "first", first.Value)

		// A later env change is invisible: the type is already cached.
		t.Setenv("CACHED_TEST_VALUE", "second")
		var again cachedTestConfig
		require.NoError(t, config.Load(&again))
		assert.Equal(t, "first", again.Value)
	})

	t.Run("parse failure", func(t *testing.T) {
		type invalidTestConfig struct {
			Count int `env:"INVALID_TEST_COUNT" envDefault:"not-a-number"`
		}

		var cfg invalidTestConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[struct{}](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}
