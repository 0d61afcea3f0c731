package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrgen/pkg/config"
)

type previewConfig struct {
	Debounce   time.Duration `env:"CFGTEST_DEBOUNCE" envDefault:"400ms"`
	PreviewMax int           `env:"CFGTEST_PREVIEW_MAX" envDefault:"512"`
}

type cachedConfig struct {
	Name string `env:"CFGTEST_CACHED_NAME" envDefault:"qrgen"`
}

type requiredConfig struct {
	Secret string `env:"CFGTEST_REQUIRED,required"`
}

type badConfig struct {
	Size int `env:"CFGTEST_BAD_SIZE"`
}

func TestParse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := config.Parse[previewConfig]()
		require.NoError(t, err)
		assert.Equal(t, 400*time.Millisecond, cfg.Debounce)
		assert.Equal(t, 512, cfg.PreviewMax)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("CFGTEST_DEBOUNCE", "1s")
		t.Setenv("CFGTEST_PREVIEW_MAX", "256")
		cfg, err := config.Parse[previewConfig]()
		require.NoError(t, err)
		assert.Equal(t, time.Second, cfg.Debounce)
		assert.Equal(t, 256, cfg.PreviewMax)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("CFGTEST_BAD_SIZE", "big")
		_, err := config.Parse[badConfig]()
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestLoad(t *testing.T) {
	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[cachedConfig](nil), config.ErrNilPointer)
	})

	t.Run("cached per type", func(t *testing.T) {
		var first cachedConfig
		require.NoError(t, config.Load(&first))
		assert.Equal(t, "qrgen", first.Name)

		t.Setenv("CFGTEST_CACHED_NAME", "changed")
		var second cachedConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, "qrgen", second.Name)
	})

	t.Run("missing required", func(t *testing.T) {
		var cfg requiredConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
		assert.Panics(t, func() { config.MustLoad(&requiredConfig{}) })
	})
}
