package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahanak/SeafileLinkScript/internal/dto"
)

func TestConfigService(t *testing.T) {
	t.Run("should fail to load when no config file exists", func(t *testing.T) {
		// given
		t.Setenv("HOME", t.TempDir())

		// when
		_, err := newConfigService().Get()

		// then
		assert.Error(t, err)
	})

	t.Run("should round-trip the config through the yaml file", func(t *testing.T) {
		// given
		t.Setenv("HOME", t.TempDir())
		config := newConfigService()

		// when
		require.NoError(t, config.Save(dto.Config{
			Server: "https://seafile.example.org",
			Dialog: "terminal",
		}))
		cfg, err := config.Get()

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://seafile.example.org", cfg.Server)
		assert.Equal(t, "terminal", cfg.Dialog)
	})

	t.Run("should trim a trailing slash from the server url", func(t *testing.T) {
		// given
		t.Setenv("HOME", t.TempDir())
		config := newConfigService()
		require.NoError(t, config.Save(dto.Config{Server: "https://seafile.example.org/"}))

		// when
		cfg, err := config.Get()

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://seafile.example.org", cfg.Server)
	})

	t.Run("should reject a config without a server", func(t *testing.T) {
		// given
		t.Setenv("HOME", t.TempDir())
		config := newConfigService()
		require.NoError(t, config.Save(dto.Config{Dialog: "terminal"}))

		// when
		_, err := config.Get()

		// then
		assert.ErrorContains(t, err, "no server")
	})
}
