package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("overrides", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := `
server:
  port: 6060
router:
  snap-radius-m: 50
  max-post-process-steps: 7
  avoid: [toll, ferry]
tiles:
  resolution: 6
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 6060, cfg.Server.Port)
		assert.Equal(t, 50.0, cfg.Router.SnapRadiusM)
		assert.Equal(t, 7, cfg.Router.MaxPostProcessSteps)
		assert.Equal(t, []string{"toll", "ferry"}, cfg.Router.Avoid)
		assert.Equal(t, 6, cfg.Tiles.Resolution)
		// untouched keys keep defaults
		assert.Equal(t, 4, cfg.Router.MaxProjections)
		assert.Equal(t, 3, cfg.Tiles.CountryResolution)
	})

	t.Run("invalid", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("router:\n  snap-radius-m: -1\n"), 0o644))
		_, err := Load(path)
		assert.Error(t, err)

		_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
	})
}
