package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing file yields zero config", func(t *testing.T) {
		cfg, err := Load(t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, cfg.Data.Path)
		assert.Zero(t, cfg.Search.MaxResults)
	})

	t.Run("parses data and search sections", func(t *testing.T) {
		dir := t.TempDir()
		body := "[data]\npath = \"/srv/kb/data.json\"\n\n[search]\nmax_results = 8\n"
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0600))

		cfg, err := Load(dir)
		require.NoError(t, err)
		assert.Equal(t, "/srv/kb/data.json", cfg.Data.Path)
		assert.Equal(t, 8, cfg.Search.MaxResults)
	})

	t.Run("invalid TOML is an error", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not = [toml"), 0600))

		cfg, err := Load(dir)
		require.Error(t, err)
		assert.Nil(t, cfg)
	})
}
