// Package file loads kbserve configuration from a TOML file.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// configFileName is the file looked up inside the config directory.
const configFileName = "config.toml"

// Config holds the kbserve settings. Zero values mean "use defaults".
type Config struct {
	Data struct {
		// Path to the knowledge-base JSON file. Relative paths are
		// resolved against the working directory at load time.
		Path string `toml:"path"`
	} `toml:"data"`

	Search struct {
		// MaxResults overrides the default search result cap.
		MaxResults int `toml:"max_results"`
	} `toml:"search"`
}

// Load reads configuration from configDir/config.toml.
// If configDir is empty, defaults to ~/.kbserve. A missing file is not
// an error; it yields the zero Config.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".kbserve")
	}

	var cfg Config

	data, err := os.ReadFile(filepath.Join(configDir, configFileName))
	if err != nil {
		if os.IsNotExist(err) {
			// No config file yet - that's fine, run on defaults.
			return &cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configFileName, err)
	}

	return &cfg, nil
}
