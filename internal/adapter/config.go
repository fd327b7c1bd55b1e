package adapter

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"

	m "github.com/mouse-blink/blocks/internal/model"
)

// DefaultConfigFile is looked up in the working directory when no config path is given.
const DefaultConfigFile = "blocks.toml"

// Config holds run defaults loaded from a blocks.toml file.
type Config struct {
	Root     string   `toml:"root"`
	Reports  string   `toml:"reports"`
	Parallel int      `toml:"parallel"`
	Suites   []string `toml:"suites"`
	Filter   m.Filter `toml:"filter"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Reports:  ".blocks-reports",
		Parallel: 1,
	}
}

// LoadConfig reads path from fsys on top of DefaultConfig. When path is empty
// DefaultConfigFile is tried and a missing file is not an error.
func LoadConfig(fsys afero.Fs, path string) (Config, error) {
	cfg := DefaultConfig()

	optional := path == ""
	if optional {
		path = DefaultConfigFile
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("cannot read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse error in %s: %w", path, err)
	}

	if cfg.Parallel <= 0 {
		cfg.Parallel = 1
	}

	log.Debugf("loaded config from %s", path)

	return cfg, nil
}
