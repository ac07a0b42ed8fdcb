package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/uenv-tools/uenvpull/internal/messages"
)

// DefaultPath returns the user config file path, ~/.config/uenvpull/config.toml.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigHomeDirFmt, err)
	}
	return filepath.Join(home, ".config", "uenvpull", "config.toml"), nil
}

// Load reads and decodes the config file at path. A missing file is not an
// error: defaults apply.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf(messages.ConfigReadFmt, path, err)
	}
	return Parse(data, path)
}

// Parse decodes TOML config data. name is used in error messages.
func Parse(data []byte, name string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigParseFmt, name, err)
	}
	if cfg.Pull.PollIntervalMS < 0 {
		return nil, fmt.Errorf(messages.ConfigInvalidIntervalFmt, cfg.Pull.PollIntervalMS)
	}
	return &cfg, nil
}
