// Package config loads the settings of the awesome command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

const (
	DefaultPrompt = "> "
	appName       = "awesome"
)

// Config is the content of config.toml.
type Config struct {
	// Prompt is shown before each REPL line.
	Prompt string `toml:"prompt"`
	// History is the file REPL history is kept in.
	History string `toml:"history"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Prompt:  DefaultPrompt,
		History: filepath.Join(xdg.DataHome, appName, ".awesome_history"),
	}
}

// Path returns where the config file is looked up under the XDG config
// directories.
func Path() (string, error) {
	return xdg.SearchConfigFile(filepath.Join(appName, "config.toml"))
}

// Load reads the config file at path over the defaults. A missing file is not
// an error. An empty path means the XDG location.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		found, err := Path()
		if err != nil {
			// no config file anywhere
			return cfg, nil
		}
		path = found
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}

	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	if cfg.History == "" {
		cfg.History = Default().History
	}
	return cfg, nil
}
