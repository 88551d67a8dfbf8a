package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all tabview configuration.
type Config struct {
	Tabs TabsConfig `toml:"tabs"`
}

// TabsConfig holds tab lifecycle settings.
type TabsConfig struct {
	// Max is the maximum number of open tabs. 0 means unlimited.
	Max int `toml:"max"`

	// CloseLastQuits makes closing the only remaining tab quit the
	// application instead of reporting an error.
	CloseLastQuits bool `toml:"close_last_quits"`
}

// DefaultPath returns the default config file path: $HOME/.config/tabview.toml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tabview.toml"
	}
	return filepath.Join(home, ".config", "tabview.toml")
}

// Load parses a TOML config file at path.
// If the file does not exist, an empty Config is returned with no error.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	_, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprint(os.Stderr, "Config file not present. Using default values\n")
			return cfg, nil
		}
		return nil, err
	}
	return cfg, nil
}
