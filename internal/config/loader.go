// Package config loads the attend client configuration from
// ~/.attend/config.yaml, falling back to built-in defaults when the file is
// missing. The ATTEND_SERVER environment variable overrides the server URL
// for one-off runs against a different instance.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load loads the configuration.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil // Return defaults if no home dir
	}

	path := filepath.Join(home, ".attend", "config.yaml")
	if err := loadFile(path, cfg); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	if env := os.Getenv("ATTEND_SERVER"); env != "" {
		cfg.Server.URL = env
	}

	if cfg.State.Path == "" {
		cfg.State.Path = defaultStatePath(home, cfg.State.Backend)
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

func defaultStatePath(home, backend string) string {
	if backend == "sqlite" {
		return filepath.Join(home, ".attend", "state.db")
	}
	return filepath.Join(home, ".attend", "state.yaml")
}

// GlobalConfigPath returns the path to the config file.
func GlobalConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".attend", "config.yaml")
}

// GlobalStateDir returns the path to the attend state directory.
func GlobalStateDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".attend")
}
