package config

// Config is the full attend client configuration.
type Config struct {
	// Server configures the remote attendance service.
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// State configures where the local session state lives.
	State StateConfig `yaml:"state" mapstructure:"state"`
}

// ServerConfig points the client at the attendance service.
type ServerConfig struct {
	URL            string `yaml:"url" mapstructure:"url"`
	TimeoutSeconds int    `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
}

// StateConfig selects the session persistence backend.
type StateConfig struct {
	// Backend is "file" (YAML state file) or "sqlite".
	Backend string `yaml:"backend" mapstructure:"backend"`
	// Path overrides the default state location under ~/.attend.
	Path string `yaml:"path" mapstructure:"path"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			URL:            "http://localhost:8080",
			TimeoutSeconds: 10,
		},
		State: StateConfig{
			Backend: "file",
		},
	}
}
