package app

import (
	"capdemo/internal/config"
)

// Config holds the application configuration
type Config struct {
	// Debug settings
	Debug bool

	// Output settings
	NoColor bool

	// ConfigPath, when set, replaces the layered configuration lookup
	ConfigPath string

	// Loaded file configuration, set by NewApplication
	CapdemoConfig *config.CapdemoConfig
}

// NewConfig creates a new application configuration
func NewConfig(debug, noColor bool, configPath string) *Config {
	return &Config{
		Debug:      debug,
		NoColor:    noColor,
		ConfigPath: configPath,
	}
}
