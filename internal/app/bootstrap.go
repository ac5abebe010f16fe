package app

import (
	"fmt"
	"io"

	"capdemo/internal/capability"
	"capdemo/internal/color"
	"capdemo/internal/config"
	"capdemo/pkg/logging"
)

// Application is the main application structure that bootstraps and runs capdemo
type Application struct {
	config   *Config
	registry *capability.Registry
	out      io.Writer
	errOut   io.Writer
}

// NewApplication loads configuration, sets up CLI logging on errOut and
// builds a registry holding every demo capability. Demo output goes to out.
func NewApplication(cfg *Config, out, errOut io.Writer) (*Application, error) {
	// Log at info until the configured level is known
	logging.InitForCLI(initialLevel(cfg), errOut)

	var capdemoCfg config.CapdemoConfig
	var err error

	if cfg.ConfigPath != "" {
		capdemoCfg, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load capdemo configuration from path: %s", cfg.ConfigPath)
			return nil, fmt.Errorf("failed to load capdemo configuration from path %s: %w", cfg.ConfigPath, err)
		}
		logging.Debug("Bootstrap", "Loaded configuration from custom path: %s", cfg.ConfigPath)
	} else {
		capdemoCfg, err = config.LoadConfig()
		if err != nil {
			logging.Error("Bootstrap", err, "Failed to load capdemo configuration")
			return nil, fmt.Errorf("failed to load capdemo configuration: %w", err)
		}
		logging.Debug("Bootstrap", "Loaded configuration using layered approach")
	}

	cfg.CapdemoConfig = &capdemoCfg
	cfg.NoColor = color.Initialize(cfg.NoColor || capdemoCfg.GlobalSettings.NoColor)

	level, err := resolveLevel(cfg)
	if err != nil {
		return nil, err
	}
	logging.InitForCLI(level, errOut)

	registry, err := InitializeRegistry(cfg, out)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize capability registry")
		return nil, fmt.Errorf("failed to initialize capability registry: %w", err)
	}

	return &Application{
		config:   cfg,
		registry: registry,
		out:      out,
		errOut:   errOut,
	}, nil
}

// Registry returns the populated capability registry.
func (a *Application) Registry() *capability.Registry {
	return a.registry
}

// Config returns the resolved application configuration.
func (a *Application) Config() *Config {
	return a.config
}

func initialLevel(cfg *Config) logging.LogLevel {
	if cfg.Debug {
		return logging.LevelDebug
	}
	return logging.LevelInfo
}

// resolveLevel gives --debug precedence over the configured log level.
func resolveLevel(cfg *Config) (logging.LogLevel, error) {
	if cfg.Debug {
		return logging.LevelDebug, nil
	}
	level, err := logging.ParseLevel(cfg.CapdemoConfig.GlobalSettings.LogLevel)
	if err != nil {
		return logging.LevelInfo, fmt.Errorf("invalid globalSettings.logLevel: %w", err)
	}
	return level, nil
}
