package config

import (
	"fmt"
	"os"
	"path/filepath"

	"capdemo/pkg/logging"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/capdemo"
	projectConfigDir = ".capdemo"
	configFileName   = "config.yaml"
)

// LoadConfig loads the capdemo configuration by layering default, user, and project settings.
func LoadConfig() (CapdemoConfig, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else if fileExists(userConfigPath) {
		userConfig, err := loadConfigFromFile(userConfigPath)
		if err != nil {
			return CapdemoConfig{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
		config = mergeConfigs(config, userConfig)
		logging.Debug("Config", "Merged user config from %s", userConfigPath)
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine project config path: %v", err)
	} else if fileExists(projectConfigPath) {
		projectConfig, err := loadConfigFromFile(projectConfigPath)
		if err != nil {
			return CapdemoConfig{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
		config = mergeConfigs(config, projectConfig)
		logging.Debug("Config", "Merged project config from %s", projectConfigPath)
	}

	return config, nil
}

// LoadConfigFromPath loads a single configuration file merged onto the defaults,
// skipping the user and project layers.
func LoadConfigFromPath(path string) (CapdemoConfig, error) {
	fileConfig, err := loadConfigFromFile(path)
	if err != nil {
		return CapdemoConfig{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return mergeConfigs(GetDefaultConfig(), fileConfig), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// loadConfigFromFile loads a CapdemoConfig from a YAML file.
func loadConfigFromFile(filePath string) (CapdemoConfig, error) {
	var config CapdemoConfig
	data, err := os.ReadFile(filePath)
	if err != nil {
		return CapdemoConfig{}, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return CapdemoConfig{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config.
// Empty overlay fields keep the base value.
func mergeConfigs(base, overlay CapdemoConfig) CapdemoConfig {
	merged := base

	if overlay.GlobalSettings.LogLevel != "" {
		merged.GlobalSettings.LogLevel = overlay.GlobalSettings.LogLevel
	}
	if overlay.GlobalSettings.NoColor {
		merged.GlobalSettings.NoColor = true
	}

	if overlay.Demo.ScriptPath != "" {
		merged.Demo.ScriptPath = overlay.Demo.ScriptPath
	}
	if overlay.Demo.OutputPrefix != "" {
		merged.Demo.OutputPrefix = overlay.Demo.OutputPrefix
	}

	if overlay.Update.Repository != "" {
		merged.Update.Repository = overlay.Update.Repository
	}

	return merged
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}
