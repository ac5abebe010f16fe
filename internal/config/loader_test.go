package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, dir string, filename string, content CapdemoConfig) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	tempFilePath := filepath.Join(dir, filename)
	data, err := yaml.Marshal(&content)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(tempFilePath, data, 0644))
	return tempFilePath
}

// mockPaths points both config layers at files under dir and restores the originals on cleanup.
func mockPaths(t *testing.T, dir string) {
	t.Helper()
	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
	})

	getUserConfigPath = func() (string, error) {
		return filepath.Join(dir, "home", userConfigDir, configFileName), nil
	}
	getProjectConfigPath = func() (string, error) {
		return filepath.Join(dir, "project", projectConfigDir, configFileName), nil
	}
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	mockPaths(t, t.TempDir())

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loadedConfig)
}

func TestLoadConfig_UserOverride(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, "home", userConfigDir), configFileName, CapdemoConfig{
		GlobalSettings: GlobalSettings{LogLevel: "debug", NoColor: true},
		Demo:           DemoConfig{OutputPrefix: "> "},
	})

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", loadedConfig.GlobalSettings.LogLevel)
	assert.True(t, loadedConfig.GlobalSettings.NoColor)
	assert.Equal(t, "> ", loadedConfig.Demo.OutputPrefix)
	assert.Equal(t, DefaultRepository, loadedConfig.Update.Repository, "unset fields keep defaults")
}

func TestLoadConfig_ProjectOverridesUser(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir)

	createTempConfigFile(t, filepath.Join(tempDir, "home", userConfigDir), configFileName, CapdemoConfig{
		GlobalSettings: GlobalSettings{LogLevel: "debug"},
		Demo:           DemoConfig{ScriptPath: "user.yaml"},
	})
	createTempConfigFile(t, filepath.Join(tempDir, "project", projectConfigDir), configFileName, CapdemoConfig{
		Demo:   DemoConfig{ScriptPath: "project.yaml"},
		Update: UpdateConfig{Repository: "acme/capdemo"},
	})

	loadedConfig, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", loadedConfig.GlobalSettings.LogLevel)
	assert.Equal(t, "project.yaml", loadedConfig.Demo.ScriptPath)
	assert.Equal(t, "acme/capdemo", loadedConfig.Update.Repository)
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	tempDir := t.TempDir()
	mockPaths(t, tempDir)

	dir := filepath.Join(tempDir, "project", projectConfigDir)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("globalSettings: [unclosed"), 0644))

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading project config")
}

func TestGetUserConfigDir(t *testing.T) {
	original := osUserHomeDir
	defer func() { osUserHomeDir = original }()

	osUserHomeDir = func() (string, error) { return "/home/tester", nil }

	dir, err := GetUserConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/tester", userConfigDir), dir)
}

func TestLoadConfigFromPath(t *testing.T) {
	tempDir := t.TempDir()
	path := createTempConfigFile(t, tempDir, "custom.yaml", CapdemoConfig{
		Demo: DemoConfig{ScriptPath: "demo.yaml"},
	})

	loadedConfig, err := LoadConfigFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "demo.yaml", loadedConfig.Demo.ScriptPath)
	assert.Equal(t, "info", loadedConfig.GlobalSettings.LogLevel)
	assert.Equal(t, DefaultRepository, loadedConfig.Update.Repository)

	_, err = LoadConfigFromPath(filepath.Join(tempDir, "missing.yaml"))
	assert.Error(t, err)
}
