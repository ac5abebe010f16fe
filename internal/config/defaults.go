package config

// DefaultRepository is the release repository self-update checks by default.
const DefaultRepository = "capdemo/capdemo"

// GetDefaultConfig returns the built-in configuration every layer is merged onto.
func GetDefaultConfig() CapdemoConfig {
	return CapdemoConfig{
		GlobalSettings: GlobalSettings{
			LogLevel: "info",
		},
		Update: UpdateConfig{
			Repository: DefaultRepository,
		},
	}
}
