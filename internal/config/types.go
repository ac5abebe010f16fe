package config

// CapdemoConfig is the top-level configuration structure for capdemo.
type CapdemoConfig struct {
	GlobalSettings GlobalSettings `yaml:"globalSettings"`
	Demo           DemoConfig     `yaml:"demo"`
	Update         UpdateConfig   `yaml:"update"`
}

// GlobalSettings holds settings shared by every command.
type GlobalSettings struct {
	LogLevel string `yaml:"logLevel,omitempty"` // debug, info, warn or error
	NoColor  bool   `yaml:"noColor,omitempty"`  // disable styled demo output
}

// DemoConfig controls how demonstration output is produced.
type DemoConfig struct {
	ScriptPath   string `yaml:"scriptPath,omitempty"`   // script run by `capdemo run` when --script is not given
	OutputPrefix string `yaml:"outputPrefix,omitempty"` // prepended to every demo output line
}

// UpdateConfig configures the self-update command.
type UpdateConfig struct {
	Repository string `yaml:"repository,omitempty"` // GitHub owner/name slug releases are fetched from
}
