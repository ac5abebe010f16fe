// Package config provides configuration management for capdemo.
//
// Configuration is loaded from up to three layers and merged in order, with
// later layers overriding earlier ones:
//
//  1. Default configuration (GetDefaultConfig)
//  2. User configuration (~/.config/capdemo/config.yaml)
//  3. Project configuration (./.capdemo/config.yaml)
//
// Missing files are skipped. A file that exists but cannot be parsed is an
// error. Empty fields in an overlay keep the value from the layer below.
//
// # Configuration Structure
//
//	globalSettings:
//	  logLevel: debug
//	  noColor: true
//
//	demo:
//	  scriptPath: ./demo.yaml
//	  outputPrefix: "> "
//
//	update:
//	  repository: owner/capdemo
package config
