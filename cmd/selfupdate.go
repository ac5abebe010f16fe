package cmd

import (
	"context"
	"fmt"
	"runtime"

	"capdemo/internal/config"
	"capdemo/pkg/logging"

	"github.com/Masterminds/semver/v3"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"
)

// githubRepoSlug is the release repository used when no config overrides it.
var githubRepoSlug = config.DefaultRepository

func newSelfUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "self-update",
		Short: "Update capdemo to the latest version",
		Long: `Checks for the latest release of capdemo on GitHub and
updates the current binary if a newer version is found.

The release repository defaults to ` + config.DefaultRepository + ` and can be
changed with update.repository in the configuration file.`,
		Args: cobra.NoArgs,
		RunE: runSelfUpdate,
	}
}

func runSelfUpdate(cmd *cobra.Command, args []string) error {
	currentVersion := rootCmd.Version
	if currentVersion == "" || currentVersion == "dev" {
		return fmt.Errorf("cannot self-update a development version")
	}
	current, err := semver.NewVersion(currentVersion)
	if err != nil {
		return fmt.Errorf("cannot self-update a development version %q: %w", currentVersion, err)
	}

	ctx := context.Background()
	if cmd != nil && cmd.Context() != nil {
		ctx = cmd.Context()
	}

	slug := releaseRepository()
	logging.Info("SelfUpdate", "Checking %s for releases newer than %s", slug, current)

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(slug))
	if err != nil {
		return fmt.Errorf("error occurred while detecting version: %w", err)
	}
	if !found {
		return fmt.Errorf("latest version for %s could not be found in %s", runtime.GOOS, slug)
	}

	out := cmd.OutOrStdout()
	if latest.LessOrEqual(current.String()) {
		fmt.Fprintf(out, "Current version (%s) is the latest\n", currentVersion)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("error occurred while updating binary: %w", err)
	}

	fmt.Fprintf(out, "Successfully updated to version %s\n", latest.Version())
	return nil
}

// releaseRepository returns the configured update.repository, falling back
// to githubRepoSlug when the configuration cannot be loaded.
func releaseRepository() string {
	var cfg config.CapdemoConfig
	var err error
	if rootConfigPath != "" {
		cfg, err = config.LoadConfigFromPath(rootConfigPath)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		logging.Warn("SelfUpdate", "Using default release repository: %v", err)
		return githubRepoSlug
	}
	if cfg.Update.Repository == "" || cfg.Update.Repository == config.DefaultRepository {
		return githubRepoSlug
	}
	return cfg.Update.Repository
}
