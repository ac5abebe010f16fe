package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"capdemo/internal/app"

	"github.com/spf13/cobra"
)

var (
	// rootDebug enables debug logging for every command.
	rootDebug bool

	// rootNoColor disables styled demo and summary output.
	rootNoColor bool

	// rootConfigPath replaces the layered user/project config lookup.
	rootConfigPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "capdemo",
	Short: "Demonstrate the SOLID principles through a capability registry",
	Long: `capdemo registers small demonstration behaviors as named capabilities,
each with one or more interchangeable variants, and invokes them by name.

Every capability illustrates one SOLID principle: washers and dryers with
separate responsibilities, an entertainment system extended by composition,
movers that never pretend to fly, narrow kitchen appliance interfaces and a
house that depends on an abstract power source.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. unknown capabilities, failed script steps)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "capdemo version %s\n" .Version}}`)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Cobra prints the error, we just exit non-zero
		stop()
		os.Exit(1)
	}
}

// newApplication bootstraps the application for cmd, writing demo output to
// its stdout and logs to its stderr.
func newApplication(cmd *cobra.Command) (*app.Application, error) {
	return app.NewApplication(app.NewConfig(rootDebug, rootNoColor, rootConfigPath), cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&rootNoColor, "no-color", false, "Disable styled output")
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Config file (default: layered ~/.config/capdemo/config.yaml and .capdemo/config.yaml)")
}
