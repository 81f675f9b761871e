package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brebuilds/brebot/internal/app"
)

// configPath holds the --config override shared by every subcommand.
var configPath string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "brebot-desktop",
	Short: "Launch and supervise the local Brebot stack",
	Long: `brebot-desktop is the launcher shell for a local Brebot installation.
It starts the Python backend and the docker compose services, opens the
dashboard in a browser or an app-mode window, and probes backend health.
Run 'serve' for the interactive dashboard with the MCP tool server.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. invalid arguments, failed launches)
	SilenceUsage: true,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v // Set cobra's version field as well
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Set up version template
	rootCmd.SetVersionTemplate(`{{printf "brebot-desktop version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

// newLauncherApp loads configuration and wires the launcher facilities for
// one-shot commands. The dashboard and the tool server stay disabled.
func newLauncherApp() (*app.Application, error) {
	cfg := app.NewConfig(true, true, false, configPath, rootCmd.Version)
	application, err := app.NewApplication(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize launcher: %w", err)
	}
	return application, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a launcher config file (default: layered lookup)")

	rootCmd.AddCommand(newOpenCmd())
	rootCmd.AddCommand(newWindowCmd())
	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}
