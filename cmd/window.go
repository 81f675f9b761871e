package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWindowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Open the dashboard in an app-mode window",
		Long: `Open the Brebot dashboard in a chromeless app-mode browser window.

Browser candidates are tried in configured order; when none of them can be
started the URL is handed to the system default opener instead, as a plain
tab.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newLauncherApp()
			if err != nil {
				return err
			}
			services := application.Services()
			url := application.Config().Launcher.Backend.URL()

			launch, err := services.Browser.OpenAppWindow(url)
			if err != nil {
				return err
			}
			fmt.Printf("Opened %s via %s (PID %d)\n", url, launch.Spec.Path, launch.PID)
			return nil
		},
	}
}
