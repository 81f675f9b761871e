package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "Open the dashboard in the default browser",
		Long: `Open the Brebot dashboard URL in the system default browser.

The backend must be started separately; opening the browser does not probe
or wait for it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newLauncherApp()
			if err != nil {
				return err
			}
			services := application.Services()
			url := application.Config().Launcher.Backend.OpenURL()

			launch, err := services.Browser.OpenDefault(url)
			if err != nil {
				return err
			}
			fmt.Printf("Opened %s via %s\n", url, launch.Spec.Path)
			return nil
		},
	}
}
