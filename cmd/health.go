package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Probe the backend health endpoint once",
		Long: `Probe the backend health endpoint once and print the response.

The probe never retries. Exits non-zero when the backend is unreachable,
answers with a non-2xx status, or the response body cannot be read; the
error says which of the three it was.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := newLauncherApp()
			if err != nil {
				return err
			}
			services := application.Services()

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			result := services.Probe.Check(ctx)
			if !result.Healthy() {
				return fmt.Errorf("%s: %w", services.Probe.URL(), result.Err())
			}

			fmt.Printf("%s is healthy: HTTP %d in %s\n",
				services.Probe.URL(), result.Status, result.Latency.Round(time.Millisecond))
			if result.Body != "" {
				fmt.Println(result.Body)
			}
			return nil
		},
	}
}
