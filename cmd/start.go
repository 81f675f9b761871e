package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// healthPollInterval is the pause between readiness probes after 'start all'.
const healthPollInterval = time.Second

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start parts of the local Brebot stack",
	Long: `Start parts of the local Brebot stack without the dashboard.

Available commands:
  backend   - Spawn the Python backend
  services  - Bring up the docker compose services
  all       - Services first, then the backend, then wait for health

Each launch is fire-and-forget: the process is spawned detached and keeps
running after brebot-desktop exits. Nothing here supervises or stops what
was started.`,
}

// startBackendCmd spawns the backend process
var startBackendCmd = &cobra.Command{
	Use:   "backend",
	Short: "Spawn the Python backend",
	Long: `Spawn the Python backend detached from this process.

The interpreter is the project venv when it exists, otherwise the configured
system fallback. The backend keeps running after this command returns; probe
it with 'brebot-desktop health'.`,
	Args: cobra.NoArgs,
	RunE: runStartBackend,
}

// startServicesCmd brings up the compose stack
var startServicesCmd = &cobra.Command{
	Use:   "services",
	Short: "Bring up the docker compose services",
	Long: `Bring up the auxiliary services (vector store, cache) via docker compose.

The compose invocation is spawned detached; docker owns the containers from
then on. Stopping them is docker's business, not brebot-desktop's.`,
	Args: cobra.NoArgs,
	RunE: runStartServices,
}

// startAllCmd sequences services, backend and a readiness wait
var startAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Start services and backend, then wait for health",
	Long: `Start the compose services, then the backend, then poll the health
endpoint until the backend answers or the configured attempts run out.

A services failure does not stop the sequence: the backend is started anyway
and may run degraded until the services come up.`,
	Args: cobra.NoArgs,
	RunE: runStartAll,
}

func init() {
	rootCmd.AddCommand(startCmd)

	// Add subcommands
	startCmd.AddCommand(startBackendCmd)
	startCmd.AddCommand(startServicesCmd)
	startCmd.AddCommand(startAllCmd)
}

func runStartBackend(cmd *cobra.Command, args []string) error {
	application, err := newLauncherApp()
	if err != nil {
		return err
	}
	services := application.Services()

	root, err := services.Workspace.Root()
	if err != nil {
		return err
	}
	fmt.Printf("Project root: %s\n", root)
	fmt.Printf("Interpreter:  %s\n", services.Workspace.Interpreter(root))

	launch, err := services.Launcher.StartBackend()
	if err != nil {
		return err
	}
	fmt.Printf("Backend started (PID %d): %s\n", launch.PID, launch.Spec)
	return nil
}

func runStartServices(cmd *cobra.Command, args []string) error {
	application, err := newLauncherApp()
	if err != nil {
		return err
	}
	services := application.Services()

	launch, err := services.Launcher.StartServices()
	if err != nil {
		return err
	}
	fmt.Printf("Services started (PID %d): %s\n", launch.PID, launch.Spec)
	return nil
}

func runStartAll(cmd *cobra.Command, args []string) error {
	application, err := newLauncherApp()
	if err != nil {
		return err
	}
	services := application.Services()

	if launch, err := services.Launcher.StartServices(); err != nil {
		fmt.Printf("Warning: services failed to start: %v\n", err)
		fmt.Println("Starting backend anyway; it may run degraded without the services.")
	} else {
		fmt.Printf("Services started (PID %d).\n", launch.PID)
	}

	launch, err := services.Launcher.StartBackend()
	if err != nil {
		return err
	}
	fmt.Printf("Backend started (PID %d).\n", launch.PID)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	attempts := application.Config().Launcher.Shell.HealthAttempts
	fmt.Printf("Waiting for %s ", services.Probe.URL())
	for i := 0; i < attempts; i++ {
		time.Sleep(healthPollInterval)
		result := services.Probe.Check(ctx)
		if result.Healthy() {
			fmt.Printf("\nBackend healthy after %d attempt(s): HTTP %d in %s\n",
				i+1, result.Status, result.Latency.Round(time.Millisecond))
			return nil
		}
		fmt.Print(".")
	}
	fmt.Println()
	return fmt.Errorf("backend did not become healthy after %d attempts", attempts)
}
