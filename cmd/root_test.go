package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestSetVersion(t *testing.T) {
	// Test setting version
	testVersion := "1.2.3-test"
	SetVersion(testVersion)

	if rootCmd.Version != testVersion {
		t.Errorf("Expected version to be %s, got %s", testVersion, rootCmd.Version)
	}
}

func TestRootCommand(t *testing.T) {
	// Test root command properties
	if rootCmd.Use != "brebot-desktop" {
		t.Errorf("Expected Use to be 'brebot-desktop', got %s", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("Expected Short description to be set")
	}

	if rootCmd.Long == "" {
		t.Error("Expected Long description to be set")
	}

	if !rootCmd.SilenceUsage {
		t.Error("Expected SilenceUsage to be true")
	}
}

func TestVersionTemplate(t *testing.T) {
	// Create a new command to test version template
	testCmd := &cobra.Command{
		Use:     "test",
		Version: "1.0.0",
	}

	// Set the same version template as in Execute()
	testCmd.SetVersionTemplate(`{{printf "brebot-desktop version %s\n" .Version}}`)

	// Capture output
	var buf bytes.Buffer
	testCmd.SetOut(&buf)

	// Execute version command
	testCmd.SetArgs([]string{"--version"})
	err := testCmd.Execute()
	if err != nil {
		t.Fatalf("Error executing version command: %v", err)
	}

	output := buf.String()
	expected := "brebot-desktop version 1.0.0\n"
	if output != expected {
		t.Errorf("Expected version output %q, got %q", expected, output)
	}
}

func TestSubcommands(t *testing.T) {
	// Test that subcommands are added
	commands := rootCmd.Commands()

	expectedCommands := []string{"start", "open", "window", "health", "serve", "version", "self-update"}
	foundCommands := make(map[string]bool)

	for _, cmd := range commands {
		foundCommands[cmd.Name()] = true
	}

	for _, expected := range expectedCommands {
		if !foundCommands[expected] {
			t.Errorf("Expected subcommand %s to be registered", expected)
		}
	}
}

func TestStartSubcommands(t *testing.T) {
	// Test that the launch family is complete
	expectedCommands := []string{"backend", "services", "all"}
	foundCommands := make(map[string]bool)

	for _, cmd := range startCmd.Commands() {
		foundCommands[cmd.Name()] = true
	}

	for _, expected := range expectedCommands {
		if !foundCommands[expected] {
			t.Errorf("Expected start subcommand %s to be registered", expected)
		}
	}
}

func TestServeFlags(t *testing.T) {
	// Test that the serve mode switches are registered
	for _, flag := range []string{"no-tui", "no-tools", "debug"} {
		if serveCmd.Flags().Lookup(flag) == nil {
			t.Errorf("Expected serve flag --%s to be registered", flag)
		}
	}
}

func TestConfigFlagIsPersistent(t *testing.T) {
	if rootCmd.PersistentFlags().Lookup("config") == nil {
		t.Error("Expected persistent flag --config to be registered")
	}
}

func TestRootCommandHelp(t *testing.T) {
	// Test that help can be generated without error
	var buf bytes.Buffer

	// Create a new command to avoid affecting the global one
	testRootCmd := &cobra.Command{
		Use:   "brebot-desktop",
		Short: "Launch and supervise the local Brebot stack",
		Long: `brebot-desktop is the launcher shell for a local Brebot installation.
It starts the Python backend and the docker compose services, opens the
dashboard in a browser or an app-mode window, and probes backend health.`,
		SilenceUsage: true,
	}

	testRootCmd.SetOut(&buf)
	testRootCmd.SetArgs([]string{"--help"})

	err := testRootCmd.Execute()
	if err != nil {
		t.Fatalf("Error executing help command: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "brebot-desktop") {
		t.Errorf("Help output should contain 'brebot-desktop'. Got: %q", output)
	}

	if !strings.Contains(output, "launcher shell") {
		t.Errorf("Help output should contain the long description. Got: %q", output)
	}
}
