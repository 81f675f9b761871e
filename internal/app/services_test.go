package app

import (
	"testing"

	"github.com/brebuilds/brebot/internal/config"
)

func TestInitializeServices(t *testing.T) {
	launcherCfg := config.GetDefaultConfig()
	cfg := &Config{
		Version:  "test",
		Launcher: &launcherCfg,
	}

	services, err := InitializeServices(cfg)
	if err != nil {
		t.Fatalf("InitializeServices returned error: %v", err)
	}

	if services.Workspace == nil {
		t.Error("Workspace should not be nil")
	}
	if services.Launcher == nil {
		t.Error("Launcher should not be nil")
	}
	if services.Browser == nil {
		t.Error("Browser should not be nil")
	}
	if services.Probe == nil {
		t.Error("Probe should not be nil")
	}
	if services.Windows == nil {
		t.Error("Windows should not be nil")
	}
	if services.Store == nil {
		t.Error("Store should not be nil")
	}
	if services.ToolServer == nil {
		t.Error("ToolServer should not be nil")
	}
}

func TestInitializeServicesProbeTargetsHealthEndpoint(t *testing.T) {
	launcherCfg := config.GetDefaultConfig()
	cfg := &Config{
		Version:  "test",
		Launcher: &launcherCfg,
	}

	services, err := InitializeServices(cfg)
	if err != nil {
		t.Fatalf("InitializeServices returned error: %v", err)
	}

	if got, want := services.Probe.URL(), launcherCfg.Backend.HealthURL(); got != want {
		t.Errorf("Probe URL = %q, want %q", got, want)
	}
}
