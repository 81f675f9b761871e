package app

import (
	"github.com/brebuilds/brebot/internal/browser"
	"github.com/brebuilds/brebot/internal/health"
	"github.com/brebuilds/brebot/internal/launcher"
	"github.com/brebuilds/brebot/internal/reporting"
	"github.com/brebuilds/brebot/internal/shell"
	"github.com/brebuilds/brebot/internal/toolserver"
	"github.com/brebuilds/brebot/internal/workspace"
)

// Services holds the wired launcher facilities shared by every mode.
type Services struct {
	Workspace  *workspace.Resolver
	Launcher   *launcher.Launcher
	Browser    *browser.Opener
	Probe      *health.Probe
	Windows    *shell.Registry
	Store      *reporting.Store
	ToolServer *toolserver.Server
}

// InitializeServices creates all required services from the loaded
// configuration. The tool server is constructed but not started; the
// active mode starts it unless tools are disabled.
func InitializeServices(cfg *Config) (*Services, error) {
	ws, err := workspace.NewResolver(cfg.Launcher.Workspace)
	if err != nil {
		return nil, err
	}

	launch := launcher.New(ws, cfg.Launcher.Backend, cfg.Launcher.Services)
	opener := browser.New(cfg.Launcher.Browser)
	probe := health.New(cfg.Launcher.Backend.HealthURL(), nil)
	windows := shell.NewRegistry()
	store := reporting.NewStore()

	tools := toolserver.New(cfg.Launcher.Shell.ToolServerAddr(), cfg.Version, toolserver.Deps{
		Launcher: launch,
		Browser:  opener,
		Probe:    probe,
		Windows:  windows,
		Store:    store,
		AppURL:   cfg.Launcher.Backend.URL(),
		OpenURL:  cfg.Launcher.Backend.OpenURL(),
	})

	return &Services{
		Workspace:  ws,
		Launcher:   launch,
		Browser:    opener,
		Probe:      probe,
		Windows:    windows,
		Store:      store,
		ToolServer: tools,
	}, nil
}
