// Package browser opens backend URLs in a web browser, either as a
// dedicated app-mode window or via the platform's default handler.
//
// App-mode windows are best effort: known browser installs are tried in
// order and every failure is absorbed by falling through to the next
// candidate, then to the default handler. The browser process, like every
// process this launcher starts, is spawned detached and never tracked.
package browser

import (
	"errors"
	"fmt"
	"os"

	"github.com/brebuilds/brebot/internal/config"
	"github.com/brebuilds/brebot/internal/launcher"
	"github.com/brebuilds/brebot/pkg/logging"
)

// For mocking in tests
var osStat = os.Stat

// LaunchError reports that no browser could be opened at all, including the
// default-handler fallback. Candidate failures alone never produce it.
type LaunchError struct {
	URL string
	Err error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to open browser for %s: %v", e.URL, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// Opener launches browser views according to the configured candidate list
// and fallback command.
type Opener struct {
	candidates  []string
	userDataDir string
	fallback    []string
}

// New returns an Opener for the given browser configuration.
func New(cfg config.BrowserConfig) *Opener {
	return &Opener{
		candidates:  cfg.Candidates,
		userDataDir: cfg.UserDataDir,
		fallback:    cfg.FallbackOpener,
	}
}

// appModeArgs is the Chromium argument set for a standalone app window: no
// tabs, no address bar, an isolated profile, and none of the first-run
// chrome.
func (o *Opener) appModeArgs(url string) []string {
	return []string{
		"--new-window",
		"--app=" + url,
		"--user-data-dir=" + o.userDataDir,
		"--no-first-run",
		"--no-default-browser-check",
	}
}

// OpenAppWindow opens url as an app-mode window using the first candidate
// browser that exists and starts. Missing candidates are skipped silently,
// broken ones are logged and skipped, and when the list is exhausted the
// default handler takes over.
func (o *Opener) OpenAppWindow(url string) (launcher.Launch, error) {
	for _, candidate := range o.candidates {
		if _, err := osStat(candidate); err != nil {
			logging.Debug("Browser", "Candidate not installed: %s", candidate)
			continue
		}

		launch, err := launcher.Spawn(launcher.Spec{
			Path: candidate,
			Args: o.appModeArgs(url),
		})
		if err != nil {
			logging.Warn("Browser", "Candidate %s failed to start: %v", candidate, err)
			continue
		}

		logging.Info("Browser", "Opened app window via %s (PID %d)", candidate, launch.PID)
		return launch, nil
	}

	logging.Info("Browser", "No app-mode browser available, using default handler for %s", url)
	return o.OpenDefault(url)
}

// OpenDefault hands url to the operating system's default browser.
func (o *Opener) OpenDefault(url string) (launcher.Launch, error) {
	if len(o.fallback) == 0 {
		return launcher.Launch{}, &LaunchError{URL: url, Err: errors.New("no fallback opener configured")}
	}

	args := append(append([]string{}, o.fallback[1:]...), url)
	launch, err := launcher.Spawn(launcher.Spec{
		Path: o.fallback[0],
		Args: args,
	})
	if err != nil {
		return launcher.Launch{}, &LaunchError{URL: url, Err: err}
	}

	logging.Info("Browser", "Opened %s via default handler (PID %d)", url, launch.PID)
	return launch, nil
}
