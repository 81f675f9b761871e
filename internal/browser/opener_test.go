package browser

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brebuilds/brebot/internal/config"
)

const testURL = "http://127.0.0.1:8000"

// writeStubBrowser creates a script that records its argv and exits, so
// tests can observe exactly how a candidate was invoked.
func writeStubBrowser(t *testing.T, dir, name string) (scriptPath, argvPath string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub script requires a POSIX shell")
	}

	scriptPath = filepath.Join(dir, name)
	argvPath = filepath.Join(dir, name+".argv")
	script := "#!/bin/sh\necho \"$@\" > " + argvPath + "\n"
	require.NoError(t, os.WriteFile(scriptPath, []byte(script), 0755))
	return scriptPath, argvPath
}

func recordedArgs(t *testing.T, argvPath string) string {
	t.Helper()
	var content []byte
	require.Eventually(t, func() bool {
		data, err := os.ReadFile(argvPath)
		if err != nil {
			return false
		}
		content = data
		return true
	}, 3*time.Second, 20*time.Millisecond, "stub browser never recorded its argv")
	return strings.TrimSpace(string(content))
}

func TestOpenAppWindow_SkipsMissingCandidates(t *testing.T) {
	dir := t.TempDir()
	stub, argv := writeStubBrowser(t, dir, "chromium")

	o := New(config.BrowserConfig{
		Candidates: []string{
			filepath.Join(dir, "not-installed-1"),
			filepath.Join(dir, "not-installed-2"),
			stub,
		},
		UserDataDir:    filepath.Join(dir, "profile"),
		FallbackOpener: []string{filepath.Join(dir, "must-not-run")},
	})

	launch, err := o.OpenAppWindow(testURL)
	require.NoError(t, err)
	assert.Equal(t, stub, launch.Spec.Path)
	assert.Greater(t, launch.PID, 0)

	args := recordedArgs(t, argv)
	assert.Contains(t, args, "--new-window")
	assert.Contains(t, args, "--app="+testURL)
	assert.Contains(t, args, "--user-data-dir="+filepath.Join(dir, "profile"))
	assert.Contains(t, args, "--no-first-run")
	assert.Contains(t, args, "--no-default-browser-check")
}

func TestOpenAppWindow_SkipsBrokenCandidate(t *testing.T) {
	dir := t.TempDir()

	// Exists but is not executable, so spawning it fails.
	broken := filepath.Join(dir, "broken-browser")
	require.NoError(t, os.WriteFile(broken, []byte("not a binary"), 0644))

	stub, argv := writeStubBrowser(t, dir, "chromium")

	o := New(config.BrowserConfig{
		Candidates:  []string{broken, stub},
		UserDataDir: filepath.Join(dir, "profile"),
	})

	launch, err := o.OpenAppWindow(testURL)
	require.NoError(t, err)
	assert.Equal(t, stub, launch.Spec.Path)
	assert.Contains(t, recordedArgs(t, argv), "--app="+testURL)
}

func TestOpenAppWindow_FallsBackWhenExhausted(t *testing.T) {
	dir := t.TempDir()
	opener, argv := writeStubBrowser(t, dir, "opener")

	o := New(config.BrowserConfig{
		Candidates:     []string{filepath.Join(dir, "nope")},
		FallbackOpener: []string{opener},
	})

	launch, err := o.OpenAppWindow(testURL)
	require.NoError(t, err)
	assert.Equal(t, opener, launch.Spec.Path)

	args := recordedArgs(t, argv)
	assert.Equal(t, testURL, args, "fallback gets the bare URL, no app-mode flags")
}

func TestOpenAppWindow_NoCandidatesGoesStraightToFallback(t *testing.T) {
	dir := t.TempDir()
	opener, argv := writeStubBrowser(t, dir, "opener")

	o := New(config.BrowserConfig{
		FallbackOpener: []string{opener},
	})

	_, err := o.OpenAppWindow(testURL)
	require.NoError(t, err)
	assert.Equal(t, testURL, recordedArgs(t, argv))
}

func TestOpenDefault_MultiWordOpener(t *testing.T) {
	dir := t.TempDir()
	opener, argv := writeStubBrowser(t, dir, "rundll-like")

	o := New(config.BrowserConfig{
		FallbackOpener: []string{opener, "url.dll,FileProtocolHandler"},
	})

	_, err := o.OpenDefault(testURL)
	require.NoError(t, err)
	assert.Equal(t, "url.dll,FileProtocolHandler "+testURL, recordedArgs(t, argv))
}

func TestOpenDefault_FailureYieldsLaunchError(t *testing.T) {
	dir := t.TempDir()

	o := New(config.BrowserConfig{
		FallbackOpener: []string{filepath.Join(dir, "missing-opener")},
	})

	_, err := o.OpenDefault(testURL)
	require.Error(t, err)

	var launchErr *LaunchError
	require.True(t, errors.As(err, &launchErr))
	assert.Equal(t, testURL, launchErr.URL)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestOpenDefault_EmptyFallbackConfigured(t *testing.T) {
	o := New(config.BrowserConfig{})

	_, err := o.OpenDefault(testURL)
	require.Error(t, err)

	var launchErr *LaunchError
	assert.True(t, errors.As(err, &launchErr))
}

func TestOpenAppWindow_CandidateAndFallbackBothFail(t *testing.T) {
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken")
	require.NoError(t, os.WriteFile(broken, []byte("x"), 0644))

	o := New(config.BrowserConfig{
		Candidates:     []string{broken},
		FallbackOpener: []string{filepath.Join(dir, "also-missing")},
	})

	_, err := o.OpenAppWindow(testURL)
	require.Error(t, err)

	var launchErr *LaunchError
	assert.True(t, errors.As(err, &launchErr), "exhausted fallback must classify as LaunchError")
}
