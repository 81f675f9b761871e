package app

import (
	"context"
	"testing"
	"time"
)

func TestHeadlessModeWithoutToolsReturnsImmediately(t *testing.T) {
	cfg := NewConfig(true, true, false, "", "test")

	done := make(chan error, 1)
	go func() {
		// Services are never touched when the tool server is disabled.
		done <- runHeadlessMode(context.Background(), cfg, nil)
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("runHeadlessMode returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("runHeadlessMode should return immediately when tools are disabled")
	}
}

func TestRunDispatchesHeadlessMode(t *testing.T) {
	cfg := NewConfig(true, true, false, "", "test")
	application := &Application{config: cfg}

	if err := application.Run(context.Background()); err != nil {
		t.Errorf("Run returned error: %v", err)
	}
}
