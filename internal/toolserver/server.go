// Package toolserver exposes the launcher's operations as MCP tools over
// SSE, so AI assistants and other local clients can start the backend, probe
// its health, and open views without going through the terminal UI.
package toolserver

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/brebuilds/brebot/internal/browser"
	"github.com/brebuilds/brebot/internal/health"
	"github.com/brebuilds/brebot/internal/launcher"
	"github.com/brebuilds/brebot/internal/reporting"
	"github.com/brebuilds/brebot/internal/shell"
	"github.com/brebuilds/brebot/pkg/logging"
)

const serverName = "brebot-launcher"

// Deps are the launcher facilities the tools operate on. AppURL is the
// loopback URL used for app windows and dashboard navigation, OpenURL the
// localhost spelling handed to the default browser.
type Deps struct {
	Launcher *launcher.Launcher
	Browser  *browser.Opener
	Probe    *health.Probe
	Windows  *shell.Registry
	Store    *reporting.Store
	AppURL   string
	OpenURL  string
}

// Server is the MCP tool server. Create with New, then Start/Stop.
type Server struct {
	addr    string
	version string
	deps    Deps

	mu        sync.Mutex
	server    *server.MCPServer
	sseServer *server.SSEServer
}

// New returns an unstarted Server listening on addr once started.
func New(addr, version string, deps Deps) *Server {
	return &Server{
		addr:    addr,
		version: version,
		deps:    deps,
	}
}

// Start brings up the MCP server and its SSE transport. The listener runs
// in the background; Start returns once registration is done.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.server != nil {
		return fmt.Errorf("tool server already started")
	}

	mcpServer := server.NewMCPServer(
		serverName,
		s.version,
		server.WithToolCapabilities(true),
	)
	mcpServer.AddTools(s.serverTools()...)
	s.server = mcpServer

	s.sseServer = server.NewSSEServer(
		mcpServer,
		server.WithBaseURL("http://"+s.addr),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
		server.WithKeepAlive(true),
		server.WithKeepAliveInterval(30*time.Second),
	)

	logging.Info("ToolServer", "Starting MCP tool server on %s", s.addr)

	sseServer := s.sseServer
	go func() {
		if err := sseServer.Start(s.addr); err != nil && err != http.ErrServerClosed {
			logging.Error("ToolServer", err, "SSE server error")
		}
	}()

	return nil
}

// Stop shuts the SSE listener down. Safe to call once after a successful
// Start.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	sseServer := s.sseServer
	s.server = nil
	s.sseServer = nil
	s.mu.Unlock()

	if sseServer == nil {
		return fmt.Errorf("tool server not started")
	}

	logging.Info("ToolServer", "Stopping MCP tool server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return sseServer.Shutdown(shutdownCtx)
}

// Endpoint returns the SSE endpoint URL clients connect to.
func (s *Server) Endpoint() string {
	return fmt.Sprintf("http://%s/sse", s.addr)
}
