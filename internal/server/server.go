// Package server exposes the adapter's offline tools over the Model Context
// Protocol.
package server

import (
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/outlook-a11y/internal/config"
	"github.com/mj1618/outlook-a11y/internal/platform/sim"
	"go.uber.org/zap"
)

// Options configures a Server.
type Options struct {
	Config   config.Config
	Log      *zap.Logger
	CacheTTL time.Duration
	Version  string
}

// Server wraps the MCP server with the adapter configuration and the
// scenario cache.
type Server struct {
	cfg       config.Config
	log       *zap.Logger
	scenarios *FileCache[sim.Scenario]
	mcp       *mcpserver.MCPServer
}

// New creates an MCP server with the classify and replay tools.
func New(opts Options) *Server {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	version := opts.Version
	if version == "" {
		version = "dev"
	}
	s := &Server{
		cfg:       opts.Config,
		log:       log,
		scenarios: NewFileCache(opts.CacheTTL, sim.Load),
		mcp:       mcpserver.NewMCPServer("outlook-a11y", version, mcpserver.WithToolCapabilities(false)),
	}
	s.registerTools()
	return s
}

// MCP returns the underlying MCP server.
func (s *Server) MCP() *mcpserver.MCPServer { return s.mcp }

// Serve starts the server on the given transport.
func (s *Server) Serve(transport string, port int) error {
	switch transport {
	case "stdio":
		s.log.Info("serving MCP over stdio")
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		addr := fmt.Sprintf(":%d", port)
		s.log.Info("serving MCP over streamable HTTP", zap.String("addr", addr))
		return mcpserver.NewStreamableHTTPServer(s.mcp).Start(addr)
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("classify",
			mcp.WithDescription("Classify every node of a scenario tree: the overlays it receives and the structural corrections applied to it"),
			mcp.WithString("file", mcp.Description("Path of a scenario file (YAML or JSON)")),
			mcp.WithString("scenario", mcp.Description("Inline scenario document, used when file is empty")),
			mcp.WithNumber("version", mcp.Description("Client major version to classify against (default: the scenario's object model version)")),
			mcp.WithString("roles", mcp.Description("Comma-separated fixture roles to keep (e.g. 'listitem,dataitem')")),
			mcp.WithString("text", mcp.Description("Keep nodes whose name, value or description contains this text")),
		),
		s.handleClassify,
	)

	s.mcp.AddTool(
		mcp.NewTool("replay",
			mcp.WithDescription("Replay a scenario's events and key presses against the scripted host and return what was spoken, brailled and reported at each step"),
			mcp.WithString("file", mcp.Description("Path of a scenario file (YAML or JSON)")),
			mcp.WithString("scenario", mcp.Description("Inline scenario document, used when file is empty")),
		),
		s.handleReplay,
	)
}
